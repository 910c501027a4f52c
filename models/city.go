package models

type City struct {
	ID          int      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string   `json:"name" gorm:"type:varchar(255);not null"`
	District    string   `json:"district" gorm:"type:varchar(255);not null"`
	Population  int      `json:"population" gorm:"type:integer;not null"`
	CountryCode string   `json:"country_code" gorm:"type:varchar(3);not null;index"`
	Country     *Country `json:"country,omitempty" gorm:"foreignKey:CountryCode;references:Code"`
}

func (City) TableName() string { return "city" }
