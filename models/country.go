package models

type Country struct {
	Code   string `json:"code" gorm:"primaryKey;type:varchar(3)"`
	Name   string `json:"name" gorm:"type:varchar(255);not null;unique"`
	Region string `json:"region" gorm:"type:varchar(255);not null"`
}

func (Country) TableName() string { return "country" }
