package world

import "worldcities/models"

// CityRow is one row of the joined city/country listing.
type CityRow struct {
	CityID         int    `json:"CityID" gorm:"column:city_id"`
	CityName       string `json:"CityName" gorm:"column:city_name"`
	District       string `json:"District" gorm:"column:district"`
	CityPopulation int    `json:"CityPopulation" gorm:"column:city_population"`
	CountryName    string `json:"CountryName" gorm:"column:country_name"`
	Region         string `json:"Region" gorm:"column:region"`
}

// Store is the persistence boundary for the city and country tables. Lookup
// methods return nil (not an error) when no row matches; inserts that hit a
// unique constraint return ErrDuplicateKey.
type Store interface {
	CountryCodeExists(code string) (bool, error)
	CountryByName(name string) (*models.Country, error)
	InsertCountry(country *models.Country) error
	UpdateCountry(code, name, region string) error

	CityByID(id int) (*models.City, error)
	CityExists(id int) (bool, error)
	InsertCity(city *models.City) error
	UpdateCity(id int, name, district string, population int) error
	DeleteCity(id int) error
	ListCities() ([]CityRow, error)

	// Transaction runs fn against a store bound to a single database
	// transaction, rolling back when fn returns an error.
	Transaction(fn func(Store) error) error
}
