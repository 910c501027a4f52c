package migrations

import (
	"worldcities/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Seed(db *gorm.DB) {
	// silent mode
	db.Logger = logger.Default.LogMode(logger.Silent)

	for _, country := range seedCountries {
		db.FirstOrCreate(&country, models.Country{Code: country.Code})
	}

	for _, city := range seedCities {
		db.FirstOrCreate(&city, models.City{Name: city.Name, CountryCode: city.CountryCode})
	}

	// disable silent mode
	db.Logger = logger.Default.LogMode(logger.Info)
}
