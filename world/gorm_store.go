package world

import (
	"errors"
	"worldcities/models"

	"gorm.io/gorm"
)

// GormStore implements Store on a GORM connection. The connection must be
// opened with TranslateError enabled so unique violations surface as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CountryCodeExists(code string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Country{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) CountryByName(name string) (*models.Country, error) {
	var country models.Country
	err := s.db.First(&country, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

func (s *GormStore) InsertCountry(country *models.Country) error {
	err := s.db.Create(country).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (s *GormStore) UpdateCountry(code, name, region string) error {
	return s.db.Model(&models.Country{}).Where("code = ?", code).
		Updates(map[string]any{"name": name, "region": region}).Error
}

func (s *GormStore) CityByID(id int) (*models.City, error) {
	var city models.City
	err := s.db.First(&city, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}

func (s *GormStore) CityExists(id int) (bool, error) {
	var count int64
	err := s.db.Model(&models.City{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) InsertCity(city *models.City) error {
	err := s.db.Create(city).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (s *GormStore) UpdateCity(id int, name, district string, population int) error {
	return s.db.Model(&models.City{}).Where("id = ?", id).
		Updates(map[string]any{
			"name":       name,
			"district":   district,
			"population": population,
		}).Error
}

func (s *GormStore) DeleteCity(id int) error {
	return s.db.Delete(&models.City{}, id).Error
}

func (s *GormStore) ListCities() ([]CityRow, error) {
	rows := make([]CityRow, 0)
	err := s.db.Model(&models.City{}).
		Select("city.id AS city_id, city.name AS city_name, city.district AS district, city.population AS city_population, country.name AS country_name, country.region AS region").
		Joins("JOIN country ON country.code = city.country_code").
		Order("city.population DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
