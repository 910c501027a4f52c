package world

import (
	"errors"
	"fmt"
	"worldcities/models"
)

// CityInput carries the fields of a city submission.
type CityInput struct {
	Name       string
	District   string
	Population int
	Country    string
	Region     string
}

// CityEdit is a CityInput targeted at an existing city row.
type CityEdit struct {
	ID int
	CityInput
}

func (in CityInput) validate() error {
	switch {
	case in.Name == "":
		return ValidationError{Field: "cityName"}
	case in.District == "":
		return ValidationError{Field: "district"}
	case in.Population < 0:
		return ValidationError{Field: "population"}
	case in.Country == "":
		return ValidationError{Field: "country"}
	case in.Region == "":
		return ValidationError{Field: "region"}
	}
	return nil
}

func (in CityEdit) validate() error {
	if in.ID <= 0 {
		return ValidationError{Field: "cityID"}
	}
	return in.CityInput.validate()
}

// Service implements the city/country operations behind the HTTP API.
type Service struct {
	store Store
	alloc *CodeAllocator
}

func NewService(store Store, alloc *CodeAllocator) *Service {
	return &Service{store: store, alloc: alloc}
}

// CreateCity resolves the submitted country, creating it under a fresh code
// when it does not exist yet, and inserts a new city row. It returns the
// store-assigned city id.
func (s *Service) CreateCity(in CityInput) (int, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	code, err := s.resolveCountry(s.store, in.Country, in.Region)
	if err != nil {
		return 0, err
	}

	city := &models.City{
		Name:        in.Name,
		District:    in.District,
		Population:  in.Population,
		CountryCode: code,
	}
	if err := s.store.InsertCity(city); err != nil {
		return 0, err
	}
	return city.ID, nil
}

// EditCity reconciles a full city submission against an existing row. When
// the submitted country name is already on record, the city row and the
// country row it links to are updated in place and the city id is
// preserved. When the country is new, a replacement city row is inserted
// under a freshly allocated code and the original row is deleted; the
// returned id then differs from the submitted one.
func (s *Service) EditCity(in CityEdit) (int, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	city, err := s.store.CityByID(in.ID)
	if err != nil {
		return 0, err
	}
	if city == nil {
		return 0, ErrCityNotFound
	}

	country, err := s.store.CountryByName(in.Country)
	if err != nil {
		return 0, err
	}

	if country != nil {
		// In-place path. The country metadata is mutated on the code the
		// city already links to, not relinked.
		err := s.store.Transaction(func(tx Store) error {
			if err := tx.UpdateCity(in.ID, in.Name, in.District, in.Population); err != nil {
				return err
			}
			return tx.UpdateCountry(city.CountryCode, in.Country, in.Region)
		})
		if err != nil {
			return 0, err
		}
		return in.ID, nil
	}

	// Replace path. The country is created outside the transaction so a
	// code collision can be retried; the row swap itself is atomic.
	code, err := s.createCountry(s.store, in.Country, in.Region)
	if err != nil {
		return 0, err
	}

	replacement := &models.City{
		Name:        in.Name,
		District:    in.District,
		Population:  in.Population,
		CountryCode: code,
	}
	err = s.store.Transaction(func(tx Store) error {
		if err := tx.InsertCity(replacement); err != nil {
			return err
		}
		return tx.DeleteCity(in.ID)
	})
	if err != nil {
		return 0, err
	}
	return replacement.ID, nil
}

// DeleteCities deletes every listed city row. Deletions are independent: a
// missing id is not an error, and one failure does not stop the rest. Any
// failures are reported together after all deletes were attempted.
func (s *Service) DeleteCities(ids []int) error {
	if len(ids) == 0 {
		return ValidationError{Field: "selected"}
	}

	var errs []error
	for _, id := range ids {
		if err := s.store.DeleteCity(id); err != nil {
			errs = append(errs, fmt.Errorf("city %d: %w", id, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("error.city.delete_failed: %w", errors.Join(errs...))
	}
	return nil
}

// CityExists reports whether a city row with the given id is present.
func (s *Service) CityExists(id int) (bool, error) {
	if id <= 0 {
		return false, ValidationError{Field: "id"}
	}
	return s.store.CityExists(id)
}

// ListCities returns the joined city/country rows ordered by population
// descending.
func (s *Service) ListCities() ([]CityRow, error) {
	return s.store.ListCities()
}

// resolveCountry returns the code of the country with the given name,
// creating the country when no such row exists. A matched country is never
// mutated.
func (s *Service) resolveCountry(store Store, name, region string) (string, error) {
	country, err := store.CountryByName(name)
	if err != nil {
		return "", err
	}
	if country != nil {
		return country.Code, nil
	}
	return s.createCountry(store, name, region)
}

// createCountry allocates a fresh code and inserts the country. A unique
// violation on insert means a concurrent writer won the race: if the name
// landed first its code is reused, otherwise the code collided and another
// candidate is drawn. The loop shares the allocator's attempt budget.
func (s *Service) createCountry(store Store, name, region string) (string, error) {
	for i := 0; i < s.alloc.maxAttempts; i++ {
		code, err := s.alloc.Allocate(store)
		if err != nil {
			return "", err
		}

		err = store.InsertCountry(&models.Country{Code: code, Name: name, Region: region})
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, ErrDuplicateKey) {
			return "", err
		}

		country, err := store.CountryByName(name)
		if err != nil {
			return "", err
		}
		if country != nil {
			return country.Code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}
