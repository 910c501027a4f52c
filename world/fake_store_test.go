package world

import (
	"sort"
	"worldcities/models"
)

// fakeStore is an in-memory Store recording every write, used to test the
// allocator and the service without a database.
type fakeStore struct {
	countries map[string]*models.Country
	cities    map[int]*models.City
	nextID    int

	codeProbes     int
	countryInserts int
	countryUpdates int
	cityInserts    int
	cityUpdates    int
	cityDeletes    []int
	txCalls        int

	probeErr          error
	probeAlwaysExists bool
	deleteErr         map[int]error
	insertCountryHook func(*models.Country) error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		countries: make(map[string]*models.Country),
		cities:    make(map[int]*models.City),
		deleteErr: make(map[int]error),
	}
}

func (f *fakeStore) addCountry(code, name, region string) {
	f.countries[code] = &models.Country{Code: code, Name: name, Region: region}
}

func (f *fakeStore) addCity(id int, name, district string, population int, code string) {
	f.cities[id] = &models.City{ID: id, Name: name, District: district, Population: population, CountryCode: code}
	if id >= f.nextID {
		f.nextID = id + 1
	}
}

func (f *fakeStore) CountryCodeExists(code string) (bool, error) {
	f.codeProbes++
	if f.probeErr != nil {
		return false, f.probeErr
	}
	if f.probeAlwaysExists {
		return true, nil
	}
	_, ok := f.countries[code]
	return ok, nil
}

func (f *fakeStore) CountryByName(name string) (*models.Country, error) {
	for _, country := range f.countries {
		if country.Name == name {
			return country, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertCountry(country *models.Country) error {
	if f.insertCountryHook != nil {
		if err := f.insertCountryHook(country); err != nil {
			return err
		}
	}
	if _, ok := f.countries[country.Code]; ok {
		return ErrDuplicateKey
	}
	for _, existing := range f.countries {
		if existing.Name == country.Name {
			return ErrDuplicateKey
		}
	}
	f.countryInserts++
	f.countries[country.Code] = country
	return nil
}

func (f *fakeStore) UpdateCountry(code, name, region string) error {
	if country, ok := f.countries[code]; ok {
		country.Name = name
		country.Region = region
		f.countryUpdates++
	}
	return nil
}

func (f *fakeStore) CityByID(id int) (*models.City, error) {
	city, ok := f.cities[id]
	if !ok {
		return nil, nil
	}
	return city, nil
}

func (f *fakeStore) CityExists(id int) (bool, error) {
	_, ok := f.cities[id]
	return ok, nil
}

func (f *fakeStore) InsertCity(city *models.City) error {
	if city.ID == 0 {
		if f.nextID == 0 {
			f.nextID = 1
		}
		city.ID = f.nextID
		f.nextID++
	}
	f.cityInserts++
	f.cities[city.ID] = city
	return nil
}

func (f *fakeStore) UpdateCity(id int, name, district string, population int) error {
	if city, ok := f.cities[id]; ok {
		city.Name = name
		city.District = district
		city.Population = population
		f.cityUpdates++
	}
	return nil
}

func (f *fakeStore) DeleteCity(id int) error {
	if err, ok := f.deleteErr[id]; ok {
		return err
	}
	delete(f.cities, id)
	f.cityDeletes = append(f.cityDeletes, id)
	return nil
}

func (f *fakeStore) ListCities() ([]CityRow, error) {
	rows := make([]CityRow, 0, len(f.cities))
	for _, city := range f.cities {
		country, ok := f.countries[city.CountryCode]
		if !ok {
			continue
		}
		rows = append(rows, CityRow{
			CityID:         city.ID,
			CityName:       city.Name,
			District:       city.District,
			CityPopulation: city.Population,
			CountryName:    country.Name,
			Region:         country.Region,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CityPopulation > rows[j].CityPopulation
	})
	return rows, nil
}

func (f *fakeStore) Transaction(fn func(Store) error) error {
	f.txCalls++
	return fn(f)
}
