package migrations

import "worldcities/models"

// Reference slice of the classic "world" sample dataset: the ten most
// populous cities and their countries.
var seedCountries = []models.Country{
	{Code: "IND", Name: "India", Region: "Southern and Central Asia"},
	{Code: "KOR", Name: "South Korea", Region: "Eastern Asia"},
	{Code: "BRA", Name: "Brazil", Region: "South America"},
	{Code: "CHN", Name: "China", Region: "Eastern Asia"},
	{Code: "IDN", Name: "Indonesia", Region: "Southeast Asia"},
	{Code: "PAK", Name: "Pakistan", Region: "Southern and Central Asia"},
	{Code: "TUR", Name: "Turkey", Region: "Middle East"},
	{Code: "MEX", Name: "Mexico", Region: "Central America"},
	{Code: "RUS", Name: "Russian Federation", Region: "Eastern Europe"},
	{Code: "USA", Name: "United States", Region: "North America"},
}

var seedCities = []models.City{
	{Name: "Mumbai (Bombay)", District: "Maharashtra", Population: 10500000, CountryCode: "IND"},
	{Name: "Seoul", District: "Seoul", Population: 9981619, CountryCode: "KOR"},
	{Name: "São Paulo", District: "São Paulo", Population: 9968485, CountryCode: "BRA"},
	{Name: "Shanghai", District: "Shanghai", Population: 9696300, CountryCode: "CHN"},
	{Name: "Jakarta", District: "Jakarta Raya", Population: 9604900, CountryCode: "IDN"},
	{Name: "Karachi", District: "Sindh", Population: 9269265, CountryCode: "PAK"},
	{Name: "Istanbul", District: "Istanbul", Population: 8787958, CountryCode: "TUR"},
	{Name: "Ciudad de México", District: "Distrito Federal", Population: 8591309, CountryCode: "MEX"},
	{Name: "Moscow", District: "Moscow (City)", Population: 8389200, CountryCode: "RUS"},
	{Name: "New York", District: "New York", Population: 8008278, CountryCode: "USA"},
}
