package request

// AddCityRequest is the body of POST /api/cities/add. Field casing follows
// the form the frontend submits.
type AddCityRequest struct {
	CityName   string `json:"cityName"`
	District   string `json:"district"`
	Population int    `json:"population"`
	Country    string `json:"country"`
	Region     string `json:"region"`
}

// EditCityRequest is the body of PUT /api/cities/edit. Field casing follows
// the row shape of GET /api/cities.
type EditCityRequest struct {
	CityID         int    `json:"CityID"`
	CityName       string `json:"CityName"`
	District       string `json:"District"`
	CityPopulation int    `json:"CityPopulation"`
	CountryName    string `json:"CountryName"`
	Region         string `json:"Region"`
}

type DeleteCitiesRequest struct {
	Selected []int `json:"selected"`
}

type CheckCityIDRequest struct {
	ID int `json:"id"`
}
