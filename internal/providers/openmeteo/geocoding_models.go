package openmeteo

type GeocodingAPIResponse struct {
	Results []GeocodingResult `json:"results"`
}

type GeocodingResult struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1"`
	FeatureCode string  `json:"feature_code"`
	Population  int     `json:"population"`
}
