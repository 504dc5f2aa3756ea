package types

// Location identifies the place a forecast and photo belong to. It comes from
// a text search (geocoding) or from device coordinates (reverse geocoding).
type Location struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country,omitempty"`
	AdminRegion string  `json:"adminRegion,omitempty"`
}
