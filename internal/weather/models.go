package weather

import (
	"time"

	"skycast/internal/types"
)

// Snapshot is the current-conditions reading for the displayed location.
// Temperatures stay in Celsius and speeds in km/h; unit conversion happens
// only at presentation time. Immutable once built from a provider response.
type Snapshot struct {
	TemperatureC         float64       `json:"temperatureC"`
	Weather              types.Weather `json:"weather"`
	WindSpeedKmh         float64       `json:"windSpeedKmh"`
	WindDirectionDeg     float64       `json:"windDirectionDeg"`
	WindDirection        string        `json:"windDirection"`
	HumidityPct          int           `json:"humidityPct"`
	ApparentTemperatureC float64       `json:"apparentTemperatureC"`
	UVIndex              float64       `json:"uvIndex"`
	VisibilityMeters     float64       `json:"visibilityMeters"`
	ObservedAt           time.Time     `json:"observedAt"`
}

// DailyEntry is one day of the forward forecast, starting the day after today.
type DailyEntry struct {
	Date          time.Time           `json:"date"`
	MaxTempC      float64             `json:"maxTempC"`
	MinTempC      float64             `json:"minTempC"`
	Weather       types.Weather       `json:"weather"`
	Precipitation types.Precipitation `json:"precipitation"`
}

// HourlyEntry is one hour of the next-24-hours forecast.
type HourlyEntry struct {
	Time         time.Time     `json:"time"`
	TemperatureC float64       `json:"temperatureC"`
	Weather      types.Weather `json:"weather"`
}

// TodayOverview carries today's sunrise and sunset.
type TodayOverview struct {
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
}

// Forecast is the normalized view of one provider fetch: current conditions,
// the next 24 hours, and the following 7 days.
type Forecast struct {
	Location  types.Location `json:"location"`
	Timezone  string         `json:"timezone"`
	Current   Snapshot       `json:"current"`
	Hourly    []HourlyEntry  `json:"hourly"`
	Daily     []DailyEntry   `json:"daily"`
	Today     TodayOverview  `json:"today"`
	FetchedAt time.Time      `json:"fetchedAt"`
}
