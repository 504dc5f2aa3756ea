package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"skycast/internal/apperr"
	"skycast/internal/config"
	"skycast/internal/providers/openmeteo"
	"skycast/internal/types"
)

type mockForecastProvider struct {
	response *openmeteo.ForecastAPIResponse
	err      error

	gotLatitude  float64
	gotLongitude float64
	gotDays      int
	gotTimezone  string
}

func (m *mockForecastProvider) GetForecast(_ context.Context, latitude, longitude float64, forecastDays int, tz string) (*openmeteo.ForecastAPIResponse, error) {
	m.gotLatitude = latitude
	m.gotLongitude = longitude
	m.gotDays = forecastDays
	m.gotTimezone = tz
	return m.response, m.err
}

type mockTimezoneService struct {
	timezone string
	err      error
}

func (m *mockTimezoneService) GetTimezone(_, _ float64) (string, error) {
	return m.timezone, m.err
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{ForecastDays: 8},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// validResponse builds a well-shaped provider payload: 24 hourly entries and
// 8 daily entries (today plus seven forward days), all in UTC.
func validResponse() *openmeteo.ForecastAPIResponse {
	resp := &openmeteo.ForecastAPIResponse{
		Latitude:  48.8566,
		Longitude: 2.3522,
		Timezone:  "UTC",
	}

	resp.Current.Time = "2025-06-01T12:00"
	resp.Current.Temperature2M = 21.5
	resp.Current.RelativeHumidity2M = 55
	resp.Current.ApparentTemperature = 20.1
	resp.Current.WeatherCode = 2
	resp.Current.WindSpeed10M = 14.3
	resp.Current.WindDirection10M = 315
	resp.Current.UvIndex = 5.2
	resp.Current.Visibility = 24000

	for hour := 0; hour < 24; hour++ {
		resp.Hourly.Time = append(resp.Hourly.Time, fmt.Sprintf("2025-06-01T%02d:00", hour))
		resp.Hourly.Temperature2M = append(resp.Hourly.Temperature2M, 15+float64(hour)/4)
		resp.Hourly.WeatherCode = append(resp.Hourly.WeatherCode, 1)
	}

	for day := 1; day <= 8; day++ {
		resp.Daily.Time = append(resp.Daily.Time, fmt.Sprintf("2025-06-%02d", day))
		resp.Daily.WeatherCode = append(resp.Daily.WeatherCode, 3)
		resp.Daily.Temperature2MMax = append(resp.Daily.Temperature2MMax, 22+float64(day))
		resp.Daily.Temperature2MMin = append(resp.Daily.Temperature2MMin, 12+float64(day))
		resp.Daily.PrecipitationSum = append(resp.Daily.PrecipitationSum, float64(day))
		resp.Daily.Sunrise = append(resp.Daily.Sunrise, fmt.Sprintf("2025-06-%02dT05:30", day))
		resp.Daily.Sunset = append(resp.Daily.Sunset, fmt.Sprintf("2025-06-%02dT21:00", day))
	}

	return resp
}

func testLocation() types.Location {
	return types.Location{
		Name:      "Paris",
		Latitude:  48.8566,
		Longitude: 2.3522,
		Country:   "France",
	}
}

func TestGetForecast(t *testing.T) {
	provider := &mockForecastProvider{response: validResponse()}
	tzSvc := &mockTimezoneService{timezone: "UTC"}
	svc := NewWeatherServiceWithProvider(provider, tzSvc, testConfig(), testLogger())

	forecast, err := svc.GetForecast(context.Background(), testLocation())
	if err != nil {
		t.Fatalf("GetForecast returned error: %v", err)
	}

	if provider.gotDays != 8 {
		t.Errorf("provider called with forecastDays = %d, want 8", provider.gotDays)
	}
	if provider.gotTimezone != "UTC" {
		t.Errorf("provider called with timezone = %q, want UTC", provider.gotTimezone)
	}

	if forecast.Location.Name != "Paris" {
		t.Errorf("Location.Name = %q, want Paris", forecast.Location.Name)
	}
	if forecast.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", forecast.Timezone)
	}

	// Current conditions
	current := forecast.Current
	if current.TemperatureC != 21.5 {
		t.Errorf("Current.TemperatureC = %v, want 21.5", current.TemperatureC)
	}
	if current.Weather.Description != "Partly cloudy" {
		t.Errorf("Current.Weather.Description = %q, want Partly cloudy", current.Weather.Description)
	}
	if current.WindDirection != "NW" {
		t.Errorf("Current.WindDirection = %q, want NW", current.WindDirection)
	}
	if current.HumidityPct != 55 {
		t.Errorf("Current.HumidityPct = %d, want 55", current.HumidityPct)
	}
	wantObserved := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if !current.ObservedAt.Equal(wantObserved) {
		t.Errorf("Current.ObservedAt = %v, want %v", current.ObservedAt, wantObserved)
	}

	// Hourly keeps all 24 leading entries
	if len(forecast.Hourly) != 24 {
		t.Fatalf("len(Hourly) = %d, want 24", len(forecast.Hourly))
	}
	if forecast.Hourly[0].TemperatureC != 15 {
		t.Errorf("Hourly[0].TemperatureC = %v, want 15", forecast.Hourly[0].TemperatureC)
	}

	// Daily drops today and keeps the seven forward days
	if len(forecast.Daily) != 7 {
		t.Fatalf("len(Daily) = %d, want 7", len(forecast.Daily))
	}
	wantFirstDate := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	if !forecast.Daily[0].Date.Equal(wantFirstDate) {
		t.Errorf("Daily[0].Date = %v, want %v", forecast.Daily[0].Date, wantFirstDate)
	}
	if forecast.Daily[0].MaxTempC != 24 {
		t.Errorf("Daily[0].MaxTempC = %v, want 24", forecast.Daily[0].MaxTempC)
	}
	if forecast.Daily[0].Precipitation.Mm != 2 {
		t.Errorf("Daily[0].Precipitation.Mm = %v, want 2", forecast.Daily[0].Precipitation.Mm)
	}
	if forecast.Daily[6].MaxTempC != 30 {
		t.Errorf("Daily[6].MaxTempC = %v, want 30", forecast.Daily[6].MaxTempC)
	}

	// Today's overview comes from daily index 0
	wantSunrise := time.Date(2025, 6, 1, 5, 30, 0, 0, time.UTC)
	if !forecast.Today.Sunrise.Equal(wantSunrise) {
		t.Errorf("Today.Sunrise = %v, want %v", forecast.Today.Sunrise, wantSunrise)
	}
}

func TestGetForecast_TimezoneFallback(t *testing.T) {
	provider := &mockForecastProvider{response: validResponse()}
	tzSvc := &mockTimezoneService{err: errors.New("coordinate outside index")}
	svc := NewWeatherServiceWithProvider(provider, tzSvc, testConfig(), testLogger())

	if _, err := svc.GetForecast(context.Background(), testLocation()); err != nil {
		t.Fatalf("GetForecast returned error: %v", err)
	}

	if provider.gotTimezone != "auto" {
		t.Errorf("provider called with timezone = %q, want auto", provider.gotTimezone)
	}
}

func TestGetForecast_ProviderError(t *testing.T) {
	upstream := apperr.Upstream("open-meteo", 503, errors.New("service unavailable"))
	provider := &mockForecastProvider{err: upstream}
	tzSvc := &mockTimezoneService{timezone: "UTC"}
	svc := NewWeatherServiceWithProvider(provider, tzSvc, testConfig(), testLogger())

	_, err := svc.GetForecast(context.Background(), testLocation())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperr.IsUpstream(err) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestGetForecast_MalformedResponses(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*openmeteo.ForecastAPIResponse)
	}{
		{
			name: "short hourly arrays",
			mutate: func(resp *openmeteo.ForecastAPIResponse) {
				resp.Hourly.Time = resp.Hourly.Time[:10]
			},
		},
		{
			name: "short daily arrays",
			mutate: func(resp *openmeteo.ForecastAPIResponse) {
				resp.Daily.Time = resp.Daily.Time[:5]
			},
		},
		{
			name: "missing sunrise",
			mutate: func(resp *openmeteo.ForecastAPIResponse) {
				resp.Daily.Sunrise = nil
			},
		},
		{
			name: "unknown timezone",
			mutate: func(resp *openmeteo.ForecastAPIResponse) {
				resp.Timezone = "Not/AZone"
			},
		},
		{
			name: "unparseable current time",
			mutate: func(resp *openmeteo.ForecastAPIResponse) {
				resp.Current.Time = "noon"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := validResponse()
			tt.mutate(resp)

			provider := &mockForecastProvider{response: resp}
			tzSvc := &mockTimezoneService{timezone: "UTC"}
			svc := NewWeatherServiceWithProvider(provider, tzSvc, testConfig(), testLogger())

			_, err := svc.GetForecast(context.Background(), testLocation())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !apperr.IsMalformed(err) {
				t.Errorf("expected malformed response error, got %v", err)
			}
		})
	}
}
