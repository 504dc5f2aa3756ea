package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"skycast/internal/apperr"
	"skycast/internal/config"
	"skycast/internal/providers/openmeteo"
	"skycast/internal/timezone"
	"skycast/internal/types"
)

const (
	// hourlyHours is how many leading hourly entries the normalized model keeps.
	hourlyHours = 24
	// dailyDays is how many forward days the normalized model keeps. The
	// provider's daily index 0 is today, redundant with current conditions,
	// and gets dropped.
	dailyDays = 7
)

const (
	hourlyTimeLayout = "2006-01-02T15:04"
	dailyTimeLayout  = "2006-01-02"
)

type ForecastProvider interface {
	// GetForecast fetches current, hourly, and daily data for the given
	// coordinates in one call
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, tz string) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	GetForecast(ctx context.Context, loc types.Location) (*Forecast, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	cfg              *config.Config
	logger           *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	provider := openmeteo.NewForecastClient(cfg.NewHTTPClient(), logger)
	return NewWeatherServiceWithProvider(provider, tzSvc, cfg, logger), nil
}

func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		cfg:              cfg,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetForecast(ctx context.Context, loc types.Location) (*Forecast, error) {
	// Resolve the timezone locally; the provider accepts "auto" when we can't.
	tz, err := s.timezoneService.GetTimezone(loc.Latitude, loc.Longitude)
	if err != nil {
		s.logger.Warn("falling back to provider timezone detection",
			"latitude", loc.Latitude,
			"longitude", loc.Longitude,
			"error", err,
		)
		tz = "auto"
	}

	apiResponse, err := s.forecastProvider.GetForecast(ctx, loc.Latitude, loc.Longitude, s.cfg.App.ForecastDays, tz)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"latitude", loc.Latitude,
			"longitude", loc.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return mapForecastAPIResponse(loc, apiResponse)
}

// mapForecastAPIResponse reshapes the provider's parallel arrays into the
// normalized model: daily indices 1..7, hourly indices 0..23.
func mapForecastAPIResponse(loc types.Location, apiResponse *openmeteo.ForecastAPIResponse) (*Forecast, error) {
	if err := validateResponseShape(apiResponse); err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(apiResponse.Timezone)
	if err != nil {
		return nil, apperr.Malformed("open-meteo", "unknown timezone %q", apiResponse.Timezone)
	}

	observedAt, err := time.ParseInLocation(hourlyTimeLayout, apiResponse.Current.Time, location)
	if err != nil {
		return nil, apperr.Malformed("open-meteo", "unparseable current time %q", apiResponse.Current.Time)
	}

	current := Snapshot{
		TemperatureC:         apiResponse.Current.Temperature2M,
		Weather:              types.NewWeather(apiResponse.Current.WeatherCode),
		WindSpeedKmh:         apiResponse.Current.WindSpeed10M,
		WindDirectionDeg:     apiResponse.Current.WindDirection10M,
		WindDirection:        types.CardinalDirection(apiResponse.Current.WindDirection10M),
		HumidityPct:          apiResponse.Current.RelativeHumidity2M,
		ApparentTemperatureC: apiResponse.Current.ApparentTemperature,
		UVIndex:              apiResponse.Current.UvIndex,
		VisibilityMeters:     apiResponse.Current.Visibility,
		ObservedAt:           observedAt,
	}

	hourly := make([]HourlyEntry, 0, hourlyHours)
	for i := 0; i < hourlyHours; i++ {
		entryTime, err := time.ParseInLocation(hourlyTimeLayout, apiResponse.Hourly.Time[i], location)
		if err != nil {
			return nil, apperr.Malformed("open-meteo", "unparseable hourly time %q", apiResponse.Hourly.Time[i])
		}
		hourly = append(hourly, HourlyEntry{
			Time:         entryTime,
			TemperatureC: apiResponse.Hourly.Temperature2M[i],
			Weather:      types.NewWeather(apiResponse.Hourly.WeatherCode[i]),
		})
	}

	// Daily index 0 is today; keep 1..7.
	daily := make([]DailyEntry, 0, dailyDays)
	for i := 1; i <= dailyDays; i++ {
		date, err := time.ParseInLocation(dailyTimeLayout, apiResponse.Daily.Time[i], location)
		if err != nil {
			return nil, apperr.Malformed("open-meteo", "unparseable daily date %q", apiResponse.Daily.Time[i])
		}
		daily = append(daily, DailyEntry{
			Date:            date,
			MaxTempC:        apiResponse.Daily.Temperature2MMax[i],
			MinTempC:        apiResponse.Daily.Temperature2MMin[i],
			Weather:         types.NewWeather(apiResponse.Daily.WeatherCode[i]),
			Precipitation: types.NewPrecipitationFromMm(apiResponse.Daily.PrecipitationSum[i]),
		})
	}

	today, err := mapTodayOverview(apiResponse, location)
	if err != nil {
		return nil, err
	}

	return &Forecast{
		Location:  loc,
		Timezone:  apiResponse.Timezone,
		Current:   current,
		Hourly:    hourly,
		Daily:     daily,
		Today:     today,
		FetchedAt: time.Now().UTC(),
	}, nil
}

func mapTodayOverview(apiResponse *openmeteo.ForecastAPIResponse, location *time.Location) (TodayOverview, error) {
	sunrise, err := time.ParseInLocation(hourlyTimeLayout, apiResponse.Daily.Sunrise[0], location)
	if err != nil {
		return TodayOverview{}, apperr.Malformed("open-meteo", "unparseable sunrise %q", apiResponse.Daily.Sunrise[0])
	}
	sunset, err := time.ParseInLocation(hourlyTimeLayout, apiResponse.Daily.Sunset[0], location)
	if err != nil {
		return TodayOverview{}, apperr.Malformed("open-meteo", "unparseable sunset %q", apiResponse.Daily.Sunset[0])
	}
	return TodayOverview{Sunrise: sunrise, Sunset: sunset}, nil
}

// validateResponseShape checks every array the normalizer indexes into.
func validateResponseShape(apiResponse *openmeteo.ForecastAPIResponse) error {
	if apiResponse == nil {
		return apperr.Malformed("open-meteo", "empty response")
	}

	hourly := apiResponse.Hourly
	if len(hourly.Time) < hourlyHours || len(hourly.Temperature2M) < hourlyHours || len(hourly.WeatherCode) < hourlyHours {
		return apperr.Malformed("open-meteo", "hourly arrays shorter than %d entries", hourlyHours)
	}

	daily := apiResponse.Daily
	wantDaily := dailyDays + 1 // today plus seven forward days
	if len(daily.Time) < wantDaily ||
		len(daily.WeatherCode) < wantDaily ||
		len(daily.Temperature2MMax) < wantDaily ||
		len(daily.Temperature2MMin) < wantDaily ||
		len(daily.PrecipitationSum) < wantDaily {
		return apperr.Malformed("open-meteo", "daily arrays shorter than %d entries", wantDaily)
	}
	if len(daily.Sunrise) < 1 || len(daily.Sunset) < 1 {
		return apperr.Malformed("open-meteo", "daily sunrise/sunset missing")
	}

	return nil
}
