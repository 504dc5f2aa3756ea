package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"skycast/internal/apperr"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=48.85&longitude=2.35&current=temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m,wind_direction_10m,uv_index,visibility&hourly=temperature_2m,weather_code&daily=weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,sunrise,sunset&timezone=auto&forecast_days=8&forecast_hours=24
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"

	providerName = "open-meteo"
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(httpClient *http.Client, logger *slog.Logger) *ForecastClient {
	return &ForecastClient{
		httpClient: httpClient,
		baseURL:    baseForecastURL,
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetForecast fetches current, hourly, and daily forecast data for the given
// coordinates in a single call. timezone is an IANA name or "auto".
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	currentVars := []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"weather_code",
		"wind_speed_10m",
		"wind_direction_10m",
		"uv_index",
		"visibility",
	}

	hourlyVars := []string{
		"temperature_2m",
		"weather_code",
	}

	dailyVars := []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"sunrise",
		"sunset",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", timezone)
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("forecast_hours", "24")
	q.Set("timeformat", "iso8601")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching forecast",
		"latitude", latitude,
		"longitude", longitude,
		"timezone", timezone,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream(providerName, 0, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("forecast request returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, apperr.Upstream(providerName, resp.StatusCode, fmt.Errorf("%s", string(body)))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, apperr.Malformed(providerName, "failed to decode response: %v", err)
	}

	return &apiResp, nil
}
