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

	"skycast/internal/apperr"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Paris&count=5&language=en&format=json
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

	geocodingProviderName = "open-meteo-geocoding"
)

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewGeocodingClient(httpClient *http.Client, logger *slog.Logger) *GeocodingClient {
	return &GeocodingClient{
		httpClient: httpClient,
		baseURL:    baseGeocodingURL,
		logger:     logger.With("component", "openmeteo-geocoding-client"),
	}
}

// Search looks up places matching name, returning at most count results
// ordered by relevance.
func (c *GeocodingClient) Search(ctx context.Context, name string, count int) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", "en")
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	c.logger.Debug("searching locations", "name", name, "count", count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream(geocodingProviderName, 0, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("geocoding request returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, apperr.Upstream(geocodingProviderName, resp.StatusCode, fmt.Errorf("%s", string(body)))
	}

	var apiResp GeocodingAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, apperr.Malformed(geocodingProviderName, "failed to decode response: %v", err)
	}

	return &apiResp, nil
}
