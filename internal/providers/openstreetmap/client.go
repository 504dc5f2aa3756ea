package openstreetmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"skycast/internal/apperr"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=48.85&lon=2.35&format=json&zoom=10&addressdetails=1
const (
	baseReverseURL = "https://nominatim.openstreetmap.org/reverse"

	providerName = "nominatim"

	// Nominatim's usage policy requires an identifying User-Agent.
	userAgent = "skycast/1.0"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseReverseURL,
		logger:     logger.With("component", "openstreetmap-client"),
	}
}

// Lookup reverse-geocodes the given coordinates to address components.
// zoom=10 trades street-level detail for city-level results.
func (c *Client) Lookup(ctx context.Context, latitude, longitude float64) (*ReverseAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")
	q.Set("zoom", "10")
	q.Set("addressdetails", "1")
	u.RawQuery = q.Encode()

	c.logger.Debug("reverse geocoding", "latitude", latitude, "longitude", longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream(providerName, 0, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("reverse geocoding request returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, apperr.Upstream(providerName, resp.StatusCode, fmt.Errorf("%s", string(body)))
	}

	var apiResp ReverseAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, apperr.Malformed(providerName, "failed to decode response: %v", err)
	}

	return &apiResp, nil
}
