package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"skycast/internal/apperr"
)

// API Docs: https://unsplash.com/documentation#search-photos
// Sample request: https://api.unsplash.com/search/photos?query=Paris+landmark&orientation=landscape&per_page=30&order_by=relevant
const (
	baseSearchURL = "https://api.unsplash.com/search/photos"

	providerName = "unsplash"
)

// Client talks to the photo-search provider. The access credential is held
// here, server side, and never reaches the UI.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
	circuit    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, accessKey string, logger *slog.Logger) *Client {
	// Unsplash rate limits aggressively; the breaker stops hammering it once
	// requests start failing.
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        providerName,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseSearchURL,
		accessKey:  accessKey,
		circuit:    cb,
		logger:     logger.With("component", "unsplash-client"),
	}
}

// SearchPhotos runs one photo search constrained to the given orientation.
func (c *Client) SearchPhotos(ctx context.Context, query, orientation string, perPage int, orderBy string) (*SearchAPIResponse, error) {
	if c.accessKey == "" {
		return nil, apperr.Validation("unsplash access key not configured")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("query", query)
	q.Set("orientation", orientation)
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("order_by", orderBy)
	u.RawQuery = q.Encode()

	c.logger.Debug("searching photos", "query", query, "orientation", orientation)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.httpClient.Do(req)
		if execErr != nil {
			return nil, apperr.Upstream(providerName, 0, execErr)
		}
		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(resp.Body)

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			c.logger.Error("photo search returned error",
				"status_code", resp.StatusCode,
				"orientation", orientation,
				"response_body", string(body),
			)
			return nil, apperr.Upstream(providerName, resp.StatusCode, fmt.Errorf("%s", string(body)))
		}

		var apiResp SearchAPIResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
			return nil, apperr.Malformed(providerName, "failed to decode response: %v", err)
		}
		return &apiResp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, apperr.Upstream(providerName, 0, err)
		}
		return nil, err
	}

	return result.(*SearchAPIResponse), nil
}
