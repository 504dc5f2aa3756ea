package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"skycast/internal/apperr"
	"skycast/internal/config"
	"skycast/internal/providers/openmeteo"
	"skycast/internal/providers/openstreetmap"
	"skycast/internal/types"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// maxSearchResults caps how many geocoding matches a text search returns.
const maxSearchResults = 5

// Service resolves user input to Locations: free-text search via the
// geocoding provider, device coordinates via reverse geocoding.
type Service interface {
	Search(ctx context.Context, query string) ([]types.Location, error)
	Reverse(ctx context.Context, latitude, longitude float64) (types.Location, error)
}

// GeocodingProvider defines the interface for forward geocoding providers
type GeocodingProvider interface {
	Search(ctx context.Context, name string, count int) (*openmeteo.GeocodingAPIResponse, error)
}

// ReverseGeocodeProvider defines the interface for reverse geocoding providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.ReverseAPIResponse, error)
}

type locationService struct {
	geocodingProvider GeocodingProvider
	reverseProvider   ReverseGeocodeProvider
	logger            *slog.Logger
}

// NewLocationService creates a new location service with real provider clients
func NewLocationService(cfg *config.Config, logger *slog.Logger) Service {
	httpClient := cfg.NewHTTPClient()
	return NewLocationServiceWithProviders(
		openmeteo.NewGeocodingClient(httpClient, logger),
		openstreetmap.NewClient(httpClient, logger),
		logger,
	)
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	geocodingProvider GeocodingProvider,
	reverseProvider ReverseGeocodeProvider,
	logger *slog.Logger,
) Service {
	return &locationService{
		geocodingProvider: geocodingProvider,
		reverseProvider:   reverseProvider,
		logger:            logger.With("component", "location-service"),
	}
}

// ValidateCoordinates checks that a coordinate pair is on the globe.
func ValidateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return ErrInvalidLatitude
	}
	if longitude < -180 || longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

func (s *locationService) Search(ctx context.Context, query string) ([]types.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Validation("search query must not be empty")
	}

	resp, err := s.geocodingProvider.Search(ctx, query, maxSearchResults)
	if err != nil {
		s.logger.Error("geocoding search failed", "query", query, "error", err)
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}

	if len(resp.Results) == 0 {
		return nil, apperr.ErrNoResults
	}

	locations := make([]types.Location, 0, len(resp.Results))
	for _, result := range resp.Results {
		locations = append(locations, types.Location{
			Name:        result.Name,
			Latitude:    result.Latitude,
			Longitude:   result.Longitude,
			Country:     result.Country,
			AdminRegion: result.Admin1,
		})
	}
	return locations, nil
}

func (s *locationService) Reverse(ctx context.Context, latitude, longitude float64) (types.Location, error) {
	if err := ValidateCoordinates(latitude, longitude); err != nil {
		return types.Location{}, err
	}

	resp, err := s.reverseProvider.Lookup(ctx, latitude, longitude)
	if err != nil {
		s.logger.Error("reverse geocoding failed",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return types.Location{}, fmt.Errorf("failed to reverse geocode: %w", err)
	}

	return types.Location{
		Name:        placeName(resp),
		Latitude:    latitude,
		Longitude:   longitude,
		Country:     resp.Address.Country,
		AdminRegion: adminRegion(resp),
	}, nil
}

// placeName picks the most specific settlement name the response offers.
func placeName(resp *openstreetmap.ReverseAPIResponse) string {
	addr := resp.Address
	for _, candidate := range []string{addr.City, addr.Town, addr.Village, addr.County} {
		if candidate != "" {
			return candidate
		}
	}
	if resp.Name != "" {
		return resp.Name
	}
	return "Unknown location"
}

func adminRegion(resp *openstreetmap.ReverseAPIResponse) string {
	if resp.Address.State != "" {
		return resp.Address.State
	}
	return resp.Address.Region
}
