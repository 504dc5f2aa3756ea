package photos

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"skycast/internal/apperr"
	"skycast/internal/config"
	"skycast/internal/providers/unsplash"
)

const (
	// searchQuerySuffix steers the search toward recognizable city imagery.
	searchQuerySuffix = "landmark iconic famous architecture monument"

	perPage = 30
	orderBy = "relevant"

	orientationLandscape = "landscape"
	orientationPortrait  = "portrait"
)

// SearchProvider defines the interface for photo search providers
type SearchProvider interface {
	SearchPhotos(ctx context.Context, query, orientation string, perPage int, orderBy string) (*unsplash.SearchAPIResponse, error)
}

// Service fetches, merges, and ranks photo candidates for a city.
type Service interface {
	// CityPhotos returns the merged candidate set and the ranked best photo.
	CityPhotos(ctx context.Context, city string) (*Result, error)
	// BestPhoto returns the ranked best photo, degrading to the fixed
	// fallback on any pipeline failure. The bool reports fallback use.
	BestPhoto(ctx context.Context, city string) (Candidate, bool)
}

type photoService struct {
	provider SearchProvider
	cache    *candidateCache
	logger   *slog.Logger
}

// NewPhotoService creates a photo service backed by the real search provider.
func NewPhotoService(cfg *config.Config, logger *slog.Logger) Service {
	provider := unsplash.NewClient(cfg.NewHTTPClient(), cfg.Providers.UnsplashAccessKey, logger)
	return NewPhotoServiceWithProvider(provider, cfg, logger)
}

// NewPhotoServiceWithProvider creates a photo service with a custom provider.
// This is useful for testing with mock providers.
func NewPhotoServiceWithProvider(provider SearchProvider, cfg *config.Config, logger *slog.Logger) Service {
	return &photoService{
		provider: provider,
		cache:    newCandidateCache(cfg.App.PhotoCacheTTL),
		logger:   logger.With("component", "photo-service"),
	}
}

func (s *photoService) CityPhotos(ctx context.Context, city string) (*Result, error) {
	if city == "" {
		return nil, apperr.Validation("city must not be empty")
	}

	if cached, ok := s.cache.get(city); ok {
		return cached, nil
	}

	query := city + " " + searchQuerySuffix

	var (
		wg            sync.WaitGroup
		landscapeResp *unsplash.SearchAPIResponse
		portraitResp  *unsplash.SearchAPIResponse
		landscapeErr  error
		portraitErr   error
	)

	// Launch both orientation searches in parallel
	wg.Add(2)

	go func() {
		defer wg.Done()
		landscapeResp, landscapeErr = s.provider.SearchPhotos(ctx, query, orientationLandscape, perPage, orderBy)
	}()

	go func() {
		defer wg.Done()
		portraitResp, portraitErr = s.provider.SearchPhotos(ctx, query, orientationPortrait, perPage, orderBy)
	}()

	wg.Wait()

	// Either search failing fails the whole fetch.
	if landscapeErr != nil {
		return nil, fmt.Errorf("landscape search failed: %w", landscapeErr)
	}
	if portraitErr != nil {
		return nil, fmt.Errorf("portrait search failed: %w", portraitErr)
	}

	// Merge landscape-first; the ranker's tie-breaking depends on this order.
	merged := make([]Candidate, 0, len(landscapeResp.Results)+len(portraitResp.Results))
	for _, photo := range landscapeResp.Results {
		merged = append(merged, newCandidate(photo))
	}
	for _, photo := range portraitResp.Results {
		merged = append(merged, newCandidate(photo))
	}

	if len(merged) == 0 {
		return nil, apperr.ErrNoResults
	}

	result := &Result{
		City:       city,
		Candidates: merged,
		Total:      landscapeResp.Total + portraitResp.Total,
		Best:       SelectBest(merged, city),
	}
	s.cache.set(city, result)
	return result, nil
}

func (s *photoService) BestPhoto(ctx context.Context, city string) (Candidate, bool) {
	result, err := s.CityPhotos(ctx, city)
	if err != nil {
		s.logger.Warn("photo pipeline failed, using fallback", "city", city, "error", err)
		return FallbackCandidate(), true
	}
	return result.Best, false
}
