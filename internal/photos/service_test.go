package photos

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"skycast/internal/apperr"
	"skycast/internal/config"
	"skycast/internal/providers/unsplash"
)

type mockSearchProvider struct {
	mu        sync.Mutex
	responses map[string]*unsplash.SearchAPIResponse
	errs      map[string]error
	calls     int

	gotQuery string
	gotPer   int
	gotOrder string
}

func (m *mockSearchProvider) SearchPhotos(_ context.Context, query, orientation string, perPage int, orderBy string) (*unsplash.SearchAPIResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.gotQuery = query
	m.gotPer = perPage
	m.gotOrder = orderBy
	if err := m.errs[orientation]; err != nil {
		return nil, err
	}
	resp := m.responses[orientation]
	if resp == nil {
		resp = &unsplash.SearchAPIResponse{}
	}
	return resp, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		App: config.AppConfig{PhotoCacheTTL: ttl},
	}
}

func photoWithID(id string) unsplash.Photo {
	var p unsplash.Photo
	p.ID = id
	return p
}

func TestCityPhotos(t *testing.T) {
	provider := &mockSearchProvider{
		responses: map[string]*unsplash.SearchAPIResponse{
			"landscape": {
				Results: []unsplash.Photo{photoWithID("l1"), photoWithID("l2")},
				Total:   40,
			},
			"portrait": {
				Results: []unsplash.Photo{photoWithID("p1")},
				Total:   12,
			},
		},
	}
	svc := NewPhotoServiceWithProvider(provider, testConfig(0), testLogger())

	result, err := svc.CityPhotos(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("CityPhotos returned error: %v", err)
	}

	if provider.gotQuery != "Paris landmark iconic famous architecture monument" {
		t.Errorf("query = %q, want the city with the search suffix", provider.gotQuery)
	}
	if provider.gotPer != 30 {
		t.Errorf("perPage = %d, want 30", provider.gotPer)
	}
	if provider.gotOrder != "relevant" {
		t.Errorf("orderBy = %q, want relevant", provider.gotOrder)
	}

	// Landscape results come first so ties break in their favor
	if len(result.Candidates) != 3 {
		t.Fatalf("len(Candidates) = %d, want 3", len(result.Candidates))
	}
	wantOrder := []string{"l1", "l2", "p1"}
	for i, want := range wantOrder {
		if result.Candidates[i].ID != want {
			t.Errorf("Candidates[%d].ID = %q, want %q", i, result.Candidates[i].ID, want)
		}
	}

	if result.Total != 52 {
		t.Errorf("Total = %d, want 52", result.Total)
	}
	if result.Best.ID != "l1" {
		t.Errorf("Best.ID = %q, want the first candidate on an all-tie pool", result.Best.ID)
	}
}

func TestCityPhotos_EmptyCity(t *testing.T) {
	svc := NewPhotoServiceWithProvider(&mockSearchProvider{}, testConfig(0), testLogger())

	_, err := svc.CityPhotos(context.Background(), "")
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCityPhotos_EitherOrientationFailing(t *testing.T) {
	tests := []struct {
		name        string
		orientation string
	}{
		{name: "landscape fails", orientation: "landscape"},
		{name: "portrait fails", orientation: "portrait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockSearchProvider{
				responses: map[string]*unsplash.SearchAPIResponse{
					"landscape": {Results: []unsplash.Photo{photoWithID("l1")}},
					"portrait":  {Results: []unsplash.Photo{photoWithID("p1")}},
				},
				errs: map[string]error{
					tt.orientation: apperr.Upstream("unsplash", 500, errors.New("boom")),
				},
			}
			svc := NewPhotoServiceWithProvider(provider, testConfig(0), testLogger())

			_, err := svc.CityPhotos(context.Background(), "Paris")
			if !apperr.IsUpstream(err) {
				t.Errorf("expected upstream error, got %v", err)
			}
		})
	}
}

func TestCityPhotos_NoResults(t *testing.T) {
	svc := NewPhotoServiceWithProvider(&mockSearchProvider{}, testConfig(0), testLogger())

	_, err := svc.CityPhotos(context.Background(), "Xyzzyville")
	if !errors.Is(err, apperr.ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", err)
	}
}

func TestCityPhotos_CachesResults(t *testing.T) {
	provider := &mockSearchProvider{
		responses: map[string]*unsplash.SearchAPIResponse{
			"landscape": {Results: []unsplash.Photo{photoWithID("l1")}},
		},
	}
	svc := NewPhotoServiceWithProvider(provider, testConfig(time.Minute), testLogger())

	if _, err := svc.CityPhotos(context.Background(), "Paris"); err != nil {
		t.Fatalf("first call returned error: %v", err)
	}
	if provider.calls != 2 {
		t.Fatalf("first call made %d provider requests, want 2", provider.calls)
	}

	// Same city, different casing: served from cache
	if _, err := svc.CityPhotos(context.Background(), "  paris "); err != nil {
		t.Fatalf("second call returned error: %v", err)
	}
	if provider.calls != 2 {
		t.Errorf("second call made %d extra provider requests, want 0", provider.calls-2)
	}
}

func TestBestPhoto_FallbackOnFailure(t *testing.T) {
	provider := &mockSearchProvider{
		errs: map[string]error{
			"landscape": apperr.Upstream("unsplash", 503, errors.New("down")),
			"portrait":  apperr.Upstream("unsplash", 503, errors.New("down")),
		},
	}
	svc := NewPhotoServiceWithProvider(provider, testConfig(0), testLogger())

	photo, isFallback := svc.BestPhoto(context.Background(), "Paris")
	if !isFallback {
		t.Error("expected fallback photo on provider failure")
	}
	if photo.ID != fallbackPhotoID {
		t.Errorf("photo.ID = %q, want %q", photo.ID, fallbackPhotoID)
	}
	if photo.URLs.Regular == "" {
		t.Error("fallback photo must carry a usable URL")
	}
}

func TestBestPhoto_Success(t *testing.T) {
	provider := &mockSearchProvider{
		responses: map[string]*unsplash.SearchAPIResponse{
			"landscape": {Results: []unsplash.Photo{photoWithID("l1")}},
		},
	}
	svc := NewPhotoServiceWithProvider(provider, testConfig(0), testLogger())

	photo, isFallback := svc.BestPhoto(context.Background(), "Paris")
	if isFallback {
		t.Error("unexpected fallback on a successful search")
	}
	if photo.ID != "l1" {
		t.Errorf("photo.ID = %q, want l1", photo.ID)
	}
}
