package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"skycast/internal/photos"
	"skycast/internal/types"
	"skycast/internal/weather"
)

// ErrSuperseded is returned when a newer location selection landed while this
// one's fetches were still in flight.
var ErrSuperseded = errors.New("selection superseded by a newer request")

// WeatherFetcher defines the forecast dependency of the dashboard.
type WeatherFetcher interface {
	GetForecast(ctx context.Context, loc types.Location) (*weather.Forecast, error)
}

// PhotoSelector defines the photo dependency of the dashboard.
type PhotoSelector interface {
	BestPhoto(ctx context.Context, city string) (photos.Candidate, bool)
}

// Service coordinates the per-location fetch cycle: it tags the cycle with a
// generation, runs the weather and photo fetches concurrently, and applies
// their results only while the location is still the selected one.
type Service struct {
	state   *State
	weather WeatherFetcher
	photos  PhotoSelector
	logger  *slog.Logger
}

func NewService(state *State, weatherFetcher WeatherFetcher, photoSelector PhotoSelector, logger *slog.Logger) *Service {
	return &Service{
		state:   state,
		weather: weatherFetcher,
		photos:  photoSelector,
		logger:  logger.With("component", "dashboard-service"),
	}
}

// Select switches the dashboard to loc and fetches its forecast and photo.
// A photo failure degrades to the fixed fallback inside the photo service; a
// weather failure is this request's error. Results of a superseded cycle are
// discarded and ErrSuperseded is returned.
func (s *Service) Select(ctx context.Context, loc types.Location) (View, error) {
	generation := s.state.Begin(loc)

	var (
		wg            sync.WaitGroup
		forecast      *weather.Forecast
		weatherErr    error
		photo         photos.Candidate
		photoFallback bool
	)

	// The two fetches are independent; run them together.
	wg.Add(2)

	go func() {
		defer wg.Done()
		forecast, weatherErr = s.weather.GetForecast(ctx, loc)
	}()

	go func() {
		defer wg.Done()
		photo, photoFallback = s.photos.BestPhoto(ctx, loc.Name)
	}()

	wg.Wait()

	if !s.state.ApplyPhoto(generation, photo, photoFallback) {
		return View{}, ErrSuperseded
	}

	if weatherErr != nil {
		s.logger.Error("weather fetch failed for selection",
			"name", loc.Name,
			"latitude", loc.Latitude,
			"longitude", loc.Longitude,
			"error", weatherErr,
		)
		return View{}, fmt.Errorf("failed to load weather: %w", weatherErr)
	}

	if !s.state.ApplyWeather(generation, forecast) {
		return View{}, ErrSuperseded
	}

	view, ok := s.state.Current()
	if !ok || view.Generation != generation {
		return View{}, ErrSuperseded
	}
	return view, nil
}

// Current returns the displayed view, if any location has been selected.
func (s *Service) Current() (View, bool) {
	return s.state.Current()
}
