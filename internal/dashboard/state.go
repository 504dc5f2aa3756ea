package dashboard

import (
	"sync"

	"skycast/internal/photos"
	"skycast/internal/types"
	"skycast/internal/weather"
)

// View is a consistent read of the dashboard: the displayed location with its
// forecast and photo, all from the same fetch generation.
type View struct {
	Generation      uint64            `json:"-"`
	Location        types.Location    `json:"location"`
	Weather         *weather.Forecast `json:"weather,omitempty"`
	Photo           *photos.Candidate `json:"photo,omitempty"`
	PhotoIsFallback bool              `json:"photoIsFallback"`
}

// State is the single "currently displayed location" holder. Every fetch
// cycle gets a generation tag from Begin; results are applied only while
// their generation is still current, so a late response for a previous
// location is discarded silently instead of overwriting a newer selection.
type State struct {
	mu            sync.Mutex
	generation    uint64
	location      types.Location
	hasLocation   bool
	weather       *weather.Forecast
	photo         *photos.Candidate
	photoFallback bool
}

func NewState() *State {
	return &State{}
}

// Begin switches the displayed location, invalidating any previous weather
// and photo in the same step, and returns the new fetch generation.
func (s *State) Begin(loc types.Location) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.location = loc
	s.hasLocation = true
	s.weather = nil
	s.photo = nil
	s.photoFallback = false
	return s.generation
}

// ApplyWeather stores a forecast if generation is still current. Reports
// whether the result was applied.
func (s *State) ApplyWeather(generation uint64, forecast *weather.Forecast) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return false
	}
	s.weather = forecast
	return true
}

// ApplyPhoto stores a photo selection if generation is still current.
// Reports whether the result was applied.
func (s *State) ApplyPhoto(generation uint64, photo photos.Candidate, fallback bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return false
	}
	s.photo = &photo
	s.photoFallback = fallback
	return true
}

// Current returns the displayed view. The second return is false until a
// location has been selected.
func (s *State) Current() (View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasLocation {
		return View{}, false
	}
	return View{
		Generation:      s.generation,
		Location:        s.location,
		Weather:         s.weather,
		Photo:           s.photo,
		PhotoIsFallback: s.photoFallback,
	}, true
}
