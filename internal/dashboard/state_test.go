package dashboard

import (
	"testing"

	"skycast/internal/photos"
	"skycast/internal/types"
	"skycast/internal/weather"
)

func parisLocation() types.Location {
	return types.Location{Name: "Paris", Latitude: 48.8566, Longitude: 2.3522}
}

func lyonLocation() types.Location {
	return types.Location{Name: "Lyon", Latitude: 45.764, Longitude: 4.8357}
}

func TestState_EmptyUntilFirstSelection(t *testing.T) {
	state := NewState()

	if _, ok := state.Current(); ok {
		t.Error("Current() reported a view before any selection")
	}
}

func TestState_BeginClearsPreviousResults(t *testing.T) {
	state := NewState()

	gen := state.Begin(parisLocation())
	if !state.ApplyWeather(gen, &weather.Forecast{Timezone: "Europe/Paris"}) {
		t.Fatal("ApplyWeather rejected a current-generation result")
	}
	if !state.ApplyPhoto(gen, photos.Candidate{ID: "p1"}, false) {
		t.Fatal("ApplyPhoto rejected a current-generation result")
	}

	state.Begin(lyonLocation())

	view, ok := state.Current()
	if !ok {
		t.Fatal("Current() reported no view after selection")
	}
	if view.Location.Name != "Lyon" {
		t.Errorf("Location.Name = %q, want Lyon", view.Location.Name)
	}
	if view.Weather != nil {
		t.Error("previous forecast survived a new selection")
	}
	if view.Photo != nil {
		t.Error("previous photo survived a new selection")
	}
}

func TestState_StaleResultsDiscarded(t *testing.T) {
	state := NewState()

	// A slow fetch for Paris still holds this generation
	staleGen := state.Begin(parisLocation())

	// The user switches to Lyon before Paris finishes
	freshGen := state.Begin(lyonLocation())

	if state.ApplyWeather(staleGen, &weather.Forecast{Timezone: "Europe/Paris"}) {
		t.Error("ApplyWeather accepted a stale-generation forecast")
	}
	if state.ApplyPhoto(staleGen, photos.Candidate{ID: "paris-photo"}, false) {
		t.Error("ApplyPhoto accepted a stale-generation photo")
	}

	if !state.ApplyWeather(freshGen, &weather.Forecast{Timezone: "Europe/Paris"}) {
		t.Error("ApplyWeather rejected the fresh generation")
	}

	view, ok := state.Current()
	if !ok {
		t.Fatal("Current() reported no view")
	}
	if view.Location.Name != "Lyon" {
		t.Errorf("Location.Name = %q, want Lyon", view.Location.Name)
	}
	if view.Photo != nil {
		t.Error("stale photo leaked into the current view")
	}
}

func TestState_GenerationsIncrease(t *testing.T) {
	state := NewState()

	first := state.Begin(parisLocation())
	second := state.Begin(lyonLocation())
	if second <= first {
		t.Errorf("generations must increase: got %d then %d", first, second)
	}
}
