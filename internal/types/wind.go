package types

import (
	"fmt"
	"math"
)

// UnitSystem selects the display system for speeds and amounts.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

const KmhToMph = 0.621371

// ConvertWindSpeed converts a stored km/h value to the requested display
// system. Identity when system is metric. Pure and total.
func ConvertWindSpeed(kmh float64, system UnitSystem) float64 {
	if system == UnitImperial {
		return kmh * KmhToMph
	}
	return kmh
}

// WindSpeedUnit returns the display unit label for the given system.
func WindSpeedUnit(system UnitSystem) string {
	if system == UnitImperial {
		return "mph"
	}
	return "km/h"
}

// FormatWindSpeed renders a km/h value in the requested system, rounded to the
// nearest integer for display.
func FormatWindSpeed(kmh float64, system UnitSystem) string {
	converted := ConvertWindSpeed(kmh, system)
	return fmt.Sprintf("%d %s", int(math.Round(converted)), WindSpeedUnit(system))
}

var cardinalDirections = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// CardinalDirection maps a direction in degrees (0-360, 0 = north) to one of
// sixteen compass points.
func CardinalDirection(degrees float64) string {
	index := int((degrees/22.5)+.5) % 16 // .5 for rounding
	if index < 0 {
		index += 16
	}
	return cardinalDirections[index]
}
