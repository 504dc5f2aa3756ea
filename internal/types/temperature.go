package types

import (
	"fmt"
	"math"
)

// TemperatureUnit selects the display unit for temperature readings.
type TemperatureUnit string

const (
	UnitCelsius    TemperatureUnit = "C"
	UnitFahrenheit TemperatureUnit = "F"
)

// CelsiusToFahrenheit converts a Celsius reading to Fahrenheit.
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// ConvertTemperature converts a stored Celsius value to the requested display
// unit. Identity when unit is Celsius. Pure and total.
func ConvertTemperature(celsius float64, unit TemperatureUnit) float64 {
	if unit == UnitFahrenheit {
		return CelsiusToFahrenheit(celsius)
	}
	return celsius
}

// FormatTemperature renders a Celsius value in the requested unit, rounded to
// the nearest integer. Rounding happens only here, never in stored values.
func FormatTemperature(celsius float64, unit TemperatureUnit) string {
	converted := ConvertTemperature(celsius, unit)
	return fmt.Sprintf("%d°%s", int(math.Round(converted)), unit)
}
