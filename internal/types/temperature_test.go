package types

import "testing"

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		name     string
		celsius  float64
		expected float64
	}{
		{
			name:     "freezing point",
			celsius:  0,
			expected: 32,
		},
		{
			name:     "boiling point",
			celsius:  100,
			expected: 212,
		},
		{
			name:     "body temperature",
			celsius:  37,
			expected: 98.6,
		},
		{
			name:     "negative forty is the crossover",
			celsius:  -40,
			expected: -40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CelsiusToFahrenheit(tt.celsius)
			if result != tt.expected {
				t.Errorf("CelsiusToFahrenheit(%v) = %v, want %v", tt.celsius, result, tt.expected)
			}
		})
	}
}

func TestConvertTemperature(t *testing.T) {
	// Celsius requests must return the stored value untouched
	if result := ConvertTemperature(21.7, UnitCelsius); result != 21.7 {
		t.Errorf("ConvertTemperature(21.7, C) = %v, want 21.7", result)
	}

	if result := ConvertTemperature(0, UnitFahrenheit); result != 32 {
		t.Errorf("ConvertTemperature(0, F) = %v, want 32", result)
	}
}

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		name     string
		celsius  float64
		unit     TemperatureUnit
		expected string
	}{
		{
			name:     "celsius rounds half up",
			celsius:  21.5,
			unit:     UnitCelsius,
			expected: "22°C",
		},
		{
			name:     "celsius rounds down",
			celsius:  21.4,
			unit:     UnitCelsius,
			expected: "21°C",
		},
		{
			name:     "fahrenheit converts before rounding",
			celsius:  0,
			unit:     UnitFahrenheit,
			expected: "32°F",
		},
		{
			name:     "negative celsius",
			celsius:  -5.2,
			unit:     UnitCelsius,
			expected: "-5°C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatTemperature(tt.celsius, tt.unit)
			if result != tt.expected {
				t.Errorf("FormatTemperature(%v, %s) = %q, want %q", tt.celsius, tt.unit, result, tt.expected)
			}
		})
	}
}
