package types

import "testing"

func TestNewWeather(t *testing.T) {
	tests := []struct {
		name                string
		code                int
		expectedDescription string
		expectedIcon        string
	}{
		{
			name:                "clear sky",
			code:                0,
			expectedDescription: "Clear sky",
			expectedIcon:        "☀️",
		},
		{
			name:                "overcast",
			code:                3,
			expectedDescription: "Overcast",
			expectedIcon:        "☁️",
		},
		{
			name:                "heavy thunderstorm",
			code:                99,
			expectedDescription: "Thunderstorm with heavy hail",
			expectedIcon:        "⛈️",
		},
		{
			name:                "unknown code fails soft",
			code:                42,
			expectedDescription: "Unknown conditions",
			expectedIcon:        "🌡️",
		},
		{
			name:                "negative code fails soft",
			code:                -1,
			expectedDescription: "Unknown conditions",
			expectedIcon:        "🌡️",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weather := NewWeather(tt.code)

			if weather.Code != tt.code {
				t.Errorf("NewWeather(%d).Code = %d, want %d", tt.code, weather.Code, tt.code)
			}
			if weather.Description != tt.expectedDescription {
				t.Errorf("NewWeather(%d).Description = %q, want %q", tt.code, weather.Description, tt.expectedDescription)
			}
			if weather.Icon != tt.expectedIcon {
				t.Errorf("NewWeather(%d).Icon = %q, want %q", tt.code, weather.Icon, tt.expectedIcon)
			}
		})
	}
}

func TestGetWeatherDescription(t *testing.T) {
	if got := GetWeatherDescription(45); got != "Fog" {
		t.Errorf("GetWeatherDescription(45) = %q, want %q", got, "Fog")
	}
	if got := GetWeatherDescription(1000); got != "Unknown conditions" {
		t.Errorf("GetWeatherDescription(1000) = %q, want %q", got, "Unknown conditions")
	}
}

func TestGetWeatherIcon(t *testing.T) {
	if got := GetWeatherIcon(75); got != "❄️" {
		t.Errorf("GetWeatherIcon(75) = %q, want %q", got, "❄️")
	}
	if got := GetWeatherIcon(1000); got != "🌡️" {
		t.Errorf("GetWeatherIcon(1000) = %q, want %q", got, "🌡️")
	}
}
