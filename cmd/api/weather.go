package main

import (
	"net/http"

	"skycast/internal/apperr"
	"skycast/internal/location"
	"skycast/internal/types"

	"github.com/gin-gonic/gin"
)

// GetWeatherInput represents the query parameters for a forecast request
type GetWeatherInput struct {
	Latitude  float64 `form:"latitude" example:"48.8566"`     // Latitude in decimal degrees
	Longitude float64 `form:"longitude" example:"2.3522"`     // Longitude in decimal degrees
	Name      string  `form:"name" example:"Paris"`           // Display name for the place
	Country   string  `form:"country" example:"France"`       // Country of the place
	Region    string  `form:"region" example:"Ile-de-France"` // Administrative region
}

// handleGetWeather godoc
// @Summary Get the forecast for a location
// @Description Fetch current conditions plus hourly and daily outlooks for the given coordinates
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Param name query string false "Display name for the place"
// @Param country query string false "Country of the place"
// @Param region query string false "Administrative region"
// @Success 200 {object} weather.Forecast
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	if c.Query("latitude") == "" || c.Query("longitude") == "" {
		app.respondError(c, apperr.Validation("latitude and longitude parameters are required"))
		return
	}

	var input GetWeatherInput
	if err := c.ShouldBindQuery(&input); err != nil {
		app.respondError(c, apperr.Validation("invalid query parameters: %v", err))
		return
	}

	if err := location.ValidateCoordinates(input.Latitude, input.Longitude); err != nil {
		app.respondError(c, err)
		return
	}

	loc := types.Location{
		Name:        input.Name,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Country:     input.Country,
		AdminRegion: input.Region,
	}

	forecast, err := app.weatherService.GetForecast(c.Request.Context(), loc)
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}
