package main

import (
	"net/http"
	"strings"

	"skycast/internal/apperr"
	"skycast/internal/types"

	"github.com/gin-gonic/gin"
)

// SearchLocationsInput represents the query parameters for location search
type SearchLocationsInput struct {
	Query string `form:"q" example:"Paris"` // Free-text place name
}

// ReverseGeocodeInput represents the query parameters for reverse geocoding
type ReverseGeocodeInput struct {
	Latitude  float64 `form:"latitude" example:"48.8566"` // Latitude in decimal degrees
	Longitude float64 `form:"longitude" example:"2.3522"` // Longitude in decimal degrees
}

// SearchLocationsResponse represents the location search payload
type SearchLocationsResponse struct {
	Results []types.Location `json:"results"` // Matching places, best match first
}

// handleSearchLocations godoc
// @Summary Search for locations by name
// @Description Geocode a free-text place name into candidate locations
// @Tags locations
// @Produce json
// @Param q query string true "Place name to search for"
// @Success 200 {object} SearchLocationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/locations/search [get]
func (app *App) handleSearchLocations(c *gin.Context) {
	var input SearchLocationsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		app.respondError(c, apperr.Validation("invalid query parameters: %v", err))
		return
	}

	if strings.TrimSpace(input.Query) == "" {
		app.respondError(c, apperr.Validation("q parameter is required"))
		return
	}

	results, err := app.locationService.Search(c.Request.Context(), input.Query)
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchLocationsResponse{Results: results})
}

// handleReverseGeocode godoc
// @Summary Resolve coordinates to a place name
// @Description Reverse geocode a latitude/longitude pair into a named location
// @Tags locations
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Success 200 {object} types.Location
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/locations/reverse [get]
func (app *App) handleReverseGeocode(c *gin.Context) {
	// Presence is checked on the raw query values; binding alone cannot
	// distinguish a missing parameter from a legitimate zero coordinate.
	if c.Query("latitude") == "" || c.Query("longitude") == "" {
		app.respondError(c, apperr.Validation("latitude and longitude parameters are required"))
		return
	}

	var input ReverseGeocodeInput
	if err := c.ShouldBindQuery(&input); err != nil {
		app.respondError(c, apperr.Validation("invalid query parameters: %v", err))
		return
	}

	loc, err := app.locationService.Reverse(c.Request.Context(), input.Latitude, input.Longitude)
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loc)
}
