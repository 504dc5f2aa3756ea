package main

import (
	"errors"
	"net/http"
	"strings"

	"skycast/internal/apperr"
	"skycast/internal/photos"

	"github.com/gin-gonic/gin"
)

// photoCacheControl allows shared caches to serve photo lookups for an hour
// and stale copies for a day while revalidating.
const photoCacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

// GetPhotosResponse represents the city photo payload
type GetPhotosResponse struct {
	City       string             `json:"city" example:"Paris"` // City the photos depict
	Best       photos.Candidate   `json:"best"`                 // Highest ranked photo
	IsFallback bool               `json:"isFallback"`           // True when the fixed fallback photo is served
	Candidates []photos.Candidate `json:"candidates,omitempty"` // Full ranked candidate set
}

// handleGetPhotos godoc
// @Summary Get photos for a city
// @Description Search for photos of a city and return the most relevant one first
// @Tags photos
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} GetPhotosResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/photos [get]
func (app *App) handleGetPhotos(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		app.respondError(c, apperr.Validation("city parameter is required"))
		return
	}

	c.Header("Cache-Control", photoCacheControl)

	result, err := app.photoService.CityPhotos(c.Request.Context(), city)
	if err != nil {
		if errors.Is(err, apperr.ErrNoResults) {
			app.respondError(c, err)
			return
		}
		// Provider failures degrade to the fixed fallback photo so the
		// dashboard always has a backdrop.
		app.logger.Warn("photo search failed, serving fallback", "city", city, "error", err)
		c.JSON(http.StatusOK, GetPhotosResponse{
			City:       city,
			Best:       photos.FallbackCandidate(),
			IsFallback: true,
		})
		return
	}

	c.JSON(http.StatusOK, GetPhotosResponse{
		City:       city,
		Best:       result.Best,
		Candidates: result.Candidates,
	})
}
