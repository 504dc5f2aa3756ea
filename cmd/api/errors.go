package main

import (
	"errors"
	"net/http"

	"skycast/internal/apperr"
	"skycast/internal/dashboard"
	"skycast/internal/location"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an API error payload
type ErrorResponse struct {
	Error string `json:"error" example:"city parameter is required"` // Error message
}

// respondError maps service errors onto HTTP status codes. Upstream and
// malformed-payload failures are logged in full but surfaced generically so
// provider internals never leak to clients.
func (app *App) respondError(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err),
		errors.Is(err, location.ErrInvalidLatitude),
		errors.Is(err, location.ErrInvalidLongitude):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrNoResults):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no results found"})
	case errors.Is(err, dashboard.ErrSuperseded):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "request superseded by a newer selection"})
	case apperr.IsUpstream(err), apperr.IsMalformed(err):
		app.logger.Error("upstream provider failure", "error", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream provider unavailable"})
	default:
		app.logger.Error("unhandled error", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
