package main

import (
	"net/http"

	"skycast/internal/apperr"
	"skycast/internal/dashboard"
	"skycast/internal/location"
	"skycast/internal/types"

	"github.com/gin-gonic/gin"
)

// SelectDashboardInput represents the query parameters for a dashboard selection
type SelectDashboardInput struct {
	Latitude  float64 `form:"latitude" example:"48.8566"` // Latitude in decimal degrees
	Longitude float64 `form:"longitude" example:"2.3522"` // Longitude in decimal degrees
	Name      string  `form:"name" example:"Paris"`       // Display name for the place
	Country   string  `form:"country" example:"France"`   // Country of the place
	Unit      string  `form:"unit" example:"C"`           // Temperature unit, C or F
	System    string  `form:"system" example:"metric"`    // Unit system, metric or imperial
}

// DashboardDisplay carries the current readings formatted for presentation
// in the requested units.
type DashboardDisplay struct {
	Temperature         string `json:"temperature" example:"21°C"`         // Rounded current temperature
	ApparentTemperature string `json:"apparentTemperature" example:"19°C"` // Rounded feels-like temperature
	WindSpeed           string `json:"windSpeed" example:"14 km/h"`        // Rounded wind speed with unit
	WindDirection       string `json:"windDirection" example:"NW"`         // Sixteen-point compass direction
}

// DashboardResponse represents the dashboard payload
type DashboardResponse struct {
	View    dashboard.View    `json:"view"`              // Location, forecast, and photo of the selection
	Display *DashboardDisplay `json:"display,omitempty"` // Formatted current readings
}

func displayUnits(c *gin.Context) (types.TemperatureUnit, types.UnitSystem, error) {
	unit := types.TemperatureUnit(c.DefaultQuery("unit", string(types.UnitCelsius)))
	if unit != types.UnitCelsius && unit != types.UnitFahrenheit {
		return "", "", apperr.Validation("unit must be C or F")
	}

	system := types.UnitSystem(c.DefaultQuery("system", string(types.UnitMetric)))
	if system != types.UnitMetric && system != types.UnitImperial {
		return "", "", apperr.Validation("system must be metric or imperial")
	}
	return unit, system, nil
}

func buildDisplay(view dashboard.View, unit types.TemperatureUnit, system types.UnitSystem) *DashboardDisplay {
	if view.Weather == nil {
		return nil
	}
	current := view.Weather.Current
	return &DashboardDisplay{
		Temperature:         types.FormatTemperature(current.TemperatureC, unit),
		ApparentTemperature: types.FormatTemperature(current.ApparentTemperatureC, unit),
		WindSpeed:           types.FormatWindSpeed(current.WindSpeedKmh, system),
		WindDirection:       current.WindDirection,
	}
}

// handleSelectDashboard godoc
// @Summary Select the dashboard location
// @Description Switch the dashboard to a location and fetch its forecast and photo
// @Tags dashboard
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Param name query string true "Display name for the place"
// @Param country query string false "Country of the place"
// @Param unit query string false "Temperature unit, C or F" default(C)
// @Param system query string false "Unit system, metric or imperial" default(metric)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/dashboard [post]
func (app *App) handleSelectDashboard(c *gin.Context) {
	if c.Query("latitude") == "" || c.Query("longitude") == "" {
		app.respondError(c, apperr.Validation("latitude and longitude parameters are required"))
		return
	}

	var input SelectDashboardInput
	if err := c.ShouldBindQuery(&input); err != nil {
		app.respondError(c, apperr.Validation("invalid query parameters: %v", err))
		return
	}

	if input.Name == "" {
		app.respondError(c, apperr.Validation("name parameter is required"))
		return
	}

	if err := location.ValidateCoordinates(input.Latitude, input.Longitude); err != nil {
		app.respondError(c, err)
		return
	}

	unit, system, err := displayUnits(c)
	if err != nil {
		app.respondError(c, err)
		return
	}

	loc := types.Location{
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Country:   input.Country,
	}

	view, err := app.dashboardService.Select(c.Request.Context(), loc)
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		View:    view,
		Display: buildDisplay(view, unit, system),
	})
}

// handleGetDashboard godoc
// @Summary Get the current dashboard view
// @Description Return the currently displayed location with its forecast and photo
// @Tags dashboard
// @Produce json
// @Param unit query string false "Temperature unit, C or F" default(C)
// @Param system query string false "Unit system, metric or imperial" default(metric)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/dashboard [get]
func (app *App) handleGetDashboard(c *gin.Context) {
	unit, system, err := displayUnits(c)
	if err != nil {
		app.respondError(c, err)
		return
	}

	view, ok := app.dashboardService.Current()
	if !ok {
		app.respondError(c, apperr.ErrNoResults)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		View:    view,
		Display: buildDisplay(view, unit, system),
	})
}
