package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	v1 := app.router.Group("/api/v1")

	// Location endpoints
	v1.GET("/locations/search", app.handleSearchLocations)
	v1.GET("/locations/reverse", app.handleReverseGeocode)

	// Weather endpoint
	v1.GET("/weather", app.handleGetWeather)

	// Photo endpoint
	v1.GET("/photos", app.handleGetPhotos)

	// Chat endpoint
	v1.POST("/chat", app.handleChat)

	// Dashboard endpoints
	v1.POST("/dashboard", app.handleSelectDashboard)
	v1.GET("/dashboard", app.handleGetDashboard)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
