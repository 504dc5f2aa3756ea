package main

import (
	"log/slog"

	"skycast/internal/chat"
	"skycast/internal/config"
	"skycast/internal/dashboard"
	"skycast/internal/location"
	"skycast/internal/photos"
	"skycast/internal/weather"

	"github.com/gin-gonic/gin"

	_ "skycast/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	cfg              *config.Config
	locationService  location.Service
	weatherService   weather.Service
	photoService     photos.Service
	chatService      chat.Service
	dashboardService *dashboard.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Initialize weather service
	weatherSvc, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		return nil, err
	}

	photoSvc := photos.NewPhotoService(cfg, logger)

	app := &App{
		router:           router,
		logger:           logger,
		cfg:              cfg,
		locationService:  location.NewLocationService(cfg, logger),
		weatherService:   weatherSvc,
		photoService:     photoSvc,
		chatService:      chat.NewChatService(cfg, logger),
		dashboardService: dashboard.NewService(dashboard.NewState(), weatherSvc, photoSvc, logger),
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
