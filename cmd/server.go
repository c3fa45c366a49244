package cmd

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TheIanM/ucanduit/config"
	"github.com/TheIanM/ucanduit/handlers"
	"github.com/TheIanM/ucanduit/logger"
	"github.com/TheIanM/ucanduit/middleware"
	"github.com/TheIanM/ucanduit/services"
	"github.com/TheIanM/ucanduit/websocket"
)

// StartWebServer starts the backend API the shell talks to
func StartWebServer(port int) {
	// Set production mode if not specified
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	hub := websocket.NewHub()
	go hub.Run()

	resolver := services.NewPathResolver()
	scanner := services.NewAudioScanner(resolver)
	store := services.NewStore(config.AppDataDir())

	// Initialize handlers
	audioHandler := handlers.NewAudioHandler(scanner, hub)
	storageHandler := handlers.NewStorageHandler(store)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Logging())

	setupRoutes(r, audioHandler, storageHandler, healthHandler)

	// Start server
	portStr := strconv.Itoa(port)
	if serverPort := os.Getenv("SERVER_PORT"); serverPort != "" {
		portStr = serverPort
	}

	logger.L().WithFields(map[string]interface{}{
		"port":       portStr,
		"data_dir":   config.AppDataDir(),
		"audio_root": config.AudioRootDir(),
	}).Info("ucanduit backend starting")

	if err := r.Run("127.0.0.1:" + portStr); err != nil {
		logger.L().WithError(err).Fatal("failed to start server")
	}
}

// setupRoutes configures all the HTTP routes
func setupRoutes(r *gin.Engine, audioHandler *handlers.AudioHandler, storageHandler *handlers.StorageHandler, healthHandler *handlers.HealthHandler) {
	// Health check endpoint
	r.GET("/health", healthHandler.HealthCheck)

	// API routes group
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/status", healthHandler.APIStatus)

		// Audio enumeration endpoints
		audioGroup := apiGroup.Group("/audio")
		{
			audioGroup.GET("/scan", audioHandler.ScanDirectory)
			audioGroup.GET("/directories", audioHandler.ScanAudioRoot)
			audioGroup.GET("/formats", audioHandler.SupportedFormats)
			audioGroup.GET("/exists", audioHandler.DirectoryExists)
			audioGroup.GET("/info", audioHandler.TrackInfo)
		}

		// WebSocket endpoint for the scan event feed
		apiGroup.GET("/ws/events", audioHandler.HandleEventFeed)

		// JSON document endpoints
		storageGroup := apiGroup.Group("/storage")
		{
			storageGroup.GET("/:filename", storageHandler.ReadFile)
			storageGroup.POST("/:filename", storageHandler.WriteFile)
		}
	}
}
