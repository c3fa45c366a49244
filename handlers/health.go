package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TheIanM/ucanduit/config"
)

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthCheck returns the health status of the service
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "ucanduit",
		"version":   "1.0.0",
		"timestamp": time.Now().Unix(),
	})
}

// APIStatus returns the status of the API
func (h *HealthHandler) APIStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":    "ucanduit backend is running",
		"data_dir":   config.AppDataDir(),
		"audio_root": config.AudioRootDir(),
	})
}
