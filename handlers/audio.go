package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheIanM/ucanduit/config"
	"github.com/TheIanM/ucanduit/logger"
	"github.com/TheIanM/ucanduit/services"
	"github.com/TheIanM/ucanduit/websocket"
)

// AudioHandler handles the audio enumeration endpoints
type AudioHandler struct {
	scanner *services.AudioScanner
	hub     websocket.Hub
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(scanner *services.AudioScanner, hub websocket.Hub) *AudioHandler {
	return &AudioHandler{
		scanner: scanner,
		hub:     hub,
	}
}

// ScanDirectory lists the audio files directly inside the requested directory
func (h *AudioHandler) ScanDirectory(c *gin.Context) {
	dir := c.Query("dir")
	if dir == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "query parameter 'dir' is required",
		})
		return
	}

	contents, err := h.scanner.ScanDirectory(dir)
	if err != nil {
		c.JSON(scanStatus(err), gin.H{
			"error":   "failed to scan directory",
			"details": err.Error(),
		})
		return
	}

	if h.hub != nil {
		h.hub.BroadcastScan("scan", dir, contents.Count)
	}
	c.JSON(http.StatusOK, contents)
}

// ScanAudioRoot summarizes the subdirectories of the bundled audio root
func (h *AudioHandler) ScanAudioRoot(c *gin.Context) {
	summaries, err := h.scanner.ScanAudioRoot(config.AudioRootDir())
	if err != nil {
		c.JSON(scanStatus(err), gin.H{
			"error":   "failed to scan audio root",
			"details": err.Error(),
		})
		return
	}

	if h.hub != nil {
		h.hub.BroadcastScan("summary", config.AudioRootDir(), len(summaries))
	}
	c.JSON(http.StatusOK, gin.H{
		"directories": summaries,
		"count":       len(summaries),
	})
}

// SupportedFormats returns the audio extension allow-list
func (h *AudioHandler) SupportedFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"formats": services.SupportedFormats(),
	})
}

// DirectoryExists reports whether the given path exists on disk
func (h *AudioHandler) DirectoryExists(c *gin.Context) {
	dir := c.Query("dir")
	if dir == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "query parameter 'dir' is required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exists": services.DirectoryExists(dir),
	})
}

// TrackInfo returns tag metadata for a single audio file
func (h *AudioHandler) TrackInfo(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "query parameter 'path' is required",
		})
		return
	}

	info, err := h.scanner.TrackInfo(path)
	if err != nil {
		c.JSON(scanStatus(err), gin.H{
			"error":   "failed to read track info",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, info)
}

// HandleEventFeed upgrades the connection and subscribes it to scan events
func (h *AudioHandler) HandleEventFeed(c *gin.Context) {
	upgrader := websocket.GetUpgrader()
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.L().WithError(err).Warn("event feed upgrade failed")
		return
	}

	client := websocket.NewClient(h.hub, conn)
	h.hub.RegisterClient(client)
	client.StartPumps()
}

// scanStatus maps scan errors to HTTP status codes
func scanStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrDirectoryNotFound),
		errors.Is(err, services.ErrRootNotFound),
		errors.Is(err, services.ErrFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotADirectory),
		errors.Is(err, services.ErrNotAnAudioFile):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
