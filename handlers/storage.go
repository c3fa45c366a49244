package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheIanM/ucanduit/services"
)

// StorageHandler handles the JSON document endpoints
type StorageHandler struct {
	store *services.Store
}

// NewStorageHandler creates a new storage handler
func NewStorageHandler(store *services.Store) *StorageHandler {
	return &StorageHandler{store: store}
}

// ReadFile returns the parsed contents of a stored JSON document
func (h *StorageHandler) ReadFile(c *gin.Context) {
	filename := c.Param("filename")

	data, err := h.store.ReadJSON(filename)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrFileNotFound) {
			status = http.StatusNotFound
		} else if errors.Is(err, services.ErrInvalidFilename) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error":   "failed to read file",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, data)
}

// WriteFile stores the request body as a pretty-printed JSON document,
// overwriting any existing file of the same name
func (h *StorageHandler) WriteFile(c *gin.Context) {
	filename := c.Param("filename")

	var payload interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "request body must be valid JSON",
			"details": err.Error(),
		})
		return
	}

	if err := h.store.WriteJSON(filename, payload); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidFilename) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error":   "failed to write file",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "file written successfully",
		"filename": filename,
	})
}
