package schedules

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for schedule documents
type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// List returns schedule metadata, optionally filtered by ?classroom_id
func (h *Handler) List(c *gin.Context) {
	schedules, err := h.service.List(c.Request.Context(), c.Query("classroom_id"))
	if err != nil {
		h.logger.Error("Failed to list schedules", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list schedules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// Create registers a schedule document and returns a presigned upload URL
func (h *Handler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Document storage unavailable"})
			return
		}
		h.logger.Error("Failed to create schedule", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Download returns a presigned download URL for a schedule document
func (h *Handler) Download(c *gin.Context) {
	resp, err := h.service.DownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		h.logger.Error("Failed to generate download URL", "error", err, "schedule_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate download URL"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete removes a schedule document and its metadata
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		h.logger.Error("Failed to delete schedule", "error", err, "schedule_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
