package leaves

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"classmate/internal/profile"
)

// Handler handles HTTP requests for leave applications
type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// List returns leave applications. Admins see every application partitioned
// by status, applicants see their own.
func (h *Handler) List(c *gin.Context) {
	role := c.GetString("role")
	if role == string(profile.RoleAdmin) {
		view, err := h.service.ViewAll(c.Request.Context())
		if err != nil {
			h.logger.Error("Failed to list leave applications", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list leave applications"})
			return
		}
		c.JSON(http.StatusOK, view)
		return
	}

	leaves, err := h.service.ListMine(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.logger.Error("Failed to list leave applications", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list leave applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaves": leaves})
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leave, err := h.service.Submit(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), req)
	if err != nil {
		h.logger.Error("Failed to submit leave application", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, leave)
}

func (h *Handler) Respond(c *gin.Context) {
	var req RespondLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leave, err := h.service.Respond(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrLeaveNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Leave application not found"})
		case errors.Is(err, ErrAlreadyDecided):
			c.JSON(http.StatusConflict, gin.H{"error": "Leave application already decided"})
		default:
			h.logger.Error("Failed to respond to leave application", "error", err, "leave_id", c.Param("id"))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to respond to leave application"})
		}
		return
	}

	c.JSON(http.StatusOK, leave)
}

// Delete removes the caller's own pending application
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.DeleteOwnPending(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, ErrLeaveNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Leave application not found"})
			return
		}
		h.logger.Error("Failed to delete leave application", "error", err, "leave_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete leave application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Leave application deleted"})
}
