package complaints

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"classmate/internal/profile"
)

// Handler handles HTTP requests for complaints
type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// List returns complaints. Admins see every complaint partitioned by
// status, authors see their own.
func (h *Handler) List(c *gin.Context) {
	role := c.GetString("role")
	if role == string(profile.RoleAdmin) {
		view, err := h.service.ViewAll(c.Request.Context())
		if err != nil {
			h.logger.Error("Failed to list complaints", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list complaints"})
			return
		}
		c.JSON(http.StatusOK, view)
		return
	}

	complaints, err := h.service.ListMine(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.logger.Error("Failed to list complaints", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list complaints"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

func (h *Handler) File(c *gin.Context) {
	var req FileComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.service.File(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), req)
	if err != nil {
		h.logger.Error("Failed to file complaint", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to file complaint"})
		return
	}

	c.JSON(http.StatusCreated, complaint)
}

func (h *Handler) Resolve(c *gin.Context) {
	var req ResolveComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.service.Resolve(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrComplaintNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		case errors.Is(err, ErrAlreadyResolved):
			c.JSON(http.StatusConflict, gin.H{"error": "Complaint already resolved"})
		default:
			h.logger.Error("Failed to resolve complaint", "error", err, "complaint_id", c.Param("id"))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve complaint"})
		}
		return
	}

	c.JSON(http.StatusOK, complaint)
}

// Delete removes the caller's own pending complaint
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.DeleteOwnPending(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, ErrComplaintNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
			return
		}
		h.logger.Error("Failed to delete complaint", "error", err, "complaint_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete complaint"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted"})
}
