package fees

import (
	"errors"
	"log"
	"net/http"

	"classmate/internal/profile"

	"github.com/gin-gonic/gin"
)

// Handler handles fee HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates a new fees handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /fees. Students always see their own records; admins see
// everything, optionally filtered by student_id.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if c.GetString("role") == string(profile.RoleStudent) {
		view, err := h.svc.ViewForAccount(ctx, c.GetString("user_id"))
		if err != nil {
			if errors.Is(err, ErrNoStudentProfile) {
				c.JSON(http.StatusNotFound, gin.H{"error": "no student profile for this account"})
				return
			}
			log.Printf("Failed to list own fees: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list fees"})
			return
		}
		c.JSON(http.StatusOK, view)
		return
	}

	view, err := h.svc.View(ctx, c.Query("student_id"))
	if err != nil {
		log.Printf("Failed to list fees: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list fees"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Create handles POST /fees
func (h *Handler) Create(c *gin.Context) {
	var req CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		log.Printf("Failed to create fee record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create fee record"})
		return
	}

	c.JSON(http.StatusCreated, f)
}

// Update handles PUT /fees/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrFeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "fee record not found"})
			return
		}
		log.Printf("Failed to update fee record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update fee record"})
		return
	}

	c.JSON(http.StatusOK, f)
}

// MarkPaid handles POST /fees/:id/pay
func (h *Handler) MarkPaid(c *gin.Context) {
	f, err := h.svc.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrFeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "fee record not found"})
			return
		}
		log.Printf("Failed to mark fee paid: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark fee paid"})
		return
	}

	c.JSON(http.StatusOK, f)
}

// Delete handles DELETE /fees/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrFeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "fee record not found"})
			return
		}
		log.Printf("Failed to delete fee record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete fee record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "fee record deleted"})
}
