package classrooms

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles classroom HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates a new classrooms handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /classrooms
func (h *Handler) List(c *gin.Context) {
	classrooms, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list classrooms: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list classrooms"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"classrooms": classrooms})
}

// Get handles GET /classrooms/:id
func (h *Handler) Get(c *gin.Context) {
	cr, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrClassroomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "classroom not found"})
			return
		}
		log.Printf("Failed to get classroom: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get classroom"})
		return
	}

	c.JSON(http.StatusOK, cr)
}

// Create handles POST /classrooms
func (h *Handler) Create(c *gin.Context) {
	var req CreateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cr, err := h.svc.Create(c.Request.Context(), req.Name, req.Section, req.Year)
	if err != nil {
		log.Printf("Failed to create classroom: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create classroom"})
		return
	}

	c.JSON(http.StatusCreated, cr)
}

// Update handles PUT /classrooms/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cr, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Name, req.Section, req.Year)
	if err != nil {
		if errors.Is(err, ErrClassroomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "classroom not found"})
			return
		}
		log.Printf("Failed to update classroom: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update classroom"})
		return
	}

	c.JSON(http.StatusOK, cr)
}

// Delete handles DELETE /classrooms/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrClassroomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "classroom not found"})
			return
		}
		log.Printf("Failed to delete classroom: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete classroom"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "classroom deleted"})
}
