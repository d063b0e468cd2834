package students

import (
	"errors"
	"log"
	"net/http"

	"classmate/internal/identity"

	"github.com/gin-gonic/gin"
)

// Handler handles student HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates a new students handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /students with an optional classroom_id query parameter
func (h *Handler) List(c *gin.Context) {
	students, err := h.svc.List(c.Request.Context(), c.Query("classroom_id"))
	if err != nil {
		log.Printf("Failed to list students: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list students"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"students": students})
}

// Get handles GET /students/:id
func (h *Handler) Get(c *gin.Context) {
	st, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		log.Printf("Failed to get student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get student"})
		return
	}

	c.JSON(http.StatusOK, st)
}

// Create handles POST /students
func (h *Handler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailExists), errors.Is(err, identity.ErrEmailExists):
			c.JSON(http.StatusConflict, gin.H{"error": "email_taken", "field": "email"})
		default:
			log.Printf("Failed to create student: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create student"})
		}
		return
	}

	c.JSON(http.StatusCreated, st)
}

// Update handles PUT /students/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		log.Printf("Failed to update student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update student"})
		return
	}

	c.JSON(http.StatusOK, st)
}

// Delete handles DELETE /students/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		log.Printf("Failed to delete student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete student"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "student deleted"})
}
