package quizzes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles quiz HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates a new quizzes handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /quizzes with an optional classroom_id query parameter
func (h *Handler) List(c *gin.Context) {
	quizzes, err := h.svc.List(c.Request.Context(), c.Query("classroom_id"))
	if err != nil {
		log.Printf("Failed to list quizzes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list quizzes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

// Get handles GET /quizzes/:id
func (h *Handler) Get(c *gin.Context) {
	q, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
			return
		}
		log.Printf("Failed to get quiz: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get quiz"})
		return
	}

	c.JSON(http.StatusOK, q)
}

// Create handles POST /quizzes
func (h *Handler) Create(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := h.svc.Create(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		log.Printf("Failed to create quiz: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create quiz"})
		return
	}

	c.JSON(http.StatusCreated, q)
}

// Update handles PUT /quizzes/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
			return
		}
		log.Printf("Failed to update quiz: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update quiz"})
		return
	}

	c.JSON(http.StatusOK, q)
}

// Delete handles DELETE /quizzes/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
			return
		}
		log.Printf("Failed to delete quiz: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "quiz deleted"})
}
