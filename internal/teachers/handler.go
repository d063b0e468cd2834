// Package teachers manages teacher profiles; the teachers table doubles as
// the partition the role resolver probes for the teacher role.
package teachers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"classmate/internal/identity"

	"github.com/gin-gonic/gin"
)

// Handler handles teacher HTTP requests. The logic is thin enough that no
// separate service layer is warranted; the handler talks to the repository
// and the identity provider directly.
type Handler struct {
	repo *Repository
	idp  identity.Provider
}

// NewHandler creates a new teachers handler
func NewHandler(repo *Repository, idp identity.Provider) *Handler {
	return &Handler{repo: repo, idp: idp}
}

// List handles GET /teachers
func (h *Handler) List(c *gin.Context) {
	teachers, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list teachers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list teachers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"teachers": teachers})
}

// Get handles GET /teachers/:id
func (h *Handler) Get(c *gin.Context) {
	tc, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
			return
		}
		log.Printf("Failed to get teacher: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get teacher"})
		return
	}

	c.JSON(http.StatusOK, tc)
}

// Create handles POST /teachers
func (h *Handler) Create(c *gin.Context) {
	var req CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tc, err := h.create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailExists), errors.Is(err, identity.ErrEmailExists):
			c.JSON(http.StatusConflict, gin.H{"error": "email_taken", "field": "email"})
		default:
			log.Printf("Failed to create teacher: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create teacher"})
		}
		return
	}

	c.JSON(http.StatusCreated, tc)
}

func (h *Handler) create(ctx context.Context, req CreateTeacherRequest) (*Teacher, error) {
	var accountID *string
	if req.Password != "" {
		account, err := h.idp.CreateAccount(ctx, req.Email, req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to create teacher account: %w", err)
		}
		accountID = &account.ID
	}
	return h.repo.Create(ctx, accountID, req.Name, req.Email, req.Subject)
}

// Update handles PUT /teachers/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tc, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.Name, req.Subject)
	if err != nil {
		if errors.Is(err, ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
			return
		}
		log.Printf("Failed to update teacher: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update teacher"})
		return
	}

	c.JSON(http.StatusOK, tc)
}

// Delete handles DELETE /teachers/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrTeacherNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "teacher not found"})
			return
		}
		log.Printf("Failed to delete teacher: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete teacher"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "teacher deleted"})
}
