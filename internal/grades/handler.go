package grades

import (
	"errors"
	"log"
	"net/http"

	"classmate/internal/profile"

	"github.com/gin-gonic/gin"
)

// Handler handles grade HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates a new grades handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /grades. Students always get their own grades; teachers
// and admins select by student_id or classroom_id query parameter.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if c.GetString("role") == string(profile.RoleStudent) {
		grades, err := h.svc.ListForAccount(ctx, c.GetString("user_id"))
		if err != nil {
			if errors.Is(err, ErrNoStudentProfile) {
				c.JSON(http.StatusNotFound, gin.H{"error": "no student profile for this account"})
				return
			}
			log.Printf("Failed to list own grades: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list grades"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"grades": grades})
		return
	}

	var (
		grades []Grade
		err    error
	)
	switch {
	case c.Query("student_id") != "":
		grades, err = h.svc.ListForStudent(ctx, c.Query("student_id"))
	case c.Query("classroom_id") != "":
		grades, err = h.svc.ListForClassroom(ctx, c.Query("classroom_id"))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_id or classroom_id query parameter is required"})
		return
	}

	if err != nil {
		log.Printf("Failed to list grades: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list grades"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"grades": grades})
}

// Create handles POST /grades
func (h *Handler) Create(c *gin.Context) {
	var req CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := h.svc.Create(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		log.Printf("Failed to create grade: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create grade"})
		return
	}

	c.JSON(http.StatusCreated, g)
}

// Update handles PUT /grades/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrGradeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "grade not found"})
			return
		}
		log.Printf("Failed to update grade: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update grade"})
		return
	}

	c.JSON(http.StatusOK, g)
}

// Delete handles DELETE /grades/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrGradeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "grade not found"})
			return
		}
		log.Printf("Failed to delete grade: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete grade"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "grade deleted"})
}
