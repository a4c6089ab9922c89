package handlers

import (
	"net/http"
	"strings"

	"github.com/anirudh21-ch/elearn/auth"
	"github.com/anirudh21-ch/elearn/models"
	"github.com/gin-gonic/gin"
)

type CreateCourseRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

// GetCourses lists all courses. Browsers asking for text/html get the
// courses page; everyone else gets JSON.
func (h *Handler) GetCourses(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.HTML(http.StatusOK, "courses.html", nil)
		return
	}

	courses := make([]models.Course, 0)
	if err := h.db.Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

// CreateCourse persists a new course. Title presence is checked before
// authentication; creation itself requires a teacher or admin identity.
func (h *Handler) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	bindInput(c, &req)

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}

	claims, err := h.tokens.Verify(bearerToken(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required to create course"})
		return
	}

	if !auth.CanCreateCourse(claims) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only teacher or admin can create courses"})
		return
	}

	course := models.Course{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.db.Create(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create course"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "created", "course": course})
}
