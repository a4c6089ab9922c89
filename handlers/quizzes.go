package handlers

import (
	"net/http"
	"strconv"

	"github.com/anirudh21-ch/elearn/auth"
	"github.com/anirudh21-ch/elearn/models"
	"github.com/gin-gonic/gin"
)

type SubmitQuizRequest struct {
	Question string `json:"question" form:"question"`
	Answer   string `json:"answer" form:"answer"`
}

// GetQuizQuestions lists the questions for a course. A course id with
// no rows yields an empty list, not a 404 — there is no existence
// check on the course itself.
func (h *Handler) GetQuizQuestions(c *gin.Context) {
	courseID, err := strconv.ParseUint(c.Param("courseId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	quizzes := make([]models.Quiz, 0)
	if err := h.db.Where("course_id = ?", courseID).Find(&quizzes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch quiz"})
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// SubmitQuiz stores a question+answer pair for a course. Any
// authenticated identity may submit; an invalid token is the same as
// none here and both are a 401.
func (h *Handler) SubmitQuiz(c *gin.Context) {
	courseID, err := strconv.ParseUint(c.Param("courseId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	claims := h.tokens.VerifyOptional(bearerToken(c))
	if !auth.CanSubmitQuiz(claims) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required to submit quiz"})
		return
	}

	var req SubmitQuizRequest
	bindInput(c, &req)

	if req.Question == "" || req.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question and answer required"})
		return
	}

	quiz := models.Quiz{
		CourseID: uint(courseID),
		Question: req.Question,
		Answer:   req.Answer,
	}
	if err := h.db.Create(&quiz).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save quiz"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "quiz saved", "quiz": quiz})
}
