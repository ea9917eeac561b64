package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ShivamH1/QuizApp/models"
	"github.com/ShivamH1/QuizApp/services"

	"github.com/gin-gonic/gin"
)

// AttemptHandler exposes the server-side quiz-taking session: a per-attempt
// state object holding the question cursor, the answer map, and the timer
// anchor.
type AttemptHandler struct {
	attemptService *services.AttemptService
}

func NewAttemptHandler(attemptService *services.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService}
}

type StartAttemptRequest struct {
	QuizID string `json:"quizId" binding:"required"`
}

type RecordAnswerRequest struct {
	QuestionID string           `json:"questionId" binding:"required"`
	Selected   models.OptionKey `json:"selected" binding:"required"`
}

type SeekRequest struct {
	Index *int `json:"index" binding:"required"`
}

func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	var req StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	attempt, err := h.attemptService.StartAttempt(c.Request.Context(), req.QuizID)
	if err != nil {
		if errors.Is(err, services.ErrNoQuestions) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found or has no questions"})
			return
		}
		log.Printf("Error starting attempt: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start attempt"})
		return
	}

	c.JSON(http.StatusCreated, attempt)
}

func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	attempt, err := h.attemptService.GetAttempt(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrAttemptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attempt not found"})
			return
		}
		log.Printf("Error fetching attempt: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attempt"})
		return
	}

	c.JSON(http.StatusOK, attempt)
}

func (h *AttemptHandler) RecordAnswer(c *gin.Context) {
	var req RecordAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	attempt, err := h.attemptService.RecordAnswer(c.Request.Context(), c.Param("id"), req.QuestionID, req.Selected)
	if err != nil {
		if errors.Is(err, services.ErrAttemptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attempt not found"})
			return
		}
		log.Printf("Error recording answer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record answer"})
		return
	}

	c.JSON(http.StatusOK, attempt)
}

func (h *AttemptHandler) Seek(c *gin.Context) {
	var req SeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	attempt, err := h.attemptService.Seek(c.Request.Context(), c.Param("id"), *req.Index)
	if err != nil {
		if errors.Is(err, services.ErrAttemptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attempt not found"})
			return
		}
		log.Printf("Error seeking attempt: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attempt"})
		return
	}

	c.JSON(http.StatusOK, attempt)
}

func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	result, err := h.attemptService.SubmitAttempt(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAttemptNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Attempt not found"})
		case errors.Is(err, services.ErrNoQuestions):
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found or has no questions"})
		default:
			log.Printf("Error submitting attempt: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit attempt"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
