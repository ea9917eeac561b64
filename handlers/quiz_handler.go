package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ShivamH1/QuizApp/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService   *services.QuizService
	questionCache *services.QuestionCache
}

func NewQuizHandler(quizService *services.QuizService, questionCache *services.QuestionCache) *QuizHandler {
	return &QuizHandler{
		quizService:   quizService,
		questionCache: questionCache,
	}
}

func (h *QuizHandler) GetAllQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.GetAllQuizzes()
	if err != nil {
		log.Printf("Error fetching quizzes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quizzes"})
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuizByID(c *gin.Context) {
	quiz, err := h.quizService.GetQuizByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
			return
		}
		log.Printf("Error fetching quiz: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quiz"})
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	quiz, err := h.quizService.CreateQuiz(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDifficulty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating quiz: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quiz"})
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	var req services.UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	quizID := c.Param("id")
	quiz, err := h.quizService.UpdateQuiz(quizID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuizNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		case errors.Is(err, services.ErrInvalidDifficulty):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error updating quiz: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quiz"})
		}
		return
	}

	h.questionCache.Invalidate(quizID)
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quizID := c.Param("id")
	if err := h.quizService.DeleteQuiz(quizID); err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
			return
		}
		log.Printf("Error deleting quiz: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quiz"})
		return
	}

	h.questionCache.Invalidate(quizID)
	c.Status(http.StatusNoContent)
}
