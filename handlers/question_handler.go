package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ShivamH1/QuizApp/models"
	"github.com/ShivamH1/QuizApp/services"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultListQuizID is used when the public question listing omits the
	// quizId query parameter.
	DefaultListQuizID = "default"
	// DefaultSubmitQuizID is used when a submission omits quizId. It points
	// at the seeded general-knowledge quiz.
	DefaultSubmitQuizID = "general-knowledge"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	questionCache   *services.QuestionCache
	scoringService  *services.ScoringService
}

func NewQuestionHandler(questionService *services.QuestionService, questionCache *services.QuestionCache, scoringService *services.ScoringService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		questionCache:   questionCache,
		scoringService:  scoringService,
	}
}

type SubmitRequest struct {
	Answers   map[string]models.OptionKey `json:"answers" binding:"required"`
	TimeTaken int                         `json:"timeTaken"`
	QuizID    string                      `json:"quizId"`
}

// GetQuestionsByQuizID serves the public projection: ordered questions with
// the correct option withheld.
func (h *QuestionHandler) GetQuestionsByQuizID(c *gin.Context) {
	quizID := c.Query("quizId")
	if quizID == "" {
		quizID = DefaultListQuizID
	}

	questions, err := h.questionService.ListPublic(quizID)
	if err != nil {
		log.Printf("Error fetching questions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	question, err := h.questionService.CreateQuestion(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOptionKey):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrQuizNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		default:
			log.Printf("Error creating question: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		}
		return
	}

	h.questionCache.Invalidate(question.QuizID)
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) CreateQuestionsBulk(c *gin.Context) {
	var reqs []services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&reqs); err != nil || len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	count, err := h.questionService.CreateMany(reqs)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOptionKey):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrQuizNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		default:
			log.Printf("Error creating questions: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create questions"})
		}
		return
	}

	for _, req := range reqs {
		h.questionCache.Invalidate(req.QuizID)
	}
	c.JSON(http.StatusCreated, gin.H{"count": count})
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req services.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	question, err := h.questionService.UpdateQuestion(c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuestionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		case errors.Is(err, services.ErrInvalidOptionKey):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error updating question: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update question"})
		}
		return
	}

	h.questionCache.Invalidate(question.QuizID)
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	quizID, err := h.questionService.DeleteQuestion(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		log.Printf("Error deleting question: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete question"})
		return
	}

	h.questionCache.Invalidate(quizID)
	c.Status(http.StatusNoContent)
}

// SubmitAnswers scores a submission against the authoritative question set.
// The scoring engine requires a non-empty set, so an empty quiz is rejected
// here with 404 before the engine runs.
func (h *QuestionHandler) SubmitAnswers(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answers format"})
		return
	}

	quizID := req.QuizID
	if quizID == "" {
		quizID = DefaultSubmitQuizID
	}

	questions, err := h.questionCache.GetQuestions(quizID)
	if err != nil {
		log.Printf("Error submitting answers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit answers"})
		return
	}
	if len(questions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found or has no questions"})
		return
	}

	result := h.scoringService.CalculateScore(questions, req.Answers)
	c.JSON(http.StatusOK, services.SubmissionResult{ScoreResult: result, TimeTaken: req.TimeTaken})
}
