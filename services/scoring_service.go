package services

import (
	"math"

	"github.com/ShivamH1/QuizApp/models"
)

// QuestionResult is the per-question breakdown returned after a submission.
// It echoes the question text and all option texts so the review screen can
// render without a second fetch. UserAnswer is nil when the question was
// left unanswered.
type QuestionResult struct {
	QuestionID    string            `json:"questionId"`
	QuestionText  string            `json:"questionText"`
	UserAnswer    *models.OptionKey `json:"userAnswer"`
	CorrectAnswer models.OptionKey  `json:"correctAnswer"`
	IsCorrect     bool              `json:"isCorrect"`
	OptionA       string            `json:"optionA"`
	OptionB       string            `json:"optionB"`
	OptionC       string            `json:"optionC"`
	OptionD       string            `json:"optionD"`
}

type ScoreResult struct {
	Score           int              `json:"score"`
	TotalQuestions  int              `json:"totalQuestions"`
	Percentage      int              `json:"percentage"`
	QuestionResults []QuestionResult `json:"questionResults"`
}

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// CalculateScore compares submitted answers against the authoritative
// question set and produces the aggregate score with a per-question
// breakdown in the same order as the input questions.
//
// The answers map may omit entries (unanswered) and may carry keys outside
// a-d; such answers are echoed back as given and scored incorrect. The
// percentage is rounded half away from zero, so one correct of three gives
// 33 and one of eight gives 13. The function is pure and deterministic.
//
// Precondition: len(questions) >= 1. Callers must reject empty question
// sets before invoking; the percentage is undefined for zero questions.
func (s *ScoringService) CalculateScore(questions []models.Question, answers map[string]models.OptionKey) ScoreResult {
	score := 0
	results := make([]QuestionResult, 0, len(questions))

	for _, question := range questions {
		var userAnswer *models.OptionKey
		if answer, ok := answers[question.ID]; ok {
			userAnswer = &answer
		}

		isCorrect := userAnswer != nil && *userAnswer == question.CorrectOption
		if isCorrect {
			score++
		}

		results = append(results, QuestionResult{
			QuestionID:    question.ID,
			QuestionText:  question.QuestionText,
			UserAnswer:    userAnswer,
			CorrectAnswer: question.CorrectOption,
			IsCorrect:     isCorrect,
			OptionA:       question.OptionA,
			OptionB:       question.OptionB,
			OptionC:       question.OptionC,
			OptionD:       question.OptionD,
		})
	}

	percentage := int(math.Round(float64(score) / float64(len(questions)) * 100))

	return ScoreResult{
		Score:           score,
		TotalQuestions:  len(questions),
		Percentage:      percentage,
		QuestionResults: results,
	}
}
