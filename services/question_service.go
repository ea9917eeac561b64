package services

import (
	"errors"

	"github.com/ShivamH1/QuizApp/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type CreateQuestionRequest struct {
	QuizID        string           `json:"quizId" binding:"required"`
	QuestionText  string           `json:"questionText" binding:"required"`
	OptionA       string           `json:"optionA" binding:"required"`
	OptionB       string           `json:"optionB" binding:"required"`
	OptionC       string           `json:"optionC" binding:"required"`
	OptionD       string           `json:"optionD" binding:"required"`
	CorrectOption models.OptionKey `json:"correctOption" binding:"required"`
	OrderIndex    *int             `json:"orderIndex" binding:"required"`
}

type UpdateQuestionRequest struct {
	QuestionText  *string           `json:"questionText"`
	OptionA       *string           `json:"optionA"`
	OptionB       *string           `json:"optionB"`
	OptionC       *string           `json:"optionC"`
	OptionD       *string           `json:"optionD"`
	CorrectOption *models.OptionKey `json:"correctOption"`
	OrderIndex    *int              `json:"orderIndex"`
}

// ListPublic returns the quiz-taker projection: ordered questions with the
// correct option withheld.
func (s *QuestionService) ListPublic(quizID string) ([]models.PublicQuestion, error) {
	questions, err := s.ListAuthoritative(quizID)
	if err != nil {
		return nil, err
	}

	public := make([]models.PublicQuestion, 0, len(questions))
	for _, q := range questions {
		public = append(public, models.PublicQuestion{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
			OrderIndex:   q.OrderIndex,
		})
	}
	return public, nil
}

// ListAuthoritative returns ordered questions including the correct option.
// Server-side use only; this must never back a public read endpoint.
func (s *QuestionService) ListAuthoritative(quizID string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("quiz_id = ?", quizID).
		Order("order_index ASC, created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (s *QuestionService) CreateQuestion(req *CreateQuestionRequest) (*models.Question, error) {
	if !req.CorrectOption.Valid() {
		return nil, ErrInvalidOptionKey
	}

	// Questions may not reference a nonexistent quiz.
	var quiz models.Quiz
	if err := s.db.Where("id = ?", req.QuizID).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	question := models.Question{
		QuizID:        req.QuizID,
		QuestionText:  req.QuestionText,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: req.CorrectOption,
		OrderIndex:    *req.OrderIndex,
	}

	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// CreateMany batch-inserts questions for admin bulk upload. All rows are
// validated before anything is written.
func (s *QuestionService) CreateMany(reqs []CreateQuestionRequest) (int, error) {
	questions := make([]models.Question, 0, len(reqs))
	for i := range reqs {
		req := &reqs[i]
		if !req.CorrectOption.Valid() {
			return 0, ErrInvalidOptionKey
		}
		var quiz models.Quiz
		if err := s.db.Where("id = ?", req.QuizID).First(&quiz).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrQuizNotFound
			}
			return 0, err
		}
		questions = append(questions, models.Question{
			QuizID:        req.QuizID,
			QuestionText:  req.QuestionText,
			OptionA:       req.OptionA,
			OptionB:       req.OptionB,
			OptionC:       req.OptionC,
			OptionD:       req.OptionD,
			CorrectOption: req.CorrectOption,
			OrderIndex:    *req.OrderIndex,
		})
	}

	if len(questions) == 0 {
		return 0, nil
	}
	if err := s.db.Create(&questions).Error; err != nil {
		return 0, err
	}
	return len(questions), nil
}

func (s *QuestionService) UpdateQuestion(questionID string, req *UpdateQuestionRequest) (*models.Question, error) {
	var question models.Question
	if err := s.db.Where("id = ?", questionID).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.OptionA != nil {
		question.OptionA = *req.OptionA
	}
	if req.OptionB != nil {
		question.OptionB = *req.OptionB
	}
	if req.OptionC != nil {
		question.OptionC = *req.OptionC
	}
	if req.OptionD != nil {
		question.OptionD = *req.OptionD
	}
	if req.CorrectOption != nil {
		if !req.CorrectOption.Valid() {
			return nil, ErrInvalidOptionKey
		}
		question.CorrectOption = *req.CorrectOption
	}
	if req.OrderIndex != nil {
		question.OrderIndex = *req.OrderIndex
	}

	if err := s.db.Save(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion removes a question and returns the owning quiz id so the
// caller can invalidate cached question sets.
func (s *QuestionService) DeleteQuestion(questionID string) (string, error) {
	var question models.Question
	if err := s.db.Where("id = ?", questionID).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrQuestionNotFound
		}
		return "", err
	}

	if err := s.db.Delete(&question).Error; err != nil {
		return "", err
	}
	return question.QuizID, nil
}
