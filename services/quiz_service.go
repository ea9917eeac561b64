package services

import (
	"errors"

	"github.com/ShivamH1/QuizApp/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	ID            string            `json:"id"`
	Title         string            `json:"title" binding:"required"`
	Description   string            `json:"description" binding:"required"`
	Category      string            `json:"category" binding:"required"`
	Difficulty    models.Difficulty `json:"difficulty" binding:"required"`
	QuestionCount int               `json:"questionCount" binding:"required"`
}

type UpdateQuizRequest struct {
	Title         *string            `json:"title"`
	Description   *string            `json:"description"`
	Category      *string            `json:"category"`
	Difficulty    *models.Difficulty `json:"difficulty"`
	QuestionCount *int               `json:"questionCount"`
}

func (s *QuizService) GetAllQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

// GetQuizByID returns the quiz with its questions ordered for display.
// Ties on order_index fall back to insertion order.
func (s *QuizService) GetQuizByID(quizID string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.Where("id = ?", quizID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC, created_at ASC")
		}).
		First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) CreateQuiz(req *CreateQuizRequest) (*models.Quiz, error) {
	if !req.Difficulty.Valid() {
		return nil, ErrInvalidDifficulty
	}

	quiz := models.Quiz{
		ID:            req.ID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Difficulty:    req.Difficulty,
		QuestionCount: req.QuestionCount,
	}

	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) UpdateQuiz(quizID string, req *UpdateQuizRequest) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.Category != nil {
		quiz.Category = *req.Category
	}
	if req.Difficulty != nil {
		if !req.Difficulty.Valid() {
			return nil, ErrInvalidDifficulty
		}
		quiz.Difficulty = *req.Difficulty
	}
	if req.QuestionCount != nil {
		quiz.QuestionCount = *req.QuestionCount
	}

	if err := s.db.Save(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// DeleteQuiz removes the quiz and all of its questions in one transaction.
func (s *QuizService) DeleteQuiz(quizID string) error {
	var quiz models.Quiz
	if err := s.db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuizNotFound
		}
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Quiz{}, "id = ?", quizID).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
