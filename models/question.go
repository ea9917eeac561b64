package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OptionKey identifies one of the four fixed answer slots of a question.
type OptionKey string

const (
	OptionKeyA OptionKey = "a"
	OptionKeyB OptionKey = "b"
	OptionKeyC OptionKey = "c"
	OptionKeyD OptionKey = "d"
)

func (k OptionKey) Valid() bool {
	switch k {
	case OptionKeyA, OptionKeyB, OptionKeyC, OptionKeyD:
		return true
	}
	return false
}

type Question struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	QuizID        string    `json:"quizId" gorm:"not null;index"`
	QuestionText  string    `json:"questionText" gorm:"not null"`
	OptionA       string    `json:"optionA" gorm:"not null"`
	OptionB       string    `json:"optionB" gorm:"not null"`
	OptionC       string    `json:"optionC" gorm:"not null"`
	OptionD       string    `json:"optionD" gorm:"not null"`
	CorrectOption OptionKey `json:"correctOption" gorm:"not null"`
	OrderIndex    int       `json:"orderIndex" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// PublicQuestion is the projection served to quiz takers. It has no
// correct-option field at all, so no serialization path can leak it.
type PublicQuestion struct {
	ID           string `json:"id"`
	QuestionText string `json:"questionText"`
	OptionA      string `json:"optionA"`
	OptionB      string `json:"optionB"`
	OptionC      string `json:"optionC"`
	OptionD      string `json:"optionD"`
	OrderIndex   int    `json:"orderIndex"`
}
