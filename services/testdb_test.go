package services

import (
	"testing"

	"github.com/ShivamH1/QuizApp/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated with the full
// schema. A single connection keeps the in-memory store alive for the
// whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Quiz{}, &models.Question{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedQuiz(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	quiz := models.Quiz{
		ID:            id,
		Title:         "Test Quiz",
		Description:   "A quiz for tests",
		Category:      "Testing",
		Difficulty:    models.DifficultyEasy,
		QuestionCount: 3,
	}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
}

func seedQuestion(t *testing.T, db *gorm.DB, id, quizID string, orderIndex int, correct models.OptionKey) {
	t.Helper()
	question := models.Question{
		ID:            id,
		QuizID:        quizID,
		QuestionText:  "question " + id,
		OptionA:       "A",
		OptionB:       "B",
		OptionC:       "C",
		OptionD:       "D",
		CorrectOption: correct,
		OrderIndex:    orderIndex,
	}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
}
