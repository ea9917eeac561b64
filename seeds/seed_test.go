package seeds

import (
	"testing"

	"github.com/ShivamH1/QuizApp/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func TestRunSeedsEmptyDatabase(t *testing.T) {
	db := newTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var quizCount, questionCount int64
	db.Model(&models.Quiz{}).Count(&quizCount)
	db.Model(&models.Question{}).Count(&questionCount)
	if quizCount != 3 {
		t.Errorf("expected 3 quizzes, got %d", quizCount)
	}
	if questionCount != 30 {
		t.Errorf("expected 30 questions, got %d", questionCount)
	}

	var quiz models.Quiz
	if err := db.First(&quiz, "id = ?", "general-knowledge").Error; err != nil {
		t.Fatalf("expected the general-knowledge quiz: %v", err)
	}
}

func TestRunSkipsNonEmptyDatabase(t *testing.T) {
	db := newTestDB(t)

	existing := models.Quiz{ID: "mine", Title: "t", Description: "d", Category: "c", Difficulty: models.DifficultyHard, QuestionCount: 1}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("seed existing quiz: %v", err)
	}

	if err := Run(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var count int64
	db.Model(&models.Quiz{}).Count(&count)
	if count != 1 {
		t.Errorf("expected untouched database, got %d quizzes", count)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Run(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	db.Model(&models.Quiz{}).Count(&count)
	if count != 3 {
		t.Errorf("expected 3 quizzes after repeated seed, got %d", count)
	}
}
