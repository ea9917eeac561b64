package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ShivamH1/QuizApp/models"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newAttemptFixture(t *testing.T, questions []models.Question) (*AttemptService, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewQuestionCache(&countingLoader{questions: questions}, time.Minute)
	service := NewAttemptService(client, cache, NewScoringService(), time.Hour)
	return service, mr
}

func sampleQuestions() []models.Question {
	return []models.Question{
		{ID: "q1", QuestionText: "one", CorrectOption: models.OptionKeyB, OrderIndex: 1},
		{ID: "q2", QuestionText: "two", CorrectOption: models.OptionKeyC, OrderIndex: 2},
	}
}

func TestStartAttemptStoresState(t *testing.T) {
	ctx := context.Background()
	service, mr := newAttemptFixture(t, sampleQuestions())

	attempt, err := service.StartAttempt(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}
	if attempt.ID == "" || attempt.QuizID != "quiz-1" {
		t.Fatalf("unexpected attempt: %+v", attempt)
	}
	if attempt.CurrentIndex != 0 || len(attempt.Answers) != 0 {
		t.Fatalf("expected fresh cursor and answers: %+v", attempt)
	}
	if !mr.Exists("attempt:" + attempt.ID) {
		t.Fatalf("expected redis key for attempt")
	}
}

func TestStartAttemptRejectsEmptyQuiz(t *testing.T) {
	ctx := context.Background()
	service, _ := newAttemptFixture(t, nil)

	if _, err := service.StartAttempt(ctx, "quiz-1"); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestRecordAnswerAdvancesCursor(t *testing.T) {
	ctx := context.Background()
	service, _ := newAttemptFixture(t, sampleQuestions())

	attempt, err := service.StartAttempt(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}

	updated, err := service.RecordAnswer(ctx, attempt.ID, "q1", models.OptionKeyB)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if updated.CurrentIndex != 1 {
		t.Errorf("expected cursor advanced to 1, got %d", updated.CurrentIndex)
	}
	if updated.Answers["q1"] != models.OptionKeyB {
		t.Errorf("expected answer recorded, got %+v", updated.Answers)
	}

	// Re-answering overwrites.
	updated, err = service.RecordAnswer(ctx, attempt.ID, "q1", models.OptionKeyA)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if updated.Answers["q1"] != models.OptionKeyA {
		t.Errorf("expected overwritten answer, got %+v", updated.Answers)
	}
}

func TestSeekMovesCursorWithoutTouchingAnswers(t *testing.T) {
	ctx := context.Background()
	service, _ := newAttemptFixture(t, sampleQuestions())

	attempt, _ := service.StartAttempt(ctx, "quiz-1")
	if _, err := service.RecordAnswer(ctx, attempt.ID, "q1", models.OptionKeyB); err != nil {
		t.Fatalf("record answer: %v", err)
	}

	moved, err := service.Seek(ctx, attempt.ID, 0)
	if err != nil {
		t.Fatalf("seek: %v", err)
	}
	if moved.CurrentIndex != 0 {
		t.Errorf("expected cursor back at 0, got %d", moved.CurrentIndex)
	}
	if moved.Answers["q1"] != models.OptionKeyB {
		t.Errorf("expected answers preserved, got %+v", moved.Answers)
	}

	if moved, err = service.Seek(ctx, attempt.ID, -5); err != nil || moved.CurrentIndex != 0 {
		t.Errorf("expected negative index clamped to 0, got %d (%v)", moved.CurrentIndex, err)
	}
}

func TestSubmitAttemptScoresAndConsumes(t *testing.T) {
	ctx := context.Background()
	service, mr := newAttemptFixture(t, sampleQuestions())

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	now := start
	service.clock = func() time.Time { return now }

	attempt, err := service.StartAttempt(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}
	if _, err := service.RecordAnswer(ctx, attempt.ID, "q1", models.OptionKeyB); err != nil {
		t.Fatalf("record answer: %v", err)
	}

	now = start.Add(95 * time.Second)
	result, err := service.SubmitAttempt(ctx, attempt.ID)
	if err != nil {
		t.Fatalf("submit attempt: %v", err)
	}

	if result.Score != 1 || result.TotalQuestions != 2 || result.Percentage != 50 {
		t.Errorf("unexpected score: %+v", result.ScoreResult)
	}
	if result.TimeTaken != 95 {
		t.Errorf("expected timeTaken 95, got %d", result.TimeTaken)
	}

	if mr.Exists("attempt:" + attempt.ID) {
		t.Errorf("expected attempt consumed after submit")
	}
	if _, err := service.GetAttempt(ctx, attempt.ID); !errors.Is(err, ErrAttemptNotFound) {
		t.Errorf("expected ErrAttemptNotFound after submit, got %v", err)
	}
}

func TestAttemptExpiresWithTTL(t *testing.T) {
	ctx := context.Background()
	service, mr := newAttemptFixture(t, sampleQuestions())
	service.ttl = time.Minute

	attempt, err := service.StartAttempt(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := service.GetAttempt(ctx, attempt.ID); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("expected expired attempt to be gone, got %v", err)
	}
}

func TestGetAttemptUnknown(t *testing.T) {
	ctx := context.Background()
	service, _ := newAttemptFixture(t, sampleQuestions())

	if _, err := service.GetAttempt(ctx, "ghost"); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound, got %v", err)
	}
}
