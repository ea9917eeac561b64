package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ShivamH1/QuizApp/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Attempt is the server-side state of one quiz-taking session: the cursor,
// the answers collected so far, and the timer anchor. Each attempt lives
// under its own key, scoped to the session that created it.
type Attempt struct {
	ID           string                      `json:"id"`
	QuizID       string                      `json:"quizId"`
	CurrentIndex int                         `json:"currentIndex"`
	Answers      map[string]models.OptionKey `json:"answers"`
	StartedAt    time.Time                   `json:"startedAt"`
}

// SubmissionResult is a scored attempt plus the elapsed time echoed back to
// the client.
type SubmissionResult struct {
	ScoreResult
	TimeTaken int `json:"timeTaken"`
}

type AttemptService struct {
	redis     *redis.Client
	questions *QuestionCache
	scoring   *ScoringService
	ttl       time.Duration
	clock     func() time.Time
}

func NewAttemptService(redisClient *redis.Client, questions *QuestionCache, scoring *ScoringService, ttl time.Duration) *AttemptService {
	return &AttemptService{
		redis:     redisClient,
		questions: questions,
		scoring:   scoring,
		ttl:       ttl,
		clock:     time.Now,
	}
}

// StartAttempt opens a new attempt against a quiz. Quizzes without
// questions cannot be attempted.
func (s *AttemptService) StartAttempt(ctx context.Context, quizID string) (*Attempt, error) {
	questions, err := s.questions.GetQuestions(quizID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	attempt := &Attempt{
		ID:        uuid.NewString(),
		QuizID:    quizID,
		Answers:   make(map[string]models.OptionKey),
		StartedAt: s.clock(),
	}

	if err := s.storeAttempt(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *AttemptService) GetAttempt(ctx context.Context, attemptID string) (*Attempt, error) {
	data, err := s.redis.Get(ctx, attemptKey(attemptID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrAttemptNotFound
		}
		log.Printf("Redis error getting attempt %s: %v", attemptID, err)
		return nil, err
	}

	var attempt Attempt
	if err := json.Unmarshal([]byte(data), &attempt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attempt state: %w", err)
	}
	return &attempt, nil
}

// RecordAnswer stores the selected option for a question and advances the
// cursor. Re-answering a question overwrites the earlier selection.
func (s *AttemptService) RecordAnswer(ctx context.Context, attemptID, questionID string, selected models.OptionKey) (*Attempt, error) {
	attempt, err := s.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	attempt.Answers[questionID] = selected
	attempt.CurrentIndex++

	if err := s.storeAttempt(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Seek moves the cursor for previous/next navigation without touching the
// recorded answers.
func (s *AttemptService) Seek(ctx context.Context, attemptID string, index int) (*Attempt, error) {
	if index < 0 {
		index = 0
	}

	attempt, err := s.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	attempt.CurrentIndex = index
	if err := s.storeAttempt(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// SubmitAttempt scores the attempt against the authoritative question set
// and consumes it: the attempt state is deleted once scored.
func (s *AttemptService) SubmitAttempt(ctx context.Context, attemptID string) (*SubmissionResult, error) {
	attempt, err := s.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.GetQuestions(attempt.QuizID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		// The quiz was emptied after the attempt started.
		return nil, ErrNoQuestions
	}

	result := s.scoring.CalculateScore(questions, attempt.Answers)
	timeTaken := int(s.clock().Sub(attempt.StartedAt).Seconds())

	if err := s.redis.Del(ctx, attemptKey(attemptID)).Err(); err != nil {
		log.Printf("Redis error deleting attempt %s: %v", attemptID, err)
	}

	return &SubmissionResult{ScoreResult: result, TimeTaken: timeTaken}, nil
}

func (s *AttemptService) storeAttempt(ctx context.Context, attempt *Attempt) error {
	data, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("failed to marshal attempt state: %w", err)
	}

	if err := s.redis.Set(ctx, attemptKey(attempt.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store attempt in Redis: %w", err)
	}
	return nil
}

func attemptKey(attemptID string) string {
	return "attempt:" + attemptID
}
