package services

import "errors"

var (
	// ErrQuizNotFound is returned when the referenced quiz id does not exist.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuestionNotFound is returned when the referenced question id does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrNoQuestions is returned when a quiz has no questions to score against.
	ErrNoQuestions = errors.New("quiz not found or has no questions")
	// ErrAttemptNotFound is returned when an attempt id is unknown or expired.
	ErrAttemptNotFound = errors.New("attempt not found")
	// ErrInvalidDifficulty is returned when a quiz difficulty is outside easy/medium/hard.
	ErrInvalidDifficulty = errors.New("difficulty must be one of: easy, medium, hard")
	// ErrInvalidOptionKey is returned when a correct option is outside a/b/c/d.
	ErrInvalidOptionKey = errors.New("correctOption must be one of: a, b, c, d")
)
