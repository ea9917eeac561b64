package handlers_test

import (
	"net/http"
	"testing"

	"github.com/ShivamH1/QuizApp/models"
	"github.com/ShivamH1/QuizApp/services"
)

func TestAttemptLifecycleOverHTTP(t *testing.T) {
	f := newFixture(t)
	f.seedQuiz(t, "quiz-1")
	f.seedQuestion(t, "q1", "quiz-1", 1, models.OptionKeyB)
	f.seedQuestion(t, "q2", "quiz-1", 2, models.OptionKeyC)

	w := f.request(t, http.MethodPost, "/api/attempts", map[string]interface{}{
		"quizId": "quiz-1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var attempt services.Attempt
	decode(t, w, &attempt)
	if attempt.ID == "" || attempt.QuizID != "quiz-1" {
		t.Fatalf("unexpected attempt: %+v", attempt)
	}

	w = f.request(t, http.MethodPut, "/api/attempts/"+attempt.ID+"/answer", map[string]interface{}{
		"questionId": "q1",
		"selected":   "b",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &attempt)
	if attempt.CurrentIndex != 1 || attempt.Answers["q1"] != models.OptionKeyB {
		t.Errorf("unexpected attempt state: %+v", attempt)
	}

	w = f.request(t, http.MethodPut, "/api/attempts/"+attempt.ID+"/seek", map[string]interface{}{
		"index": 0,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = f.request(t, http.MethodGet, "/api/attempts/"+attempt.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decode(t, w, &attempt)
	if attempt.CurrentIndex != 0 {
		t.Errorf("expected cursor at 0 after seek, got %d", attempt.CurrentIndex)
	}

	w = f.request(t, http.MethodPost, "/api/attempts/"+attempt.ID+"/submit", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result services.SubmissionResult
	decode(t, w, &result)
	if result.Score != 1 || result.TotalQuestions != 2 || result.Percentage != 50 {
		t.Errorf("unexpected result: %+v", result.ScoreResult)
	}

	// Attempts are consumed by submission.
	if w := f.request(t, http.MethodGet, "/api/attempts/"+attempt.ID, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after submit, got %d", w.Code)
	}
}

func TestStartAttemptEmptyQuiz(t *testing.T) {
	f := newFixture(t)
	f.seedQuiz(t, "quiz-1")

	w := f.request(t, http.MethodPost, "/api/attempts", map[string]interface{}{
		"quizId": "quiz-1",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for quiz without questions, got %d", w.Code)
	}
}

func TestStartAttemptMissingQuizID(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodPost, "/api/attempts", map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAttemptEndpointsUnknownID(t *testing.T) {
	f := newFixture(t)

	if w := f.request(t, http.MethodGet, "/api/attempts/ghost", nil); w.Code != http.StatusNotFound {
		t.Errorf("get: expected 404, got %d", w.Code)
	}
	if w := f.request(t, http.MethodPost, "/api/attempts/ghost/submit", nil); w.Code != http.StatusNotFound {
		t.Errorf("submit: expected 404, got %d", w.Code)
	}
	w := f.request(t, http.MethodPut, "/api/attempts/ghost/answer", map[string]interface{}{
		"questionId": "q1",
		"selected":   "a",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("answer: expected 404, got %d", w.Code)
	}
}
