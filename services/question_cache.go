package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ShivamH1/QuizApp/models"

	"golang.org/x/sync/singleflight"
)

// AuthoritativeLoader fetches the full question set for a quiz, correct
// options included.
type AuthoritativeLoader interface {
	ListAuthoritative(quizID string) ([]models.Question, error)
}

// QuestionCache keeps authoritative question sets in memory with a TTL so
// the submission path does not hit the database on every score request.
// Concurrent misses for the same quiz are collapsed into one load.
type QuestionCache struct {
	loader AuthoritativeLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedQuestions
}

type cachedQuestions struct {
	questions []models.Question
	expiresAt time.Time
}

func NewQuestionCache(loader AuthoritativeLoader, ttl time.Duration) *QuestionCache {
	return &QuestionCache{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedQuestions),
	}
}

func (c *QuestionCache) GetQuestions(quizID string) ([]models.Question, error) {
	now := c.clock()

	c.mu.RLock()
	if entry, ok := c.cache[quizID]; ok && entry.expiresAt.After(now) {
		c.mu.RUnlock()
		return entry.questions, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do(quizID, func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if entry, ok := c.cache[quizID]; ok && entry.expiresAt.After(now) {
			c.mu.RUnlock()
			return entry.questions, nil
		}
		c.mu.RUnlock()

		questions, err := c.loader.ListAuthoritative(quizID)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cache[quizID] = cachedQuestions{
			questions: questions,
			expiresAt: now.Add(c.ttlWithJitter()),
		}
		c.mu.Unlock()
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Question), nil
}

// Invalidate drops the cached set for a quiz. Called after any question or
// quiz mutation so scoring never runs against stale answers.
func (c *QuestionCache) Invalidate(quizID string) {
	c.mu.Lock()
	delete(c.cache, quizID)
	c.mu.Unlock()
}

func (c *QuestionCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
