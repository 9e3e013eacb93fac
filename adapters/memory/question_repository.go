// Package memory provides bounded in-memory repositories used when no
// database is configured. History is capped; the oldest entries fall off.
package memory

import (
	"context"
	"sync"

	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/ports"
)

// DefaultCapacity bounds each in-memory store
const DefaultCapacity = 500

// QuestionRepositoryImpl implements QuestionRepository with in-memory storage
type QuestionRepositoryImpl struct {
	byID     map[core.QuestionID]*question.Question
	order    []core.QuestionID
	capacity int
	mu       sync.RWMutex
}

// NewQuestionRepository creates a bounded in-memory question repository.
// A capacity of zero or less selects DefaultCapacity.
func NewQuestionRepository(capacity int) ports.QuestionRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &QuestionRepositoryImpl{
		byID:     make(map[core.QuestionID]*question.Question),
		order:    make([]core.QuestionID, 0, capacity),
		capacity: capacity,
	}
}

// SaveQuestion records one generated question, evicting the oldest entry
// once the store is full
func (r *QuestionRepositoryImpl) SaveQuestion(ctx context.Context, q *question.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[q.ID]; !exists && len(r.order) >= r.capacity {
		oldest := r.order[0]
		delete(r.byID, oldest)
		r.order = append(r.order[:0], r.order[1:]...)
	}

	stored := *q
	if _, exists := r.byID[q.ID]; !exists {
		r.order = append(r.order, q.ID)
	}
	r.byID[q.ID] = &stored

	return nil
}

// GetQuestion retrieves a question by ID
func (r *QuestionRepositoryImpl) GetQuestion(ctx context.Context, id core.QuestionID) (*question.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, exists := r.byID[id]
	if !exists {
		return nil, core.NewNotFoundError("question", id.String())
	}

	out := *q
	return &out, nil
}

// RecentQuestions returns the newest questions first, up to limit
func (r *QuestionRepositoryImpl) RecentQuestions(ctx context.Context, limit int) ([]*question.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.order) {
		limit = len(r.order)
	}

	out := make([]*question.Question, 0, limit)
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		q := *r.byID[r.order[i]]
		out = append(out, &q)
	}

	return out, nil
}

// CountQuestions returns the total recorded
func (r *QuestionRepositoryImpl) CountQuestions(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order), nil
}
