package memory

import (
	"context"
	"sync"

	"questgen/domain/assessment"
	"questgen/domain/core"
	"questgen/ports"
)

// WorksheetRepositoryImpl implements WorksheetRepository with in-memory storage
type WorksheetRepositoryImpl struct {
	byID     map[core.WorksheetID]*assessment.Assessment
	byCode   map[string]core.WorksheetID
	order    []core.WorksheetID
	capacity int
	mu       sync.RWMutex
}

// NewWorksheetRepository creates a bounded in-memory worksheet repository.
// A capacity of zero or less selects DefaultCapacity.
func NewWorksheetRepository(capacity int) ports.WorksheetRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &WorksheetRepositoryImpl{
		byID:     make(map[core.WorksheetID]*assessment.Assessment),
		byCode:   make(map[string]core.WorksheetID),
		order:    make([]core.WorksheetID, 0, capacity),
		capacity: capacity,
	}
}

// SaveWorksheet records a built assessment under its share code, evicting
// the oldest entry once the store is full. An evicted share code stops
// resolving.
func (r *WorksheetRepositoryImpl) SaveWorksheet(ctx context.Context, a *assessment.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists && len(r.order) >= r.capacity {
		oldest := r.order[0]
		if old, ok := r.byID[oldest]; ok && old.Code != "" {
			delete(r.byCode, old.Code)
		}
		delete(r.byID, oldest)
		r.order = append(r.order[:0], r.order[1:]...)
	}

	stored := *a
	if _, exists := r.byID[a.ID]; !exists {
		r.order = append(r.order, a.ID)
	}
	r.byID[a.ID] = &stored
	if a.Code != "" {
		r.byCode[a.Code] = a.ID
	}

	return nil
}

// GetWorksheet retrieves an assessment by ID
func (r *WorksheetRepositoryImpl) GetWorksheet(ctx context.Context, id core.WorksheetID) (*assessment.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.byID[id]
	if !exists {
		return nil, core.NewNotFoundError("worksheet", id.String())
	}

	out := *a
	return &out, nil
}

// GetWorksheetByCode resolves a share code
func (r *WorksheetRepositoryImpl) GetWorksheetByCode(ctx context.Context, code string) (*assessment.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byCode[code]
	if !exists {
		return nil, core.NewNotFoundError("worksheet", code)
	}

	a := *r.byID[id]
	return &a, nil
}

// RecentWorksheets returns the newest assessments first, up to limit
func (r *WorksheetRepositoryImpl) RecentWorksheets(ctx context.Context, limit int) ([]*assessment.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.order) {
		limit = len(r.order)
	}

	out := make([]*assessment.Assessment, 0, limit)
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		a := *r.byID[r.order[i]]
		out = append(out, &a)
	}

	return out, nil
}
