package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/intake-form/internal/domain/form"
	"github.com/riskibarqy/intake-form/internal/platform/optional"
)

type FormRepository struct {
	mu      sync.RWMutex
	records map[string]form.Record
}

func NewFormRepository() *FormRepository {
	return &FormRepository{
		records: make(map[string]form.Record),
	}
}

func (r *FormRepository) GetByUserID(_ context.Context, userID string) (form.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.records[userID]
	if !ok {
		return form.Snapshot{}, false, nil
	}

	return form.Snapshot{
		UserID:          optional.Some(item.UserID),
		Step:            optional.Some(item.Step),
		Email:           optional.Some(item.Email),
		TherapyForWhom:  optional.Some(item.TherapyForWhom),
		TherapistGender: optional.Some(item.TherapistGender),
	}, true, nil
}

func (r *FormRepository) Upsert(_ context.Context, record form.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.UserID] = record
	return nil
}

// Get returns the raw stored record, including UpdatedAt.
func (r *FormRepository) Get(userID string) (form.Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.records[userID]
	return item, ok
}

func (r *FormRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records)
}
