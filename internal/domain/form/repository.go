package form

import "context"

type Repository interface {
	// GetByUserID returns the stored snapshot and whether one exists.
	GetByUserID(ctx context.Context, userID string) (Snapshot, bool, error)
	// Upsert inserts record or fully replaces the one with the same UserID.
	Upsert(ctx context.Context, record Record) error
}
