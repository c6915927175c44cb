package form

import (
	"time"

	"github.com/riskibarqy/intake-form/internal/platform/optional"
)

// DefaultStep is the step reported for an identifier with no stored progress.
const DefaultStep int32 = 1

// Record is one persisted snapshot of a user's progress. Every write replaces
// all fields of the previous record with the same UserID.
type Record struct {
	UserID          string
	Step            int32
	Email           string
	TherapyForWhom  string
	TherapistGender string
	UpdatedAt       time.Time
}

// Snapshot is the read model. Fields backed by nullable columns are optional.
type Snapshot struct {
	UserID          optional.Value[string]
	Step            optional.Value[int32]
	Email           optional.Value[string]
	TherapyForWhom  optional.Value[string]
	TherapistGender optional.Value[string]
}

// FreshSnapshot is the start-of-form state synthesized for an unknown identifier.
// It is never persisted.
func FreshSnapshot(userID string) Snapshot {
	return Snapshot{
		UserID: optional.Some(userID),
		Step:   optional.Some(DefaultStep),
	}
}
