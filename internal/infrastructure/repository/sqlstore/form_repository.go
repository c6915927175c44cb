package sqlstore

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/intake-form/internal/domain/form"
	qb "github.com/riskibarqy/intake-form/internal/platform/querybuilder"
)

// FormRepository stores form snapshots in the form_data table. The SQL it
// emits runs unchanged on PostgreSQL and SQLite.
type FormRepository struct {
	db      *sqlx.DB
	columns []string
	now     func() time.Time
}

func NewFormRepository(db *sqlx.DB) *FormRepository {
	columns, err := qb.Columns(formTableModel{})
	if err != nil {
		panic(err)
	}

	return &FormRepository{
		db:      db,
		columns: columns,
		now:     time.Now,
	}
}

func (r *FormRepository) GetByUserID(ctx context.Context, userID string) (form.Snapshot, bool, error) {
	query, args, err := qb.Select(r.columns...).
		From(formTable).
		Where(qb.Eq("user_id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return form.Snapshot{}, false, crerr.Wrap(err, "build get form data query")
	}

	var row formTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return form.Snapshot{}, false, nil
		}
		return form.Snapshot{}, false, crerr.Wrap(err, "get form data")
	}

	return formSnapshotFromRow(row), true, nil
}

func (r *FormRepository) Upsert(ctx context.Context, record form.Record) error {
	updatedAt := record.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now()
	}

	query, args, err := qb.UpsertModel(formTable, formUpsertModel{
		UserID:          record.UserID,
		FormStep:        record.Step,
		Email:           record.Email,
		TherapyForWhom:  record.TherapyForWhom,
		TherapistGender: record.TherapistGender,
		UpdatedAt:       updatedAt.UTC(),
	}, "user_id").ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build upsert form data query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "upsert form data")
	}

	return nil
}

func formSnapshotFromRow(row formTableModel) form.Snapshot {
	return form.Snapshot{
		UserID:          optionalString(row.UserID),
		Step:            optionalInt32(row.FormStep),
		Email:           optionalString(row.Email),
		TherapyForWhom:  optionalString(row.TherapyForWhom),
		TherapistGender: optionalString(row.TherapistGender),
	}
}
