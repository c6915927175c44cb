package sqlstore

import (
	"database/sql"
	"time"
)

const formTable = "form_data"

type formTableModel struct {
	UserID          sql.NullString `db:"user_id"`
	FormStep        sql.NullInt32  `db:"form_step"`
	Email           sql.NullString `db:"email"`
	TherapyForWhom  sql.NullString `db:"therapy_for_whom"`
	TherapistGender sql.NullString `db:"therapist_gender"`
}

type formUpsertModel struct {
	UserID          string    `db:"user_id"`
	FormStep        int32     `db:"form_step"`
	Email           string    `db:"email"`
	TherapyForWhom  string    `db:"therapy_for_whom"`
	TherapistGender string    `db:"therapist_gender"`
	UpdatedAt       time.Time `db:"updated_at"`
}
