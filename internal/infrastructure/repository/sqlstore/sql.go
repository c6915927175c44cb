package sqlstore

import (
	"database/sql"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/intake-form/internal/platform/optional"
)

func isNotFound(err error) bool {
	return crerr.Is(err, sql.ErrNoRows)
}

func optionalString(v sql.NullString) optional.Value[string] {
	if !v.Valid {
		return optional.None[string]()
	}
	return optional.Some(v.String)
}

func optionalInt32(v sql.NullInt32) optional.Value[int32] {
	if !v.Valid {
		return optional.None[int32]()
	}
	return optional.Some(v.Int32)
}
