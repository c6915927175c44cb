package sqlstore

import (
	"database/sql"
	"fmt"
	"testing"

	crerr "github.com/cockroachdb/errors"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches wrapped no rows", func(t *testing.T) {
		if !isNotFound(crerr.Wrap(sql.ErrNoRows, "get form")) {
			t.Fatalf("expected true for wrapped sql.ErrNoRows")
		}
		if !isNotFound(fmt.Errorf("query: %w", sql.ErrNoRows)) {
			t.Fatalf("expected true for fmt-wrapped sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(sql.ErrConnDone) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestOptionalConversions(t *testing.T) {
	if got := optionalString(sql.NullString{}); got.IsSome() {
		t.Fatalf("expected NULL text to be absent")
	}
	if got, ok := optionalString(sql.NullString{String: "", Valid: true}).Get(); !ok || got != "" {
		t.Fatalf("expected empty text to stay present, got %q present=%t", got, ok)
	}
	if got := optionalInt32(sql.NullInt32{}); got.IsSome() {
		t.Fatalf("expected NULL step to be absent")
	}
	if got, ok := optionalInt32(sql.NullInt32{Int32: 7, Valid: true}).Get(); !ok || got != 7 {
		t.Fatalf("unexpected step: %d present=%t", got, ok)
	}
}
