package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/intake-form/internal/domain/form"
)

func TestFormRepository_UpsertReplacesWholeRecord(t *testing.T) {
	repo := NewFormRepository()
	ctx := context.Background()

	first := form.Record{UserID: "u-1", Step: 1, Email: "a@b.com", TherapyForWhom: "self", TherapistGender: "female", UpdatedAt: time.Unix(1, 0).UTC()}
	second := form.Record{UserID: "u-1", Step: 3, Email: "", TherapyForWhom: "child", TherapistGender: "", UpdatedAt: time.Unix(2, 0).UTC()}

	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert first: %v", err)
	}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("upsert second: %v", err)
	}

	if repo.Len() != 1 {
		t.Fatalf("expected one record, got %d", repo.Len())
	}
	stored, ok := repo.Get("u-1")
	if !ok || stored != second {
		t.Fatalf("expected second record, got %+v", stored)
	}

	snap, found, err := repo.GetByUserID(ctx, "u-1")
	if err != nil || !found {
		t.Fatalf("get by user id: found=%t err=%v", found, err)
	}
	if email, ok := snap.Email.Get(); !ok || email != "" {
		t.Fatalf("expected empty email to be present, got %q present=%t", email, ok)
	}
}

func TestFormRepository_MissingUser(t *testing.T) {
	repo := NewFormRepository()

	_, found, err := repo.GetByUserID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get by user id: %v", err)
	}
	if found {
		t.Fatalf("expected missing user to be not found")
	}
}
