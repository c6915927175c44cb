package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/riskibarqy/intake-form/internal/domain/form"
	formmock "github.com/riskibarqy/intake-form/internal/mocks/domain/form"
	"github.com/riskibarqy/intake-form/internal/platform/apperr"
	"github.com/riskibarqy/intake-form/internal/platform/optional"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFormService_Save_UpsertsFullRecordUsingMockery(t *testing.T) {
	t.Parallel()

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "trace-123")
	repo := formmock.NewRepository(t)
	service := NewFormService(repo, fixedIDGenerator{id: "issued-1"})

	repo.
		On("Upsert", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.MatchedBy(func(r form.Record) bool {
			return r.UserID == "issued-1" &&
				r.Step == 3 &&
				r.Email == "c@d.com" &&
				r.TherapyForWhom == "child" &&
				r.TherapistGender == "no-preference" &&
				!r.UpdatedAt.IsZero()
		})).
		Return(nil).
		Once()

	got, err := service.Save(ctx, SaveFormInput{
		Step:            3,
		Email:           "c@d.com",
		TherapyForWhom:  "child",
		TherapistGender: "no-preference",
	})
	require.NoError(t, err)
	require.Equal(t, "issued-1", got)
}

func TestFormService_Save_StorageFailureUsingMockery(t *testing.T) {
	t.Parallel()

	repo := formmock.NewRepository(t)
	service := NewFormService(repo, fixedIDGenerator{id: "issued-1"})

	repo.On("Upsert", mock.Anything, mock.Anything).Return(sql.ErrConnDone).Once()

	got, err := service.Save(context.Background(), SaveFormInput{Step: 1})
	require.Empty(t, got)
	require.True(t, apperr.IsKind(err, apperr.KindStorage), "unexpected kind: %s", apperr.KindOf(err))
	require.True(t, errors.Is(err, sql.ErrConnDone))
}

func TestFormService_Load_ReturnsStoredSnapshotUsingMockery(t *testing.T) {
	t.Parallel()

	repo := formmock.NewRepository(t)
	service := NewFormService(repo, nil)
	stored := form.Snapshot{
		UserID: optional.Some("u-1"),
		Step:   optional.Some[int32](4),
		Email:  optional.Some("x@y.com"),
	}

	repo.On("GetByUserID", mock.Anything, "u-1").Return(stored, true, nil).Once()

	got, err := service.Load(context.Background(), LoadFormInput{UserID: "u-1"})
	require.NoError(t, err)
	require.Equal(t, stored, got)
	require.False(t, got.TherapyForWhom.IsSome(), "nullable column stays absent")
}

func TestFormService_Load_StorageFailureUsingMockery(t *testing.T) {
	t.Parallel()

	repo := formmock.NewRepository(t)
	service := NewFormService(repo, nil)

	repo.On("GetByUserID", mock.Anything, "u-1").Return(form.Snapshot{}, false, errors.New("connection refused")).Once()

	_, err := service.Load(context.Background(), LoadFormInput{UserID: "u-1"})
	require.True(t, apperr.IsKind(err, apperr.KindStorage), "unexpected kind: %s", apperr.KindOf(err))
}
