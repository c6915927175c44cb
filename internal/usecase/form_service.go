package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/intake-form/internal/domain/form"
	"github.com/riskibarqy/intake-form/internal/platform/apperr"
	"github.com/riskibarqy/intake-form/internal/platform/id"
)

type SaveFormInput struct {
	// UserID is optional. Nil or empty asks the service to issue a new one.
	UserID          *string
	Step            int32
	Email           string
	TherapyForWhom  string
	TherapistGender string
}

type LoadFormInput struct {
	UserID string
}

// FormService persists and restores multi-step form progress.
type FormService struct {
	repo  form.Repository
	idGen id.Generator
	now   func() time.Time
}

func NewFormService(repo form.Repository, idGen id.Generator) *FormService {
	if idGen == nil {
		idGen = id.NewUUIDGenerator()
	}

	return &FormService{
		repo:  repo,
		idGen: idGen,
		now:   time.Now,
	}
}

// Save upserts the snapshot and returns the identifier it was stored under.
// Step is stored as given; no ordering or range is enforced.
func (s *FormService) Save(ctx context.Context, input SaveFormInput) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormService.Save")
	defer span.End()

	userID, err := s.resolveUserID(input.UserID)
	if err != nil {
		return "", apperr.Wrap(apperr.KindIO, "issue user id", err)
	}

	record := form.Record{
		UserID:          userID,
		Step:            input.Step,
		Email:           input.Email,
		TherapyForWhom:  input.TherapyForWhom,
		TherapistGender: input.TherapistGender,
		UpdatedAt:       s.now().UTC(),
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return "", apperr.Wrap(apperr.KindStorage, "save form data", err)
	}

	return userID, nil
}

// Load returns the stored snapshot, or the start-of-form state when nothing
// is stored for the identifier. An unknown identifier is not an error.
func (s *FormService) Load(ctx context.Context, input LoadFormInput) (form.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormService.Load")
	defer span.End()

	snapshot, found, err := s.repo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return form.Snapshot{}, apperr.Wrap(apperr.KindStorage, "load form data", err)
	}
	if !found {
		return form.FreshSnapshot(input.UserID), nil
	}

	return snapshot, nil
}

func (s *FormService) resolveUserID(requested *string) (string, error) {
	if requested != nil && *requested != "" {
		return *requested, nil
	}

	return s.idGen.NewID()
}
