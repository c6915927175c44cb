package httpapi

import (
	"net/http"

	"github.com/riskibarqy/intake-form/internal/domain/form"
	"github.com/riskibarqy/intake-form/internal/platform/optional"
	"github.com/riskibarqy/intake-form/internal/usecase"
)

// Presence is checked through pointers so empty strings and step 0 are accepted.
type saveFormRequest struct {
	UserID          *string `json:"user_id"`
	FormStep        *int32  `json:"form_step" validate:"required"`
	Email           *string `json:"email" validate:"required"`
	TherapyForWhom  *string `json:"therapy_for_whom" validate:"required"`
	TherapistGender *string `json:"therapist_gender" validate:"required"`
}

type saveFormResponse struct {
	UserID string `json:"user_id"`
}

type loadFormRequest struct {
	UserID *string `json:"user_id" validate:"required"`
}

type loadFormResponse struct {
	UserID          optional.Value[string] `json:"user_id"`
	FormStep        optional.Value[int32]  `json:"form_step"`
	Email           optional.Value[string] `json:"email"`
	TherapyForWhom  optional.Value[string] `json:"therapy_for_whom"`
	TherapistGender optional.Value[string] `json:"therapist_gender"`
}

func (h *Handler) SaveForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveForm")
	defer span.End()

	var req saveFormRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "reject save form request", "error", err)
		writeError(ctx, w, err)
		return
	}

	userID, err := h.formService.Save(ctx, usecase.SaveFormInput{
		UserID:          req.UserID,
		Step:            *req.FormStep,
		Email:           *req.Email,
		TherapyForWhom:  *req.TherapyForWhom,
		TherapistGender: *req.TherapistGender,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "save form failed", "form_step", *req.FormStep, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, saveFormResponse{UserID: userID})
}

func (h *Handler) LoadForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadForm")
	defer span.End()

	var req loadFormRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "reject load form request", "error", err)
		writeError(ctx, w, err)
		return
	}

	snapshot, err := h.formService.Load(ctx, usecase.LoadFormInput{UserID: *req.UserID})
	if err != nil {
		h.logger.ErrorContext(ctx, "load form failed", "user_id", *req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, snapshotToDTO(snapshot))
}

func snapshotToDTO(snapshot form.Snapshot) loadFormResponse {
	return loadFormResponse{
		UserID:          snapshot.UserID,
		FormStep:        snapshot.Step,
		Email:           snapshot.Email,
		TherapyForWhom:  snapshot.TherapyForWhom,
		TherapistGender: snapshot.TherapistGender,
	}
}
