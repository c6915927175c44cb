package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/intake-form/internal/platform/apperr"
	"github.com/riskibarqy/intake-form/internal/platform/logging"
	"github.com/riskibarqy/intake-form/internal/usecase"
)

const defaultMaxBodyBytes int64 = 64 << 10

type Handler struct {
	formService  *usecase.FormService
	logger       *logging.Logger
	validator    *validator.Validate
	maxBodyBytes int64
}

func NewHandler(formService *usecase.FormService, logger *logging.Logger, maxBodyBytes int64) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	return &Handler{
		formService:  formService,
		logger:       logger,
		validator:    validator.New(),
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeRequest reads one JSON document from the capped body and checks
// field presence. Unknown fields are ignored.
func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := sonic.ConfigDefault.NewDecoder(body).Decode(payload); err != nil {
		return apperr.Wrap(apperr.KindInvalidInput, "decode request", fmt.Errorf("invalid JSON payload: %w", err))
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return apperr.Wrap(apperr.KindInvalidInput, "validate request", fmt.Errorf("validation failed: %w", err))
	}

	return nil
}
