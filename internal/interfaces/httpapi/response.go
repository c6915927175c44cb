package httpapi

import (
	"context"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/intake-form/internal/platform/apperr"
	"github.com/valyala/bytebufferpool"
)

const errorDomain = "intake-form"

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// fallbackInternalBody is written when the payload itself cannot be encoded.
var fallbackInternalBody = []byte(`{"error":{"code":500,"message":"internal server error","status":"INTERNAL"}}` + "\n")

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w.Header().Set("Content-Type", "application/json")
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(fallbackInternalBody)
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

// writeError exposes detail only for caller mistakes; every other failure
// collapses to the generic internal body.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	if apperr.KindOf(err) != apperr.KindInvalidInput {
		writeInternalError(ctx, w)
		return
	}

	writeJSON(ctx, w, http.StatusBadRequest, errorEnvelope{
		Error: errorBody{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Status:  "INVALID_ARGUMENT",
			Errors: []errorItem{
				{
					Domain:  errorDomain,
					Reason:  "invalidInput",
					Message: err.Error(),
				},
			},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{
		Error: errorBody{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
			Status:  "INTERNAL",
		},
	})
}
