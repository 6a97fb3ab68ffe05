package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/voicebridge/pkg/tts"

	"github.com/go-chi/chi/v5/middleware"
)

// Error is what a client sees for any failed request.
type Error struct {
	Status int

	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details == "" {
		return e.Message
	}

	return e.Message + ": " + e.Details
}

var (
	errMissingText  = &Error{Status: http.StatusBadRequest, Message: "missing text content"}
	errMissingVoice = &Error{Status: http.StatusBadRequest, Message: "missing voice id"}

	errMethodNotAllowed = &Error{Status: http.StatusMethodNotAllowed, Message: "method not allowed"}
)

type operation string

const (
	operationVoices operation = "voices"
	operationSpeak  operation = "speak"
)

func (op operation) failure() string {
	if op == operationVoices {
		return "voice list fetch failed"
	}

	return "speech generation failed"
}

// normalizeError maps any failure to an Error. Upstream status codes are
// mirrored for speech only; the voice list always fails with 500.
func normalizeError(op operation, err error) *Error {
	var e *Error

	if errors.As(err, &e) {
		return e
	}

	result := &Error{
		Status: http.StatusInternalServerError,

		Message: op.failure(),
		Details: err.Error(),
	}

	var statusErr *tts.StatusError

	if errors.As(err, &statusErr) {
		result.Details = statusErr.Body

		if op == operationSpeak {
			result.Status = statusErr.StatusCode
		}
	}

	return result
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op operation, err error) {
	e := normalizeError(op, err)

	attrs := []any{
		slog.String("operation", string(op)),
		slog.Int("status", e.Status),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	}

	switch {
	case errors.Is(err, context.Canceled):
		slog.DebugContext(r.Context(), "client went away", append(attrs, slog.Any("error", err))...)

	case e.Status < http.StatusInternalServerError && !isUpstream(err):
		slog.DebugContext(r.Context(), "request rejected", append(attrs, slog.String("error", e.Message))...)

	default:
		slog.WarnContext(r.Context(), e.Message, append(attrs, slog.String("details", e.Details))...)
	}

	writeError(w, e)
}

func isUpstream(err error) bool {
	var statusErr *tts.StatusError
	return errors.As(err, &statusErr)
}

func writeError(w http.ResponseWriter, e *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)

	resp := ErrorResponse{
		Error:   e.Message,
		Details: e.Details,
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(resp)
}
