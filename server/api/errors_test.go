package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/voicebridge/pkg/tts"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeError(t *testing.T) {
	upstream := &tts.StatusError{StatusCode: http.StatusTooManyRequests, Body: "slow down"}

	tests := []struct {
		name string

		op  operation
		err error

		status  int
		message string
		details string
	}{
		{"validation", operationSpeak, errMissingVoice, http.StatusBadRequest, "missing voice id", ""},
		{"speak upstream status", operationSpeak, upstream, http.StatusTooManyRequests, "speech generation failed", "slow down"},
		{"voices upstream status", operationVoices, upstream, http.StatusInternalServerError, "voice list fetch failed", "slow down"},
		{"wrapped upstream status", operationSpeak, fmt.Errorf("call: %w", upstream), http.StatusTooManyRequests, "speech generation failed", "slow down"},
		{"transport", operationSpeak, errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "speech generation failed", "dial tcp: connection refused"},
		{"malformed", operationVoices, fmt.Errorf("%w: <html>", tts.ErrMalformedResponse), http.StatusInternalServerError, "voice list fetch failed", "malformed upstream response: <html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := normalizeError(tt.op, tt.err)

			assert.Equal(t, tt.status, e.Status)
			assert.Equal(t, tt.message, e.Message)
			assert.Equal(t, tt.details, e.Details)
		})
	}
}

func TestWriteErrorOmitsEmptyDetails(t *testing.T) {
	w := httptest.NewRecorder()

	writeError(w, errMissingText)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"missing text content"}`, w.Body.String())
}
