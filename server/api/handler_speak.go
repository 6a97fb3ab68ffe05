package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/adrianliechti/voicebridge/pkg/tts"
)

func (h *Handler) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var req SpeakRequest
	var typeErr *json.UnmarshalTypeError

	// a well-formed body of the wrong shape falls through to validation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) && !errors.As(err, &typeErr) {
		h.fail(w, r, operationSpeak, &Error{
			Status: http.StatusBadRequest,

			Message: "invalid request body",
			Details: err.Error(),
		})

		return
	}

	text, voice, err := req.validate()

	if err != nil {
		h.fail(w, r, operationSpeak, err)
		return
	}

	p, err := h.Provider()

	if err != nil {
		h.fail(w, r, operationSpeak, err)
		return
	}

	options := &tts.SynthesizeOptions{
		Voice: voice,
	}

	synthesis, err := p.Synthesize(r.Context(), text, options)

	if err != nil {
		h.fail(w, r, operationSpeak, err)
		return
	}

	defer synthesis.Body.Close()

	h.streamAudio(w, r, synthesis)
}
