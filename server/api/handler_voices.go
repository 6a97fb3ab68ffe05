package api

import (
	"net/http"
)

func (h *Handler) handleVoices(w http.ResponseWriter, r *http.Request) {
	p, err := h.Provider()

	if err != nil {
		h.fail(w, r, operationVoices, err)
		return
	}

	voices, err := p.Voices(r.Context())

	if err != nil {
		h.fail(w, r, operationVoices, err)
		return
	}

	// relayed verbatim, the entries are never inspected
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(voices)
}
