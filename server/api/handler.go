package api

import (
	"net/http"

	"github.com/adrianliechti/voicebridge/config"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.MethodNotAllowed(h.handleMethodNotAllowed)

	r.Get("/voices", h.handleVoices)
	r.Post("/speak", h.handleSpeak)
}

func (h *Handler) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, errMethodNotAllowed)
}
