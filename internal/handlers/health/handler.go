package health

import (
	"net/http"

	"salesdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.Health)
	})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	response.WithMessage(w, http.StatusOK, "OK")
}
