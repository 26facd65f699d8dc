package answer

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateAnswer)
	r.Get("/{id}", h.GetAnswer)
	return r
}
