package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// NewRouter mounts the Handler's routes.
func NewRouter(h *Handler, log logrus.FieldLogger, maxBodyBytes int64) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/frameworks", h.ListFrameworks)
		r.With(BodyLimit(maxBodyBytes), RequireJSON).Post("/video-names", h.GenerateName)
	})

	return r
}
