package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the REST API.
//
// Public routes handle account registration and login. Everything under
// /api/profile and /api/vault requires a valid bearer token; the owner of
// every record is taken from the token, never from the request body.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/profile/master-secret", h.getMasterSecret)
		r.Post("/api/profile/master-secret", h.setMasterSecret)

		r.Get("/api/vault/entries", h.listEntries)
		r.Post("/api/vault/entries", h.createEntry)
	})

	return router
}
