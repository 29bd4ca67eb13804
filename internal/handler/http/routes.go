package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order is fixed: trace id, auth
// resolver, response mapper, panic recovery, then per-group guards.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.resolveAuth, h.mapResponse, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Get("/users", h.getAllUsers)
		r.Get("/users/{id}", h.getUserByID)
	})

	router.Group(func(r chi.Router) {
		r.Use(adminOnly)
		r.Post("/users", h.createUser)
		r.Delete("/users", h.deleteUser)
		r.Delete("/users/{id}", h.deleteUser)
	})

	// owner-or-admin is checked inside the handler
	router.Group(func(r chi.Router) {
		r.Use(authenticatedOnly)
		r.Put("/users/{id}", h.updateUser)
	})

	// userOnly is available for User-restricted routes; none exist yet.

	router.NotFound(CheckHTTPMethod(router))
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
