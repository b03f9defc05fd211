package www

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"econdash/engine"
)

// NewRouter builds the web surface. The returned stop function exists
// for shutdown symmetry with the rest of the wiring in main.
func NewRouter(eng *engine.Engine) (http.Handler, func()) {
	h := NewHandlers(eng)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", h.handleHome)
	r.Get("/diagnostics", h.handleDiagnostics)

	r.Get("/login", h.handleLoginForm)
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)

	r.Post("/admin/cache/bust", h.requireAuth(h.handleCacheBust))

	r.Route("/api", func(api chi.Router) {
		api.Get("/summary", h.apiSummary)
		api.Get("/preview", h.apiPreview)
		api.Get("/health", h.apiHealthCheck)
	})

	return r, func() {}
}
