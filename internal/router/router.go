// Package router sets up all HTTP routes and middleware chains for the
// InkPress editor API. Conversion endpoints are unauthenticated helpers;
// post and upload routes forward the caller's bearer token upstream.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"

	"inkpress/internal/handlers"
	"inkpress/internal/middleware"
)

// apiRateLimit bounds requests per client IP on the conversion endpoints,
// which run CPU-bound parsing on caller-supplied input.
const (
	apiRateLimit  = 120
	apiRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/healthz", api.Healthz)

	limiter := middleware.NewRateLimiter(apiRateLimit, apiRateWindow)

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)

		// Conversion helpers — stateless, no upstream calls.
		r.Post("/convert", api.Convert)
		r.Post("/reconstruct", api.Reconstruct)
		r.Post("/preview", api.Preview)
		r.Post("/import-html", api.ImportHTML)

		// Posts — proxied to the blog API with the caller's token.
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", api.ListPosts)
			r.Post("/", api.CreatePost)
			r.Get("/{id}", api.GetPost)
			r.Put("/{id}", api.UpdatePost)
			r.Delete("/{id}", api.DeletePost)
			r.Post("/{id}/publish", api.PublishPost)
		})

		// Media upload passthrough.
		r.Post("/upload", api.Upload)
	})

	return r
}
