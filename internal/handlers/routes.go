package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/nexusai/website/internal/assets"
	"github.com/nexusai/website/internal/config"
	"github.com/nexusai/website/internal/metrics"
)

// RegisterRoutes registers the site's routes on r. CORS sits on the root
// router so preflight requests are answered before routing.
func RegisterRoutes(r *chi.Mux, h *Handler, m *metrics.Metrics, cfg *config.Config) {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Cache-Control", "Last-Event-ID"},
		MaxAge:         300,
	}))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/", h.Home)
	r.Get("/privacy", h.Privacy)
	r.Get("/terms", h.Terms)
	r.Get("/contact", h.Contact)
	r.Post("/contact", h.SubmitContact)
	r.Get("/checkout", h.Checkout)
	r.Post("/checkout", h.SubmitCheckout)

	r.Get(StreamPath, h.DemoStream)
	r.Get("/health", h.Health)
	r.Get("/healthz", h.Healthz)

	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", assets.Handler()))
}
