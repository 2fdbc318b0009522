package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
	g "maragu.dev/gomponents"

	"github.com/nexusai/website/internal/apperror"
	"github.com/nexusai/website/internal/components"
	"github.com/nexusai/website/internal/config"
	"github.com/nexusai/website/internal/demo"
	"github.com/nexusai/website/internal/logger"
	"github.com/nexusai/website/internal/metrics"
)

// StreamPath is where the live demo transcript is served.
const StreamPath = "/demo/stream"

// keepAliveInterval spaces the comments sent while the demo stream waits
// between cues, so proxies do not drop an idle connection.
const keepAliveInterval = 15 * time.Second

// Handler serves the site's pages, the demo stream and the health checks.
type Handler struct {
	cfg       *config.Config
	log       *slog.Logger
	metrics   *metrics.Metrics
	script    demo.Script
	streamURL string
	limiter   *rate.Limiter
	startAt   time.Time

	keepAliveEvery time.Duration
}

// NewHandler creates the site handler. The demo script is scaled by the
// configured speed once, here.
func NewHandler(cfg *config.Config, log *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		cfg:       cfg,
		log:       log.With(logger.Scope("handlers")),
		metrics:   m,
		script:    demo.BookingCall.Scaled(cfg.Demo.Speed),
		streamURL: StreamPath,
		limiter:   rate.NewLimiter(rate.Limit(cfg.Demo.StreamRate), cfg.Demo.StreamBurst),
		startAt:   time.Now(),

		keepAliveEvery: keepAliveInterval,
	}
}

// Static returns a copy whose pages do not subscribe to the demo stream, so
// the rendered HTML works without this server.
func (h *Handler) Static() *Handler {
	c := *h
	c.streamURL = ""
	return &c
}

// render writes a complete page. route labels the page-view counter.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, route string, page components.PageConfig, body g.Node) {
	page.Path = r.URL.Path
	page.SiteURL = h.cfg.SiteURL

	var buf bytes.Buffer
	if err := components.Page(page, body).Render(&buf); err != nil {
		apperror.WriteJSON(w, r, h.log, apperror.NewInternal("failed to render page", fmt.Errorf("render %s: %w", route, err)))
		return
	}

	h.metrics.PageViews.WithLabelValues(route).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}
