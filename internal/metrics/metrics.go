package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Module("metrics",
	fx.Provide(NewRegistry, New),
)

// Metrics are the site counters exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Page renders by route pattern
	PageViews *prometheus.CounterVec

	// Acknowledgement pages served after a form post, by action
	Acknowledgements *prometheus.CounterVec

	// Demo transcript streams currently open
	DemoStreams prometheus.Gauge

	// Demo messages sent over all streams
	DemoMessages prometheus.Counter

	// Demo streams refused by the admission limiter
	DemoRejected prometheus.Counter
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return reg
}

func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		PageViews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "website_page_views_total",
			Help: "Total number of pages rendered",
		}, []string{"route"}),

		Acknowledgements: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "website_acknowledgements_total",
			Help: "Total number of acknowledgement pages served after a form post",
		}, []string{"action"}),

		DemoStreams: factory.NewGauge(prometheus.GaugeOpts{
			Name: "website_demo_streams_active",
			Help: "Number of demo transcript streams currently open",
		}),

		DemoMessages: factory.NewCounter(prometheus.CounterOpts{
			Name: "website_demo_messages_total",
			Help: "Total number of demo chat messages streamed",
		}),

		DemoRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "website_demo_streams_rejected_total",
			Help: "Total number of demo streams refused by the rate limiter",
		}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
