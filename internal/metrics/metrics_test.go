package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(NewRegistry())

	m.PageViews.WithLabelValues("/").Inc()
	m.PageViews.WithLabelValues("/").Inc()
	m.PageViews.WithLabelValues("/terms").Inc()
	m.Acknowledgements.WithLabelValues("contact").Inc()
	m.DemoStreams.Inc()
	m.DemoStreams.Dec()
	m.DemoMessages.Add(5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PageViews.WithLabelValues("/")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageViews.WithLabelValues("/terms")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Acknowledgements.WithLabelValues("contact")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DemoStreams))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.DemoMessages))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	// Each registry owns its collectors, so two instances never collide.
	a := New(NewRegistry())
	b := New(NewRegistry())
	a.DemoMessages.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.DemoMessages))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.DemoMessages))
}

func TestMetrics_Handler(t *testing.T) {
	m := New(NewRegistry())
	m.PageViews.WithLabelValues("/checkout").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `website_page_views_total{route="/checkout"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
