// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records server metrics against a Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	signIns          *prometheus.CounterVec
	sessionResolves  *prometheus.CounterVec
	requestDurations *prometheus.HistogramVec
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		signIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "axis_sign_ins_total",
			Help: "Sign-in attempts by outcome",
		}, []string{"outcome"}),
		sessionResolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "axis_session_resolves_total",
			Help: "Session token resolutions by outcome",
		}, []string{"outcome"}),
		requestDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "axis_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status_code"}),
	}

	reg.MustRegister(c.signIns, c.sessionResolves, c.requestDurations)
	return c
}

// RecordSignIn records a sign-in attempt, outcome "allowed" or "denied".
func (c *Collector) RecordSignIn(outcome string) {
	c.signIns.WithLabelValues(outcome).Inc()
}

// RecordSessionResolve records a session resolution, outcome "session" or
// "no_session".
func (c *Collector) RecordSessionResolve(outcome string) {
	c.sessionResolves.WithLabelValues(outcome).Inc()
}

// RecordRequest records a served request's latency.
func (c *Collector) RecordRequest(route string, statusCode int, duration time.Duration) {
	c.requestDurations.WithLabelValues(route, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

// Handler returns the /metrics HTTP handler for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
