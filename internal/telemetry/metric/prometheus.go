// Package metric provides Prometheus metrics for VidGate.
//
// It exposes request rates, latencies, and auth activity on the
// /metrics endpoint of the API server.
package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics backed by a private
// Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	AuthAttempts  *prometheus.CounterVec
	TokensRevoked prometheus.Counter

	VideosServed prometheus.Counter
}

// NewRegistry creates and registers all application metrics.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vidgate",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests processed, by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vidgate",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AuthAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vidgate",
			Subsystem: "auth",
			Name:      "attempts_total",
			Help:      "Authentication attempts, by operation and result.",
		}, []string{"operation", "result"}),
		TokensRevoked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vidgate",
			Subsystem: "auth",
			Name:      "tokens_revoked_total",
			Help:      "Access tokens revoked via logout.",
		}),
		VideosServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vidgate",
			Subsystem: "video",
			Name:      "plays_total",
			Help:      "Playback URLs resolved.",
		}),
	}

	reg.MustRegister(
		r.RequestsTotal,
		r.RequestDuration,
		r.AuthAttempts,
		r.TokensRevoked,
		r.VideosServed,
	)
	return r
}

// ObserveRequest records one completed HTTP request.
func (r *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveAuth records one login or signup attempt.
func (r *Registry) ObserveAuth(operation string, ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	r.AuthAttempts.WithLabelValues(operation, result).Inc()
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
