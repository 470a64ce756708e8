// Copyright (c) 2026 Taskora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes Prometheus instrumentation for the HTTP layer.

It records request throughput, latency distribution, and in-flight pressure,
and serves the standard scrape endpoint.

Core Responsibilities:

  - Throughput: Counter of finished requests by method/status.
  - Latency: Histogram of request durations.
  - Pressure: Gauge of currently in-flight requests.

Metric registration happens once at construction; the middleware is safe
for concurrent use across all request goroutines.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the HTTP metric collectors for the API server.
type Registry struct {
	registry        *prometheus.Registry
	inFlight        prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewRegistry constructs and registers all HTTP collectors.
//
// A dedicated [prometheus.Registry] is used instead of the global default
// so tests can construct registries without duplicate-registration panics.
func NewRegistry() *Registry {
	registry := prometheus.NewRegistry()

	metrics := &Registry{
		registry: registry,
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "status"},
		),
	}

	registry.MustRegister(metrics.inFlight, metrics.requestsTotal, metrics.requestDuration)
	return metrics
}

// Handler returns the Prometheus scrape handler for GET /metrics.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Instrument wraps next with RPS/latency/in-flight measurement.
//
// Labels are method and status only; paths carry user-supplied IDs and would
// explode cardinality.
func (m *Registry) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		m.inFlight.Inc()
		startTime := time.Now()

		wrapped := &statusWriter{ResponseWriter: writer, code: http.StatusOK}
		next.ServeHTTP(wrapped, request)

		duration := time.Since(startTime).Seconds()
		status := strconv.Itoa(wrapped.code)

		m.requestDuration.WithLabelValues(request.Method, status).Observe(duration)
		m.requestsTotal.WithLabelValues(request.Method, status).Inc()
		m.inFlight.Dec()
	})
}

// statusWriter captures the response code written by downstream handlers.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
