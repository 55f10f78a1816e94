// Package metrics provides Prometheus instrumentation for page requests and
// for calls the frontend makes to the backend API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kalsubai"

var (
	pageRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "frontend",
			Name:      "page_requests_total",
			Help:      "Page requests served, by route and status code",
		},
		[]string{"method", "route", "code"},
	)

	pageRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "frontend",
			Name:      "page_request_duration_seconds",
			Help:      "Time to render a page, including backend calls",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	pagesInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "frontend",
			Name:      "pages_in_flight",
			Help:      "Pages currently being rendered",
		},
	)

	backendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api_client",
			Name:      "requests_total",
			Help:      "Requests sent to the backend API by status code",
		},
		[]string{"method", "code"},
	)

	backendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api_client",
			Name:      "request_duration_seconds",
			Help:      "Backend API round trip time in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method"},
	)

	backendRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "api_client",
			Name:      "requests_in_flight",
			Help:      "Backend API requests waiting for a response",
		},
	)
)

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter { return s.ResponseWriter }

// routeOf returns the chi route pattern so ids in paths don't explode label
// cardinality. Unmatched requests share one label.
func routeOf(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if pattern := rc.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// Middleware counts and times every page request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		pagesInFlight.Inc()
		defer pagesInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := routeOf(r)
		pageRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.code)).Inc()
		pageRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// InstrumentTransport wraps next (http.DefaultTransport when nil) so every
// backend call is counted and timed.
func InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	rt := promhttp.InstrumentRoundTripperDuration(backendRequestDuration, next)
	rt = promhttp.InstrumentRoundTripperCounter(backendRequestsTotal, rt)
	return promhttp.InstrumentRoundTripperInFlight(backendRequestsInFlight, rt)
}
