// Package metrics owns the prometheus registry and the collectors devfeed exports
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "devfeed"

// Registry bundles a private prometheus registry with the project collectors
// a nil *Registry is valid and records nothing
type Registry struct {
	reg *prometheus.Registry

	cacheEvents       *prometheus.CounterVec
	upstreamDuration  *prometheus.HistogramVec
	languageFallbacks prometheus.Counter
	httpDuration      *prometheus.HistogramVec
}

// New builds a registry with go and process collectors attached
func New() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		reg: reg,
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Memo cache events by kind.",
		}, []string{"event"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of source API requests by source and status class.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source", "status"}),
		languageFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "language_fallback_total",
			Help:      "Repository language lookups that failed and were served as an empty list.",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of query surface requests by method and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "code"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.cacheEvents,
		r.upstreamDuration,
		r.languageFallbacks,
		r.httpDuration,
	)
	return r
}

// Handler exposes the registry in the prometheus text format
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer returns the underlying gatherer, mostly for tests
func (r *Registry) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.reg
}

// CacheEvent counts one memo cache event
func (r *Registry) CacheEvent(event string) {
	if r == nil {
		return
	}
	r.cacheEvents.WithLabelValues(event).Inc()
}

// ObserveUpstream records one source API call, status 0 means the transport failed
func (r *Registry) ObserveUpstream(source string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.upstreamDuration.WithLabelValues(source, StatusClass(status)).Observe(elapsed.Seconds())
}

// LanguageFallback counts one failed language lookup served as an empty list
func (r *Registry) LanguageFallback() {
	if r == nil {
		return
	}
	r.languageFallbacks.Inc()
}

// ObserveHTTP records one served request
func (r *Registry) ObserveHTTP(method string, code int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpDuration.WithLabelValues(method, strconv.Itoa(code)).Observe(elapsed.Seconds())
}

// StatusClass folds an http status into 2xx, 4xx, 5xx or "error" for transport failures
func StatusClass(status int) string {
	if status <= 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}
