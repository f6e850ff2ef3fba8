package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"devfeed/internal/platform/metrics"
	"devfeed/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack, the zero value is usable
type StackOptions struct {
	Metrics *metrics.Registry
	CORS    middleware.CORSOptions
	// Timeout bounds a whole request including upstream fan-out, default 30s
	Timeout time.Duration
	// Slow marks requests logged at warn, default 2s
	Slow time.Duration
}

// CommonStack returns a baseline per module middleware slice
func CommonStack(opts ...StackOptions) []func(http.Handler) http.Handler {
	var o StackOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = 2 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow, Metrics: o.Metrics}),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// cross-origin
		middleware.CORS(o.CORS),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
