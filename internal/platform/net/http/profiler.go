package http

import (
	stdhttp "net/http"
	"strings"

	mw "github.com/go-chi/chi/v5/middleware"
)

// Profiler serves chi's pprof mux with prefix stripped, so /debug/pprof/heap reaches /pprof/heap
func Profiler(prefix string) stdhttp.Handler {
	return stdhttp.StripPrefix(strings.TrimRight(prefix, "/"), mw.Profiler())
}

// MountProfiler mounts pprof under prefix (for example /debug) when enabled
// responses are never cached
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	prefix = "/" + strings.Trim(prefix, "/")
	h := mw.NoCache(Profiler(prefix))
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}
