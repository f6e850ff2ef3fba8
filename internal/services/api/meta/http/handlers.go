// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"devfeed/internal/core/memo"
	"devfeed/internal/core/version"
	"devfeed/internal/modkit/httpkit"
	"devfeed/internal/platform/logger"
)

// Source names an upstream and whether it has an account configured
type Source struct {
	Name       string
	Configured bool
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Cache       *memo.Cache
	Sources     []Source
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/cache", h.cacheStats)
	httpkit.Delete(r, "/cache", h.cacheClear)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"devfeed-api"`
	Started string `json:"started"  example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-01T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"github"`
	Status string `json:"status" example:"ok"` // ok skipped fail
	Error  string `json:"error,omitempty" example:"no account configured"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-01T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"devfeed-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// CacheClearResponse reports how many entries a clear dropped
type CacheClearResponse struct {
	Cleared int `json:"cleared" example:"12"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe over the cache and configured sources
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	checks := make([]ReadyCheck, 0, len(h.deps.Sources)+1)

	cache := ReadyCheck{Name: "cache", Status: "ok"}
	if h.deps.Cache == nil {
		cache = ReadyCheck{Name: "cache", Status: "fail", Error: "no cache wired"}
	}
	checks = append(checks, cache)

	for _, s := range h.deps.Sources {
		c := ReadyCheck{Name: s.Name, Status: "ok"}
		if !s.Configured {
			c.Status = "skipped"
			c.Error = "no account configured"
		}
		checks = append(checks, c)
	}

	return ReadyResponse{
		Status: overall(checks),
		Checks: checks,
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// overall is fail on any failed check, degraded on any skipped source, ok otherwise
func overall(checks []ReadyCheck) string {
	status := "ok"
	for _, c := range checks {
		switch c.Status {
		case "fail":
			return "fail"
		case "skipped":
			status = "degraded"
		}
	}
	return status
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/cache Meta metaCacheStats
// @Summary Memo cache counters
// @Tags Meta
// @Produce json
// @Success 200 {object} memo.Stats
// @Router /meta/cache [get]
func (h *handlers) cacheStats(_ *http.Request) (any, error) {
	if h.deps.Cache == nil {
		return memo.Stats{}, nil
	}
	return h.deps.Cache.Stats(), nil
}

// swagger:route DELETE /meta/cache Meta metaCacheClear
// @Summary Drop every cached upstream response
// @Tags Meta
// @Produce json
// @Success 200 {object} CacheClearResponse
// @Router /meta/cache [delete]
func (h *handlers) cacheClear(r *http.Request) (any, error) {
	if h.deps.Cache == nil {
		return CacheClearResponse{}, nil
	}
	n := h.deps.Cache.Len()
	h.deps.Cache.Clear()
	logger.C(r.Context()).Info().Int("entries", n).Msg("cache cleared")
	return CacheClearResponse{Cleared: n}, nil
}
