// Package api provides the HTTP API for the application
package api

import (
	"context"

	"devfeed/internal/core/memo"
	"devfeed/internal/platform/config"
	"devfeed/internal/platform/logger"
	"devfeed/internal/platform/metrics"
	phttp "devfeed/internal/platform/net/http"
	"devfeed/internal/platform/net/middleware"

	"devfeed/internal/modkit"
	"devfeed/internal/modkit/httpkit"
	"devfeed/internal/modkit/module"
	"devfeed/internal/modkit/swaggerkit"

	metamod "devfeed/internal/services/api/meta/module"
	portfoliomod "devfeed/internal/services/api/portfolio/module"
)

// Options are the API options
type Options struct {
	Config  config.Conf
	Logger  *logger.Logger
	Cache   *memo.Cache
	Metrics *metrics.Registry

	EnableSwagger  bool
	EnableProfiler bool
}

// Deps builds the shared module deps, creating the cache when none was supplied
func (o Options) Deps() modkit.Deps {
	d := modkit.Deps{
		Cfg:     o.Config,
		Cache:   o.Cache,
		Metrics: o.Metrics,
	}
	if o.Logger != nil {
		d.Log = *o.Logger
	} else {
		d.Log = *logger.Named("api")
	}
	d.Cache = d.CacheOrNew()
	return d
}

// Modules returns the modules served under /api/v1
func Modules(deps modkit.Deps) []modkit.Module {
	return modkit.BuildAll(deps, metamod.New, portfoliomod.New)
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := opt.Deps()
	mods := Modules(deps)

	cors := opt.Config.Prefix("CORS_")
	stack := httpkit.CommonStack(httpkit.StackOptions{
		Metrics: deps.Metrics,
		CORS: middleware.CORSOptions{
			AllowedOrigins: cors.MayCSV("ORIGINS", nil),
			MaxAge:         cors.MayInt("MAX_AGE", 300),
		},
		Timeout: opt.Config.MayDuration("HTTP_REQUEST_TIMEOUT", 0),
		Slow:    opt.Config.MayDuration("HTTP_SLOW_REQUEST", 0),
	})

	// liveness for load balancers, answered before any routing
	r.Use(middleware.Heartbeat("/health"))

	// Swagger, profiler and the scrape endpoint live outside the versioned api
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	log := deps.Log
	log.Info().
		Strs("modules", module.Names()).
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Dur("cache_ttl", deps.Cache.DefaultTTL()).
		Msg("api mounted")
}

// CacheFromConfig builds the process cache from CACHE_TTL and CACHE_COALESCE
// CACHE_TTL accepts a duration or integer milliseconds
func CacheFromConfig(cfg config.Conf, reg *metrics.Registry) *memo.Cache {
	return memo.New(
		memo.WithDefaultTTL(cfg.MayTTL("CACHE_TTL", memo.DefaultTTL)),
		memo.WithCoalescing(cfg.MayBool("CACHE_COALESCE", true)),
		memo.WithObserver(reg),
	)
}

// Run serves the API on HTTP_ADDR or PORT until ctx is cancelled
func Run(ctx context.Context, opt Options) error {
	srv := phttp.NewServer(opt.Config)
	Mount(srv.Router(), opt)
	return srv.Run(ctx)
}
