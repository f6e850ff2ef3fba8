// @title         devfeed API
// @version       0.1.0
// @description   Read only endpoints over GitHub repositories, Stack Overflow questions and dev.to posts

package main

import (
	"context"
	"os/signal"
	"syscall"

	"devfeed/internal/platform/config"
	"devfeed/internal/platform/logger"
	"devfeed/internal/platform/metrics"

	"devfeed/internal/services/api"
)

func main() {
	cfg := config.New()

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := metrics.New()
	err := api.Run(ctx, api.Options{
		Config:         cfg,
		Logger:         l,
		Cache:          api.CacheFromConfig(cfg, reg),
		Metrics:        reg,
		EnableSwagger:  cfg.MayBool("SWAGGER", true),
		EnableProfiler: cfg.MayBool("PROFILER", false),
	})
	if err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
