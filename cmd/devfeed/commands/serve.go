package commands

import (
	"os/signal"
	"syscall"

	"devfeed/internal/platform/config"
	"devfeed/internal/platform/logger"
	"devfeed/internal/platform/metrics"
	"devfeed/internal/services/api"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var swagger, profiler bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long:  `Serve the HTTP API on HTTP_ADDR, or on PORT (default 4000), until interrupted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg := config.New()
			reg := metrics.New()
			return api.Run(ctx, api.Options{
				Config:         cfg,
				Logger:         logger.Get(),
				Cache:          api.CacheFromConfig(cfg, reg),
				Metrics:        reg,
				EnableSwagger:  swagger,
				EnableProfiler: profiler,
			})
		},
	}

	cmd.Flags().BoolVar(&swagger, "swagger", true, "Serve the swagger UI under /api/docs")
	cmd.Flags().BoolVar(&profiler, "profiler", false, "Serve pprof under /debug")
	return cmd
}
