package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/nexusai/website/internal/config"
	"github.com/nexusai/website/internal/handlers"
	"github.com/nexusai/website/internal/logger"
	"github.com/nexusai/website/internal/metrics"
	"github.com/nexusai/website/internal/server"
)

func newServeCommand(envDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadDotEnv(*envDir)

			app := fx.New(
				fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
					return &fxevent.SlogLogger{Logger: log}
				}),
				appOptions(),
			)
			app.Run()
			return app.Err()
		},
	}
}

// appOptions is the server's dependency graph.
func appOptions() fx.Option {
	return fx.Options(
		logger.Module,
		config.Module,
		metrics.Module,
		server.Module,
		handlers.Module,
	)
}
