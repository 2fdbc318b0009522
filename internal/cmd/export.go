package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexusai/website/internal/assets"
	"github.com/nexusai/website/internal/config"
	"github.com/nexusai/website/internal/export"
	"github.com/nexusai/website/internal/handlers"
	"github.com/nexusai/website/internal/logger"
	"github.com/nexusai/website/internal/metrics"
	"github.com/nexusai/website/internal/server"
)

func newExportCommand(envDir *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the site to static files",
		Long: `Renders every page to <out>/<route>/index.html and copies the static
assets to <out>/static. The exported home page replays the demo in the
browser instead of subscribing to the server stream.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			config.LoadDotEnv(*envDir)

			log := logger.NewLogger()
			cfg, err := config.NewConfig(log)
			if err != nil {
				return err
			}

			m := metrics.New(metrics.NewRegistry())
			r := server.NewRouter(server.RouterParams{Config: cfg, Log: log})
			handlers.RegisterRoutes(r, handlers.NewHandler(cfg, log, m).Static(), m, cfg)

			res, err := export.New(r, assets.FS(), log).Export(out)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages and %d assets to %s\n", res.Pages, res.Assets, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory")
	return cmd
}
