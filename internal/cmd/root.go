package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	var envDir string

	root := &cobra.Command{
		Use:   "website",
		Short: "Nexus AI marketing site",
		Long: `Serves the Nexus AI marketing site: server-rendered pages, the live
demo transcript stream and the embedded static assets.

Configuration is read from the environment, after loading .env and then
.env.local from --env-dir.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&envDir, "env-dir", ".", "directory holding .env and .env.local")

	root.AddCommand(
		newServeCommand(&envDir),
		newExportCommand(&envDir),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command line. This is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}
