package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexusai/website/internal/content"
	"github.com/nexusai/website/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			b := version.Current()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s website\n", content.Brand)
			fmt.Fprintf(w, "  Version:    %s\n", b.Version)
			fmt.Fprintf(w, "  Commit:     %s\n", b.Commit)
			fmt.Fprintf(w, "  Built:      %s\n", b.Time)
			fmt.Fprintf(w, "  Go version: %s\n", b.GoVersion)
		},
	}
}
