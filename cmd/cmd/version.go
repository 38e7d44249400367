package cmd

import (
	"fmt"

	"github.com/ostafen/sipstat/internal/env"
	"github.com/spf13/cobra"
)

func DefineVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Version:    %s\n", env.Version)
			fmt.Fprintf(w, "Commit:     %s\n", env.CommitHash)
			fmt.Fprintf(w, "Build Time: %s\n", env.BuildTime)
		},
	}
}
