package cli

import (
	"fmt"
	"runtime"

	"sectiongrid/internal/build"

	"github.com/spf13/cobra"
)

func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "sectiongrid version information",
		Long:  `Print the version information of sectiongrid`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sectiongrid v%s (Go version: %s)\n", build.Version, runtime.Version())
		},
	}
}
