package main

import (
	"fmt"
	"github.com/spf13/cobra"
)

var (
	buildTime    = "unknown"
	buildVersion = "dev"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "party-lamp %s (built: %s)\n", buildVersion, buildTime)
		},
	}
}
