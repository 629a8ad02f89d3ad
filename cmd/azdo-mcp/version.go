package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshcarp/azdo-mcp/pkg/azdo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "azdo-mcp v%s\n", azdo.Version)
	},
}
