package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/joshcarp/azdo-mcp/pkg/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the server exposes",
	Long: `List every MCP tool with its description.

Examples:
  azdo-mcp tools
  azdo-mcp tools --json`,
	RunE: runTools,
}

var toolsJSON bool

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "print the tool definitions as JSON")
}

func runTools(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetOutput(io.Discard)

	toolset, err := injectToolset(log)
	if err != nil {
		return err
	}
	return printTools(cmd.OutOrStdout(), toolset, toolsJSON)
}

func printTools(w io.Writer, toolset *tools.Toolset, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toolset.Tools())
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	for _, tool := range toolset.Tools() {
		fmt.Fprintf(tw, "%s\t%s\n", tool.Name, tool.Description)
	}
	return tw.Flush()
}
