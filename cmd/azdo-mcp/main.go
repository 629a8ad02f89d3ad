package main

import (
	"fmt"
	"os"

	_ "github.com/breml/rootcerts"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "azdo-mcp",
	Short: "MCP server for Azure DevOps",
	Long: `azdo-mcp exposes Azure DevOps repositories, pull requests, pipelines,
wikis, projects, teams and work items as MCP tools over stdin/stdout.

Configuration is read from the environment (or a .env file):
  AZURE_DEVOPS_ORGANIZATION_URL  e.g. https://dev.azure.com/contoso
  AZURE_DEVOPS_ORG               organization name, used when the URL is unset
  AZURE_DEVOPS_PAT               personal access token

Usage:
  azdo-mcp                  Run the MCP server (same as "azdo-mcp serve")
  azdo-mcp login            Store an organization URL and token
  azdo-mcp tools            List the tools the server exposes
  azdo-mcp version          Show version information`,
	SilenceUsage: true,
	RunE:         runServe,
}

var (
	envFile string
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "env file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
}
