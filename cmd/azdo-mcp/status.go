package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshcarp/azdo-mcp/pkg/azdo"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which organization the server would connect to",
	Long: `Show the organization and token source the server would use, without
contacting Azure DevOps. The token itself is never printed.

Example:
  azdo-mcp status`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := azdo.LoadConfig(envFile)
	if err != nil {
		return err
	}
	creds, _ := azdo.LoadCredentials()
	printStatus(cmd.OutOrStdout(), cfg, creds)
	return nil
}

func printStatus(w io.Writer, cfg *azdo.Config, creds *azdo.Credentials) {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(w, "Status: Not configured (%s)\n", err)
		fmt.Fprintln(w, "\nSet AZURE_DEVOPS_ORGANIZATION_URL and AZURE_DEVOPS_PAT, or run 'azdo-mcp login'")
		return
	}

	fmt.Fprintln(w, "Status: Configured")
	fmt.Fprintf(w, "Organization: %s\n", cfg.OrganizationURL)
	fmt.Fprintf(w, "Token: %s\n", maskToken(cfg.PersonalAccessToken))
	if creds != nil && creds.OrganizationURL == cfg.OrganizationURL && creds.PersonalAccessToken == cfg.PersonalAccessToken {
		fmt.Fprintf(w, "Source: stored credentials (saved %s)\n", creds.SavedAt.Format(time.RFC3339))
	} else {
		fmt.Fprintln(w, "Source: environment")
	}
}

// maskToken keeps the last four characters of a token.
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
