package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/joshcarp/azdo-mcp/pkg/azdo"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials",
	Long: `Remove the organization URL and token stored by "azdo-mcp login"
from ~/.azdo-mcp/credentials.json.

Example:
  azdo-mcp logout`,
	RunE: runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	creds, err := azdo.LoadCredentials()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
		return nil
	}

	if err := azdo.DeleteCredentials(); err != nil {
		return errors.Wrap(err, "failed to delete credentials")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged out from %s\n", creds.OrganizationURL)
	return nil
}
