package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/joshcarp/azdo-mcp/pkg/azdo"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an Azure DevOps organization and personal access token",
	Long: `Store an organization URL and personal access token in
~/.azdo-mcp/credentials.json. The server uses them when the environment
does not configure an organization or token.

The token is read from stdin when --pat is not given.

Examples:
  azdo-mcp login --organization contoso
  azdo-mcp login --organization https://dev.azure.com/contoso --pat $PAT`,
	RunE: runLogin,
}

var (
	loginOrganization string
	loginPAT          string
)

func init() {
	loginCmd.Flags().StringVar(&loginOrganization, "organization", "", "organization name or URL (required)")
	loginCmd.Flags().StringVar(&loginPAT, "pat", "", "personal access token (read from stdin when empty)")
	loginCmd.MarkFlagRequired("organization")
}

func runLogin(cmd *cobra.Command, args []string) error {
	pat := loginPAT
	if pat == "" {
		fmt.Fprint(cmd.ErrOrStderr(), "Enter your personal access token: ")
		var err error
		pat, err = readToken(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	creds, err := buildCredentials(loginOrganization, pat, time.Now())
	if err != nil {
		return err
	}
	if err := azdo.SaveCredentials(creds); err != nil {
		return errors.Wrap(err, "failed to save credentials")
	}

	path, _ := azdo.GetCredentialsPath()
	fmt.Fprintf(cmd.OutOrStdout(), "Saved credentials for %s to %s\n", creds.OrganizationURL, path)
	return nil
}

func readToken(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read token")
	}
	return strings.TrimSpace(line), nil
}

// buildCredentials normalises the organization and checks the result would
// pass configuration validation before anything is written.
func buildCredentials(organization, pat string, now time.Time) (*azdo.Credentials, error) {
	cfg := &azdo.Config{
		OrganizationURL:     azdo.NormalizeOrganizationURL(organization),
		PersonalAccessToken: strings.TrimSpace(pat),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &azdo.Credentials{
		OrganizationURL:     cfg.OrganizationURL,
		PersonalAccessToken: cfg.PersonalAccessToken,
		SavedAt:             now,
	}, nil
}
