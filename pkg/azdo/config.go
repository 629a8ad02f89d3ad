package azdo

import (
	"net/url"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

const (
	// EnvOrganizationURL holds the full organization URL, e.g. https://dev.azure.com/contoso
	EnvOrganizationURL = "AZURE_DEVOPS_ORGANIZATION_URL"
	// EnvOrganization holds just the organization name; used when EnvOrganizationURL is unset
	EnvOrganization = "AZURE_DEVOPS_ORG"
	// EnvPersonalAccessToken holds the PAT used for basic auth
	EnvPersonalAccessToken = "AZURE_DEVOPS_PAT"

	// DefaultHost is the hostname of the Azure DevOps Services cloud.
	DefaultHost = "dev.azure.com"
)

// Config is the connection configuration for one Azure DevOps organization.
type Config struct {
	OrganizationURL     string
	PersonalAccessToken string
}

// LoadConfig reads configuration from the environment. The given env files
// are loaded first with godotenv (existing variables win, missing files are
// skipped). When the environment carries nothing, credentials saved by
// `azdo-mcp login` are used.
//
// LoadConfig does not validate; see Config.Validate.
func LoadConfig(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if file == "" {
			continue
		}
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to load env file %s", file)
		}
	}

	cfg := &Config{
		OrganizationURL:     os.Getenv(EnvOrganizationURL),
		PersonalAccessToken: os.Getenv(EnvPersonalAccessToken),
	}
	if cfg.OrganizationURL == "" {
		if org := os.Getenv(EnvOrganization); org != "" {
			cfg.OrganizationURL = NormalizeOrganizationURL(org)
		}
	}

	if cfg.OrganizationURL == "" && cfg.PersonalAccessToken == "" {
		if creds, err := LoadCredentials(); err == nil && creds.IsValid() {
			cfg.OrganizationURL = creds.OrganizationURL
			cfg.PersonalAccessToken = creds.PersonalAccessToken
		}
	}

	return cfg, nil
}

// Validate checks that both the organization and token are present.
func (c *Config) Validate() error {
	if c == nil || c.OrganizationURL == "" {
		return NewClientError(EnvOrganizationURL + " environment variable is required")
	}
	if c.PersonalAccessToken == "" {
		return NewClientError(EnvPersonalAccessToken + " environment variable is required")
	}
	if _, err := url.ParseRequestURI(c.OrganizationURL); err != nil {
		return WrapClientError(err, "invalid organization URL %q", c.OrganizationURL)
	}
	return nil
}

// NormalizeOrganizationURL turns an organization name or URL into the base
// URL the SDK expects, without a trailing slash.
func NormalizeOrganizationURL(organization string) string {
	org := strings.TrimSuffix(strings.TrimSpace(organization), "/")
	if org == "" {
		return ""
	}
	if !strings.HasPrefix(org, "https://") && !strings.HasPrefix(org, "http://") {
		org = "https://" + DefaultHost + "/" + org
	}
	return org
}
