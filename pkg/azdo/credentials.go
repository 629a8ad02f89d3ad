package azdo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
)

// Credentials is the organization and personal access token stored by
// `azdo-mcp login`.
type Credentials struct {
	OrganizationURL     string    `json:"organization_url"`
	PersonalAccessToken string    `json:"personal_access_token"`
	SavedAt             time.Time `json:"saved_at"`
}

// CredentialsFile is the filename for stored credentials
const CredentialsFile = "credentials.json"

// HomeDir returns ~/.azdo-mcp, where credentials and logs live.
func HomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(homeDir, ".azdo-mcp"), nil
}

// GetCredentialsPath returns the path to the credentials file
func GetCredentialsPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CredentialsFile), nil
}

// LoadCredentials loads credentials from the default location
func LoadCredentials() (*Credentials, error) {
	path, err := GetCredentialsPath()
	if err != nil {
		return nil, err
	}

	return LoadCredentialsFromPath(path)
}

// LoadCredentialsFromPath loads credentials from a specific path
func LoadCredentialsFromPath(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("not logged in: credentials file not found")
		}
		return nil, errors.Wrap(err, "failed to read credentials")
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, errors.Wrap(err, "failed to parse credentials")
	}

	return &creds, nil
}

// SaveCredentials saves credentials to the default location
func SaveCredentials(creds *Credentials) error {
	path, err := GetCredentialsPath()
	if err != nil {
		return err
	}

	return SaveCredentialsToPath(creds, path)
}

// SaveCredentialsToPath saves credentials to a specific path
func SaveCredentialsToPath(creds *Credentials, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.Wrap(err, "failed to create credentials directory")
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal credentials")
	}

	// The PAT is a secret: owner read/write only.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write credentials")
	}

	return nil
}

// DeleteCredentials removes the credentials file
func DeleteCredentials() error {
	path, err := GetCredentialsPath()
	if err != nil {
		return err
	}

	return DeleteCredentialsAtPath(path)
}

// DeleteCredentialsAtPath removes the credentials file at path. A missing
// file is not an error.
func DeleteCredentialsAtPath(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to delete credentials")
	}
	return nil
}

// IsValid reports whether both the organization and token are present.
func (c *Credentials) IsValid() bool {
	if c == nil {
		return false
	}
	return c.OrganizationURL != "" && c.PersonalAccessToken != ""
}
