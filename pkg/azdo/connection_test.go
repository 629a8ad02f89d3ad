package azdo

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		OrganizationURL:     "https://dev.azure.com/contoso",
		PersonalAccessToken: "fake_pat",
	}
}

func TestConnector_Connection(t *testing.T) {
	t.Run("connection is created once and reused", func(t *testing.T) {
		connector := NewConnector(validConfig())
		calls := 0
		connector.newConnection = func(organizationURL, pat string) *azuredevops.Connection {
			calls++
			assert.Equal(t, "https://dev.azure.com/contoso", organizationURL)
			assert.Equal(t, "fake_pat", pat)
			return azuredevops.NewPatConnection(organizationURL, pat)
		}

		first, err := connector.Connection()
		require.NoError(t, err)
		second, err := connector.Connection()
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("invalid configuration is reported as a client error", func(t *testing.T) {
		connector := NewConnector(&Config{OrganizationURL: "https://dev.azure.com/contoso"})

		conn, err := connector.Connection()

		assert.Nil(t, conn)
		var ce *ClientError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "AZURE_DEVOPS_PAT environment variable is required", ce.Message)
	})
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the factory's client", func(t *testing.T) {
		connector := NewConnector(validConfig())

		client, err := NewClient(ctx, connector, AreaCore, func(_ context.Context, conn *azuredevops.Connection) (string, error) {
			require.NotNil(t, conn)
			return "core-client", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "core-client", client)
	})

	t.Run("factory failure names the area", func(t *testing.T) {
		connector := NewConnector(validConfig())
		cause := errors.New("resource area not found")

		_, err := NewClient(ctx, connector, AreaSearch, func(context.Context, *azuredevops.Connection) (string, error) {
			return "", cause
		})

		assert.EqualError(t, err, "Failed to get search client.")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("connection failure skips the factory", func(t *testing.T) {
		connector := NewConnector(&Config{})
		called := false

		_, err := NewClient(ctx, connector, AreaWiki, func(context.Context, *azuredevops.Connection) (string, error) {
			called = true
			return "", nil
		})

		assert.EqualError(t, err, "AZURE_DEVOPS_ORGANIZATION_URL environment variable is required")
		assert.False(t, called)
	})

	t.Run("infallible constructors are adapted", func(t *testing.T) {
		connector := NewConnector(validConfig())

		client, err := NewClient(ctx, connector, AreaPipelines, Infallible(func(context.Context, *azuredevops.Connection) int {
			return 42
		}))

		require.NoError(t, err)
		assert.Equal(t, 42, client)
	})
}
