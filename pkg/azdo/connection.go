package azdo

import (
	"context"
	"sync"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
)

// Area names one Azure DevOps service area a client talks to.
type Area string

const (
	AreaGit       Area = "git"
	AreaPipelines Area = "pipelines"
	AreaWiki      Area = "wiki"
	AreaSearch    Area = "search"
	AreaCore      Area = "core"
	AreaWork      Area = "work"
	AreaWorkItems Area = "work item tracking"
)

// Connector owns the process-wide connection. It is created on first use and
// reused for the lifetime of the process.
type Connector struct {
	cfg *Config

	// newConnection is swapped in tests.
	newConnection func(organizationURL, pat string) *azuredevops.Connection

	once sync.Once
	conn *azuredevops.Connection
	err  error
}

// NewConnector returns a Connector for cfg. No network or validation work
// happens until Connection is first called.
func NewConnector(cfg *Config) *Connector {
	return &Connector{
		cfg:           cfg,
		newConnection: azuredevops.NewPatConnection,
	}
}

// Connection returns the shared connection, creating it on first call.
func (c *Connector) Connection() (*azuredevops.Connection, error) {
	c.once.Do(func() {
		if err := c.cfg.Validate(); err != nil {
			c.err = err
			return
		}
		c.conn = c.newConnection(c.cfg.OrganizationURL, c.cfg.PersonalAccessToken)
		if c.conn == nil {
			c.err = NewClientError("Failed to connect to Azure DevOps.")
		}
	})
	return c.conn, c.err
}

// NewClient obtains the shared connection and builds an area client with
// factory, the SDK's per-area constructor (git.NewClient, wiki.NewClient).
// Every failure comes back as a *ClientError.
func NewClient[T any](ctx context.Context, c *Connector, area Area, factory func(context.Context, *azuredevops.Connection) (T, error)) (T, error) {
	var zero T

	conn, err := c.Connection()
	if err != nil {
		return zero, AsClientError(err)
	}

	client, err := factory(ctx, conn)
	if err != nil {
		return zero, WrapClientError(err, "Failed to get %s client.", area)
	}
	return client, nil
}

// Infallible adapts SDK constructors that cannot fail, such as pipelines.NewClient.
func Infallible[T any](fn func(context.Context, *azuredevops.Connection) T) func(context.Context, *azuredevops.Connection) (T, error) {
	return func(ctx context.Context, conn *azuredevops.Connection) (T, error) {
		return fn(ctx, conn), nil
	}
}
