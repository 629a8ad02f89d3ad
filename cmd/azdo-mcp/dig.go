package main

import (
	"github.com/cockroachdb/errors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/joshcarp/azdo-mcp/pkg/azdo"
	"github.com/joshcarp/azdo-mcp/pkg/tools"
)

const serverName = "azdo-mcp"

func newConfig() (*azdo.Config, error) {
	return azdo.LoadConfig(envFile)
}

func newToolset(clients *tools.Clients, log *logrus.Logger) *tools.Toolset {
	return tools.New(clients, log)
}

func newServer(toolset *tools.Toolset) *mcp.Server {
	server := mcp.NewServer(serverName, azdo.Version, nil)
	toolset.Register(server)
	return server
}

// newContainer wires config, connection, clients, toolset and server.
func newContainer(log *logrus.Logger) (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		func() *logrus.Logger { return log },
		newConfig,
		azdo.NewConnector,
		tools.NewClients,
		newToolset,
		newServer,
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, errors.Wrap(err, "failed to register provider")
		}
	}
	return container, nil
}

func injectServer(log *logrus.Logger) (*mcp.Server, error) {
	container, err := newContainer(log)
	if err != nil {
		return nil, err
	}

	var server *mcp.Server
	if err := container.Invoke(func(s *mcp.Server) {
		server = s
	}); err != nil {
		return nil, errors.Wrap(dig.RootCause(err), "failed to build server")
	}
	return server, nil
}

func injectToolset(log *logrus.Logger) (*tools.Toolset, error) {
	container, err := newContainer(log)
	if err != nil {
		return nil, err
	}

	var toolset *tools.Toolset
	if err := container.Invoke(func(t *tools.Toolset) {
		toolset = t
	}); err != nil {
		return nil, errors.Wrap(dig.RootCause(err), "failed to build toolset")
	}
	return toolset, nil
}
