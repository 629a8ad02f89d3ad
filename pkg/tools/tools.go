// Package tools exposes Azure DevOps operations as MCP tools. Every tool gets
// one client, makes one SDK call and renders the result as markdown.
package tools

import (
	"context"
	"io"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/joshcarp/azdo-mcp/pkg/azdo"
)

// Toolset owns the tool handlers and the clients they call.
type Toolset struct {
	clients *Clients
	log     logrus.FieldLogger
}

// New returns a Toolset. A nil logger discards log output.
func New(clients *Clients, log logrus.FieldLogger) *Toolset {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Toolset{clients: clients, log: log}
}

type definition struct {
	tool *mcp.Tool
	add  func(*mcp.Server, *mcp.Tool)
}

func handler[In any](h func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[In]) (*mcp.CallToolResultFor[any], error)) func(*mcp.Server, *mcp.Tool) {
	return func(server *mcp.Server, tool *mcp.Tool) {
		mcp.AddTool(server, tool, h)
	}
}

func (t *Toolset) definitions() []definition {
	return []definition{
		// Git
		{tool: &mcp.Tool{
			Name:        "list_repositories",
			Description: "Lists all Git repositories in a project. Use it to find a repository by name or to get repository IDs for other operations. Parameters: project (name or ID).",
		}, add: handler(t.handleListRepositories)},
		{tool: &mcp.Tool{
			Name:        "get_repository",
			Description: "Gets a single Git repository. Parameters: project (name or ID), repository_id (name or ID).",
		}, add: handler(t.handleGetRepository)},
		{tool: &mcp.Tool{
			Name:        "get_pull_requests",
			Description: "Lists all active pull requests in a repository with titles, IDs, branches and URLs. Parameters: project (name or ID), repository_id (name or ID).",
		}, add: handler(t.handleGetPullRequests)},
		{tool: &mcp.Tool{
			Name:        "create_pull_request",
			Description: "Creates a new pull request to start a code review. Parameters: project, repository_id, source_ref_name and target_ref_name (e.g. refs/heads/feature), title, optional description.",
		}, add: handler(t.handleCreatePullRequest)},

		// Pipelines
		{tool: &mcp.Tool{
			Name:        "list_pipelines",
			Description: "Lists all pipelines in a project with names, IDs, folders and URLs. Parameters: project (name or ID).",
		}, add: handler(t.handleListPipelines)},
		{tool: &mcp.Tool{
			Name:        "get_pipeline",
			Description: "Gets the details of a single pipeline. Parameters: project (name or ID), pipeline_id.",
		}, add: handler(t.handleGetPipeline)},

		// Wiki
		{tool: &mcp.Tool{
			Name:        "search_wiki",
			Description: "Searches Azure DevOps wikis across the organization for pages related to a query. Returns file name, path, project and wiki for each match. Parameters: query.",
		}, add: handler(t.handleSearchWiki)},
		{tool: &mcp.Tool{
			Name:        "get_wiki_by_path",
			Description: "Gets the full content of a wiki page by the path returned from search_wiki. Parameters: project (name or ID), wiki_id, path.",
		}, add: handler(t.handleGetWikiByPath)},
		{tool: &mcp.Tool{
			Name:        "get_wiki_by_id",
			Description: "Gets the full content of a wiki page by its numeric page ID. Parameters: project (name or ID), wiki_id, id.",
		}, add: handler(t.handleGetWikiByID)},

		// Projects and teams
		{tool: &mcp.Tool{
			Name:        "list_projects",
			Description: "Lists the projects in the Azure DevOps organization.",
		}, add: handler(t.handleListProjects)},
		{tool: &mcp.Tool{
			Name:        "list_teams",
			Description: "Lists the teams in a project. Parameters: project (name or ID).",
		}, add: handler(t.handleListTeams)},
		{tool: &mcp.Tool{
			Name:        "get_team_iterations",
			Description: "Lists the iterations (sprints) a team has selected, with dates. Parameters: project (name or ID), team (name or ID).",
		}, add: handler(t.handleGetTeamIterations)},

		// Work items
		{tool: &mcp.Tool{
			Name:        "get_work_item",
			Description: "Gets a single work item with its type, title, state and assignee. Parameters: id.",
		}, add: handler(t.handleGetWorkItem)},
		{tool: &mcp.Tool{
			Name:        "query_work_items",
			Description: "Runs a WIQL query and lists the matching work item IDs. Parameters: project (name or ID), query (e.g. SELECT [System.Id] FROM WorkItems WHERE [System.State] = 'Active').",
		}, add: handler(t.handleQueryWorkItems)},
	}
}

// Register adds every tool to server.
func (t *Toolset) Register(server *mcp.Server) {
	for _, def := range t.definitions() {
		def.add(server, def.tool)
		t.log.WithField("tool", def.tool.Name).Debug("registered tool")
	}
}

// Tools returns the tool definitions in registration order.
func (t *Toolset) Tools() []*mcp.Tool {
	defs := t.definitions()
	out := make([]*mcp.Tool, 0, len(defs))
	for _, def := range defs {
		out = append(out, def.tool)
	}
	return out
}

// invoke runs one tool body. Failures never escape as Go errors: they are
// reported to the caller as "Error: <message>" text.
func (t *Toolset) invoke(ctx context.Context, name string, call func(context.Context) (string, error)) (*mcp.CallToolResultFor[any], error) {
	start := time.Now()
	out, err := call(ctx)
	log := t.log.WithFields(logrus.Fields{
		"tool":     name,
		"duration": time.Since(start),
	})
	if err != nil {
		log.WithError(err).Warn("tool call failed")
		return errorResult("Error: " + azdo.AsClientError(err).Message), nil
	}
	log.Debug("tool call completed")
	return successResult(out), nil
}

func errorResult(msg string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

func successResult(msg string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
