package tools

import (
	"context"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/pipelines"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/search"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/searchshared"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/wiki"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/work"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"

	"github.com/joshcarp/azdo-mcp/pkg/azdo"
)

// The interfaces below are the slices of the SDK clients the tools call.
// The SDK's own Client types satisfy them.

// GitClient reads repositories and pull requests and opens new pull requests.
type GitClient interface {
	GetRepositories(context.Context, git.GetRepositoriesArgs) (*[]git.GitRepository, error)
	GetRepository(context.Context, git.GetRepositoryArgs) (*git.GitRepository, error)
	GetPullRequests(context.Context, git.GetPullRequestsArgs) (*[]git.GitPullRequest, error)
	CreatePullRequest(context.Context, git.CreatePullRequestArgs) (*git.GitPullRequest, error)
}

// PipelinesClient lists and fetches pipeline definitions.
type PipelinesClient interface {
	ListPipelines(context.Context, pipelines.ListPipelinesArgs) (*[]pipelines.Pipeline, error)
	GetPipeline(context.Context, pipelines.GetPipelineArgs) (*pipelines.Pipeline, error)
}

// WikiClient fetches wiki pages by path or by id.
type WikiClient interface {
	GetPage(context.Context, wiki.GetPageArgs) (*wiki.WikiPageResponse, error)
	GetPageById(context.Context, wiki.GetPageByIdArgs) (*wiki.WikiPageResponse, error)
}

// SearchClient runs organization-wide wiki searches.
type SearchClient interface {
	FetchWikiSearchResults(context.Context, search.FetchWikiSearchResultsArgs) (*searchshared.WikiSearchResponse, error)
}

// CoreClient lists projects and their teams.
type CoreClient interface {
	GetProjects(context.Context, core.GetProjectsArgs) (*core.GetProjectsResponseValue, error)
	GetTeams(context.Context, core.GetTeamsArgs) (*[]core.WebApiTeam, error)
}

// WorkClient reads team iterations.
type WorkClient interface {
	GetTeamIterations(context.Context, work.GetTeamIterationsArgs) (*[]work.TeamSettingsIteration, error)
}

// WorkItemClient fetches single work items and runs WIQL queries.
type WorkItemClient interface {
	GetWorkItem(context.Context, workitemtracking.GetWorkItemArgs) (*workitemtracking.WorkItem, error)
	QueryByWiql(context.Context, workitemtracking.QueryByWiqlArgs) (*workitemtracking.WorkItemQueryResult, error)
}

// Clients hands out one client per service area. Each getter is called once
// per tool invocation.
type Clients struct {
	Git       func(context.Context) (GitClient, error)
	Pipelines func(context.Context) (PipelinesClient, error)
	Wiki      func(context.Context) (WikiClient, error)
	Search    func(context.Context) (SearchClient, error)
	Core      func(context.Context) (CoreClient, error)
	Work      func(context.Context) (WorkClient, error)
	WorkItems func(context.Context) (WorkItemClient, error)
}

// NewClients returns getters backed by the SDK, all sharing connector's
// connection.
func NewClients(connector *azdo.Connector) *Clients {
	return &Clients{
		Git: func(ctx context.Context) (GitClient, error) {
			return azdo.NewClient(ctx, connector, azdo.AreaGit, git.NewClient)
		},
		Pipelines: func(ctx context.Context) (PipelinesClient, error) {
			return azdo.NewClient(ctx, connector, azdo.AreaPipelines, azdo.Infallible(pipelines.NewClient))
		},
		Wiki: func(ctx context.Context) (WikiClient, error) {
			return azdo.NewClient(ctx, connector, azdo.AreaWiki, wiki.NewClient)
		},
		Search: func(ctx context.Context) (SearchClient, error) {
			return azdo.NewClient(ctx, connector, azdo.AreaSearch, search.NewClient)
		},
		Core: func(ctx context.Context) (CoreClient, error) {
			return azdo.NewClient(ctx, connector, azdo.AreaCore, core.NewClient)
		},
		Work: func(ctx context.Context) (WorkClient, error) {
			return azdo.NewClient(ctx, connector, azdo.AreaWork, work.NewClient)
		},
		WorkItems: func(ctx context.Context) (WorkItemClient, error) {
			return azdo.NewClient(ctx, connector, azdo.AreaWorkItems, workitemtracking.NewClient)
		},
	}
}
