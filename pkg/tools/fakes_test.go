package tools

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/pipelines"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/search"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/searchshared"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/wiki"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/work"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
)

type fakeGit struct {
	repos   *[]git.GitRepository
	repo    *git.GitRepository
	prs     *[]git.GitPullRequest
	created *git.GitPullRequest
	err     error

	pullRequestsArgs git.GetPullRequestsArgs
	createArgs       git.CreatePullRequestArgs
}

func (f *fakeGit) GetRepositories(ctx context.Context, args git.GetRepositoriesArgs) (*[]git.GitRepository, error) {
	return f.repos, f.err
}

func (f *fakeGit) GetRepository(ctx context.Context, args git.GetRepositoryArgs) (*git.GitRepository, error) {
	return f.repo, f.err
}

func (f *fakeGit) GetPullRequests(ctx context.Context, args git.GetPullRequestsArgs) (*[]git.GitPullRequest, error) {
	f.pullRequestsArgs = args
	return f.prs, f.err
}

func (f *fakeGit) CreatePullRequest(ctx context.Context, args git.CreatePullRequestArgs) (*git.GitPullRequest, error) {
	f.createArgs = args
	return f.created, f.err
}

type fakePipelines struct {
	list     *[]pipelines.Pipeline
	pipeline *pipelines.Pipeline
	err      error
}

func (f *fakePipelines) ListPipelines(ctx context.Context, args pipelines.ListPipelinesArgs) (*[]pipelines.Pipeline, error) {
	return f.list, f.err
}

func (f *fakePipelines) GetPipeline(ctx context.Context, args pipelines.GetPipelineArgs) (*pipelines.Pipeline, error) {
	return f.pipeline, f.err
}

type fakeWiki struct {
	page *wiki.WikiPageResponse
	err  error

	pageArgs     wiki.GetPageArgs
	pageByIDArgs wiki.GetPageByIdArgs
}

func (f *fakeWiki) GetPage(ctx context.Context, args wiki.GetPageArgs) (*wiki.WikiPageResponse, error) {
	f.pageArgs = args
	return f.page, f.err
}

func (f *fakeWiki) GetPageById(ctx context.Context, args wiki.GetPageByIdArgs) (*wiki.WikiPageResponse, error) {
	f.pageByIDArgs = args
	return f.page, f.err
}

type fakeSearch struct {
	resp *searchshared.WikiSearchResponse
	err  error

	args search.FetchWikiSearchResultsArgs
}

func (f *fakeSearch) FetchWikiSearchResults(ctx context.Context, args search.FetchWikiSearchResultsArgs) (*searchshared.WikiSearchResponse, error) {
	f.args = args
	return f.resp, f.err
}

type fakeCore struct {
	projects *core.GetProjectsResponseValue
	teams    *[]core.WebApiTeam
	err      error
}

func (f *fakeCore) GetProjects(ctx context.Context, args core.GetProjectsArgs) (*core.GetProjectsResponseValue, error) {
	return f.projects, f.err
}

func (f *fakeCore) GetTeams(ctx context.Context, args core.GetTeamsArgs) (*[]core.WebApiTeam, error) {
	return f.teams, f.err
}

type fakeWork struct {
	iterations *[]work.TeamSettingsIteration
	err        error
}

func (f *fakeWork) GetTeamIterations(ctx context.Context, args work.GetTeamIterationsArgs) (*[]work.TeamSettingsIteration, error) {
	return f.iterations, f.err
}

type fakeWorkItems struct {
	item   *workitemtracking.WorkItem
	result *workitemtracking.WorkItemQueryResult
	err    error

	wiqlArgs workitemtracking.QueryByWiqlArgs
}

func (f *fakeWorkItems) GetWorkItem(ctx context.Context, args workitemtracking.GetWorkItemArgs) (*workitemtracking.WorkItem, error) {
	return f.item, f.err
}

func (f *fakeWorkItems) QueryByWiql(ctx context.Context, args workitemtracking.QueryByWiqlArgs) (*workitemtracking.WorkItemQueryResult, error) {
	f.wiqlArgs = args
	return f.result, f.err
}

// fakeClients serves the given fakes from every getter. A nil fake makes the
// getter fail with err, or with a generic error when err is unset.
type fakeClients struct {
	git       *fakeGit
	pipelines *fakePipelines
	wiki      *fakeWiki
	search    *fakeSearch
	core      *fakeCore
	work      *fakeWork
	workItems *fakeWorkItems
	err       error
}

func (f fakeClients) missing() error {
	if f.err != nil {
		return f.err
	}
	return errors.New("client not configured")
}

func (f fakeClients) build() *Clients {
	return &Clients{
		Git: func(context.Context) (GitClient, error) {
			if f.git == nil {
				return nil, f.missing()
			}
			return f.git, nil
		},
		Pipelines: func(context.Context) (PipelinesClient, error) {
			if f.pipelines == nil {
				return nil, f.missing()
			}
			return f.pipelines, nil
		},
		Wiki: func(context.Context) (WikiClient, error) {
			if f.wiki == nil {
				return nil, f.missing()
			}
			return f.wiki, nil
		},
		Search: func(context.Context) (SearchClient, error) {
			if f.search == nil {
				return nil, f.missing()
			}
			return f.search, nil
		},
		Core: func(context.Context) (CoreClient, error) {
			if f.core == nil {
				return nil, f.missing()
			}
			return f.core, nil
		},
		Work: func(context.Context) (WorkClient, error) {
			if f.work == nil {
				return nil, f.missing()
			}
			return f.work, nil
		},
		WorkItems: func(context.Context) (WorkItemClient, error) {
			if f.workItems == nil {
				return nil, f.missing()
			}
			return f.workItems, nil
		},
	}
}
