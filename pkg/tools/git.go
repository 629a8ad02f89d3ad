package tools

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ProjectParams struct {
	Project string `json:"project"`
}

type RepositoryParams struct {
	Project      string `json:"project"`
	RepositoryID string `json:"repository_id"`
}

type CreatePullRequestParams struct {
	Project       string `json:"project"`
	RepositoryID  string `json:"repository_id"`
	SourceRefName string `json:"source_ref_name"`
	TargetRefName string `json:"target_ref_name"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
}

func repositoryFrom(r git.GitRepository) Repository {
	return Repository{
		Name:          r.Name,
		ID:            uuidString(r.Id),
		DefaultBranch: r.DefaultBranch,
		WebURL:        r.WebUrl,
	}
}

func pullRequestFrom(pr git.GitPullRequest) PullRequest {
	return PullRequest{
		Title:         pr.Title,
		ID:            pr.PullRequestId,
		Status:        stringOf(pr.Status),
		SourceRefName: pr.SourceRefName,
		TargetRefName: pr.TargetRefName,
		URL:           pr.Url,
	}
}

func formatRepository(r Repository) string {
	return fmt.Sprintf("# %s\n- **ID**: %s\n- **Default Branch**: %s\n- **URL**: %s\n",
		orNA(r.Name), orNA(r.ID), orNA(r.DefaultBranch), orNA(r.WebURL))
}

func formatPullRequest(pr PullRequest) string {
	return fmt.Sprintf("# %s\n- **ID**: %s\n- **Status**: %s\n- **Source Branch**: %s\n- **Target Branch**: %s\n- **URL**: %s\n",
		orNA(pr.Title), orNA(pr.ID), orNA(pr.Status), orNA(pr.SourceRefName), orNA(pr.TargetRefName), orNA(pr.URL))
}

func listRepositories(ctx context.Context, client GitClient, project string) (string, error) {
	repos, err := client.GetRepositories(ctx, git.GetRepositoriesArgs{Project: &project})
	if err != nil {
		return "", err
	}
	if repos == nil || len(*repos) == 0 {
		return fmt.Sprintf("No repositories found in project %s.", project), nil
	}

	return joinBlocks(*repos, func(r git.GitRepository) string {
		return formatRepository(repositoryFrom(r))
	}), nil
}

func getRepository(ctx context.Context, client GitClient, project, repositoryID string) (string, error) {
	repo, err := client.GetRepository(ctx, git.GetRepositoryArgs{
		Project:      &project,
		RepositoryId: &repositoryID,
	})
	if err != nil {
		return "", err
	}
	if repo == nil {
		return fmt.Sprintf("Repository %s not found in project %s.", repositoryID, project), nil
	}
	return formatRepository(repositoryFrom(*repo)), nil
}

func getPullRequests(ctx context.Context, client GitClient, project, repositoryID string) (string, error) {
	prs, err := client.GetPullRequests(ctx, git.GetPullRequestsArgs{
		Project:      &project,
		RepositoryId: &repositoryID,
		SearchCriteria: &git.GitPullRequestSearchCriteria{
			Status: &git.PullRequestStatusValues.Active,
		},
	})
	if err != nil {
		return "", err
	}
	if prs == nil || len(*prs) == 0 {
		return fmt.Sprintf("No active pull requests found in repository %s.", repositoryID), nil
	}

	return joinBlocks(*prs, func(pr git.GitPullRequest) string {
		return formatPullRequest(pullRequestFrom(pr))
	}), nil
}

func createPullRequest(ctx context.Context, client GitClient, args CreatePullRequestParams) (string, error) {
	toCreate := &git.GitPullRequest{
		SourceRefName: &args.SourceRefName,
		TargetRefName: &args.TargetRefName,
		Title:         &args.Title,
	}
	if args.Description != "" {
		toCreate.Description = &args.Description
	}

	pr, err := client.CreatePullRequest(ctx, git.CreatePullRequestArgs{
		Project:                &args.Project,
		RepositoryId:           &args.RepositoryID,
		GitPullRequestToCreate: toCreate,
	})
	if err != nil {
		return "", err
	}
	if pr == nil {
		return "", errors.Newf("no pull request returned for %s", args.Title)
	}
	return formatPullRequest(pullRequestFrom(*pr)), nil
}

func (t *Toolset) handleListRepositories(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[ProjectParams]) (*mcp.CallToolResultFor[any], error) {
	return t.invoke(ctx, "list_repositories", func(ctx context.Context) (string, error) {
		client, err := t.clients.Git(ctx)
		if err != nil {
			return "", err
		}
		return listRepositories(ctx, client, params.Arguments.Project)
	})
}

func (t *Toolset) handleGetRepository(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[RepositoryParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	return t.invoke(ctx, "get_repository", func(ctx context.Context) (string, error) {
		client, err := t.clients.Git(ctx)
		if err != nil {
			return "", err
		}
		return getRepository(ctx, client, args.Project, args.RepositoryID)
	})
}

func (t *Toolset) handleGetPullRequests(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[RepositoryParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	return t.invoke(ctx, "get_pull_requests", func(ctx context.Context) (string, error) {
		client, err := t.clients.Git(ctx)
		if err != nil {
			return "", err
		}
		return getPullRequests(ctx, client, args.Project, args.RepositoryID)
	})
}

func (t *Toolset) handleCreatePullRequest(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[CreatePullRequestParams]) (*mcp.CallToolResultFor[any], error) {
	return t.invoke(ctx, "create_pull_request", func(ctx context.Context) (string, error) {
		client, err := t.clients.Git(ctx)
		if err != nil {
			return "", err
		}
		return createPullRequest(ctx, client, params.Arguments)
	})
}
