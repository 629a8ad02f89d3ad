package tools

import (
	"context"
	"fmt"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ListProjectsParams struct{}

func projectFrom(p core.TeamProjectReference) Project {
	return Project{
		Name:        p.Name,
		ID:          uuidString(p.Id),
		Description: p.Description,
		State:       stringOf(p.State),
		Visibility:  stringOf(p.Visibility),
		URL:         p.Url,
	}
}

func teamFrom(t core.WebApiTeam) Team {
	return Team{
		Name:        t.Name,
		ID:          uuidString(t.Id),
		Description: t.Description,
		URL:         t.Url,
	}
}

func formatProject(p Project) string {
	return fmt.Sprintf("# %s\n- **ID**: %s\n- **Description**: %s\n- **State**: %s\n- **Visibility**: %s\n- **URL**: %s\n",
		orNA(p.Name), orNA(p.ID), orNA(p.Description), orNA(p.State), orNA(p.Visibility), orNA(p.URL))
}

func formatTeam(t Team) string {
	return fmt.Sprintf("## %s\n- **ID**: %s\n- **Description**: %s\n- **URL**: %s\n",
		orNA(t.Name), orNA(t.ID), orNA(t.Description), orNA(t.URL))
}

func listProjects(ctx context.Context, client CoreClient) (string, error) {
	resp, err := client.GetProjects(ctx, core.GetProjectsArgs{})
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Value) == 0 {
		return "No projects found.", nil
	}

	return joinBlocks(resp.Value, func(p core.TeamProjectReference) string {
		return formatProject(projectFrom(p))
	}), nil
}

func listTeams(ctx context.Context, client CoreClient, project string) (string, error) {
	teams, err := client.GetTeams(ctx, core.GetTeamsArgs{ProjectId: &project})
	if err != nil {
		return "", err
	}
	if teams == nil || len(*teams) == 0 {
		return fmt.Sprintf("No teams found in project %s.", project), nil
	}

	return joinBlocks(*teams, func(t core.WebApiTeam) string {
		return formatTeam(teamFrom(t))
	}), nil
}

func (t *Toolset) handleListProjects(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[ListProjectsParams]) (*mcp.CallToolResultFor[any], error) {
	return t.invoke(ctx, "list_projects", func(ctx context.Context) (string, error) {
		client, err := t.clients.Core(ctx)
		if err != nil {
			return "", err
		}
		return listProjects(ctx, client)
	})
}

func (t *Toolset) handleListTeams(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[ProjectParams]) (*mcp.CallToolResultFor[any], error) {
	return t.invoke(ctx, "list_teams", func(ctx context.Context) (string, error) {
		client, err := t.clients.Core(ctx)
		if err != nil {
			return "", err
		}
		return listTeams(ctx, client, params.Arguments.Project)
	})
}
