package tools

import (
	"context"
	"fmt"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/work"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const dateLayout = "2006-01-02"

type TeamParams struct {
	Project string `json:"project"`
	Team    string `json:"team"`
}

func dateString(t *azuredevops.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Time.Format(dateLayout)
	return &s
}

func iterationFrom(it work.TeamSettingsIteration) Iteration {
	iteration := Iteration{
		Name: it.Name,
		ID:   uuidString(it.Id),
		Path: it.Path,
	}
	if it.Attributes != nil {
		iteration.StartDate = dateString(it.Attributes.StartDate)
		iteration.FinishDate = dateString(it.Attributes.FinishDate)
		iteration.TimeFrame = stringOf(it.Attributes.TimeFrame)
	}
	return iteration
}

func formatIteration(it Iteration) string {
	return fmt.Sprintf("## %s\n- **ID**: %s\n- **Path**: %s\n- **Start Date**: %s\n- **Finish Date**: %s\n- **Time Frame**: %s\n",
		orNA(it.Name), orNA(it.ID), orNA(it.Path), orNA(it.StartDate), orNA(it.FinishDate), orNA(it.TimeFrame))
}

func getTeamIterations(ctx context.Context, client WorkClient, project, team string) (string, error) {
	iterations, err := client.GetTeamIterations(ctx, work.GetTeamIterationsArgs{
		Project: &project,
		Team:    &team,
	})
	if err != nil {
		return "", err
	}
	if iterations == nil || len(*iterations) == 0 {
		return fmt.Sprintf("No iterations found for team %s in project %s.", team, project), nil
	}

	return joinBlocks(*iterations, func(it work.TeamSettingsIteration) string {
		return formatIteration(iterationFrom(it))
	}), nil
}

func (t *Toolset) handleGetTeamIterations(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[TeamParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	return t.invoke(ctx, "get_team_iterations", func(ctx context.Context) (string, error) {
		client, err := t.clients.Work(ctx)
		if err != nil {
			return "", err
		}
		return getTeamIterations(ctx, client, args.Project, args.Team)
	})
}
