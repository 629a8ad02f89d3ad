package tools

import (
	"context"
	"fmt"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/pipelines"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type PipelineParams struct {
	Project    string `json:"project"`
	PipelineID int    `json:"pipeline_id"`
}

func pipelineFrom(p pipelines.Pipeline) Pipeline {
	return Pipeline{
		Name:     p.Name,
		ID:       p.Id,
		Folder:   p.Folder,
		Revision: p.Revision,
		WebURL:   webLink(p.Links),
	}
}

// webLink digs _links.web.href out of the loosely typed links payload.
func webLink(links any) *string {
	all, ok := links.(map[string]any)
	if !ok {
		return nil
	}
	web, ok := all["web"].(map[string]any)
	if !ok {
		return nil
	}
	href, ok := web["href"].(string)
	if !ok {
		return nil
	}
	return &href
}

func formatPipeline(p Pipeline) string {
	return fmt.Sprintf("## %s\n- **ID**: %s\n- **Folder**: %s\n- **Revision**: %s\n- **URL**: %s\n",
		orNA(p.Name), orNA(p.ID), orNA(p.Folder), orNA(p.Revision), orNA(p.WebURL))
}

func listPipelines(ctx context.Context, client PipelinesClient, project string) (string, error) {
	list, err := client.ListPipelines(ctx, pipelines.ListPipelinesArgs{Project: &project})
	if err != nil {
		return "", err
	}
	if list == nil || len(*list) == 0 {
		return fmt.Sprintf("No pipelines found in project %s.", project), nil
	}

	return joinBlocks(*list, func(p pipelines.Pipeline) string {
		return formatPipeline(pipelineFrom(p))
	}), nil
}

func getPipeline(ctx context.Context, client PipelinesClient, project string, pipelineID int) (string, error) {
	p, err := client.GetPipeline(ctx, pipelines.GetPipelineArgs{
		Project:    &project,
		PipelineId: &pipelineID,
	})
	if err != nil {
		return "", err
	}
	if p == nil {
		return fmt.Sprintf("Pipeline %d not found in project %s.", pipelineID, project), nil
	}
	return formatPipeline(pipelineFrom(*p)), nil
}

func (t *Toolset) handleListPipelines(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[ProjectParams]) (*mcp.CallToolResultFor[any], error) {
	return t.invoke(ctx, "list_pipelines", func(ctx context.Context) (string, error) {
		client, err := t.clients.Pipelines(ctx)
		if err != nil {
			return "", err
		}
		return listPipelines(ctx, client, params.Arguments.Project)
	})
}

func (t *Toolset) handleGetPipeline(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[PipelineParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	return t.invoke(ctx, "get_pipeline", func(ctx context.Context) (string, error) {
		client, err := t.clients.Pipelines(ctx)
		if err != nil {
			return "", err
		}
		return getPipeline(ctx, client, args.Project, args.PipelineID)
	})
}
