package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Work item field reference names.
const (
	fieldTitle        = "System.Title"
	fieldState        = "System.State"
	fieldWorkItemType = "System.WorkItemType"
	fieldAssignedTo   = "System.AssignedTo"
)

type WorkItemParams struct {
	ID int `json:"id"`
}

type QueryWorkItemsParams struct {
	Project string `json:"project"`
	Query   string `json:"query"`
}

func fieldString(fields map[string]any, name string) *string {
	switch v := fields[name].(type) {
	case nil:
		return nil
	case string:
		return &v
	default:
		return stringOf(&v)
	}
}

// identityName reads an identity field, which the service returns either as
// an identity object or as a "Name <address>" string.
func identityName(fields map[string]any, name string) *string {
	identity, ok := fields[name].(map[string]any)
	if !ok {
		return fieldString(fields, name)
	}
	if display, ok := identity["displayName"].(string); ok {
		return &display
	}
	return nil
}

func workItemFrom(wi workitemtracking.WorkItem) WorkItem {
	item := WorkItem{
		ID:       wi.Id,
		Revision: wi.Rev,
		URL:      wi.Url,
	}
	if wi.Fields != nil {
		fields := *wi.Fields
		item.Type = fieldString(fields, fieldWorkItemType)
		item.Title = fieldString(fields, fieldTitle)
		item.State = fieldString(fields, fieldState)
		item.AssignedTo = identityName(fields, fieldAssignedTo)
	}
	return item
}

func formatWorkItem(wi WorkItem) string {
	return fmt.Sprintf("# %s: %s\n- **Type**: %s\n- **State**: %s\n- **Assigned To**: %s\n- **Revision**: %s\n- **URL**: %s\n",
		orNA(wi.ID), orNA(wi.Title), orNA(wi.Type), orNA(wi.State), orNA(wi.AssignedTo), orNA(wi.Revision), orNA(wi.URL))
}

func formatQueryResult(query string, refs []workitemtracking.WorkItemReference) string {
	if len(refs) == 0 {
		return fmt.Sprintf("No work items found for query: %s", query)
	}

	lines := []string{fmt.Sprintf("Found %d work item(s):", len(refs))}
	for _, ref := range refs {
		lines = append(lines, fmt.Sprintf("- #%s (%s)", orNA(ref.Id), orNA(ref.Url)))
	}
	return strings.Join(lines, "\n")
}

func getWorkItem(ctx context.Context, client WorkItemClient, id int) (string, error) {
	wi, err := client.GetWorkItem(ctx, workitemtracking.GetWorkItemArgs{Id: &id})
	if err != nil {
		return "", err
	}
	if wi == nil {
		return fmt.Sprintf("Work item %d not found.", id), nil
	}
	return formatWorkItem(workItemFrom(*wi)), nil
}

func queryWorkItems(ctx context.Context, client WorkItemClient, project, query string) (string, error) {
	result, err := client.QueryByWiql(ctx, workitemtracking.QueryByWiqlArgs{
		Wiql:    &workitemtracking.Wiql{Query: &query},
		Project: &project,
	})
	if err != nil {
		return "", err
	}

	var refs []workitemtracking.WorkItemReference
	if result != nil && result.WorkItems != nil {
		refs = *result.WorkItems
	}
	return formatQueryResult(query, refs), nil
}

func (t *Toolset) handleGetWorkItem(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[WorkItemParams]) (*mcp.CallToolResultFor[any], error) {
	return t.invoke(ctx, "get_work_item", func(ctx context.Context) (string, error) {
		client, err := t.clients.WorkItems(ctx)
		if err != nil {
			return "", err
		}
		return getWorkItem(ctx, client, params.Arguments.ID)
	})
}

func (t *Toolset) handleQueryWorkItems(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[QueryWorkItemsParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	return t.invoke(ctx, "query_work_items", func(ctx context.Context) (string, error) {
		client, err := t.clients.WorkItems(ctx)
		if err != nil {
			return "", err
		}
		return queryWorkItems(ctx, client, args.Project, args.Query)
	})
}
