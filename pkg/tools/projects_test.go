package tools

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/work"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProjects(t *testing.T) {
	id := uuid.MustParse("2d5c3f6e-1111-4a2b-8c9d-0123456789ab")
	state := core.ProjectStateValues.WellFormed
	visibility := core.ProjectVisibilityValues.Private

	tests := []struct {
		name string
		resp *core.GetProjectsResponseValue
		want string
	}{
		{name: "nil response", want: "No projects found."},
		{name: "empty", resp: &core.GetProjectsResponseValue{}, want: "No projects found."},
		{
			name: "one project",
			resp: &core.GetProjectsResponseValue{Value: []core.TeamProjectReference{{
				Name:        ptr("Fabrikam"),
				Id:          &id,
				Description: ptr("Main product"),
				State:       &state,
				Visibility:  &visibility,
				Url:         ptr("https://dev.azure.com/org/_apis/projects/2d5c3f6e"),
			}}},
			want: "# Fabrikam\n- **ID**: 2d5c3f6e-1111-4a2b-8c9d-0123456789ab\n- **Description**: Main product\n- **State**: wellFormed\n- **Visibility**: private\n- **URL**: https://dev.azure.com/org/_apis/projects/2d5c3f6e\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := listProjects(context.Background(), &fakeCore{projects: tt.resp})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListTeams(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got, err := listTeams(context.Background(), &fakeCore{teams: &[]core.WebApiTeam{}}, "Fabrikam")
		require.NoError(t, err)
		assert.Equal(t, "No teams found in project Fabrikam.", got)
	})

	t.Run("teams", func(t *testing.T) {
		teams := &[]core.WebApiTeam{{Name: ptr("Platform"), Url: ptr("https://example.com/team")}, {Name: ptr("Web")}}
		got, err := listTeams(context.Background(), &fakeCore{teams: teams}, "Fabrikam")
		require.NoError(t, err)
		assert.Equal(t, "## Platform\n- **ID**: N/A\n- **Description**: N/A\n- **URL**: https://example.com/team\n"+
			"\n\n"+
			"## Web\n- **ID**: N/A\n- **Description**: N/A\n- **URL**: N/A\n", got)
	})
}

func TestGetTeamIterations(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got, err := getTeamIterations(context.Background(), &fakeWork{}, "Fabrikam", "Platform")
		require.NoError(t, err)
		assert.Equal(t, "No iterations found for team Platform in project Fabrikam.", got)
	})

	t.Run("with dates", func(t *testing.T) {
		frame := work.TimeFrameValues.Current
		iterations := &[]work.TeamSettingsIteration{{
			Name: ptr("Sprint 12"),
			Path: ptr(`Fabrikam\Sprint 12`),
			Attributes: &work.TeamIterationAttributes{
				StartDate:  &azuredevops.Time{Time: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
				FinishDate: &azuredevops.Time{Time: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
				TimeFrame:  &frame,
			},
		}}

		got, err := getTeamIterations(context.Background(), &fakeWork{iterations: iterations}, "Fabrikam", "Platform")
		require.NoError(t, err)
		assert.Equal(t, "## Sprint 12\n- **ID**: N/A\n- **Path**: Fabrikam\\Sprint 12\n- **Start Date**: 2025-03-03\n- **Finish Date**: 2025-03-14\n- **Time Frame**: current\n", got)
	})

	t.Run("without attributes", func(t *testing.T) {
		iterations := &[]work.TeamSettingsIteration{{Name: ptr("Backlog")}}
		got, err := getTeamIterations(context.Background(), &fakeWork{iterations: iterations}, "Fabrikam", "Platform")
		require.NoError(t, err)
		assert.Contains(t, got, "- **Start Date**: N/A\n- **Finish Date**: N/A\n- **Time Frame**: N/A\n")
	})
}
