package tools

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// placeholder stands in for fields the upstream object did not carry.
const placeholder = "N/A"

// Repository is the view of a git repository the tools render.
type Repository struct {
	Name          *string
	ID            *string
	DefaultBranch *string
	WebURL        *string
}

// PullRequest is the view of a pull request the tools render.
type PullRequest struct {
	Title         *string
	ID            *int
	Status        *string
	SourceRefName *string
	TargetRefName *string
	URL           *string
}

// Pipeline is a pipeline definition.
type Pipeline struct {
	Name     *string
	ID       *int
	Folder   *string
	Revision *int
	WebURL   *string
}

// WikiPage is a wiki page with its direct sub pages.
type WikiPage struct {
	ID       *int
	Path     *string
	Order    *int
	URL      *string
	Content  *string
	SubPages []WikiPage
}

// WikiSearchResult is one page matched by a wiki search.
type WikiSearchResult struct {
	FileName    *string
	Path        *string
	ProjectName *string
	ProjectID   *string
	WikiName    *string
	WikiID      *string
	Hits        []WikiHit
}

// WikiHit is a matched field and its highlighted fragments.
type WikiHit struct {
	Field      *string
	Highlights []string
}

// Project is a team project in the organization.
type Project struct {
	Name        *string
	ID          *string
	Description *string
	State       *string
	Visibility  *string
	URL         *string
}

// Team is a team within a project.
type Team struct {
	Name        *string
	ID          *string
	Description *string
	URL         *string
}

// Iteration is a sprint assigned to a team.
type Iteration struct {
	Name       *string
	ID         *string
	Path       *string
	StartDate  *string
	FinishDate *string
	TimeFrame  *string
}

// WorkItem holds the identity and field map of a work item.
type WorkItem struct {
	ID         *int
	Revision   *int
	Type       *string
	Title      *string
	State      *string
	AssignedTo *string
	URL        *string
}

// orNA renders an optional value, or the placeholder when it is absent.
func orNA[T any](v *T) string {
	if v == nil {
		return placeholder
	}
	return fmt.Sprint(*v)
}

// stringOf converts an optional SDK value with a string-ish underlying type
// (enums, ids) into an optional string.
func stringOf[T any](v *T) *string {
	if v == nil {
		return nil
	}
	s := fmt.Sprint(*v)
	return &s
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// joinBlocks concatenates formatted records with a blank line between them.
func joinBlocks[T any](items []T, format func(T) string) string {
	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, format(item))
	}
	return strings.Join(blocks, "\n\n")
}

// ptr is shorthand for building SDK argument structs.
func ptr[T any](v T) *T {
	return &v
}
