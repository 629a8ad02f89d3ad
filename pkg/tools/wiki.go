package tools

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/search"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/searchshared"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/wiki"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gopkg.in/yaml.v3"
)

// wikiSearchTop is the page size of a wiki search. Results are not paged.
const wikiSearchTop = 500

// highlightSeparator joins the highlighted fragments of one hit.
const highlightSeparator = " ... "

type SearchWikiParams struct {
	Query string `json:"query"`
}

type WikiPathParams struct {
	Project string `json:"project"`
	WikiID  string `json:"wiki_id"`
	Path    string `json:"path"`
}

type WikiPageIDParams struct {
	Project string `json:"project"`
	WikiID  string `json:"wiki_id"`
	ID      int    `json:"id"`
}

// ResolveWikiPath turns a page path as it appears in search results or page
// URLs into the path the wiki API expects. Dashes become spaces, a trailing
// ".md" is dropped, and only then is the result percent-decoded.
//
// Titles that really contain a dash cannot be addressed this way; the wiki
// stores them with an encoded dash, which survives until decoding.
func ResolveWikiPath(path string) string {
	resolved := strings.ReplaceAll(path, "-", " ")
	resolved = strings.TrimSuffix(resolved, ".md")
	return unquote(resolved)
}

// unquote decodes every valid %XX escape and keeps malformed ones literally.
// "+" is not a space. Decoded bytes that are not valid UTF-8 become U+FFFD.
func unquote(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var out strings.Builder
	var pending []byte
	flush := func() {
		for len(pending) > 0 {
			r, size := utf8.DecodeRune(pending)
			out.WriteRune(r)
			pending = pending[size:]
		}
	}

	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) {
			if b, err := hex.DecodeString(s[i+1 : i+3]); err == nil {
				pending = append(pending, b[0])
				i += 3
				continue
			}
		}
		flush()
		out.WriteByte(s[i])
		i++
	}
	flush()
	return out.String()
}

func wikiPageFrom(p wiki.WikiPage) WikiPage {
	page := WikiPage{
		ID:      p.Id,
		Path:    p.Path,
		Order:   p.Order,
		URL:     p.Url,
		Content: p.Content,
	}
	if p.SubPages != nil {
		for _, sub := range *p.SubPages {
			page.SubPages = append(page.SubPages, wikiPageFrom(sub))
		}
	}
	return page
}

type pageFrontmatter struct {
	ID       any                  `yaml:"id"`
	Path     any                  `yaml:"path"`
	Order    any                  `yaml:"order"`
	URL      any                  `yaml:"url"`
	SubPages []subPageFrontmatter `yaml:"sub_pages,omitempty"`
}

type subPageFrontmatter struct {
	Path  any `yaml:"path"`
	ID    any `yaml:"id"`
	Order any `yaml:"order"`
	URL   any `yaml:"url"`
}

func yamlValue[T any](v *T) any {
	if v == nil {
		return placeholder
	}
	return *v
}

// formatWikiPage renders the page metadata as YAML frontmatter followed by
// the markdown content.
func formatWikiPage(page WikiPage) (string, error) {
	fm := pageFrontmatter{
		ID:    yamlValue(page.ID),
		Path:  yamlValue(page.Path),
		Order: yamlValue(page.Order),
		URL:   yamlValue(page.URL),
	}
	for _, sub := range page.SubPages {
		fm.SubPages = append(fm.SubPages, subPageFrontmatter{
			Path:  yamlValue(sub.Path),
			ID:    yamlValue(sub.ID),
			Order: yamlValue(sub.Order),
			URL:   yamlValue(sub.URL),
		})
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return "", errors.Wrap(err, "failed to render page frontmatter")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "failed to render page frontmatter")
	}
	buf.WriteString("---\n\n")
	if page.Content != nil {
		buf.WriteString(*page.Content)
	}
	return buf.String(), nil
}

func wikiSearchResultFrom(r searchshared.WikiResult) WikiSearchResult {
	result := WikiSearchResult{
		FileName: r.FileName,
		Path:     r.Path,
	}
	if r.Project != nil {
		result.ProjectName = r.Project.Name
		result.ProjectID = stringOf(r.Project.Id)
	}
	if r.Wiki != nil {
		result.WikiName = r.Wiki.Name
		result.WikiID = stringOf(r.Wiki.Id)
	}
	if r.Hits != nil {
		for _, hit := range *r.Hits {
			h := WikiHit{Field: hit.FieldReferenceName}
			if hit.Highlights != nil {
				h.Highlights = *hit.Highlights
			}
			result.Hits = append(result.Hits, h)
		}
	}
	return result
}

func formatWikiSearchResult(r WikiSearchResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("### %s\n", orNA(r.FileName)))
	sb.WriteString(fmt.Sprintf("- **Path:** %s\n", orNA(r.Path)))
	sb.WriteString(fmt.Sprintf("- **Project:** %s (%s)\n", orNA(r.ProjectName), orNA(r.ProjectID)))
	sb.WriteString(fmt.Sprintf("- **Wiki:** %s (%s)", orNA(r.WikiName), orNA(r.WikiID)))
	if len(r.Hits) > 0 {
		sb.WriteString("\n- **Hits:**")
		for _, hit := range r.Hits {
			sb.WriteString(fmt.Sprintf("\n  - **%s:** %s", orNA(hit.Field), strings.Join(hit.Highlights, highlightSeparator)))
		}
	}
	return sb.String()
}

// formatWikiSearchResults renders the results of searching for query.
func formatWikiSearchResults(query string, results []WikiSearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("No wiki pages found for query: %s", query)
	}

	blocks := []string{fmt.Sprintf("## Wiki Search Results\n- **Query:** %s", query)}
	for _, r := range results {
		blocks = append(blocks, formatWikiSearchResult(r))
	}
	return strings.Join(blocks, "\n\n")
}

func searchWiki(ctx context.Context, client SearchClient, query string) (string, error) {
	resp, err := client.FetchWikiSearchResults(ctx, search.FetchWikiSearchResultsArgs{
		Request: &searchshared.WikiSearchRequest{
			SearchText: &query,
			Top:        ptr(wikiSearchTop),
		},
	})
	if err != nil {
		return "", err
	}

	var results []WikiSearchResult
	if resp != nil && resp.Results != nil {
		for _, r := range *resp.Results {
			results = append(results, wikiSearchResultFrom(r))
		}
	}
	return formatWikiSearchResults(query, results), nil
}

func renderPageResponse(resp *wiki.WikiPageResponse) (string, error) {
	if resp == nil || resp.Page == nil {
		return "", errors.New("wiki page response carried no page")
	}
	return formatWikiPage(wikiPageFrom(*resp.Page))
}

func getWikiByPath(ctx context.Context, client WikiClient, project, wikiID, path string) (string, error) {
	resolved := ResolveWikiPath(path)
	resp, err := client.GetPage(ctx, wiki.GetPageArgs{
		Project:        &project,
		WikiIdentifier: &wikiID,
		Path:           &resolved,
		RecursionLevel: &git.VersionControlRecursionTypeValues.OneLevel,
		IncludeContent: ptr(true),
	})
	if err != nil {
		return "", err
	}
	return renderPageResponse(resp)
}

func getWikiByID(ctx context.Context, client WikiClient, project, wikiID string, id int) (string, error) {
	resp, err := client.GetPageById(ctx, wiki.GetPageByIdArgs{
		Project:        &project,
		WikiIdentifier: &wikiID,
		Id:             &id,
		RecursionLevel: &git.VersionControlRecursionTypeValues.OneLevel,
		IncludeContent: ptr(true),
	})
	if err != nil {
		return "", err
	}
	return renderPageResponse(resp)
}

func (t *Toolset) handleSearchWiki(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[SearchWikiParams]) (*mcp.CallToolResultFor[any], error) {
	return t.invoke(ctx, "search_wiki", func(ctx context.Context) (string, error) {
		client, err := t.clients.Search(ctx)
		if err != nil {
			return "", err
		}
		return searchWiki(ctx, client, params.Arguments.Query)
	})
}

func (t *Toolset) handleGetWikiByPath(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[WikiPathParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	return t.invoke(ctx, "get_wiki_by_path", func(ctx context.Context) (string, error) {
		client, err := t.clients.Wiki(ctx)
		if err != nil {
			return "", err
		}
		return getWikiByPath(ctx, client, args.Project, args.WikiID, args.Path)
	})
}

func (t *Toolset) handleGetWikiByID(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[WikiPageIDParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	return t.invoke(ctx, "get_wiki_by_id", func(ctx context.Context) (string, error) {
		client, err := t.clients.Wiki(ctx)
		if err != nil {
			return "", err
		}
		return getWikiByID(ctx, client, args.Project, args.WikiID, args.ID)
	})
}
