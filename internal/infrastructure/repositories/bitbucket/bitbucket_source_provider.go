// Package bitbucket implements the source provider against the Bitbucket
// Cloud 2.0 REST API.
package bitbucket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

const (
	defaultAPIBaseURL = "https://api.bitbucket.org/2.0"
	cloneHost         = "bitbucket.org"
	pageLen           = 100

	requestTimeout = 30 * time.Second
)

// SourceProvider talks to the Bitbucket Cloud REST API using basic auth with
// a username and app password.
type SourceProvider struct {
	baseURL    string
	workspace  string
	username   string
	appSecret  string
	httpClient *http.Client
}

var _ repositories.SourceProvider = (*SourceProvider)(nil)

// Option customizes a SourceProvider.
type Option func(*SourceProvider)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(base string) Option {
	return func(p *SourceProvider) {
		p.baseURL = base
	}
}

// NewSourceProvider creates a provider bound to one workspace.
func NewSourceProvider(creds entities.SourceCredentials, opts ...Option) *SourceProvider {
	p := &SourceProvider{
		baseURL:   defaultAPIBaseURL,
		workspace: creds.Workspace,
		username:  creds.Username,
		appSecret: creds.AppSecret,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// repositoryResource mirrors the fields of the repository listing we consume.
type repositoryResource struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Project struct {
		Key string `json:"key"`
	} `json:"project"`
}

type projectResource struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type permissionResource struct {
	User struct {
		DisplayName string `json:"display_name"`
	} `json:"user"`
	Permission string `json:"permission"`
}

// page is the envelope every Bitbucket listing endpoint responds with. The
// next link is absent (or null) on the last page.
type page[T any] struct {
	Values []T    `json:"values"`
	Next   string `json:"next"`
}

// ListRepositories returns every repository in the workspace in listing order.
func (p *SourceProvider) ListRepositories(ctx context.Context) ([]entities.Repository, error) {
	start := fmt.Sprintf("%s/repositories/%s?pagelen=%d", p.baseURL, p.workspace, pageLen)

	resources, err := listAll[repositoryResource](ctx, p, start)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for workspace %q: %w", p.workspace, err)
	}

	return toRepositories(resources), nil
}

// ListProjects returns every project in the workspace in listing order.
func (p *SourceProvider) ListProjects(ctx context.Context) ([]entities.Project, error) {
	start := fmt.Sprintf("%s/workspaces/%s/projects?pagelen=%d", p.baseURL, p.workspace, pageLen)

	resources, err := listAll[projectResource](ctx, p, start)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for workspace %q: %w", p.workspace, err)
	}

	projects := make([]entities.Project, 0, len(resources))
	for _, res := range resources {
		projects = append(projects, entities.Project{Key: res.Key, Name: res.Name})
	}
	return projects, nil
}

// ListProjectRepositories returns the repositories whose project key matches.
func (p *SourceProvider) ListProjectRepositories(
	ctx context.Context,
	projectKey string,
) ([]entities.Repository, error) {
	query := url.QueryEscape(fmt.Sprintf("project.key=%q", projectKey))
	start := fmt.Sprintf("%s/repositories/%s?pagelen=%d&q=%s", p.baseURL, p.workspace, pageLen, query)

	resources, err := listAll[repositoryResource](ctx, p, start)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for project %q: %w", projectKey, err)
	}

	return toRepositories(resources), nil
}

// ListMembers returns the repository collaborators as "Display Name (permission)".
func (p *SourceProvider) ListMembers(ctx context.Context, slug string) ([]string, error) {
	start := fmt.Sprintf("%s/workspaces/%s/permissions/repositories/%s", p.baseURL, p.workspace, slug)

	resources, err := listAll[permissionResource](ctx, p, start)
	if err != nil {
		return nil, fmt.Errorf("failed to list members for repository %q: %w", slug, err)
	}

	members := make([]string, 0, len(resources))
	for _, res := range resources {
		members = append(members, fmt.Sprintf("%s (%s)", res.User.DisplayName, res.Permission))
	}
	return members, nil
}

// HasPipeline probes the pipelines listing. Any returned item means CI is
// configured; an empty listing or a probe failure both mean it is not.
func (p *SourceProvider) HasPipeline(ctx context.Context, slug string) bool {
	probe := fmt.Sprintf("%s/repositories/%s/%s/pipelines/?pagelen=1", p.baseURL, p.workspace, slug)

	body, err := p.get(ctx, probe)
	if err != nil {
		return false
	}

	var pg page[json.RawMessage]
	if err := json.Unmarshal(body, &pg); err != nil {
		return false
	}
	return len(pg.Values) > 0
}

// CloneURL builds the authenticated mirror-clone URL for one repository.
func (p *SourceProvider) CloneURL(slug string) string {
	u := url.URL{
		Scheme: "https",
		User:   url.UserPassword(p.username, p.appSecret),
		Host:   cloneHost,
		Path:   fmt.Sprintf("/%s/%s.git", p.workspace, slug),
	}
	return u.String()
}

// listAll follows the server-supplied next links until exhausted, collecting
// every values page in response order. Any page failure fails the whole
// fetch; pages already collected are discarded.
func listAll[T any](ctx context.Context, p *SourceProvider, startURL string) ([]T, error) {
	var all []T

	next := startURL
	for next != "" {
		body, err := p.get(ctx, next)
		if err != nil {
			return nil, err
		}

		var pg page[T]
		if unmarshalErr := json.Unmarshal(body, &pg); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse listing response: %w", unmarshalErr)
		}

		all = append(all, pg.Values...)
		next = pg.Next
	}

	return all, nil
}

// get issues one authenticated GET and returns the response body on 2xx.
func (p *SourceProvider) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(p.username, p.appSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, resp.Request.URL.Path)
	}

	return body, nil
}

func toRepositories(resources []repositoryResource) []entities.Repository {
	repos := make([]entities.Repository, 0, len(resources))
	for _, res := range resources {
		repos = append(repos, entities.Repository{
			Slug:       res.Slug,
			Name:       res.Name,
			ProjectKey: res.Project.Key,
		})
	}
	return repos
}
