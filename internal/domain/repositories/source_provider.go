package repositories

import (
	"context"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
)

// SourceProvider exposes the read-only operations the workflows need from
// the source platform (Bitbucket Cloud).
type SourceProvider interface {
	// ListRepositories returns every repository in the workspace, in the
	// order the platform lists them (page order, within-page order).
	ListRepositories(ctx context.Context) ([]entities.Repository, error)

	// ListProjects returns every project in the workspace.
	ListProjects(ctx context.Context) ([]entities.Project, error)

	// ListProjectRepositories returns the repositories whose project key
	// matches the given key.
	ListProjectRepositories(ctx context.Context, projectKey string) ([]entities.Repository, error)

	// ListMembers returns the collaborators of one repository, each rendered
	// as "Display Name (permission)".
	ListMembers(ctx context.Context, slug string) ([]string, error)

	// HasPipeline probes the CI pipeline listing of one repository. A probe
	// failure means "no pipeline configured", never an error.
	HasPipeline(ctx context.Context, slug string) bool

	// CloneURL builds the authenticated mirror-clone URL for one repository.
	CloneURL(slug string) string
}

// SourceProviderFactory builds a SourceProvider once credentials are known.
type SourceProviderFactory func(creds entities.SourceCredentials) SourceProvider
