//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
)

// RepositoryBuilder helps create test repositories with a fluent interface.
type RepositoryBuilder struct {
	*testkit.BaseBuilder
	slug       string
	name       string
	projectKey string
}

// NewRepositoryBuilder creates a new repository builder with sensible defaults.
func NewRepositoryBuilder() *RepositoryBuilder {
	return &RepositoryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		slug:        "test-repo",
		name:        "Test Repo",
		projectKey:  "PROJ",
	}
}

// WithSlug sets the repository slug.
func (b *RepositoryBuilder) WithSlug(slug string) *RepositoryBuilder {
	b.slug = slug
	return b
}

// WithName sets the repository display name.
func (b *RepositoryBuilder) WithName(name string) *RepositoryBuilder {
	b.name = name
	return b
}

// WithProjectKey sets the project key.
func (b *RepositoryBuilder) WithProjectKey(key string) *RepositoryBuilder {
	b.projectKey = key
	return b
}

// Build creates the repository (satisfies testkit.Builder interface).
func (b *RepositoryBuilder) Build() interface{} {
	return b.BuildRepository()
}

// BuildRepository creates the repository with a concrete return type.
func (b *RepositoryBuilder) BuildRepository() entities.Repository {
	return entities.Repository{
		Slug:       b.slug,
		Name:       b.name,
		ProjectKey: b.projectKey,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.slug = "test-repo"
	b.name = "Test Repo"
	b.projectKey = "PROJ"
	return b
}

// Clone creates a deep copy of the RepositoryBuilder.
func (b *RepositoryBuilder) Clone() testkit.Builder {
	return &RepositoryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		slug:        b.slug,
		name:        b.name,
		projectKey:  b.projectKey,
	}
}
