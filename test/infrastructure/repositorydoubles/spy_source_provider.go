//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// SpySourceProvider implements repositories.SourceProvider as a configurable spy.
// Configure the response fields for the methods your test exercises, then
// inspect the call-tracking fields to verify behavior.
type SpySourceProvider struct {
	// --- ListRepositories ---
	Repositories []entities.Repository
	ListReposErr error

	// --- ListProjects ---
	Projects        []entities.Project
	ListProjectsErr error

	// --- ListProjectRepositories ---
	ProjectRepositories map[string][]entities.Repository // project key -> repos
	ProjectReposErr     map[string]error                 // project key -> error
	// spy: project keys that were requested
	RequestedProjectKeys []string

	// --- ListMembers ---
	Members    map[string][]string // slug -> rendered members
	MembersErr map[string]error    // slug -> error
	// spy: slugs that were requested
	RequestedMemberSlugs []string

	// --- HasPipeline ---
	Pipelines map[string]bool // slug -> has pipeline
}

var _ repositories.SourceProvider = (*SpySourceProvider)(nil)

func (p *SpySourceProvider) ListRepositories(_ context.Context) ([]entities.Repository, error) {
	return p.Repositories, p.ListReposErr
}

func (p *SpySourceProvider) ListProjects(_ context.Context) ([]entities.Project, error) {
	return p.Projects, p.ListProjectsErr
}

func (p *SpySourceProvider) ListProjectRepositories(
	_ context.Context,
	projectKey string,
) ([]entities.Repository, error) {
	p.RequestedProjectKeys = append(p.RequestedProjectKeys, projectKey)
	if err, ok := p.ProjectReposErr[projectKey]; ok {
		return nil, err
	}
	return p.ProjectRepositories[projectKey], nil
}

func (p *SpySourceProvider) ListMembers(_ context.Context, slug string) ([]string, error) {
	p.RequestedMemberSlugs = append(p.RequestedMemberSlugs, slug)
	if err, ok := p.MembersErr[slug]; ok {
		return nil, err
	}
	return p.Members[slug], nil
}

func (p *SpySourceProvider) HasPipeline(_ context.Context, slug string) bool {
	return p.Pipelines[slug]
}

func (p *SpySourceProvider) CloneURL(slug string) string {
	return fmt.Sprintf("https://source.example/%s.git", slug)
}
