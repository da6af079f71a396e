//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// CloneCall records a single mirror clone invocation.
type CloneCall struct {
	URL string
	Dir string
}

// SpyGitClient implements repositories.GitClient as a configurable spy.
// Errors are keyed by the local directory so tests can fail specific steps
// of specific repositories.
type SpyGitClient struct {
	CloneErr  map[string]error // dir -> error
	RemoteErr map[string]error // dir -> error
	PushErr   map[string]error // dir -> error
	Counts    map[string]int   // dir -> commit count
	CountErr  map[string]error // dir -> error

	// spy: calls received, in order
	Clones      []CloneCall
	AddedRemote map[string]string // dir -> remote url
	PushedDirs  []string
	RemovedDirs []string
}

var _ repositories.GitClient = (*SpyGitClient)(nil)

func (c *SpyGitClient) CloneMirror(_ context.Context, url, dir string) error {
	c.Clones = append(c.Clones, CloneCall{URL: url, Dir: dir})
	return c.CloneErr[dir]
}

func (c *SpyGitClient) AddRemote(_ context.Context, dir, _, url string) error {
	if c.AddedRemote == nil {
		c.AddedRemote = make(map[string]string)
	}
	c.AddedRemote[dir] = url
	return c.RemoteErr[dir]
}

func (c *SpyGitClient) PushMirror(_ context.Context, dir, _ string) error {
	c.PushedDirs = append(c.PushedDirs, dir)
	return c.PushErr[dir]
}

func (c *SpyGitClient) CountCommits(dir string) (int, error) {
	if err, ok := c.CountErr[dir]; ok {
		return 0, err
	}
	return c.Counts[dir], nil
}

func (c *SpyGitClient) RemoveClone(dir string) error {
	c.RemovedDirs = append(c.RemovedDirs, dir)
	return nil
}
