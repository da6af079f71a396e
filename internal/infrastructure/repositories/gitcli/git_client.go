// Package gitcli implements the GitClient port on top of the git binary for
// transfer operations and go-git for history traversal.
package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	git "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// Client shells out to git for mirror clone/push and opens local mirrors
// with go-git to count commits. All operations address repositories through
// explicit paths (git -C); the process working directory is never changed.
type Client struct{}

var _ repositories.GitClient = (*Client)(nil)

// NewClient creates a git client.
func NewClient() *Client {
	return &Client{}
}

// credentialPattern matches the userinfo part of an authenticated URL.
var credentialPattern = regexp.MustCompile(`://[^/@\s]+@`)

// CloneMirror creates a full mirror clone of url into dir.
func (c *Client) CloneMirror(ctx context.Context, url, dir string) error {
	return run(ctx, "clone", "--mirror", url, dir)
}

// AddRemote registers a named remote on the local mirror at dir.
func (c *Client) AddRemote(ctx context.Context, dir, name, url string) error {
	return run(ctx, "-C", dir, "remote", "add", name, url)
}

// PushMirror pushes all refs and tags of the local mirror at dir to remote.
func (c *Client) PushMirror(ctx context.Context, dir, remote string) error {
	return run(ctx, "-C", dir, "push", "--mirror", remote)
}

// CountCommits opens the local mirror at dir and counts the unique commits
// reachable from all refs.
func (c *Client) CountCommits(dir string) (int, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to open repository at %q: %w", dir, err)
	}

	iter, err := repo.Log(&git.LogOptions{All: true})
	if err != nil {
		return 0, fmt.Errorf("failed to walk history of %q: %w", dir, err)
	}
	defer iter.Close()

	count := 0
	for {
		_, nextErr := iter.Next()
		if errors.Is(nextErr, io.EOF) {
			break
		}
		if nextErr != nil {
			return 0, fmt.Errorf("failed to count commits in %q: %w", dir, nextErr)
		}
		count++
	}
	return count, nil
}

// RemoveClone deletes the local mirror directory. Removal failures are
// logged, not propagated: a leftover scratch directory must not fail a run.
func (c *Client) RemoveClone(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		logger.Warnf("Failed to remove scratch clone %q: %v", dir, err)
		return err
	}
	return nil
}

// run executes one git command, capturing stderr into the returned error
// with any embedded credentials redacted.
func run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf(
			"git %s: %w (stderr: %s)",
			redact(strings.Join(args, " ")), err, redact(strings.TrimSpace(stderr.String())),
		)
	}
	return nil
}

// redact strips userinfo credentials from URLs embedded in command lines and
// git output.
func redact(s string) string {
	return credentialPattern.ReplaceAllString(s, "://***@")
}
