package repositories

import "context"

// GitClient wraps the version-control operations used by the transfer and
// validation workflows. Implementations must never change the process
// working directory; every operation takes an explicit local path.
type GitClient interface {
	// CloneMirror creates a full mirror clone (all branches, tags, refs) of
	// the repository at url into the local directory dir.
	CloneMirror(ctx context.Context, url, dir string) error

	// AddRemote registers a named remote on the local mirror at dir.
	AddRemote(ctx context.Context, dir, name, url string) error

	// PushMirror pushes all refs of the local mirror at dir to the named remote.
	PushMirror(ctx context.Context, dir, remote string) error

	// CountCommits walks the full history of the local mirror at dir from
	// all refs and returns the number of unique reachable commits.
	CountCommits(dir string) (int, error)

	// RemoveClone deletes the local mirror directory.
	RemoveClone(dir string) error
}
