// Package vcs is the version-control backend used to inspect the repository
// owning the working directory.
package vcs

import (
	"errors"

	"github.com/kilupskalvis/ps1/internal/models"
)

var (
	// ErrNoRepository is returned when no repository owns the given path
	ErrNoRepository = errors.New("not a repository")
	// ErrNoHead is returned when HEAD is unborn or cannot be resolved
	ErrNoHead = errors.New("no resolvable head")
)

// Opener locates repositories on disk.
type Opener interface {
	// Open returns the repository owning path. With discover set, parent
	// directories are searched; otherwise path must be the repository root.
	Open(path string, discover bool) (Repository, error)
}

// Repository defines the queries the prompt needs from an opened repository.
// This interface enables mocking for testing the core package.
type Repository interface {
	// Head returns the reference HEAD currently resolves to
	Head() (*models.HeadState, error)
	// WorktreeChanges counts working-directory entries that differ from the
	// index, untracked files included and ignored files excluded
	WorktreeChanges() (int, error)
}

// Verify that the go-git backend implements the contracts at compile time
var (
	_ Opener     = (*Client)(nil)
	_ Repository = (*gitRepository)(nil)
)
