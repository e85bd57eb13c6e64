package vcs

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/kilupskalvis/ps1/internal/models"
)

// Client opens repositories with go-git. It only reads: the index and refs
// are never written. Status still walks and hashes the working tree.
type Client struct{}

// NewClient creates a go-git backed Opener
func NewClient() *Client {
	return &Client{}
}

// Open opens the repository owning path
func (c *Client) Open(path string, discover bool) (Repository, error) {
	if path == "" {
		return nil, ErrNoRepository
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          discover,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNoRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &gitRepository{repo: repo}, nil
}

type gitRepository struct {
	repo *git.Repository
}

// Head resolves HEAD to the reference it points at. A detached HEAD is
// reported under the name HEAD.
func (r *gitRepository) Head() (*models.HeadState, error) {
	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, ErrNoHead
		}
		return nil, fmt.Errorf("read head: %w", err)
	}

	return &models.HeadState{
		Name:     ref.Name().String(),
		IsRemote: ref.Name().IsRemote(),
	}, nil
}

// WorktreeChanges counts entries whose working-directory state differs from
// the index. Changes that are only staged are not counted.
func (r *gitRepository) WorktreeChanges() (int, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return 0, fmt.Errorf("open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return 0, fmt.Errorf("worktree status: %w", err)
	}

	count := 0
	for _, fs := range status {
		if isWorktreeChange(fs.Worktree) {
			count++
		}
	}
	return count, nil
}

// isWorktreeChange reports whether a working-directory status code counts
// towards a dirty tree
func isWorktreeChange(code git.StatusCode) bool {
	switch code {
	case git.Modified, git.Added, git.Deleted, git.Renamed, git.Copied, git.UpdatedButUnmerged, git.Untracked:
		return true
	default:
		return false
	}
}
