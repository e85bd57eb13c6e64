package core

import (
	"strings"

	"github.com/kilupskalvis/ps1/internal/models"
	"github.com/kilupskalvis/ps1/internal/vcs"
	"go.uber.org/zap"
)

const localBranchPrefix = "refs/heads/"

// InspectRepoStatus reports the repository status for path. It returns nil
// when path is not inside a repository, when HEAD is unborn, or when any
// backend query fails; none of these are surfaced as errors.
func InspectRepoStatus(opener vcs.Opener, path string, discover bool, log *zap.Logger) *models.RepoStatus {
	if path == "" {
		return nil
	}

	repo, err := opener.Open(path, discover)
	if err != nil {
		log.Debug("no repository", zap.String("path", path), zap.Bool("discover", discover), zap.Error(err))
		return nil
	}

	head, err := repo.Head()
	if err != nil {
		log.Debug("no head", zap.String("path", path), zap.Error(err))
		return nil
	}

	changes, err := repo.WorktreeChanges()
	if err != nil {
		log.Debug("status enumeration failed", zap.String("path", path), zap.Error(err))
		return nil
	}

	status := &models.RepoStatus{
		BranchName: strings.TrimPrefix(head.Name, localBranchPrefix),
		IsRemote:   head.IsRemote,
		IsDirty:    changes > 0,
	}
	log.Debug("repository status",
		zap.String("branch", status.BranchName),
		zap.Bool("remote", status.IsRemote),
		zap.Int("changes", changes))

	return status
}
