package vcs

import "github.com/kilupskalvis/ps1/internal/models"

// MockClient is a mock implementation of Opener for testing.
type MockClient struct {
	// Repos maps a repository root to its mock repository
	Repos map[string]*MockRepository
	// Parents maps a path to its parent directory, used for discovery
	Parents map[string]string
	// Err can be set to make Open return an error
	Err error
	// Opened records every path passed to Open
	Opened []string
}

// MockRepository is a mock implementation of Repository.
type MockRepository struct {
	HeadState *models.HeadState
	HeadErr   error
	Changes   int
	StatusErr error
}

// NewMockClient creates a new MockClient for testing.
func NewMockClient() *MockClient {
	return &MockClient{
		Repos:   make(map[string]*MockRepository),
		Parents: make(map[string]string),
	}
}

// AddRepo registers a repository rooted at path whose HEAD is the given reference.
func (m *MockClient) AddRepo(path, head string, isRemote bool, changes int) *MockRepository {
	repo := &MockRepository{
		HeadState: &models.HeadState{Name: head, IsRemote: isRemote},
		Changes:   changes,
	}
	m.Repos[path] = repo
	return repo
}

// Open returns the mock repository at path, following Parents when discovering.
func (m *MockClient) Open(path string, discover bool) (Repository, error) {
	m.Opened = append(m.Opened, path)
	if m.Err != nil {
		return nil, m.Err
	}

	for p := path; p != ""; p = m.Parents[p] {
		if repo, ok := m.Repos[p]; ok {
			return repo, nil
		}
		if !discover {
			break
		}
	}
	return nil, ErrNoRepository
}

// Head returns the mock head.
func (r *MockRepository) Head() (*models.HeadState, error) {
	if r.HeadErr != nil {
		return nil, r.HeadErr
	}
	if r.HeadState == nil {
		return nil, ErrNoHead
	}
	return r.HeadState, nil
}

// WorktreeChanges returns the mock change count.
func (r *MockRepository) WorktreeChanges() (int, error) {
	if r.StatusErr != nil {
		return 0, r.StatusErr
	}
	return r.Changes, nil
}
