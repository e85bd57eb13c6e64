package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClient_Discovery(t *testing.T) {
	m := NewMockClient()
	m.AddRepo("/repo", "refs/heads/main", false, 0)
	m.Parents["/repo/sub"] = "/repo"

	_, err := m.Open("/repo/sub", false)
	assert.ErrorIs(t, err, ErrNoRepository)

	r, err := m.Open("/repo/sub", true)
	require.NoError(t, err)
	head, err := r.Head()
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/main", head.Name)
	assert.Equal(t, []string{"/repo/sub", "/repo/sub"}, m.Opened)
}
