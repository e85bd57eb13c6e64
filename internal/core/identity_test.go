package core

import (
	"errors"
	"testing"

	"github.com/kilupskalvis/ps1/internal/sysenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolveIdentity_UserDatabase(t *testing.T) {
	env := sysenv.NewMock()
	env.User = "alice"
	env.Vars[sysenv.LognameVar] = "bob"

	id, err := ResolveIdentity(env, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Name)
}

func TestResolveIdentity_FallsBackToLogname(t *testing.T) {
	env := sysenv.NewMock()
	env.UserErr = errors.New("no passwd entry")
	env.Vars[sysenv.LognameVar] = "bob"

	id, err := ResolveIdentity(env, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "bob", id.Name)
}

func TestResolveIdentity_AllSourcesFail(t *testing.T) {
	env := sysenv.NewMock()
	env.UserErr = errors.New("no passwd entry")

	id, err := ResolveIdentity(env, zap.NewNop())
	assert.ErrorIs(t, err, ErrIdentityUnresolved)
	assert.Empty(t, id.Name, "resolver must not substitute a placeholder")
	assert.Contains(t, err.Error(), "no passwd entry")
}

func TestResolveIdentity_EmptyLognameIgnored(t *testing.T) {
	env := sysenv.NewMock()
	env.UserErr = errors.New("no passwd entry")
	env.Vars[sysenv.LognameVar] = ""

	_, err := ResolveIdentity(env, zap.NewNop())
	assert.ErrorIs(t, err, ErrIdentityUnresolved)
}
