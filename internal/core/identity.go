package core

import (
	"errors"
	"fmt"

	"github.com/kilupskalvis/ps1/internal/models"
	"github.com/kilupskalvis/ps1/internal/sysenv"
	"go.uber.org/zap"
)

// ErrIdentityUnresolved is returned when no identity source yields a name
var ErrIdentityUnresolved = errors.New("failed to get current user")

// ResolveIdentity determines the invoking user's name from the OS user
// database, falling back to $LOGNAME. It never substitutes a placeholder.
func ResolveIdentity(env sysenv.Environment, log *zap.Logger) (models.Identity, error) {
	name, err := env.CurrentUser()
	if err == nil {
		return models.Identity{Name: name}, nil
	}
	log.Debug("user database lookup failed, trying environment",
		zap.Error(err), zap.String("var", sysenv.LognameVar))

	if name, ok := env.LookupEnv(sysenv.LognameVar); ok && name != "" {
		return models.Identity{Name: name}, nil
	}

	return models.Identity{}, fmt.Errorf("%w: %v; $%s not set", ErrIdentityUnresolved, err, sysenv.LognameVar)
}
