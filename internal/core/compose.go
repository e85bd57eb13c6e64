package core

import (
	"errors"

	"github.com/kilupskalvis/ps1/internal/models"
	"github.com/kilupskalvis/ps1/internal/sysenv"
	"go.uber.org/zap"
)

// DefaultPlaceholder is substituted for an unresolvable identity
const DefaultPlaceholder = "unknown_user"

// Policy decides how resolver failures are handled
type Policy struct {
	// Strict aborts on an unresolvable identity or current directory
	// instead of substituting a fallback
	Strict bool
	// Placeholder replaces an unresolvable identity when not strict
	Placeholder string
}

// Resolved holds the render inputs after the fallback policy is applied
type Resolved struct {
	Identity models.Identity
	Location models.Location
	// Diagnostics lists the failures masked by a fallback, in resolution order
	Diagnostics []error
}

// Compose resolves identity and location and applies the fallback policy.
// Home directory failures are always masked. In strict mode the first
// identity or current directory failure is returned.
func Compose(env sysenv.Environment, policy Policy, log *zap.Logger) (*Resolved, error) {
	res := &Resolved{}

	identity, err := ResolveIdentity(env, log)
	if err != nil {
		if policy.Strict {
			return nil, err
		}
		placeholder := policy.Placeholder
		if placeholder == "" {
			placeholder = DefaultPlaceholder
		}
		log.Debug("substituting identity placeholder", zap.String("placeholder", placeholder))
		identity = models.Identity{Name: placeholder}
		res.Diagnostics = append(res.Diagnostics, err)
	}
	res.Identity = identity

	loc, err := ResolveLocation(env, log)
	if err != nil {
		var locErr *LocationError
		if !errors.As(err, &locErr) {
			return nil, err
		}
		if locErr.HomeDir != nil {
			res.Diagnostics = append(res.Diagnostics, locErr.HomeDir)
		}
		if locErr.CurrentDir != nil {
			if policy.Strict {
				return nil, locErr.CurrentDir
			}
			res.Diagnostics = append(res.Diagnostics, locErr.CurrentDir)
		}
	}
	res.Location = loc

	return res, nil
}
