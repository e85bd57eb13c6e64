package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kilupskalvis/ps1/internal/models"
	"github.com/kilupskalvis/ps1/internal/sysenv"
	"go.uber.org/zap"
)

var (
	// ErrCurrentDirUnresolved is returned when neither the OS nor $PWD yields a directory
	ErrCurrentDirUnresolved = errors.New("failed to get current dir")
	// ErrHomeDirUnresolved is returned when the home directory cannot be determined
	ErrHomeDirUnresolved = errors.New("failed to get current user's home dir")
)

// LocationError reports which parts of a Location could not be resolved.
// Unresolved parts are left empty in the Location returned alongside it.
type LocationError struct {
	CurrentDir error
	HomeDir    error
}

func (e *LocationError) Error() string {
	if err := errors.Join(e.Unwrap()...); err != nil {
		return err.Error()
	}
	return "location unresolved"
}

// Unwrap returns the individual failures
func (e *LocationError) Unwrap() []error {
	var errs []error
	if e.CurrentDir != nil {
		errs = append(errs, e.CurrentDir)
	}
	if e.HomeDir != nil {
		errs = append(errs, e.HomeDir)
	}
	return errs
}

// CurrentDir returns the working directory, falling back to $PWD when the
// OS query fails (e.g. the directory was removed).
func CurrentDir(env sysenv.Environment, log *zap.Logger) (string, error) {
	dir, err := env.Getwd()
	if err == nil {
		return dir, nil
	}
	log.Debug("getwd failed, trying environment", zap.Error(err), zap.String("var", sysenv.PwdVar))

	if dir, ok := env.LookupEnv(sysenv.PwdVar); ok && dir != "" {
		return dir, nil
	}

	return "", fmt.Errorf("%w: %v; $%s not set", ErrCurrentDirUnresolved, err, sysenv.PwdVar)
}

// HomeDir returns the invoking user's home directory
func HomeDir(env sysenv.Environment) (string, error) {
	home, err := env.HomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHomeDirUnresolved, err)
	}
	if home == "" {
		return "", ErrHomeDirUnresolved
	}
	return home, nil
}

// ResolveLocation determines the current and home directories and derives
// the display path. On failure the returned error is a *LocationError and the
// Location holds whatever did resolve.
func ResolveLocation(env sysenv.Environment, log *zap.Logger) (models.Location, error) {
	var locErr LocationError

	home, err := HomeDir(env)
	if err != nil {
		locErr.HomeDir = err
	}

	cwd, err := CurrentDir(env, log)
	if err != nil {
		locErr.CurrentDir = err
	}

	loc := models.Location{
		CurrentDir: cwd,
		HomeDir:    home,
		DisplayDir: CollapseHome(cwd, home),
	}

	if locErr.CurrentDir != nil || locErr.HomeDir != nil {
		return loc, &locErr
	}
	return loc, nil
}

// CollapseHome replaces the first occurrence of home in dir with "~".
// The match is textual, not path-segment aware, so "/home/alicexyz" collapses
// against "/home/alice" to "~xyz". An empty home leaves dir unchanged.
func CollapseHome(dir, home string) string {
	if home == "" {
		return dir
	}
	return strings.Replace(dir, home, "~", 1)
}
