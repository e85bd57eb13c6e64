// Package sysenv provides access to the process environment the prompt is
// rendered in: the invoking user, environment variables and directories.
package sysenv

// Environment variables consulted as fallback sources
const (
	LognameVar = "LOGNAME"
	PwdVar     = "PWD"
)

// Environment defines the contract for OS and environment queries.
// This interface enables mocking for testing the core package.
type Environment interface {
	// CurrentUser returns the login name from the OS user database
	CurrentUser() (string, error)
	// LookupEnv returns the value of an environment variable and whether it is set
	LookupEnv(key string) (string, bool)
	// Getwd returns the current working directory
	Getwd() (string, error)
	// HomeDir returns the current user's home directory
	HomeDir() (string, error)
}

// Verify that *OS implements Environment at compile time
var _ Environment = (*OS)(nil)
