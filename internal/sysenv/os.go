package sysenv

import (
	"fmt"
	"os"
	"os/user"
)

// OS is the Environment of the running process
type OS struct{}

// NewOS creates an Environment backed by the running process
func NewOS() *OS {
	return &OS{}
}

// CurrentUser looks up the invoking user in the OS user database
func (o *OS) CurrentUser() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("user lookup: %w", err)
	}
	if u.Username == "" {
		return "", fmt.Errorf("user lookup: empty username for uid %s", u.Uid)
	}
	return u.Username, nil
}

// LookupEnv reads an environment variable
func (o *OS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Getwd returns the working directory of the process
func (o *OS) Getwd() (string, error) {
	return os.Getwd()
}

// HomeDir returns the home directory by OS convention
func (o *OS) HomeDir() (string, error) {
	return os.UserHomeDir()
}
