package sysenv

// Mock is a mock implementation of Environment for testing.
type Mock struct {
	// User is returned by CurrentUser unless UserErr is set
	User    string
	UserErr error
	// Vars holds environment variables by name
	Vars map[string]string
	// Wd is returned by Getwd unless WdErr is set
	Wd    string
	WdErr error
	// Home is returned by HomeDir unless HomeErr is set
	Home    string
	HomeErr error
}

// NewMock creates a new Mock with no environment variables set.
func NewMock() *Mock {
	return &Mock{Vars: make(map[string]string)}
}

// CurrentUser returns the mock user.
func (m *Mock) CurrentUser() (string, error) {
	if m.UserErr != nil {
		return "", m.UserErr
	}
	return m.User, nil
}

// LookupEnv returns a mock environment variable.
func (m *Mock) LookupEnv(key string) (string, bool) {
	v, ok := m.Vars[key]
	return v, ok
}

// Getwd returns the mock working directory.
func (m *Mock) Getwd() (string, error) {
	if m.WdErr != nil {
		return "", m.WdErr
	}
	return m.Wd, nil
}

// HomeDir returns the mock home directory.
func (m *Mock) HomeDir() (string, error) {
	if m.HomeErr != nil {
		return "", m.HomeErr
	}
	return m.Home, nil
}
