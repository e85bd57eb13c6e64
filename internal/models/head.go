package models

// HeadState represents the current HEAD position as reported by the VCS backend
type HeadState struct {
	Name     string // Full reference name, e.g. refs/heads/main, or HEAD if detached
	IsRemote bool   // True if the reference is a remote-tracking ref
}
