package models

// Location describes where the prompt is being rendered from
type Location struct {
	CurrentDir string // Absolute working directory, empty if unresolved
	HomeDir    string // Absolute home directory, empty if unresolved
	DisplayDir string // CurrentDir with HomeDir collapsed to "~"
}
