// Package models defines the values passed between the prompt pipeline stages.
package models

// Identity is the display name of the invoking user
type Identity struct {
	Name string
}
