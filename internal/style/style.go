// Package style maps the semantic parts of a prompt to terminal styles.
package style

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Role is the semantic part of the prompt a piece of text belongs to
type Role int

const (
	RoleName Role = iota
	RoleDirectory
	RoleBranch
	RoleClean
	RoleDirty
)

// Roles lists every role in render order
var Roles = []Role{RoleName, RoleDirectory, RoleBranch, RoleClean, RoleDirty}

func (r Role) String() string {
	switch r {
	case RoleName:
		return "name"
	case RoleDirectory:
		return "directory"
	case RoleBranch:
		return "branch"
	case RoleClean:
		return "clean"
	case RoleDirty:
		return "dirty"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Spec is the color and weight used for one role
type Spec struct {
	Color string
	Bold  bool
}

// Theme maps each role to its style
type Theme map[Role]Spec

// DefaultTheme returns the stock palette: green name, blue directory, red
// branch, green clean glyph and red dirty glyph, all bold.
func DefaultTheme() Theme {
	return Theme{
		RoleName:      {Color: "green", Bold: true},
		RoleDirectory: {Color: "blue", Bold: true},
		RoleBranch:    {Color: "red", Bold: true},
		RoleClean:     {Color: "green", Bold: true},
		RoleDirty:     {Color: "red", Bold: true},
	}
}

// Styler wraps text in the style for a role. Implementations emit a reset
// immediately after the text.
type Styler interface {
	Style(role Role, text string) string
}

var foregrounds = map[string]color.Attribute{
	"black":     color.FgBlack,
	"red":       color.FgRed,
	"green":     color.FgGreen,
	"yellow":    color.FgYellow,
	"blue":      color.FgBlue,
	"magenta":   color.FgMagenta,
	"cyan":      color.FgCyan,
	"white":     color.FgWhite,
	"hiblack":   color.FgHiBlack,
	"hired":     color.FgHiRed,
	"higreen":   color.FgHiGreen,
	"hiyellow":  color.FgHiYellow,
	"hiblue":    color.FgHiBlue,
	"himagenta": color.FgHiMagenta,
	"hicyan":    color.FgHiCyan,
	"hiwhite":   color.FgHiWhite,
}

// ParseColor resolves a color name to its foreground attribute.
// Names are case-insensitive; "-" and "_" are ignored.
func ParseColor(name string) (color.Attribute, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	attr, ok := foregrounds[key]
	if !ok {
		return 0, fmt.Errorf("unknown color %q", name)
	}
	return attr, nil
}

// ColorStyler styles text with ANSI escape sequences
type ColorStyler struct {
	colors map[Role]*color.Color
}

// NewColorStyler builds a styler for theme. Color output is always enabled,
// regardless of terminal detection or NO_COLOR.
func NewColorStyler(theme Theme) (*ColorStyler, error) {
	s := &ColorStyler{colors: make(map[Role]*color.Color, len(theme))}
	for role, spec := range theme {
		attr, err := ParseColor(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", role, err)
		}

		attrs := []color.Attribute{attr}
		if spec.Bold {
			attrs = append(attrs, color.Bold)
		}
		c := color.New(attrs...)
		c.EnableColor()
		s.colors[role] = c
	}
	return s, nil
}

// Style wraps text in the escape sequences for role. Roles missing from the
// theme are left unstyled.
func (s *ColorStyler) Style(role Role, text string) string {
	c, ok := s.colors[role]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// Plain is a Styler that emits text unchanged
type Plain struct{}

// Style returns text unchanged
func (Plain) Style(_ Role, text string) string {
	return text
}

// Verify implementations at compile time
var (
	_ Styler = (*ColorStyler)(nil)
	_ Styler = Plain{}
)
