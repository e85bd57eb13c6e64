package core

import (
	"strings"

	"github.com/kilupskalvis/ps1/internal/models"
	"github.com/kilupskalvis/ps1/internal/style"
)

// Fixed prompt literals
const (
	CleanGlyph   = "\u2713" // ✓
	DirtyGlyph   = "\u2717" // ✗
	RemotePrefix = "remote: "
	Continuation = "\n--> "
)

// Render composes the prompt:
//
//	<name> @ <dir>[ : <branch> <glyph>]
//	-->
//
// The result ends with the continuation marker and a space, without a
// trailing newline. A nil status omits the repository segment.
func Render(identity models.Identity, loc models.Location, status *models.RepoStatus, st style.Styler) string {
	var b strings.Builder

	b.WriteString(st.Style(style.RoleName, identity.Name))
	b.WriteString(" @ ")
	b.WriteString(st.Style(style.RoleDirectory, loc.DisplayDir))

	if status != nil {
		branch := status.BranchName
		if status.IsRemote {
			branch = RemotePrefix + branch
		}

		b.WriteString(" : ")
		b.WriteString(st.Style(style.RoleBranch, branch))
		b.WriteString(" ")
		if status.IsDirty {
			b.WriteString(st.Style(style.RoleDirty, DirtyGlyph))
		} else {
			b.WriteString(st.Style(style.RoleClean, CleanGlyph))
		}
	}

	b.WriteString(Continuation)
	return b.String()
}
