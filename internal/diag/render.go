package diag

import (
	"fmt"
	"strings"

	"schemat/internal/source"
)

// Render formats a diagnostic as "path:line:col: SEVERITY [ID] message".
// Positions are 1-based.
func Render(d Diagnostic, fs *source.FileSet) string {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%d:%d: %s [%s] %s", f.Path, start.Line, start.Col, d.Severity, d.Code.ID(), d.Message)
	for _, n := range d.Notes {
		noteStart, _ := fs.Resolve(n.Span)
		fmt.Fprintf(&sb, "\n  note: %s:%d:%d: %s", f.Path, noteStart.Line, noteStart.Col, n.Msg)
	}
	return sb.String()
}
