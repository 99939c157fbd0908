package parser

import (
	"fmt"

	"schemat/internal/diag"
	"schemat/internal/source"
)

// Error is a structural parse failure. Parsing is deterministic and the
// failure is final for its input: there is no retry and no partial tree.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Render formats the error with its 1-based position.
func (e *Error) Render(fs *source.FileSet) string {
	start, _ := fs.Resolve(e.Span)
	return fmt.Sprintf("%s at line %d and column %d", e.Msg, start.Line, start.Col)
}
