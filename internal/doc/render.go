package doc

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultWidth is the canonical column budget.
const DefaultWidth = 80

// Render lays out the document under the given column budget. The result is
// deterministic: the same document and width always produce the same bytes.
func Render(d Doc, maxWidth int) string {
	r := renderer{max: maxWidth, pending: -1}
	r.stack = append(r.stack, renderItem{doc: d})
	for len(r.stack) > 0 {
		it := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]

		switch t := it.doc.(type) {
		case Text:
			r.text(string(t))
		case Concat:
			for i := len(t) - 1; i >= 0; i-- {
				r.stack = append(r.stack, renderItem{doc: t[i], indent: it.indent, flat: it.flat})
			}
		case Indent:
			r.stack = append(r.stack, renderItem{doc: t.Inner, indent: it.indent + t.Width, flat: it.flat})
		case Line:
			if it.flat {
				r.text(" ")
			} else {
				r.newline(it.indent)
			}
		case HardLine:
			r.newline(it.indent)
		case Group:
			// A nested group inherits flat mode; in break mode it runs its
			// own fit test at its own starting column.
			flat := it.flat || r.fits(t.Inner)
			r.stack = append(r.stack, renderItem{doc: t.Inner, indent: it.indent, flat: flat})
		}
	}
	return r.sb.String()
}

type renderItem struct {
	doc    Doc
	indent int
	flat   bool
}

type renderer struct {
	sb    strings.Builder
	stack []renderItem
	// scratch is the fit probe's reused expansion stack.
	scratch []renderItem
	col     int
	// pending is the indent owed before the next text on this line, or -1.
	// Writing it lazily keeps blank lines free of trailing whitespace.
	pending int
	max     int
}

func (r *renderer) newline(indent int) {
	r.sb.WriteByte('\n')
	r.pending = indent
	r.col = indent
}

func (r *renderer) text(s string) {
	if s == "" {
		return
	}
	if r.pending >= 0 {
		for range r.pending {
			r.sb.WriteByte(' ')
		}
		r.pending = -1
	}
	r.sb.WriteString(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		r.col = runewidth.StringWidth(s[i+1:])
	} else {
		r.col += runewidth.StringWidth(s)
	}
}

// fits probes whether the group's content, flattened, stays within the
// budget from the current column. The probe continues into the pending
// continuation (closing delimiters, following separators) and stops at the
// first line break it cannot avoid: a HardLine, a Line in broken mode, or a
// newline inside opaque text. It never scans past one of those.
//
// The continuation is read from the live render stack by index, without
// copying it; only items the probe itself expands go on the scratch stack.
func (r *renderer) fits(inner Doc) bool {
	col := r.col
	probe := r.scratch[:0]
	probe = append(probe, renderItem{doc: inner, flat: true})
	rest := len(r.stack)

	for {
		var it renderItem
		if n := len(probe); n > 0 {
			it = probe[n-1]
			probe = probe[:n-1]
		} else if rest > 0 {
			rest--
			it = r.stack[rest]
		} else {
			break
		}

		switch t := it.doc.(type) {
		case Text:
			s := string(t)
			if i := strings.IndexByte(s, '\n'); i >= 0 {
				r.scratch = probe
				return col+runewidth.StringWidth(s[:i]) <= r.max
			}
			col += runewidth.StringWidth(s)
			if col > r.max {
				r.scratch = probe
				return false
			}
		case Concat:
			for i := len(t) - 1; i >= 0; i-- {
				probe = append(probe, renderItem{doc: t[i], flat: it.flat})
			}
		case Indent:
			probe = append(probe, renderItem{doc: t.Inner, flat: it.flat})
		case Line:
			if !it.flat {
				r.scratch = probe
				return true
			}
			col++
			if col > r.max {
				r.scratch = probe
				return false
			}
		case HardLine:
			r.scratch = probe
			return true
		case Group:
			probe = append(probe, renderItem{doc: t.Inner, flat: true})
		}
	}
	r.scratch = probe
	return col <= r.max
}
