// Package doc provides the layout intermediate representation for the
// formatter: a tree of text, line-break, indent, and grouping primitives
// that decides final line breaks independently of the syntax tree.
//
// Documents are built once, never mutated, and consumed once by Render.
package doc

// Doc is a layout document node.
type Doc interface {
	doc()
}

// Text is literal output, written verbatim. It may contain newlines (opaque
// multi-line string literals); such content is never reindented.
type Text string

// Concat is a sequence of documents rendered in order.
type Concat []Doc

// Indent widens the indentation for every line break inside Inner.
type Indent struct {
	Width int
	Inner Doc
}

// Line is a soft break: a single space when the enclosing group is
// flattened, otherwise a newline plus the current indent.
type Line struct{}

// HardLine always renders as a newline plus the current indent. It is never
// flattened, and a group's fit probe does not look past it.
type HardLine struct{}

// Group is a flattening unit: if the flattened rendering of Inner fits
// within the column budget starting at the current column, every Line
// inside renders as a space; otherwise they all break. Nested groups are
// re-evaluated at their own starting columns when the outer group breaks.
type Group struct {
	Inner Doc
}

func (Text) doc()     {}
func (Concat) doc()   {}
func (Indent) doc()   {}
func (Line) doc()     {}
func (HardLine) doc() {}
func (Group) doc()    {}
