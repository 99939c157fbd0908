package ast

import (
	"schemat/internal/source"
)

// Node is a lossless syntax tree node. Trees are built once by the parser,
// never mutated, and consumed once by the document builder. Comments and
// blank markers are ordinary children interleaved in source order, so no
// side table is needed to round-trip trivia.
type Node interface {
	Span() source.Span
	node()
}

// Atom is a symbol, number, or string literal, text verbatim from source
// (string literals keep their quotes and escapes).
type Atom struct {
	Text string
	Sp   source.Span
}

// List is a delimited sequence of children: nested forms, comments, and
// blank markers in original order.
type List struct {
	Delim    Delim
	Children []Node
	Sp       source.Span
}

// Quoted wraps exactly one inner node with a quote-family prefix; there are
// no whitespace semantics between prefix and inner node.
type Quoted struct {
	Prefix Prefix
	Inner  Node
	Sp     source.Span
}

// Comment carries the comment text verbatim, semicolons or #| |# included.
// Trailing marks a comment that shares a line with the preceding sibling.
type Comment struct {
	Text     string
	Block    bool
	Trailing bool
	Sp       source.Span
}

// Directive is a leading hash line (shebang or #lang), preserved verbatim.
// Directives only appear as a contiguous prefix of the top-level sequence.
type Directive struct {
	Kind DirectiveKind
	Text string
	Sp   source.Span
}

// Blank marks a run of one or more blank lines in the source; output keeps
// at most one.
type Blank struct {
	Sp source.Span
}

func (n *Atom) Span() source.Span      { return n.Sp }
func (n *List) Span() source.Span      { return n.Sp }
func (n *Quoted) Span() source.Span    { return n.Sp }
func (n *Comment) Span() source.Span   { return n.Sp }
func (n *Directive) Span() source.Span { return n.Sp }
func (n *Blank) Span() source.Span     { return n.Sp }

func (*Atom) node()      {}
func (*List) node()      {}
func (*Quoted) node()    {}
func (*Comment) node()   {}
func (*Directive) node() {}
func (*Blank) node()     {}
