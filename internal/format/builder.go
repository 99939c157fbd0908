package format

import (
	"schemat/internal/ast"
	"schemat/internal/doc"
)

// BuildDocument compiles a top-level node sequence into a layout document.
// Pure: the same tree always yields the same document.
func BuildDocument(nodes []ast.Node) doc.Doc {
	var b builder
	return doc.Concat(b.sequence(nodes, sepHard))
}

type sepKind uint8

const (
	// sepSoft separates list children: a space when the group flattens.
	sepSoft sepKind = iota
	// sepHard separates top-level forms: always its own line.
	sepHard
)

type builder struct{}

// sequence joins sibling nodes with separators, folding comment and blank
// markers into the stream:
//   - a blank marker becomes one extra hard break (at most one blank line),
//     and is dropped at the very start or end of the sequence;
//   - a trailing line comment is glued to its line with a single space and
//     forces a break after itself;
//   - an own-line line comment claims whole lines on both sides;
//   - block comments flow inline and never force breaks.
func (b *builder) sequence(children []ast.Node, sep sepKind) []doc.Doc {
	out := make([]doc.Doc, 0, 2*len(children))
	started := false
	prevHard := false
	pendingBlank := false

	sepBefore := func(forceHard bool) {
		switch {
		case !started:
		case pendingBlank:
			out = append(out, doc.HardLine{}, doc.HardLine{})
		case prevHard:
		case forceHard || sep == sepHard:
			out = append(out, doc.HardLine{})
		default:
			out = append(out, doc.Line{})
		}
		pendingBlank = false
	}

	for _, child := range children {
		switch c := child.(type) {
		case *ast.Blank:
			if started {
				pendingBlank = true
			}

		case *ast.Comment:
			if c.Trailing && started && !prevHard && !pendingBlank {
				out = append(out, doc.Text(" "), doc.Text(c.Text))
				prevHard = false
				if !c.Block {
					out = append(out, doc.HardLine{})
					prevHard = true
				}
			} else if c.Block {
				sepBefore(false)
				out = append(out, doc.Text(c.Text))
				prevHard = false
			} else {
				sepBefore(true)
				out = append(out, doc.Text(c.Text), doc.HardLine{})
				prevHard = true
			}
			started = true

		case *ast.Directive:
			sepBefore(true)
			out = append(out, doc.Text(c.Text), doc.HardLine{})
			prevHard = true
			started = true

		default:
			sepBefore(false)
			out = append(out, b.node(child))
			prevHard = false
			started = true
		}
	}
	return out
}

func (b *builder) node(n ast.Node) doc.Doc {
	switch c := n.(type) {
	case *ast.Atom:
		return doc.Text(c.Text)

	case *ast.Quoted:
		return doc.Concat{doc.Text(c.Prefix.String()), b.node(c.Inner)}

	case *ast.List:
		parts := b.sequence(c.Children, sepSoft)
		if len(parts) == 0 {
			return doc.Text(c.Delim.Open() + c.Delim.Close())
		}
		return doc.Concat{
			doc.Text(c.Delim.Open()),
			doc.Group{Inner: doc.Concat{
				parts[0],
				doc.Indent{Width: 2, Inner: doc.Concat(parts[1:])},
			}},
			doc.Text(c.Delim.Close()),
		}

	default:
		// Comments, blanks, and directives are folded in by sequence.
		return doc.Text("")
	}
}
