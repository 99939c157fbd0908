package lexer

import (
	"schemat/internal/token"
)

// isAtomStop reports whether b terminates an atom run. Quote characters are
// deliberately absent: they are only special at token start, so don't and
// foo'bar remain single atoms.
func isAtomStop(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '(', ')', '[', ']', '{', '}', '"', ';':
		return true
	default:
		return false
	}
}

// scanAtom consumes a maximal run of atom constituents. The first byte is
// taken unconditionally, which is what turns a dangling prefix character
// into a one-byte atom instead of an infinite loop.
func (lx *Lexer) scanAtom() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if isAtomStop(lx.cursor.Peek()) || lx.cursor.HasPrefix("#|") {
			break
		}
		lx.cursor.Bump()
	}
	return lx.tokenFrom(token.Atom, start)
}
