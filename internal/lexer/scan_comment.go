package lexer

import (
	"schemat/internal/diag"
	"schemat/internal/token"
)

// scanLineComment consumes a ; comment up to, not including, the newline.
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.tokenFrom(token.LineComment, start)
}

// scanBlockComment consumes a #| ... |# comment, nesting included. An
// unterminated comment extends to EOF and is reported as a warning.
func (lx *Lexer) scanBlockComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	lx.cursor.Bump() // '|'

	depth := 1
	for depth > 0 && !lx.cursor.EOF() {
		switch {
		case lx.cursor.HasPrefix("#|"):
			depth++
			lx.cursor.Bump()
			lx.cursor.Bump()
		case lx.cursor.HasPrefix("|#"):
			depth--
			lx.cursor.Bump()
			lx.cursor.Bump()
		default:
			lx.cursor.Bump()
		}
	}

	tok := lx.tokenFrom(token.BlockComment, start)
	if depth > 0 {
		lx.report(diag.LexUnterminatedBlockComment, tok.Span, "block comment is not terminated")
	}
	return tok
}
