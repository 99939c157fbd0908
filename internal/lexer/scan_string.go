package lexer

import (
	"schemat/internal/diag"
	"schemat/internal/token"
)

// scanString consumes a double-quoted literal, honoring backslash escapes.
// The literal may span multiple lines. An unterminated literal extends to
// EOF and is reported as a warning; the token stream stays usable.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	terminated := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump()
			continue
		}
		if b == '"' {
			terminated = true
			break
		}
	}

	tok := lx.tokenFrom(token.String, start)
	if !terminated {
		lx.report(diag.LexUnterminatedString, tok.Span, "string literal is not terminated")
	}
	return tok
}
