package lexer

import (
	"schemat/internal/source"
	"schemat/internal/token"
)

// Lexer turns source bytes into a stream of tokens. It is total: any byte
// sequence scans without failure, structural problems are left for the
// parser to report precisely.
type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	look    *token.Token
	leading bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:    file,
		cursor:  NewCursor(file),
		opts:    opts,
		look:    nil,
		leading: true,
	}
}

// Next returns the next token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	tok := lx.scan()
	switch tok.Kind {
	case token.Shebang, token.LangLine, token.Blank, token.EOF:
	default:
		// The first ordinary token ends the directive run for good.
		lx.leading = false
	}
	return tok
}

func (lx *Lexer) scan() token.Token {
	if blank, ok := lx.skipSpace(); ok {
		return blank
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	// Directive lines are only recognized in the leading run, before any
	// token other than blanks and other directives. Past that point #! and
	// #lang scan like any other # sequence.
	if lx.leading {
		if lx.cursor.HasPrefix("#!") {
			return lx.scanDirectiveLine(token.Shebang)
		}
		if lx.cursor.HasPrefix("#lang") {
			return lx.scanDirectiveLine(token.LangLine)
		}
	}

	switch ch := lx.cursor.Peek(); ch {
	case '(':
		return lx.scanSingle(token.LParen)
	case ')':
		return lx.scanSingle(token.RParen)
	case '[':
		return lx.scanSingle(token.LBracket)
	case ']':
		return lx.scanSingle(token.RBracket)
	case '{':
		return lx.scanSingle(token.LBrace)
	case '}':
		return lx.scanSingle(token.RBrace)
	case ';':
		return lx.scanLineComment()
	case '"':
		return lx.scanString()
	case '\'':
		if lx.prefixFollows(1) {
			return lx.scanPrefix(token.Quote, 1)
		}
		return lx.scanAtom()
	case '`':
		if lx.prefixFollows(1) {
			return lx.scanPrefix(token.Quasiquote, 1)
		}
		return lx.scanAtom()
	case ',':
		if lx.cursor.PeekAt(1) == '@' && lx.prefixFollows(2) {
			return lx.scanPrefix(token.UnquoteSplicing, 2)
		}
		if lx.prefixFollows(1) {
			return lx.scanPrefix(token.Unquote, 1)
		}
		return lx.scanAtom()
	case '#':
		if lx.cursor.HasPrefix("#|") {
			return lx.scanBlockComment()
		}
		// # never prefixes a ! datum; past the leading run #! is an atom.
		if lx.cursor.PeekAt(1) != '!' && lx.prefixFollows(1) {
			return lx.scanPrefix(token.HashQuote, 1)
		}
		return lx.scanAtom()
	default:
		return lx.scanAtom()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipSpace consumes whitespace between tokens. A run containing two or
// more newlines yields one Blank token.
func (lx *Lexer) skipSpace() (token.Token, bool) {
	newlines := 0
	var first, last uint32
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r':
			lx.cursor.Bump()
		case '\n':
			if newlines == 0 {
				first = lx.cursor.Off
			}
			last = lx.cursor.Off
			newlines++
			lx.cursor.Bump()
		default:
			if newlines >= 2 {
				return token.Token{
					Kind: token.Blank,
					Span: source.Span{File: lx.file.ID, Start: first, End: last + 1},
				}, true
			}
			return token.Token{}, false
		}
	}
	if newlines >= 2 {
		return token.Token{
			Kind: token.Blank,
			Span: source.Span{File: lx.file.ID, Start: first, End: last + 1},
		}, true
	}
	return token.Token{}, false
}

// prefixFollows reports whether the byte at offset n is a valid start for a
// quoted datum. A prefix character followed by whitespace, a closing
// delimiter, or EOF is an ordinary atom constituent, per the usual Lisp
// reader convention.
func (lx *Lexer) prefixFollows(n uint32) bool {
	switch lx.cursor.PeekAt(n) {
	case 0, ' ', '\t', '\r', '\n', ')', ']', '}':
		return false
	default:
		return true
	}
}

func (lx *Lexer) scanSingle(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.tokenFrom(kind, start)
}

func (lx *Lexer) scanPrefix(kind token.Kind, width uint32) token.Token {
	start := lx.cursor.Mark()
	for range width {
		lx.cursor.Bump()
	}
	return lx.tokenFrom(kind, start)
}

func (lx *Lexer) scanDirectiveLine(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.tokenFrom(kind, start)
}

func (lx *Lexer) tokenFrom(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
