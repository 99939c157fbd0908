package token

import (
	"schemat/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsOpen reports whether the token opens a list.
func (t Token) IsOpen() bool {
	switch t.Kind {
	case LParen, LBracket, LBrace:
		return true
	default:
		return false
	}
}

// IsClose reports whether the token closes a list.
func (t Token) IsClose() bool {
	switch t.Kind {
	case RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}

// IsQuotePrefix reports whether the token is a quote-family prefix.
func (t Token) IsQuotePrefix() bool {
	switch t.Kind {
	case Quote, Quasiquote, Unquote, UnquoteSplicing, HashQuote:
		return true
	default:
		return false
	}
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BlockComment
}

// IsDirective reports whether the token is a leading hash directive line.
func (t Token) IsDirective() bool {
	return t.Kind == Shebang || t.Kind == LangLine
}

// MatchingClose returns the closing kind for an opening delimiter and
// Invalid for everything else.
func MatchingClose(open Kind) Kind {
	switch open {
	case LParen:
		return RParen
	case LBracket:
		return RBracket
	case LBrace:
		return RBrace
	default:
		return Invalid
	}
}
