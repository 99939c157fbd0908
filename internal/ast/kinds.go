package ast

// Delim identifies the delimiter shape of a list.
type Delim uint8

const (
	Paren Delim = iota
	Bracket
	Brace
)

// Open returns the opening delimiter character.
func (d Delim) Open() string {
	switch d {
	case Bracket:
		return "["
	case Brace:
		return "{"
	default:
		return "("
	}
}

// Close returns the closing delimiter character.
func (d Delim) Close() string {
	switch d {
	case Bracket:
		return "]"
	case Brace:
		return "}"
	default:
		return ")"
	}
}

func (d Delim) String() string {
	switch d {
	case Bracket:
		return "bracket"
	case Brace:
		return "brace"
	default:
		return "paren"
	}
}

// Prefix identifies a quote-family prefix.
type Prefix uint8

const (
	Quote Prefix = iota
	Quasiquote
	Unquote
	UnquoteSplicing
	Hash
)

// String returns the prefix exactly as it appears in source.
func (p Prefix) String() string {
	switch p {
	case Quasiquote:
		return "`"
	case Unquote:
		return ","
	case UnquoteSplicing:
		return ",@"
	case Hash:
		return "#"
	default:
		return "'"
	}
}

// DirectiveKind identifies a leading hash directive line.
type DirectiveKind uint8

const (
	Shebang DirectiveKind = iota
	LangShorthand
)

func (k DirectiveKind) String() string {
	if k == LangShorthand {
		return "lang-shorthand"
	}
	return "shebang"
}
