package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }

	// Atom represents a symbol, number, or any other bare constituent run.
	Atom
	// String represents a double-quoted literal, quotes included, contents
	// opaque to the formatter.
	String

	// Quote represents the quote prefix '.
	Quote // '
	// Quasiquote represents the quasiquote prefix `.
	Quasiquote // `
	// Unquote represents the unquote prefix ,.
	Unquote // ,
	// UnquoteSplicing represents the unquote-splicing prefix ,@.
	UnquoteSplicing // ,@
	// HashQuote represents the hash prefix # as in #t, #(...) or #'foo.
	HashQuote // #

	// LineComment represents a ; comment running to end of line, semicolons
	// included, newline excluded.
	LineComment
	// BlockComment represents a #| ... |# comment, delimiters included.
	BlockComment

	// Shebang represents a #! line in the leading directive run.
	Shebang
	// LangLine represents a #lang line in the leading directive run.
	LangLine

	// Blank represents one or more blank lines in the source.
	Blank
)

var kindNames = [...]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	LParen:          "LParen",
	RParen:          "RParen",
	LBracket:        "LBracket",
	RBracket:        "RBracket",
	LBrace:          "LBrace",
	RBrace:          "RBrace",
	Atom:            "Atom",
	String:          "String",
	Quote:           "Quote",
	Quasiquote:      "Quasiquote",
	Unquote:         "Unquote",
	UnquoteSplicing: "UnquoteSplicing",
	HashQuote:       "HashQuote",
	LineComment:     "LineComment",
	BlockComment:    "BlockComment",
	Shebang:         "Shebang",
	LangLine:        "LangLine",
	Blank:           "Blank",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
