package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the catch-all for uncategorized findings.
	UnknownCode Code = 0

	// Lexical (scanner stays total; these are warnings, never failures)
	LexInfo                     Code = 1000
	LexUnterminatedString       Code = 1001
	LexUnterminatedBlockComment Code = 1002

	// Structural parse failures
	SynInfo                Code = 2000
	SynMismatchedDelimiter Code = 2001
	SynUnexpectedClose     Code = 2002
	SynUnclosedList        Code = 2003
	SynDanglingQuote       Code = 2004
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown finding",
	LexInfo:                     "Lexical note",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	SynInfo:                     "Syntax note",
	SynMismatchedDelimiter:      "Mismatched closing delimiter",
	SynUnexpectedClose:          "Closing delimiter without matching opener",
	SynUnclosedList:             "Unclosed list",
	SynDanglingQuote:            "Quote prefix with nothing to quote",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
