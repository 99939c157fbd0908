package lexer

import (
	"schemat/internal/diag"
	"schemat/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical warnings (unterminated strings and block
	// comments). May be nil; the scanner keeps going either way.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportWarning(lx.opts.Reporter, code, sp, msg)
	}
}
