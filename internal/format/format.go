// Package format turns parsed source into its canonical rendering: a
// single pass over scan, parse, build, and render. Output is
// deterministic and stable under re-formatting.
package format

import (
	"bytes"

	"schemat/internal/diag"
	"schemat/internal/doc"
	"schemat/internal/lexer"
	"schemat/internal/parser"
	"schemat/internal/source"
)

type Options struct {
	// MaxWidth is the layout budget in display columns.
	// Zero means doc.DefaultWidth.
	MaxWidth int
	// Reporter receives scan and parse warnings. Nil discards them.
	Reporter diag.Reporter
}

func (o Options) withDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = doc.DefaultWidth
	}
	if o.Reporter == nil {
		o.Reporter = diag.NopReporter{}
	}
	return o
}

// File formats an already loaded source file. The returned bytes end with
// exactly one newline unless the input holds no content at all, in which
// case they are empty. A non-nil error is always a *parser.Error.
func File(sf *source.File, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	lx := lexer.New(sf, lexer.Options{Reporter: opts.Reporter})
	nodes, err := parser.Parse(sf, lx, parser.Options{Reporter: opts.Reporter})
	if err != nil {
		return nil, err
	}

	out := doc.Render(BuildDocument(nodes), opts.MaxWidth)
	out = trimTrailingNewlines(out)
	if out == "" {
		return nil, nil
	}
	return append([]byte(out), '\n'), nil
}

// Bytes formats raw text, naming it for diagnostics only.
func Bytes(name string, input []byte, opts Options) ([]byte, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, input)
	return File(fs.Get(id), opts)
}

// Check reports whether input is already in canonical form.
func Check(name string, input []byte, opts Options) (bool, error) {
	out, err := Bytes(name, input, opts)
	if err != nil {
		return false, err
	}
	return bytes.Equal(out, input), nil
}

func trimTrailingNewlines(s string) string {
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s
}
