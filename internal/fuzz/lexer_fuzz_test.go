package fuzztests

import (
	"testing"

	"schemat/internal/diag"
	"schemat/internal/lexer"
	"schemat/internal/source"
	"schemat/internal/token"
)

// FuzzLexerTokens checks that the scanner is total: any byte sequence
// tokenizes to EOF without panics or errors, and token spans advance
// monotonically inside the input.
func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.scm", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

		prevEnd := uint32(0)
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
			if tok.Span.Start < prevEnd {
				t.Fatalf("token %v overlaps previous end %d", tok, prevEnd)
			}
			if tok.Span.End > uint32(len(file.Content)) {
				t.Fatalf("token %v spans past the input end", tok)
			}
			prevEnd = tok.Span.End
		}
		if bag.HasErrors() {
			t.Fatalf("scanner reported an error on %q", input)
		}
	})
}
