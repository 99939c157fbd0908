package fuzztests

import (
	"testing"

	"schemat/internal/diag"
	"schemat/internal/lexer"
	"schemat/internal/parser"
	"schemat/internal/source"
)

// FuzzParserBuildsTree checks that parsing either yields a tree whose node
// spans stay inside the input, or fails with a reported diagnostic.
func FuzzParserBuildsTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.scm", input))

		bag := diag.NewBag(64)
		rep := &diag.BagReporter{Bag: bag}
		lx := lexer.New(file, lexer.Options{Reporter: rep})

		nodes, err := parser.Parse(file, lx, parser.Options{Reporter: rep})
		if err != nil {
			if !bag.HasErrors() {
				t.Fatalf("parse failed without a reported diagnostic: %v", err)
			}
			return
		}
		for _, n := range nodes {
			sp := n.Span()
			if sp.Start > sp.End || sp.End > uint32(len(file.Content)) {
				t.Fatalf("node %T has span %v outside the input", n, sp)
			}
		}
	})
}
