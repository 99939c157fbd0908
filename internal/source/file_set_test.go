package source

import (
	"testing"
)

func TestToLineCol(t *testing.T) {
	content := []byte("foo\nbar\n\nlast")
	lineIdx := buildLineIndex(content)

	tests := []struct {
		name     string
		off      uint32
		expected LineCol
	}{
		{name: "start of file", off: 0, expected: LineCol{Line: 1, Col: 1}},
		{name: "middle of first line", off: 2, expected: LineCol{Line: 1, Col: 3}},
		{name: "newline belongs to its line", off: 3, expected: LineCol{Line: 1, Col: 4}},
		{name: "start of second line", off: 4, expected: LineCol{Line: 2, Col: 1}},
		{name: "empty line", off: 8, expected: LineCol{Line: 3, Col: 1}},
		{name: "start of last line", off: 9, expected: LineCol{Line: 4, Col: 1}},
		{name: "end of file", off: 13, expected: LineCol{Line: 4, Col: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toLineCol(lineIdx, tt.off)
			if got != tt.expected {
				t.Errorf("toLineCol(%d) = %v, want %v", tt.off, got, tt.expected)
			}
		})
	}
}

func TestToLineCol_NoNewlines(t *testing.T) {
	got := toLineCol(nil, 5)
	want := LineCol{Line: 1, Col: 6}
	if got != want {
		t.Errorf("toLineCol(5) = %v, want %v", got, want)
	}
}

func TestFileSet_AddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.scm", []byte("\xEF\xBB\xBF(foo)\r\n(bar)\r\n"))
	f := fs.Get(id)

	if string(f.Content) != "(foo)\n(bar)\n" {
		t.Errorf("Content = %q, want %q", f.Content, "(foo)\n(bar)\n")
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("FileVirtual flag not set")
	}
	if f.Flags&FileHadBOM == 0 {
		t.Errorf("FileHadBOM flag not set")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("FileNormalizedCRLF flag not set")
	}
}

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.scm", []byte("(foo\n  bar)\n"))

	start, end := fs.Resolve(Span{File: id, Start: 7, End: 10})
	if start != (LineCol{Line: 2, Col: 3}) {
		t.Errorf("start = %v, want {2 3}", start)
	}
	if end != (LineCol{Line: 2, Col: 6}) {
		t.Errorf("end = %v, want {2 6}", end)
	}
}

func TestFile_GetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.scm", []byte("(foo)\n(bar)\nlast"))
	f := fs.Get(id)

	tests := []struct {
		name     string
		line     uint32
		expected string
	}{
		{name: "first line", line: 1, expected: "(foo)"},
		{name: "second line", line: 2, expected: "(bar)"},
		{name: "line without trailing newline", line: 3, expected: "last"},
		{name: "line zero", line: 0, expected: ""},
		{name: "line out of range", line: 10, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.GetLine(tt.line); got != tt.expected {
				t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.expected)
			}
		})
	}
}
