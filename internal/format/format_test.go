package format_test

import (
	"strings"
	"testing"

	"schemat/internal/format"
)

func fmtStr(t *testing.T, input string, width int) string {
	t.Helper()
	out, err := format.Bytes("test.scm", []byte(input), format.Options{MaxWidth: width})
	if err != nil {
		t.Fatalf("format %q: %v", input, err)
	}
	return string(out)
}

func TestFormat_Layout(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{
			name:  "flat list fits",
			input: "(define x 1)",
			want:  "(define x 1)\n",
		},
		{
			name:  "extra spaces collapse",
			input: "(  define   x     1 )",
			want:  "(define x 1)\n",
		},
		{
			name:  "list breaks with two space indent",
			input: "(foo bar baz)",
			width: 8,
			want:  "(foo\n  bar\n  baz)\n",
		},
		{
			name:  "nested groups break independently",
			input: "(a (b c) (dddd eeee))",
			width: 12,
			want:  "(a\n  (b c)\n  (dddd\n    eeee))\n",
		},
		{
			name:  "brackets and braces keep their shape",
			input: "[a {b c}]",
			want:  "[a {b c}]\n",
		},
		{
			name:  "top level forms on separate lines",
			input: "(a) (b)",
			want:  "(a)\n(b)\n",
		},
		{
			name:  "string atom kept verbatim",
			input: `(display "hello  world")`,
			want:  "(display \"hello  world\")\n",
		},
		{
			name:  "quote prefixes",
			input: "'(1 2) `(a ,b ,@c) #'x",
			want:  "'(1 2)\n`(a ,b ,@c)\n#'x\n",
		},
		{
			name:  "wide runes count double",
			input: "(你好 世界)",
			width: 8,
			want:  "(你好\n  世界)\n",
		},
		{
			name:  "empty list",
			input: "( )",
			want:  "()\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtStr(t, tt.input, tt.width); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_Comments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{
			name:  "trailing line comment stays on its line",
			input: "(foo ; note\nbar)",
			want:  "(foo ; note\n  bar)\n",
		},
		{
			name:  "own line comment claims whole lines",
			input: "(a\n; c\nb)",
			want:  "(a\n  ; c\n  b)\n",
		},
		{
			name:  "top level trailing comment",
			input: "(a) ; c\n(b)",
			want:  "(a) ; c\n(b)\n",
		},
		{
			name:  "block comment flows inline",
			input: "(a #|x|# b)",
			want:  "(a #|x|# b)\n",
		},
		{
			name:  "comment only file",
			input: "; just a note",
			want:  "; just a note\n",
		},
		{
			name:  "comment text kept verbatim",
			input: ";;   spaced   out",
			want:  ";;   spaced   out\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtStr(t, tt.input, tt.width); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_BlankLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "runs collapse to one blank line",
			input: "(a)\n\n\n\n(b)",
			want:  "(a)\n\n(b)\n",
		},
		{
			name:  "blank inside list",
			input: "(a\n\n\nb)",
			want:  "(a\n\n  b)\n",
		},
		{
			name:  "leading and trailing blanks dropped",
			input: "\n\n(a)\n\n\n",
			want:  "(a)\n",
		},
		{
			name:  "whitespace only input",
			input: "  \n\n\t\n",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtStr(t, tt.input, 0); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_Directives(t *testing.T) {
	input := "#!/usr/bin/env scheme\n#lang racket\n(define x 1)"
	want := "#!/usr/bin/env scheme\n#lang racket\n(define x 1)\n"
	if got := fmtStr(t, input, 0); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := []string{
		"(define (factorial n) (if (<= n 1) 1 (* n (factorial (- n 1)))))",
		"(foo ; note\nbar)",
		"(a\n\n\nb)\n\n(c #|block|# d)",
		"#!/usr/bin/env scheme\n'(quoted ,list)",
		"(a\n; own line\nb)",
	}
	for _, input := range inputs {
		once := fmtStr(t, input, 24)
		twice := fmtStr(t, once, 24)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce:  %q\ntwice: %q", input, once, twice)
		}
	}
}

// Formatted output must stay parseable and settle after one pass, even for
// inputs whose atoms re-scan near delimiters or directive positions.
func TestFormat_OutputReparses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare unquote before brace closer",
			input: "{ , }",
			want:  "{,}\n",
		},
		{
			name:  "lang line inside a list stays a datum",
			input: "(a\n#lang x)",
			want:  "(a #lang x)\n",
		},
		{
			name:  "hash bang after a leading blank line",
			input: "\n#!,@ #| note\n|# y",
			want:  "#!,@ #| note\n|#\ny\n",
		},
		{
			name:  "bare quote before paren closer",
			input: "( ' )",
			want:  "(')\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := fmtStr(t, tt.input, 0)
			if once != tt.want {
				t.Fatalf("got %q, want %q", once, tt.want)
			}
			twice := fmtStr(t, once, 0)
			if once != twice {
				t.Errorf("output shifts on a second pass:\nonce:  %q\ntwice: %q", once, twice)
			}
		})
	}
}

func TestFormat_WidthRespected(t *testing.T) {
	const width = 16
	input := "(define (fib n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))"
	out := fmtStr(t, input, width)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if n := len(line); n > width {
			t.Errorf("line %q is %d columns, budget is %d", line, n, width)
		}
	}
}

func TestFormat_ParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unclosed list", input: "(a (b c)"},
		{name: "unexpected close", input: ")"},
		{name: "mismatched delimiter", input: "(a]"},
		{name: "dangling quote", input: "'; comment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := format.Bytes("test.scm", []byte(tt.input), format.Options{}); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	ok, err := format.Check("test.scm", []byte("(a b)\n"), format.Options{})
	if err != nil || !ok {
		t.Errorf("canonical input: ok=%v err=%v", ok, err)
	}
	ok, err = format.Check("test.scm", []byte("( a b )\n"), format.Options{})
	if err != nil || ok {
		t.Errorf("non-canonical input: ok=%v err=%v", ok, err)
	}
}
