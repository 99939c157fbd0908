package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"schemat/internal/config"
)

const maxFuzzInput = 64 << 10 // 64 KiB

// inlineSeeds cover the token shapes the testdata corpus may miss: quote
// prefixes next to closers, directives after leading whitespace, comments in
// trailing position, and unterminated literals.
var inlineSeeds = []string{
	"",
	"(define (fib n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))\n",
	"#!/usr/bin/env scheme\n#lang racket\n(display \"hi\")\n",
	"(a ; trailing\n #| block |# b)\n\n'(x ,y ,@z `w #t)\n",
	"{ , }",
	"( ' )",
	"(a\n#lang x)",
	"\n#!,@ #| note\n|# y",
	"\"never closed",
	"#| never closed",
	"(a [b {c}] \"two\nlines\")",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range inlineSeeds {
		f.Add([]byte(seed))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds walks the repository testdata tree and adds every source
// file with a recognized extension.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if !slices.Contains(config.DefaultExtensions, filepath.Ext(path)) {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampInput(src))
		return nil
	})
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
