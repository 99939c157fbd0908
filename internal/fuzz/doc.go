// Package fuzztests houses Go fuzz harnesses that exercise the formatting
// pipeline (source -> lexer -> parser -> layout). Its goal is to smoke test
// robustness on arbitrary inputs: the scanner must stay total, the parser
// must fail only with a reported diagnostic, and formatted output must
// reparse and hold still under a second pass.
//
// The harnesses never touch the CLI or the filesystem beyond reading seed
// corpora from testdata.
package fuzztests
