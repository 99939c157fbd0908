// Package token defines lexical token kinds for the schemat formatter.
// Invariants:
//   - Token.Text holds the exact source bytes of the token (comment text
//     keeps its semicolons, string literals keep their quotes).
//   - Token.Span matches Text exactly, except for Blank tokens whose span
//     covers the whole collapsed newline run.
//   - Tokens partition the significant input: concatenating the spans of
//     all non-Blank tokens plus inter-token whitespace reproduces the
//     normalized source bytes.
//   - Directive tokens (Shebang, LangLine) appear in the main token stream
//     and span their entire line, newline excluded.
package token
