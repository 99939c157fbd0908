// Package diag defines the diagnostic model shared by the scanner and parser.
//
// Diagnostic is the central record: a Severity, a stable Code, a message, a
// primary source.Span, and optional notes. Phases emit through the Reporter
// interface so they stay decoupled from storage; BagReporter aggregates into
// a Bag, which supports sorting and deduplication for deterministic output.
//
// The package performs no IO and no formatting beyond Render, which turns a
// diagnostic into a single "path:line:col" message using a source.FileSet.
package diag
