package parser

import (
	"fmt"

	"schemat/internal/ast"
	"schemat/internal/diag"
	"schemat/internal/lexer"
	"schemat/internal/source"
	"schemat/internal/token"
)

// Options configures parsing.
type Options struct {
	// Reporter receives the failure (and tolerance warnings) as diagnostics
	// in addition to the returned error. May be nil.
	Reporter diag.Reporter
}

type pendingPrefix struct {
	prefix ast.Prefix
	span   source.Span
}

type frame struct {
	delim ast.Delim
	open  source.Span
	nodes []ast.Node
	// outer holds quote prefixes seen just before the opening delimiter;
	// they wrap the finished list once the frame closes.
	outer []pendingPrefix
}

type parser struct {
	file    *source.File
	lx      *lexer.Lexer
	opts    Options
	top     []ast.Node
	frames  []frame
	pending []pendingPrefix
}

// Parse consumes the token stream and builds the lossless top-level node
// sequence. The first structural error stops parsing; the scanner itself
// never fails, so every returned error carries a precise position.
func Parse(file *source.File, lx *lexer.Lexer, opts Options) ([]ast.Node, error) {
	p := &parser{file: file, lx: lx, opts: opts}
	return p.run()
}

func (p *parser) run() ([]ast.Node, error) {
	for {
		tok := p.lx.Next()
		switch {
		case tok.Kind == token.EOF:
			return p.finish()

		case tok.IsDirective():
			p.handleDirective(tok)

		case tok.Kind == token.Blank:
			p.pushBlank(tok)

		case tok.IsComment():
			p.pushComment(tok)

		case tok.IsQuotePrefix():
			p.pending = append(p.pending, pendingPrefix{prefix: prefixOf(tok.Kind), span: tok.Span})

		case tok.IsOpen():
			p.frames = append(p.frames, frame{delim: delimOf(tok.Kind), open: tok.Span, outer: p.pending})
			p.pending = nil

		case tok.IsClose():
			if err := p.closeFrame(tok); err != nil {
				return nil, err
			}

		default: // Atom, String
			p.complete(&ast.Atom{Text: tok.Text, Sp: tok.Span})
		}
	}
}

func (p *parser) finish() ([]ast.Node, error) {
	if len(p.pending) > 0 {
		last := p.pending[len(p.pending)-1]
		return nil, p.fail(diag.SynDanglingQuote, last.span,
			fmt.Sprintf("quote prefix %q with nothing to quote", last.prefix.String()))
	}
	if len(p.frames) > 0 {
		inner := p.frames[len(p.frames)-1]
		return nil, p.fail(diag.SynUnclosedList, inner.open,
			fmt.Sprintf("unclosed %q", inner.delim.Open()))
	}
	return p.top, nil
}

func (p *parser) closeFrame(tok token.Token) error {
	if len(p.pending) > 0 {
		last := p.pending[len(p.pending)-1]
		return p.fail(diag.SynDanglingQuote, last.span,
			fmt.Sprintf("quote prefix %q with nothing to quote", last.prefix.String()))
	}
	if len(p.frames) == 0 {
		return p.fail(diag.SynUnexpectedClose, tok.Span,
			fmt.Sprintf("closing %q without matching opener", tok.Text))
	}

	fr := p.frames[len(p.frames)-1]
	if delimOfClose(tok.Kind) != fr.delim {
		err := &Error{
			Code: diag.SynMismatchedDelimiter,
			Span: tok.Span,
			Msg:  fmt.Sprintf("mismatched closing %q for %q", tok.Text, fr.delim.Open()),
		}
		if p.opts.Reporter != nil {
			p.opts.Reporter.Report(err.Code, diag.SevError, err.Span, err.Msg,
				[]diag.Note{{Span: fr.open, Msg: "opened here"}})
		}
		return err
	}

	p.frames = p.frames[:len(p.frames)-1]
	p.pending = fr.outer
	p.complete(&ast.List{
		Delim:    fr.delim,
		Children: fr.nodes,
		Sp:       fr.open.Cover(tok.Span),
	})
	return nil
}

// complete wraps a finished node with any pending quote prefixes (the last
// prefix seen binds innermost) and appends it to the innermost frame.
func (p *parser) complete(node ast.Node) {
	for i := len(p.pending) - 1; i >= 0; i-- {
		pre := p.pending[i]
		node = &ast.Quoted{
			Prefix: pre.prefix,
			Inner:  node,
			Sp:     pre.span.Cover(node.Span()),
		}
	}
	p.pending = p.pending[:0]
	p.push(node)
}

func (p *parser) push(node ast.Node) {
	if len(p.frames) > 0 {
		fr := &p.frames[len(p.frames)-1]
		fr.nodes = append(fr.nodes, node)
		return
	}
	p.top = append(p.top, node)
}

// handleDirective appends a directive node. The scanner only emits directive
// tokens in the leading run, so these always land before the first form.
func (p *parser) handleDirective(tok token.Token) {
	kind := ast.Shebang
	if tok.Kind == token.LangLine {
		kind = ast.LangShorthand
	}
	p.top = append(p.top, &ast.Directive{Kind: kind, Text: tok.Text, Sp: tok.Span})
}

func (p *parser) pushComment(tok token.Token) {
	p.push(&ast.Comment{
		Text:     tok.Text,
		Block:    tok.Kind == token.BlockComment,
		Trailing: p.sharesLineWithPrev(tok),
		Sp:       tok.Span,
	})
}

// sharesLineWithPrev reports whether the comment starts on the same line as
// the previous sibling in the current frame.
func (p *parser) sharesLineWithPrev(tok token.Token) bool {
	var siblings []ast.Node
	if len(p.frames) > 0 {
		siblings = p.frames[len(p.frames)-1].nodes
	} else {
		siblings = p.top
	}
	if len(siblings) == 0 {
		return false
	}
	prev := siblings[len(siblings)-1]
	if _, isBlank := prev.(*ast.Blank); isBlank {
		return false
	}
	prevSpan := prev.Span()
	prevEnd := prevSpan.End
	if prevEnd > prevSpan.Start {
		prevEnd--
	}
	return p.file.LineOf(prevEnd) == p.file.LineOf(tok.Span.Start)
}

// pushBlank appends a blank marker, collapsing adjacent runs.
func (p *parser) pushBlank(tok token.Token) {
	var siblings []ast.Node
	if len(p.frames) > 0 {
		siblings = p.frames[len(p.frames)-1].nodes
	} else {
		siblings = p.top
	}
	if len(siblings) > 0 {
		if _, isBlank := siblings[len(siblings)-1].(*ast.Blank); isBlank {
			return
		}
	}
	p.push(&ast.Blank{Sp: tok.Span})
}

func (p *parser) fail(code diag.Code, span source.Span, msg string) *Error {
	diag.ReportError(p.opts.Reporter, code, span, msg)
	return &Error{Code: code, Span: span, Msg: msg}
}

func delimOf(kind token.Kind) ast.Delim {
	switch kind {
	case token.LBracket:
		return ast.Bracket
	case token.LBrace:
		return ast.Brace
	default:
		return ast.Paren
	}
}

func delimOfClose(kind token.Kind) ast.Delim {
	switch kind {
	case token.RBracket:
		return ast.Bracket
	case token.RBrace:
		return ast.Brace
	default:
		return ast.Paren
	}
}

func prefixOf(kind token.Kind) ast.Prefix {
	switch kind {
	case token.Quasiquote:
		return ast.Quasiquote
	case token.Unquote:
		return ast.Unquote
	case token.UnquoteSplicing:
		return ast.UnquoteSplicing
	case token.HashQuote:
		return ast.Hash
	default:
		return ast.Quote
	}
}
