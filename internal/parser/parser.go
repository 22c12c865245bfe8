package parser

import (
	"slices"

	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/lexer"
	"shrink/internal/source"
	"shrink/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Program *ast.Program
	Bag     *diag.Bag
}

// Parser holds per-file parsing state.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	fs       *source.FileSet
	prog     *ast.Program
	opts     Options
	lastSpan source.Span // span of the last consumed token

	noIn      bool       // "in" is not a binary operator (for-loop init)
	pending   ast.ExprID // primary already consumed by statement lookahead
	funcDepth int
	loopDepth int
	swDepth   int
	labels    []source.StringID
}

// ParseFile parses one file from an already constructed lexer.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	start := lx.Peek().Span
	p.prog = &ast.Program{File: lx.File().ID}
	p.prog.Body = p.parseStatementList(token.EOF)

	eof := p.lx.Next()
	p.collectComments(eof)
	p.prog.Span = source.Span{File: start.File, Start: 0, End: eof.Span.End}

	var bag *diag.Bag
	switch r := opts.Reporter.(type) {
	case *diag.BagReporter:
		bag = r.Bag
	case diag.BagReporter:
		bag = r.Bag
	}
	return Result{
		Program: p.prog,
		Bag:     bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseStatementList parses statements until end (RBrace or EOF), leaving end unconsumed.
func (p *Parser) parseStatementList(end token.Kind) []ast.StmtID {
	var out []ast.StmtID
	for !p.at(end) && !p.at(token.EOF) {
		before := p.lx.Peek().Span
		stmt, ok := p.parseStatement()
		if ok {
			out = append(out, stmt)
			continue
		}
		p.resyncStatement()
		if p.lx.Peek().Span == before && !p.at(token.EOF) && !p.at(end) {
			p.advance()
		}
	}
	return out
}

// resyncStatement skips to the next ';' (consumed), '}' or statement keyword.
func (p *Parser) resyncStatement() {
	for !p.at(token.EOF) {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.Semicolon:
			p.advance()
			return
		case tok.Kind == token.RBrace:
			return
		case tok.NewlineBefore() && isStatementStarter(tok.Kind):
			return
		}
		p.advance()
	}
}

func isStatementStarter(k token.Kind) bool {
	switch k {
	case token.KwVar, token.KwLet, token.KwConst, token.KwFunction, token.KwIf, token.KwFor,
		token.KwWhile, token.KwDo, token.KwReturn, token.KwBreak, token.KwContinue, token.KwThrow,
		token.KwTry, token.KwSwitch, token.KwDebugger:
		return true
	default:
		return false
	}
}

// parseIdent expects a binding name and interns it.
func (p *Parser) parseIdent() (source.StringID, bool) {
	tok := p.lx.Peek()
	if tok.IsIdentName() {
		p.advance()
		return p.arenas.Intern(tok.Text), true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+tok.Text+"\"")
	return source.NoStringID, false
}
