package parser

import (
	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/source"
	"shrink/internal/token"
)

// advance consumes the next token, records its comments and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	p.collectComments(tok)
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) collectComments(tok token.Token) {
	for _, tr := range tok.Leading {
		var kind ast.CommentKind
		switch tr.Kind {
		case token.TriviaLineComment:
			kind = ast.CommentLine
		case token.TriviaBlockComment:
			kind = ast.CommentBlock
		case token.TriviaDocBlock:
			kind = ast.CommentDoc
		default:
			continue
		}
		p.prog.Comments = append(p.prog.Comments, ast.Comment{Kind: kind, Span: tr.Span, Text: tr.Text})
	}
}

// diagnosticSpan points just past the last token when the parser ran into EOF.
func (p *Parser) diagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports code.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagnosticSpan()
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.lx.Peek().Text}, false
}

// eat consumes a token of kind k when present.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// consumeSemicolon ends a statement: an explicit ';', or a line break, '}' or EOF before the next token.
func (p *Parser) consumeSemicolon() bool {
	if p.eat(token.Semicolon) {
		return true
	}
	tok := p.lx.Peek()
	if tok.Kind == token.RBrace || tok.Kind == token.EOF || tok.NewlineBefore() {
		return true
	}
	p.err(diag.SynExpectSemicolon, "expected ';' after statement, got \""+tok.Text+"\"")
	return false
}

func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.diagnosticSpan(), msg)
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) bool {
	return p.report(code, diag.SevError, sp, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() && sev == diag.SevError && p.opts.CurrentErrors > p.opts.MaxErrors {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if e := p.arenas.Exprs.Get(id); e != nil {
		return e.Span
	}
	return p.lastSpan
}

func (p *Parser) stmtSpan(id ast.StmtID) source.Span {
	if s := p.arenas.Stmts.Get(id); s != nil {
		return s.Span
	}
	return p.lastSpan
}

// spanFrom covers start through the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}
