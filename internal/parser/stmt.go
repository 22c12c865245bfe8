package parser

import (
	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/token"
)

// parseStatement dispatches on the first token.
func (p *Parser) parseStatement() (ast.StmtID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Semicolon:
		p.advance()
		return p.arenas.Stmts.NewEmpty(tok.Span), true
	case token.LBrace:
		return p.parseBlockStmt()
	case token.KwVar, token.KwLet, token.KwConst:
		stmt, ok := p.parseVarDecl(false)
		if !ok {
			return ast.NoStmtID, false
		}
		p.consumeSemicolon()
		p.widenToLast(stmt)
		return stmt, true
	case token.KwFunction:
		return p.parseFunctionDecl()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwDo:
		return p.parseDoWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwBreak, token.KwContinue:
		return p.parseJumpStmt()
	case token.KwThrow:
		return p.parseThrowStmt()
	case token.KwTry:
		return p.parseTryStmt()
	case token.KwSwitch:
		return p.parseSwitchStmt()
	case token.KwDebugger:
		p.advance()
		p.consumeSemicolon()
		return p.arenas.Stmts.NewDebugger(p.spanFrom(tok.Span)), true
	case token.KwClass, token.KwImport, token.KwExport, token.KwWith:
		p.err(diag.SynUnexpectedToken, "\""+tok.Text+"\" statements are not supported")
		return ast.NoStmtID, false
	}

	if tok.IsIdentName() {
		return p.parseLabeledOrExprStmt()
	}
	return p.parseExprStmt()
}

// widenToLast extends a statement span over a trailing ';'.
func (p *Parser) widenToLast(id ast.StmtID) {
	if st := p.arenas.Stmts.Get(id); st != nil {
		st.Span = st.Span.Cover(p.lastSpan)
	}
}

func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	start := p.lx.Peek().Span
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	p.consumeSemicolon()
	return p.arenas.Stmts.NewExpr(p.spanFrom(start), expr), true
}

func (p *Parser) parseBlockStmt() (ast.StmtID, bool) {
	open := p.advance()
	stmts := p.parseStatementList(token.RBrace)
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block"); !ok {
		return p.arenas.Stmts.NewBlock(p.spanFrom(open.Span), stmts), false
	}
	return p.arenas.Stmts.NewBlock(p.spanFrom(open.Span), stmts), true
}

// parseFunctionBody parses "{ stmts }" with fresh loop and label context.
func (p *Parser) parseFunctionBody() ([]ast.StmtID, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to start function body"); !ok {
		return nil, false
	}
	savedLoop, savedSw, savedLabels := p.loopDepth, p.swDepth, p.labels
	p.loopDepth, p.swDepth, p.labels = 0, 0, nil
	savedNoIn := p.noIn
	p.noIn = false
	p.funcDepth++

	body := p.parseStatementList(token.RBrace)

	p.funcDepth--
	p.noIn = savedNoIn
	p.loopDepth, p.swDepth, p.labels = savedLoop, savedSw, savedLabels

	_, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close function body")
	return body, ok
}
