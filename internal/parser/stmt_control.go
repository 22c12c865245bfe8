package parser

import (
	"slices"

	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/source"
	"shrink/internal/token"
)

// parseParenExpr parses "( expr )" for statement headers.
func (p *Parser) parseParenExpr() (ast.ExprID, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); !ok {
		return ast.NoExprID, false
	}
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return ast.NoExprID, false
	}
	return expr, true
}

func (p *Parser) parseLoopBody() (ast.StmtID, bool) {
	p.loopDepth++
	body, ok := p.parseStatement()
	p.loopDepth--
	return body, ok
}

func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	kw := p.advance()
	test, ok := p.parseParenExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	cons, ok := p.parseStatement()
	if !ok {
		return ast.NoStmtID, false
	}
	alt := ast.NoStmtID
	if p.eat(token.KwElse) {
		if alt, ok = p.parseStatement(); !ok {
			return ast.NoStmtID, false
		}
	}
	return p.arenas.Stmts.NewIf(p.spanFrom(kw.Span), test, cons, alt), true
}

func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	kw := p.advance()
	test, ok := p.parseParenExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseLoopBody()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewWhile(p.spanFrom(kw.Span), test, body), true
}

func (p *Parser) parseDoWhileStmt() (ast.StmtID, bool) {
	kw := p.advance()
	body, ok := p.parseLoopBody()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok = p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while' after do body"); !ok {
		return ast.NoStmtID, false
	}
	test, ok := p.parseParenExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	// a ';' after do-while is optional even on the same line
	p.eat(token.Semicolon)
	return p.arenas.Stmts.NewDoWhile(p.spanFrom(kw.Span), body, test), true
}

func (p *Parser) parseForStmt() (ast.StmtID, bool) {
	kw := p.advance()
	if p.at(token.KwAwait) {
		p.err(diag.SynForBadHeader, "for await is not supported")
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LParen, diag.SynForBadHeader, "expected '(' after 'for'"); !ok {
		return ast.NoStmtID, false
	}

	var data ast.StmtForData
	savedNoIn := p.noIn
	p.noIn = true
	switch {
	case p.at(token.Semicolon):
	case p.atOr(token.KwVar, token.KwLet, token.KwConst):
		decl, ok := p.parseVarDecl(true)
		if !ok {
			p.noIn = savedNoIn
			return ast.NoStmtID, false
		}
		data.InitStmt = decl
	default:
		init, ok := p.parseExpr()
		if !ok {
			p.noIn = savedNoIn
			return ast.NoStmtID, false
		}
		data.InitExpr = init
	}
	p.noIn = savedNoIn

	if p.atOr(token.KwIn, token.KwOf) {
		return p.parseForInRest(kw.Span, data)
	}
	if data.InitStmt.IsValid() {
		p.checkConstInit(data.InitStmt)
	}

	if _, ok := p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' after for-loop initializer"); !ok {
		return ast.NoStmtID, false
	}
	if !p.at(token.Semicolon) {
		test, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Test = test
	}
	if _, ok := p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' after for-loop condition"); !ok {
		return ast.NoStmtID, false
	}
	if !p.at(token.RParen) {
		update, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Update = update
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for-loop header"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseLoopBody()
	if !ok {
		return ast.NoStmtID, false
	}
	data.Body = body
	return p.arenas.Stmts.NewFor(p.spanFrom(kw.Span), data), true
}

// checkConstInit reports const declarators without initializer in a classic for head.
func (p *Parser) checkConstInit(declID ast.StmtID) {
	decl, ok := p.arenas.Stmts.VarDecl(declID)
	if !ok || decl.Kind != ast.VarConst {
		return
	}
	for _, d := range decl.Decls {
		if dd := p.arenas.Decls.Get(d); dd != nil && !dd.Init.IsValid() {
			p.errAt(diag.SynConstWithoutInit, dd.Span, "missing initializer in const declaration")
		}
	}
}

func (p *Parser) parseForInRest(start source.Span, head ast.StmtForData) (ast.StmtID, bool) {
	opTok := p.advance()
	data := ast.StmtForInData{Of: opTok.Kind == token.KwOf}

	if head.InitStmt.IsValid() {
		decl, _ := p.arenas.Stmts.VarDecl(head.InitStmt)
		if decl == nil || len(decl.Decls) != 1 || p.arenas.Decls.Get(decl.Decls[0]).Init.IsValid() {
			p.errAt(diag.SynForBadHeader, p.stmtSpan(head.InitStmt), "for-"+opTok.Text+" head must declare exactly one binding without initializer")
			return ast.NoStmtID, false
		}
		data.LeftStmt = head.InitStmt
	} else {
		if !p.isAssignTarget(head.InitExpr) {
			p.errAt(diag.SynInvalidAssignment, p.exprSpan(head.InitExpr), "invalid left-hand side in for-"+opTok.Text)
			return ast.NoStmtID, false
		}
		data.LeftExpr = head.InitExpr
	}

	var (
		right ast.ExprID
		ok    bool
	)
	if data.Of {
		right, ok = p.parseAssignExpr()
	} else {
		right, ok = p.parseExpr()
	}
	if !ok {
		return ast.NoStmtID, false
	}
	data.Right = right
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for-"+opTok.Text+" header"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseLoopBody()
	if !ok {
		return ast.NoStmtID, false
	}
	data.Body = body
	return p.arenas.Stmts.NewForIn(p.spanFrom(start), data), true
}

func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	kw := p.advance()
	if p.funcDepth == 0 {
		p.errAt(diag.SynUnexpectedToken, kw.Span, "'return' outside of function")
	}
	arg := ast.NoExprID
	next := p.lx.Peek()
	if next.Kind != token.Semicolon && next.Kind != token.RBrace && next.Kind != token.EOF && !next.NewlineBefore() {
		var ok bool
		if arg, ok = p.parseExpr(); !ok {
			return ast.NoStmtID, false
		}
	}
	p.consumeSemicolon()
	return p.arenas.Stmts.NewReturn(p.spanFrom(kw.Span), arg), true
}

func (p *Parser) parseThrowStmt() (ast.StmtID, bool) {
	kw := p.advance()
	if p.lx.Peek().NewlineBefore() {
		p.err(diag.SynExpectExpression, "illegal newline after 'throw'")
		return ast.NoStmtID, false
	}
	arg, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	p.consumeSemicolon()
	return p.arenas.Stmts.NewThrow(p.spanFrom(kw.Span), arg), true
}

func (p *Parser) parseJumpStmt() (ast.StmtID, bool) {
	kw := p.advance()
	isBreak := kw.Kind == token.KwBreak

	label := source.NoStringID
	if next := p.lx.Peek(); next.IsIdentName() && !next.NewlineBefore() {
		p.advance()
		label = p.arenas.Intern(next.Text)
		if !slices.Contains(p.labels, label) {
			p.errAt(diag.SynIllegalBreak, next.Span, "undefined label \""+next.Text+"\"")
		}
	} else {
		switch {
		case isBreak && p.loopDepth == 0 && p.swDepth == 0:
			p.errAt(diag.SynIllegalBreak, kw.Span, "illegal 'break' statement")
		case !isBreak && p.loopDepth == 0:
			p.errAt(diag.SynIllegalBreak, kw.Span, "illegal 'continue' statement")
		}
	}
	p.consumeSemicolon()
	if isBreak {
		return p.arenas.Stmts.NewBreak(p.spanFrom(kw.Span), label), true
	}
	return p.arenas.Stmts.NewContinue(p.spanFrom(kw.Span), label), true
}

// parseLabeledOrExprStmt handles "name: stmt". When the name is not followed
// by ':' it becomes the pending primary of an expression statement.
func (p *Parser) parseLabeledOrExprStmt() (ast.StmtID, bool) {
	nameTok := p.advance()
	if !p.at(token.Colon) {
		p.pending = p.arenas.Exprs.NewIdent(nameTok.Span, p.arenas.Intern(nameTok.Text))
		return p.parseExprStmtFrom(nameTok.Span)
	}
	p.advance()
	label := p.arenas.Intern(nameTok.Text)
	p.labels = append(p.labels, label)
	body, ok := p.parseStatement()
	p.labels = p.labels[:len(p.labels)-1]
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewLabeled(p.spanFrom(nameTok.Span), label, body), true
}

func (p *Parser) parseExprStmtFrom(start source.Span) (ast.StmtID, bool) {
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	p.consumeSemicolon()
	return p.arenas.Stmts.NewExpr(p.spanFrom(start), expr), true
}

func (p *Parser) parseBlockBody(what string) ([]ast.StmtID, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after '"+what+"'"); !ok {
		return nil, false
	}
	stmts := p.parseStatementList(token.RBrace)
	_, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close '"+what+"' block")
	return stmts, ok
}

func (p *Parser) parseTryStmt() (ast.StmtID, bool) {
	kw := p.advance()
	var data ast.StmtTryData
	var ok bool
	if data.Block, ok = p.parseBlockBody("try"); !ok {
		return ast.NoStmtID, false
	}
	if p.eat(token.KwCatch) {
		data.HasCatch = true
		if p.eat(token.LParen) {
			if data.Param, ok = p.parseIdent(); !ok {
				return ast.NoStmtID, false
			}
			if _, ok = p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after catch parameter"); !ok {
				return ast.NoStmtID, false
			}
		}
		if data.Handler, ok = p.parseBlockBody("catch"); !ok {
			return ast.NoStmtID, false
		}
	}
	if p.eat(token.KwFinally) {
		data.HasFinally = true
		if data.Finalizer, ok = p.parseBlockBody("finally"); !ok {
			return ast.NoStmtID, false
		}
	}
	if !data.HasCatch && !data.HasFinally {
		p.err(diag.SynMissingCatch, "missing catch or finally after try")
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewTry(p.spanFrom(kw.Span), data), true
}

func (p *Parser) parseSwitchStmt() (ast.StmtID, bool) {
	kw := p.advance()
	disc, ok := p.parseParenExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok = p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after switch header"); !ok {
		return ast.NoStmtID, false
	}

	p.swDepth++
	defer func() { p.swDepth-- }()

	var cases []ast.SwitchCase
	seenDefault := false
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		caseTok := p.lx.Peek()
		var sc ast.SwitchCase
		switch caseTok.Kind {
		case token.KwCase:
			p.advance()
			if sc.Test, ok = p.parseExpr(); !ok {
				return ast.NoStmtID, false
			}
		case token.KwDefault:
			p.advance()
			if seenDefault {
				p.errAt(diag.SynUnexpectedToken, caseTok.Span, "more than one default clause in switch")
			}
			seenDefault = true
		default:
			p.err(diag.SynUnexpectedToken, "expected 'case' or 'default', got \""+caseTok.Text+"\"")
			return ast.NoStmtID, false
		}
		if _, ok = p.expect(token.Colon, diag.SynExpectColon, "expected ':' after case"); !ok {
			return ast.NoStmtID, false
		}
		for !p.atOr(token.KwCase, token.KwDefault, token.RBrace, token.EOF) {
			before := p.lx.Peek().Span
			stmt, ok := p.parseStatement()
			if ok {
				sc.Body = append(sc.Body, stmt)
				continue
			}
			p.resyncStatement()
			if p.lx.Peek().Span == before && !p.at(token.EOF) && !p.at(token.RBrace) {
				p.advance()
			}
		}
		sc.Span = p.spanFrom(caseTok.Span)
		cases = append(cases, sc)
	}
	if _, ok = p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close switch"); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewSwitch(p.spanFrom(kw.Span), disc, cases), true
}
