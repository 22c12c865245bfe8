package parser

import (
	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/source"
	"shrink/internal/token"
)

func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	if p.pending.IsValid() {
		id := p.pending
		p.pending = ast.NoExprID
		return p.maybeArrowFromIdent(id)
	}

	tok := p.lx.Peek()
	switch tok.Kind {
	case token.NumberLit:
		p.advance()
		value, base, ok := parseNumber(tok.Text)
		if !ok {
			p.errAt(diag.LexBadNumber, tok.Span, "malformed numeric literal \""+tok.Text+"\"")
		}
		return p.arenas.Exprs.NewNumber(tok.Span, value, tok.Text, base), true
	case token.StringLit:
		p.advance()
		return p.arenas.Exprs.NewStringLit(tok.Span, decodeString(tok.Text), tok.Text), true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewBool(tok.Span, tok.Kind == token.KwTrue), true
	case token.KwNull:
		p.advance()
		return p.arenas.Exprs.NewNull(tok.Span), true
	case token.KwThis:
		p.advance()
		return p.arenas.Exprs.NewThis(tok.Span), true
	case token.LParen:
		return p.parseParenOrArrow()
	case token.LBracket:
		return p.parseArrayLit()
	case token.LBrace:
		return p.parseObjectLit()
	case token.KwFunction:
		fn, ok := p.parseFunction(false)
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewFunction(p.spanFrom(tok.Span), fn), true
	case token.Slash, token.SlashAssign:
		p.err(diag.SynExpectExpression, "regular expression literals are not supported")
		return ast.NoExprID, false
	case token.KwClass, token.KwSuper, token.KwImport:
		p.err(diag.SynExpectExpression, "\""+tok.Text+"\" expressions are not supported")
		return ast.NoExprID, false
	case token.Invalid:
		// the lexer already reported it
		p.advance()
		return ast.NoExprID, false
	}

	if tok.IsIdentName() {
		p.advance()
		id := p.arenas.Exprs.NewIdent(tok.Span, p.arenas.Intern(tok.Text))
		return p.maybeArrowFromIdent(id)
	}

	p.err(diag.SynExpectExpression, "expected expression, got \""+tok.Text+"\"")
	return ast.NoExprID, false
}

// maybeArrowFromIdent turns "x => body" into an arrow function.
func (p *Parser) maybeArrowFromIdent(id ast.ExprID) (ast.ExprID, bool) {
	next := p.lx.Peek()
	if next.Kind != token.Arrow || next.NewlineBefore() {
		return id, true
	}
	ident, ok := p.arenas.Exprs.Ident(id)
	if !ok {
		return id, true
	}
	return p.parseArrowBody(p.exprSpan(id), []source.StringID{ident.Name}, false)
}

// parseParenOrArrow parses "(expr)" or an arrow parameter list "(a, ...b) =>".
func (p *Parser) parseParenOrArrow() (ast.ExprID, bool) {
	open := p.advance()
	savedNoIn := p.noIn
	p.noIn = false

	var items []ast.ExprID
	spread := false
	for !p.at(token.RParen) && !p.at(token.EOF) {
		item, ok := p.parseSpreadOrAssign()
		if !ok {
			p.noIn = savedNoIn
			return ast.NoExprID, false
		}
		if p.arenas.Exprs.Get(item).Kind == ast.ExprSpread {
			spread = true
		}
		items = append(items, item)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.noIn = savedNoIn
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
	if !ok {
		return ast.NoExprID, false
	}

	if next := p.lx.Peek(); next.Kind == token.Arrow && !next.NewlineBefore() {
		params, rest, ok := p.arrowParams(items)
		if !ok {
			return ast.NoExprID, false
		}
		return p.parseArrowBody(open.Span, params, rest)
	}

	if len(items) == 0 {
		p.errAt(diag.SynExpectExpression, open.Span.Cover(closeTok.Span), "expected expression inside parentheses")
		return ast.NoExprID, false
	}
	if spread {
		p.errAt(diag.SynExpectExpression, open.Span.Cover(closeTok.Span), "unexpected spread in parenthesized expression")
		return ast.NoExprID, false
	}
	inner := items[0]
	if len(items) > 1 {
		inner = p.arenas.Exprs.NewSequence(p.exprSpan(items[0]).Cover(p.exprSpan(items[len(items)-1])), items)
	}
	return p.arenas.Exprs.NewParen(open.Span.Cover(closeTok.Span), inner), true
}

// arrowParams reinterprets parenthesized items as parameter names.
func (p *Parser) arrowParams(items []ast.ExprID) ([]source.StringID, bool, bool) {
	params := make([]source.StringID, 0, len(items))
	rest := false
	for i, item := range items {
		target := item
		if sp, ok := p.arenas.Exprs.Spread(item); ok {
			if i != len(items)-1 {
				p.errAt(diag.SynExpectIdentifier, p.exprSpan(item), "rest parameter must be last")
				return nil, false, false
			}
			rest = true
			target = sp.Arg
		}
		ident, ok := p.arenas.Exprs.Ident(target)
		if !ok {
			p.errAt(diag.SynExpectIdentifier, p.exprSpan(item), "arrow parameters must be plain identifiers")
			return nil, false, false
		}
		params = append(params, ident.Name)
	}
	return params, rest, true
}

func (p *Parser) parseArrowBody(start source.Span, params []source.StringID, rest bool) (ast.ExprID, bool) {
	p.advance() // =>
	fn := ast.FuncData{Params: params, Rest: rest, Arrow: true}
	if p.at(token.LBrace) {
		body, ok := p.parseFunctionBody()
		if !ok {
			return ast.NoExprID, false
		}
		fn.Body = body
	} else {
		p.funcDepth++
		body, ok := p.parseAssignExpr()
		p.funcDepth--
		if !ok {
			return ast.NoExprID, false
		}
		fn.ExprBody = body
	}
	return p.arenas.Exprs.NewFunction(p.spanFrom(start), fn), true
}

func (p *Parser) parseArrayLit() (ast.ExprID, bool) {
	open := p.advance()
	savedNoIn := p.noIn
	p.noIn = false
	defer func() { p.noIn = savedNoIn }()

	elems := []ast.ExprID{}
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.eat(token.Comma) {
			elems = append(elems, ast.NoExprID) // hole
			continue
		}
		elem, ok := p.parseSpreadOrAssign()
		if !ok {
			return ast.NoExprID, false
		}
		elems = append(elems, elem)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array literal"); !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewArray(p.spanFrom(open.Span), elems), true
}

func (p *Parser) parseObjectLit() (ast.ExprID, bool) {
	open := p.advance()
	savedNoIn := p.noIn
	p.noIn = false
	defer func() { p.noIn = savedNoIn }()

	var props []ast.Property
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		prop, ok := p.parseProperty()
		if !ok {
			return ast.NoExprID, false
		}
		props = append(props, prop)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close object literal"); !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewObject(p.spanFrom(open.Span), props), true
}

func (p *Parser) parseProperty() (ast.Property, bool) {
	start := p.lx.Peek()
	var prop ast.Property

	if p.eat(token.Ellipsis) {
		arg, ok := p.parseAssignExpr()
		if !ok {
			return prop, false
		}
		prop.Kind, prop.Value, prop.Span = ast.PropSpread, arg, p.spanFrom(start.Span)
		return prop, true
	}

	keyTok := start
	switch {
	case keyTok.Kind == token.LBracket:
		p.advance()
		key, ok := p.parseAssignExpr()
		if !ok {
			return prop, false
		}
		if _, ok = p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed key"); !ok {
			return prop, false
		}
		prop.Computed = key
	case keyTok.Kind == token.Ident || keyTok.Kind.IsKeyword() ||
		keyTok.Kind == token.StringLit || keyTok.Kind == token.NumberLit:
		p.advance()
		prop.Key = p.arenas.Intern(keyTok.Text)
	default:
		p.err(diag.SynExpectIdentifier, "expected property key, got \""+keyTok.Text+"\"")
		return prop, false
	}

	if (keyTok.Kind == token.KwGet || keyTok.Kind == token.KwSet) && !p.atOr(token.Colon, token.LParen, token.Comma, token.RBrace) {
		p.err(diag.SynUnexpectedToken, "getters and setters are not supported")
		return prop, false
	}

	switch {
	case p.eat(token.Colon):
		value, ok := p.parseAssignExpr()
		if !ok {
			return prop, false
		}
		prop.Kind, prop.Value = ast.PropInit, value
	case p.at(token.LParen):
		params, rest, ok := p.parseParams()
		if !ok {
			return prop, false
		}
		body, ok := p.parseFunctionBody()
		if !ok {
			return prop, false
		}
		fn := ast.FuncData{Params: params, Rest: rest, Body: body}
		prop.Kind, prop.Value = ast.PropMethod, p.arenas.Exprs.NewFunction(p.spanFrom(keyTok.Span), fn)
	default:
		if prop.Computed.IsValid() || !keyTok.IsIdentName() {
			p.err(diag.SynExpectColon, "expected ':' after property key")
			return prop, false
		}
		prop.Kind = ast.PropShorthand
		prop.Value = p.arenas.Exprs.NewIdent(keyTok.Span, prop.Key)
	}
	prop.Span = p.spanFrom(start.Span)
	return prop, true
}
