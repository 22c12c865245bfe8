package parser

import (
	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/source"
	"shrink/internal/token"
)

func varKindOf(k token.Kind) ast.VarKind {
	switch k {
	case token.KwLet:
		return ast.VarLet
	case token.KwConst:
		return ast.VarConst
	default:
		return ast.VarVar
	}
}

// parseVarDecl parses "var|let|const a = 1, b" without the terminating ';'.
// inForHead relaxes the const initializer check for for-in/of heads.
func (p *Parser) parseVarDecl(inForHead bool) (ast.StmtID, bool) {
	kw := p.advance()
	kind := varKindOf(kw.Kind)

	var decls []ast.DeclaratorID
	for {
		nameTok := p.lx.Peek()
		if nameTok.Kind == token.LBrace || nameTok.Kind == token.LBracket {
			p.err(diag.SynExpectIdentifier, "destructuring patterns are not supported")
			return ast.NoStmtID, false
		}
		name, ok := p.parseIdent()
		if !ok {
			return ast.NoStmtID, false
		}
		init := ast.NoExprID
		if p.eat(token.Assign) {
			init, ok = p.parseAssignExpr()
			if !ok {
				return ast.NoStmtID, false
			}
		} else if kind == ast.VarConst && !inForHead {
			p.errAt(diag.SynConstWithoutInit, nameTok.Span, "missing initializer in const declaration")
		}
		decls = append(decls, p.arenas.Decls.New(p.spanFrom(nameTok.Span), name, init))
		if !p.eat(token.Comma) {
			break
		}
	}
	return p.arenas.Stmts.NewVarDecl(p.spanFrom(kw.Span), kind, decls), true
}

func (p *Parser) parseFunctionDecl() (ast.StmtID, bool) {
	kw := p.lx.Peek()
	fn, ok := p.parseFunction(true)
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewFunction(p.spanFrom(kw.Span), fn), true
}

// parseFunction parses "function name?(params) { body }". Declarations require a name.
func (p *Parser) parseFunction(requireName bool) (ast.FuncData, bool) {
	p.advance() // function
	var fn ast.FuncData
	if p.at(token.Star) {
		p.err(diag.SynUnexpectedToken, "generator functions are not supported")
		return fn, false
	}
	if p.lx.Peek().IsIdentName() {
		fn.Name, _ = p.parseIdent()
	} else if requireName {
		p.err(diag.SynExpectIdentifier, "expected function name")
		return fn, false
	}
	params, rest, ok := p.parseParams()
	if !ok {
		return fn, false
	}
	fn.Params, fn.Rest = params, rest
	fn.Body, ok = p.parseFunctionBody()
	return fn, ok
}

// parseParams parses "(a, b, ...c)".
func (p *Parser) parseParams() ([]source.StringID, bool, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' before parameters"); !ok {
		return nil, false, false
	}
	var params []source.StringID
	rest := false
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.eat(token.Ellipsis) {
			rest = true
		}
		if p.atOr(token.LBrace, token.LBracket) {
			p.err(diag.SynExpectIdentifier, "destructuring patterns are not supported")
			return nil, false, false
		}
		name, ok := p.parseIdent()
		if !ok {
			return nil, false, false
		}
		if p.at(token.Assign) {
			p.err(diag.SynUnexpectedToken, "default parameter values are not supported")
			return nil, false, false
		}
		params = append(params, name)
		if rest || !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		return nil, false, false
	}
	return params, rest, true
}
