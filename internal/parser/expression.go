package parser

import (
	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/source"
	"shrink/internal/token"
)

// parseExpr parses a comma-separated sequence.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	first, ok := p.parseAssignExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.Comma) {
		return first, true
	}
	exprs := []ast.ExprID{first}
	for p.eat(token.Comma) {
		next, ok := p.parseAssignExpr()
		if !ok {
			return ast.NoExprID, false
		}
		exprs = append(exprs, next)
	}
	span := p.exprSpan(first).Cover(p.exprSpan(exprs[len(exprs)-1]))
	return p.arenas.Exprs.NewSequence(span, exprs), true
}

// parseAssignExpr parses assignment, which is right-associative, and everything tighter.
func (p *Parser) parseAssignExpr() (ast.ExprID, bool) {
	left, ok := p.parseConditionalExpr()
	if !ok {
		return ast.NoExprID, false
	}
	opTok := p.lx.Peek()
	op, isAssign := assignOps[opTok.Kind]
	if !isAssign {
		return left, true
	}
	if !p.isAssignTarget(left) {
		p.errAt(diag.SynInvalidAssignment, p.exprSpan(left), "invalid assignment target")
		return ast.NoExprID, false
	}
	p.advance()
	right, ok := p.parseAssignExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := p.exprSpan(left).Cover(p.exprSpan(right))
	return p.arenas.Exprs.NewAssign(span, op, left, right), true
}

// isAssignTarget accepts identifiers, member and index expressions, possibly parenthesized.
func (p *Parser) isAssignTarget(id ast.ExprID) bool {
	expr := p.arenas.Exprs.Get(id)
	if expr == nil {
		return false
	}
	switch expr.Kind {
	case ast.ExprIdent:
		return true
	case ast.ExprMember:
		m, _ := p.arenas.Exprs.Member(id)
		return !m.Optional
	case ast.ExprIndex:
		ix, _ := p.arenas.Exprs.Index(id)
		return !ix.Optional
	case ast.ExprParen:
		inner, _ := p.arenas.Exprs.Paren(id)
		return p.isAssignTarget(inner.Inner)
	default:
		return false
	}
}

func (p *Parser) parseConditionalExpr() (ast.ExprID, bool) {
	test, ok := p.parseBinaryExpr(0)
	if !ok {
		return ast.NoExprID, false
	}
	if !p.eat(token.Question) {
		return test, true
	}
	savedNoIn := p.noIn
	p.noIn = false
	cons, ok := p.parseAssignExpr()
	p.noIn = savedNoIn
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok = p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression"); !ok {
		return ast.NoExprID, false
	}
	alt, ok := p.parseAssignExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := p.exprSpan(test).Cover(p.exprSpan(alt))
	return p.arenas.Exprs.NewConditional(span, test, cons, alt), true
}

// parseBinaryExpr is a Pratt loop over the precedence table.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		tok := p.lx.Peek()
		prec, rightAssoc := p.binaryPrec(tok.Kind)
		if prec < 0 || prec < minPrec {
			break
		}
		opTok := p.advance()

		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		right, ok := p.parseBinaryExpr(nextMin)
		if !ok {
			return ast.NoExprID, false
		}
		span := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(span, binaryOps[opTok.Kind], left, right)
	}
	return left, true
}

// parseUnaryExpr collects prefix operators and applies them right to left.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	if p.pending.IsValid() {
		return p.parsePostfixExpr()
	}

	type prefixOp struct {
		unary  ast.UnaryOp
		update ast.UpdateOp
		isUpd  bool
		span   source.Span
	}
	var prefixes []prefixOp
	for {
		tok := p.lx.Peek()
		if op, ok := unaryOpFor(tok.Kind); ok {
			p.advance()
			prefixes = append(prefixes, prefixOp{unary: op, span: tok.Span})
			continue
		}
		if tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus {
			p.advance()
			op := ast.UpdateIncr
			if tok.Kind == token.MinusMinus {
				op = ast.UpdateDecr
			}
			prefixes = append(prefixes, prefixOp{update: op, isUpd: true, span: tok.Span})
			continue
		}
		break
	}

	expr, ok := p.parsePostfixExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for i := len(prefixes) - 1; i >= 0; i-- {
		pre := prefixes[i]
		span := pre.span.Cover(p.exprSpan(expr))
		if pre.isUpd {
			if !p.isAssignTarget(expr) {
				p.errAt(diag.SynInvalidAssignment, p.exprSpan(expr), "invalid operand for prefix "+pre.update.String())
				return ast.NoExprID, false
			}
			expr = p.arenas.Exprs.NewUpdate(span, pre.update, true, expr)
			continue
		}
		expr = p.arenas.Exprs.NewUnary(span, pre.unary, expr)
	}
	return expr, true
}

// parsePostfixExpr handles x++ and x-- which may not follow a line break.
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parseCallMemberExpr()
	if !ok {
		return ast.NoExprID, false
	}
	tok := p.lx.Peek()
	if (tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus) && !tok.NewlineBefore() {
		if !p.isAssignTarget(expr) {
			p.errAt(diag.SynInvalidAssignment, p.exprSpan(expr), "invalid operand for postfix "+tok.Text)
			return ast.NoExprID, false
		}
		p.advance()
		op := ast.UpdateIncr
		if tok.Kind == token.MinusMinus {
			op = ast.UpdateDecr
		}
		expr = p.arenas.Exprs.NewUpdate(p.exprSpan(expr).Cover(tok.Span), op, false, expr)
	}
	return expr, true
}

// parseCallMemberExpr parses a primary followed by member, index and call suffixes.
func (p *Parser) parseCallMemberExpr() (ast.ExprID, bool) {
	var (
		expr ast.ExprID
		ok   bool
	)
	if !p.pending.IsValid() && p.at(token.KwNew) {
		expr, ok = p.parseNewExpr()
	} else {
		expr, ok = p.parsePrimaryExpr()
	}
	if !ok {
		return ast.NoExprID, false
	}
	return p.parseSuffixes(expr, true)
}

// parseSuffixes applies ".name", "[index]", "?." and, when calls is set, "(args)".
func (p *Parser) parseSuffixes(expr ast.ExprID, calls bool) (ast.ExprID, bool) {
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Dot:
			p.advance()
			name, ok := p.parsePropertyName()
			if !ok {
				return ast.NoExprID, false
			}
			expr = p.arenas.Exprs.NewMember(p.spanFrom(p.exprSpan(expr)), expr, name, false)
		case token.LBracket:
			var ok bool
			if expr, ok = p.parseIndexSuffix(expr, false); !ok {
				return ast.NoExprID, false
			}
		case token.QuestionDot:
			if !calls {
				return expr, true
			}
			p.advance()
			switch {
			case p.at(token.LParen):
				args, ok := p.parseArgs()
				if !ok {
					return ast.NoExprID, false
				}
				expr = p.arenas.Exprs.NewCall(p.spanFrom(p.exprSpan(expr)), expr, args, true)
			case p.at(token.LBracket):
				var ok bool
				if expr, ok = p.parseIndexSuffix(expr, true); !ok {
					return ast.NoExprID, false
				}
			default:
				name, ok := p.parsePropertyName()
				if !ok {
					return ast.NoExprID, false
				}
				expr = p.arenas.Exprs.NewMember(p.spanFrom(p.exprSpan(expr)), expr, name, true)
			}
		case token.LParen:
			if !calls {
				return expr, true
			}
			args, ok := p.parseArgs()
			if !ok {
				return ast.NoExprID, false
			}
			expr = p.arenas.Exprs.NewCall(p.spanFrom(p.exprSpan(expr)), expr, args, false)
		default:
			return expr, true
		}
	}
}

func (p *Parser) parseIndexSuffix(object ast.ExprID, optional bool) (ast.ExprID, bool) {
	p.advance() // [
	savedNoIn := p.noIn
	p.noIn = false
	index, ok := p.parseExpr()
	p.noIn = savedNoIn
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok = p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index"); !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewIndex(p.spanFrom(p.exprSpan(object)), object, index, optional), true
}

// parsePropertyName accepts identifiers and any keyword after '.'.
func (p *Parser) parsePropertyName() (source.StringID, bool) {
	tok := p.lx.Peek()
	if tok.Kind == token.Ident || tok.Kind.IsKeyword() {
		p.advance()
		return p.arenas.Intern(tok.Text), true
	}
	p.err(diag.SynExpectIdentifier, "expected property name, got \""+tok.Text+"\"")
	return source.NoStringID, false
}

// parseNewExpr parses "new Callee(args)" where the callee has no call suffix.
func (p *Parser) parseNewExpr() (ast.ExprID, bool) {
	kw := p.advance()
	var (
		callee ast.ExprID
		ok     bool
	)
	if p.at(token.KwNew) {
		callee, ok = p.parseNewExpr()
	} else {
		callee, ok = p.parsePrimaryExpr()
	}
	if !ok {
		return ast.NoExprID, false
	}
	if callee, ok = p.parseSuffixes(callee, false); !ok {
		return ast.NoExprID, false
	}
	var args []ast.ExprID
	if p.at(token.LParen) {
		if args, ok = p.parseArgs(); !ok {
			return ast.NoExprID, false
		}
	}
	return p.arenas.Exprs.NewNew(p.spanFrom(kw.Span), callee, args), true
}

// parseArgs parses "(a, ...b,)".
func (p *Parser) parseArgs() ([]ast.ExprID, bool) {
	p.advance() // (
	savedNoIn := p.noIn
	p.noIn = false
	defer func() { p.noIn = savedNoIn }()

	args := []ast.ExprID{}
	for !p.at(token.RParen) && !p.at(token.EOF) {
		arg, ok := p.parseSpreadOrAssign()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments"); !ok {
		return nil, false
	}
	return args, true
}

func (p *Parser) parseSpreadOrAssign() (ast.ExprID, bool) {
	if p.at(token.Ellipsis) {
		dots := p.advance()
		arg, ok := p.parseAssignExpr()
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewSpread(dots.Span.Cover(p.exprSpan(arg)), arg), true
	}
	return p.parseAssignExpr()
}
