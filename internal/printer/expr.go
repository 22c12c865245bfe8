package printer

import (
	"strconv"
	"strings"

	"shrink/internal/ast"
)

// printExpr prints id, wrapping it in parentheses when it binds looser than minPrec.
func (p *printer) printExpr(id ast.ExprID, minPrec int) {
	if !id.IsValid() {
		return
	}
	expr := p.b.Exprs.Get(id)
	if expr == nil {
		return
	}
	wrap := p.exprPrec(id) < minPrec || p.noIn && p.isInBinary(id)
	if wrap {
		p.w.punct('(')
		noIn := p.noIn
		p.noIn = false
		defer func() {
			p.noIn = noIn
			p.w.punct(')')
		}()
	}

	switch expr.Kind {
	case ast.ExprBool:
		lit, _ := p.b.Exprs.Bool(id)
		p.w.token(strconv.FormatBool(lit.Value))
	case ast.ExprNumber:
		num, _ := p.b.Exprs.Number(id)
		p.w.token(numberText(num))
	case ast.ExprString:
		str, _ := p.b.Exprs.StringLit(id)
		if str.Raw != "" {
			p.w.token(str.Raw)
		} else {
			p.w.token(quote(str.Value))
		}
	case ast.ExprNull:
		p.w.token("null")
	case ast.ExprThis:
		p.w.token("this")
	case ast.ExprIdent:
		ident, _ := p.b.Exprs.Ident(id)
		p.w.token(p.name(ident.Name))
	case ast.ExprUnary:
		u, _ := p.b.Exprs.Unary(id)
		p.w.token(u.Op.String())
		p.printExpr(u.Arg, precPrefix)
	case ast.ExprUpdate:
		u, _ := p.b.Exprs.Update(id)
		if u.Prefix {
			p.w.token(u.Op.String())
			p.printExpr(u.Arg, precPrefix)
		} else {
			p.printExpr(u.Arg, precCall)
			p.w.token(u.Op.String())
		}
	case ast.ExprBinary:
		p.printBinary(id)
	case ast.ExprAssign:
		a, _ := p.b.Exprs.Assign(id)
		p.printExpr(a.Target, precCall)
		p.w.token(a.Op.String())
		p.printExpr(a.Value, precAssign)
	case ast.ExprConditional:
		c, _ := p.b.Exprs.Conditional(id)
		p.printExpr(c.Test, precCoalesce)
		p.w.punct('?')
		p.printExpr(c.Cons, precAssign)
		p.w.punct(':')
		p.printExpr(c.Alt, precAssign)
	case ast.ExprCall:
		call, _ := p.b.Exprs.Call(id)
		p.printExpr(call.Callee, precCall)
		if call.Optional {
			p.w.token("?.")
		}
		p.printArgs(call.Args)
	case ast.ExprNew:
		call, _ := p.b.Exprs.Call(id)
		p.w.token("new")
		if p.hasCallInChain(call.Callee) {
			p.w.punct('(')
			p.printExpr(call.Callee, precLowest)
			p.w.punct(')')
		} else {
			p.printExpr(call.Callee, precCall)
		}
		p.printArgs(call.Args)
	case ast.ExprMember:
		m, _ := p.b.Exprs.Member(id)
		p.printMemberObject(m.Object)
		if m.Optional {
			p.w.token("?.")
		} else {
			p.w.punct('.')
		}
		p.w.token(p.name(m.Property))
	case ast.ExprIndex:
		ix, _ := p.b.Exprs.Index(id)
		p.printExpr(ix.Object, precCall)
		if ix.Optional {
			p.w.token("?.")
		}
		p.w.punct('[')
		p.printExpr(ix.Index, precLowest)
		p.w.punct(']')
	case ast.ExprParen:
		paren, _ := p.b.Exprs.Paren(id)
		p.w.punct('(')
		noIn := p.noIn
		p.noIn = false
		p.printExpr(paren.Inner, precLowest)
		p.noIn = noIn
		p.w.punct(')')
	case ast.ExprArray:
		p.printArray(id)
	case ast.ExprObject:
		p.printObject(id)
	case ast.ExprFunction:
		fn, _ := p.b.Exprs.Function(id)
		p.printFunction(fn)
	case ast.ExprSequence:
		seq, _ := p.b.Exprs.Sequence(id)
		for i, e := range seq.Exprs {
			if i > 0 {
				p.w.punct(',')
			}
			p.printExpr(e, precAssign)
		}
	case ast.ExprSpread:
		s, _ := p.b.Exprs.Spread(id)
		p.w.token("...")
		p.printExpr(s.Arg, precAssign)
	}
}

func (p *printer) printBinary(id ast.ExprID) {
	bin, _ := p.b.Exprs.Binary(id)
	prec := binaryPrec(bin.Op)
	leftPrec, rightPrec := prec, prec+1
	if bin.Op == ast.BinaryExp {
		// a unary operand on the left of ** is a syntax error
		leftPrec, rightPrec = precPostfix, prec
	}
	p.printOperand(bin.Op, bin.Left, leftPrec)
	p.w.token(bin.Op.String())
	p.printOperand(bin.Op, bin.Right, rightPrec)
}

// printOperand also parenthesizes ?? mixed with && or ||, which the grammar rejects.
func (p *printer) printOperand(op ast.BinaryOp, id ast.ExprID, minPrec int) {
	if child, ok := p.b.Exprs.Binary(id); ok && mixesCoalesce(op, child.Op) {
		p.w.punct('(')
		p.printExpr(id, precLowest)
		p.w.punct(')')
		return
	}
	p.printExpr(id, minPrec)
}

func mixesCoalesce(parent, child ast.BinaryOp) bool {
	isAndOr := func(op ast.BinaryOp) bool {
		return op == ast.BinaryLogicalAnd || op == ast.BinaryLogicalOr
	}
	return parent == ast.BinaryCoalesce && isAndOr(child) || isAndOr(parent) && child == ast.BinaryCoalesce
}

func (p *printer) isInBinary(id ast.ExprID) bool {
	bin, ok := p.b.Exprs.Binary(id)
	return ok && bin.Op == ast.BinaryIn
}

// printMemberObject keeps "1.x" from lexing as a number followed by x.
func (p *printer) printMemberObject(id ast.ExprID) {
	if num, ok := p.b.Exprs.Number(id); ok && isPlainInteger(numberText(num)) {
		p.w.punct('(')
		p.printExpr(id, precLowest)
		p.w.punct(')')
		return
	}
	p.printExpr(id, precCall)
}

func (p *printer) printArgs(args []ast.ExprID) {
	p.w.punct('(')
	for i, arg := range args {
		if i > 0 {
			p.w.punct(',')
		}
		p.printExpr(arg, precAssign)
	}
	p.w.punct(')')
}

func (p *printer) printArray(id ast.ExprID) {
	arr, _ := p.b.Exprs.Array(id)
	p.w.punct('[')
	for i, el := range arr.Elems {
		if i > 0 {
			p.w.punct(',')
		}
		p.printExpr(el, precAssign)
	}
	if n := len(arr.Elems); n > 0 && !arr.Elems[n-1].IsValid() {
		p.w.punct(',')
	}
	p.w.punct(']')
}

func (p *printer) printObject(id ast.ExprID) {
	obj, _ := p.b.Exprs.Object(id)
	p.w.punct('{')
	for i, prop := range obj.Props {
		if i > 0 {
			p.w.punct(',')
		}
		p.printProperty(prop)
	}
	p.w.punct('}')
}

func (p *printer) printProperty(prop ast.Property) {
	switch prop.Kind {
	case ast.PropSpread:
		p.w.token("...")
		p.printExpr(prop.Value, precAssign)
		return
	case ast.PropShorthand:
		// a rewritten value no longer matches the key
		if ident, ok := p.b.Exprs.Ident(prop.Value); ok && p.name(ident.Name) == p.name(prop.Key) {
			p.w.token(p.name(prop.Key))
			return
		}
	}

	if prop.Computed.IsValid() {
		p.w.punct('[')
		p.printExpr(prop.Computed, precAssign)
		p.w.punct(']')
	} else {
		p.w.token(p.name(prop.Key))
	}
	if prop.Kind == ast.PropMethod {
		fn, _ := p.b.Exprs.Function(prop.Value)
		p.printParams(fn)
		p.printBlock(fn.Body)
		return
	}
	p.w.punct(':')
	p.printExpr(prop.Value, precAssign)
}

// hasCallInChain reports whether a call appears in the callee chain of a new
// expression, where it would otherwise take the argument list.
func (p *printer) hasCallInChain(id ast.ExprID) bool {
	for {
		expr := p.b.Exprs.Get(id)
		if expr == nil {
			return false
		}
		switch expr.Kind {
		case ast.ExprCall:
			return true
		case ast.ExprMember:
			m, _ := p.b.Exprs.Member(id)
			id = m.Object
		case ast.ExprIndex:
			ix, _ := p.b.Exprs.Index(id)
			id = ix.Object
		default:
			return false
		}
	}
}

// leftmost returns the expression whose first token starts id's text.
func (p *printer) leftmost(id ast.ExprID) ast.ExprID {
	for {
		expr := p.b.Exprs.Get(id)
		if expr == nil {
			return id
		}
		switch expr.Kind {
		case ast.ExprBinary:
			bin, _ := p.b.Exprs.Binary(id)
			id = bin.Left
		case ast.ExprAssign:
			a, _ := p.b.Exprs.Assign(id)
			id = a.Target
		case ast.ExprConditional:
			c, _ := p.b.Exprs.Conditional(id)
			id = c.Test
		case ast.ExprCall:
			call, _ := p.b.Exprs.Call(id)
			id = call.Callee
		case ast.ExprMember:
			m, _ := p.b.Exprs.Member(id)
			id = m.Object
		case ast.ExprIndex:
			ix, _ := p.b.Exprs.Index(id)
			id = ix.Object
		case ast.ExprSequence:
			seq, _ := p.b.Exprs.Sequence(id)
			if len(seq.Exprs) == 0 {
				return id
			}
			id = seq.Exprs[0]
		case ast.ExprUpdate:
			u, _ := p.b.Exprs.Update(id)
			if u.Prefix {
				return id
			}
			id = u.Arg
		default:
			return id
		}
	}
}

// startsAmbiguously reports whether an expression statement would begin
// with a token that reads as a declaration or block.
func (p *printer) startsAmbiguously(id ast.ExprID) bool {
	first := p.leftmost(id)
	if p.startsWithObject(first) {
		return true
	}
	fn, ok := p.b.Exprs.Function(first)
	return ok && !fn.Arrow
}

func (p *printer) startsWithObject(id ast.ExprID) bool {
	_, ok := p.b.Exprs.Object(p.leftmost(id))
	return ok
}

func numberText(num *ast.ExprNumberData) string {
	if num.Raw != "" {
		return num.Raw
	}
	return strconv.FormatFloat(num.Value, 'g', -1, 64)
}

func isPlainInteger(text string) bool {
	if len(text) > 1 && text[0] == '0' && text[1] != '_' && (text[1] < '0' || text[1] > '9') {
		return false // 0x, 0o, 0b
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}

// quote renders s as a double-quoted JavaScript string.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\u2028':
			sb.WriteString(`\u2028`)
		case '\u2029':
			sb.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				sb.WriteString(`\x`)
				sb.WriteString(strconv.FormatInt(int64(r)+0x100, 16)[1:])
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
