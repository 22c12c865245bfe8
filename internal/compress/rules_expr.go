package compress

import (
	"shrink/internal/ast"
	"shrink/internal/source"
)

// void0 allocates a fresh "void 0".
func (c *Compressor) void0() ast.ExprID {
	zero := c.b.Exprs.NewNumber(source.NoSpan, 0, "0", ast.BaseDecimal)
	return c.b.Exprs.NewUnary(source.NoSpan, ast.UnaryVoid, zero)
}

// compressUndefined rewrites a reference to undefined into void 0.
func (c *Compressor) compressUndefined(id ast.ExprID) bool {
	if !c.b.IsUndefinedIdent(id) {
		return false
	}
	c.b.Exprs.Replace(id, c.void0())
	c.stats.UndefinedRewritten++
	return true
}

// compressBoolean rewrites true to !0 and false to !1.
func (c *Compressor) compressBoolean(id ast.ExprID) bool {
	if !c.opts.Booleans {
		return false
	}
	lit, ok := c.b.Exprs.Bool(id)
	if !ok {
		return false
	}
	value, raw := 1.0, "1"
	if lit.Value {
		value, raw = 0, "0"
	}
	num := c.b.Exprs.NewNumber(source.NoSpan, value, raw, ast.BaseDecimal)
	c.b.Exprs.Replace(id, c.b.Exprs.NewUnary(source.NoSpan, ast.UnaryLogicalNot, num))
	c.stats.BooleansRewritten++
	return true
}

// compressTypeofUndefined rewrites typeof x == "undefined" (or ===) into
// x === void 0. Only the typeof-on-the-left order matches.
func (c *Compressor) compressTypeofUndefined(id ast.ExprID) bool {
	if !c.opts.Typeofs {
		return false
	}
	bin, ok := c.b.Exprs.Binary(id)
	if !ok || !bin.Op.IsEquality() {
		return false
	}
	unary, ok := c.b.Exprs.Unary(bin.Left)
	if !ok || unary.Op != ast.UnaryTypeof {
		return false
	}
	if _, ok := c.b.Exprs.Ident(unary.Arg); !ok {
		return false
	}
	str, ok := c.b.Exprs.StringLit(bin.Right)
	if !ok || str.Value != "undefined" {
		return false
	}

	ident := unary.Arg
	unary.Arg = ast.NoExprID
	rewritten := c.b.Exprs.NewBinary(source.NoSpan, ast.BinaryStrictEq, ident, c.void0())
	c.b.Exprs.Replace(id, rewritten)
	c.stats.TypeofsRewritten++
	return true
}
