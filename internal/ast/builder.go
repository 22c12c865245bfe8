package ast

import (
	"shrink/internal/source"
)

type Hints struct{ Stmts, Exprs, Decls uint }

// Builder owns every arena of one tree. Trees are never shared between builders.
type Builder struct {
	StringsInterner *source.Interner
	Stmts           *Stmts
	Exprs           *Exprs
	Decls           *Declarators

	undefined source.StringID
}

func NewBuilder(hints Hints) *Builder {
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 9
	}
	if hints.Decls == 0 {
		hints.Decls = 1 << 6
	}
	strs := source.NewInterner()
	return &Builder{
		StringsInterner: strs,
		Stmts:           NewStmts(hints.Stmts),
		Exprs:           NewExprs(hints.Exprs),
		Decls:           NewDeclarators(hints.Decls),
		undefined:       strs.Intern("undefined"),
	}
}

// Name resolves an interned name.
func (b *Builder) Name(id source.StringID) string {
	return b.StringsInterner.MustLookup(id)
}

// Intern adds s to the builder's string table.
func (b *Builder) Intern(s string) source.StringID {
	return b.StringsInterner.Intern(s)
}

// IsUndefinedIdent reports whether id is a plain reference to "undefined".
func (b *Builder) IsUndefinedIdent(id ExprID) bool {
	ident, ok := b.Exprs.Ident(id)
	return ok && ident.Name == b.undefined
}
