package ast

import (
	"shrink/internal/source"
)

// Declarator is one "name = init" pair inside a variable declaration.
type Declarator struct {
	Span source.Span
	Name source.StringID
	Init ExprID // NoExprID when absent
}

type Declarators struct {
	Arena *Arena[Declarator]
}

func NewDeclarators(capHint uint) *Declarators {
	return &Declarators{Arena: NewArena[Declarator](capHint)}
}

func (d *Declarators) New(span source.Span, name source.StringID, init ExprID) DeclaratorID {
	return DeclaratorID(d.Arena.Allocate(Declarator{Span: span, Name: name, Init: init}))
}

func (d *Declarators) Get(id DeclaratorID) *Declarator {
	return d.Arena.Get(uint32(id))
}
