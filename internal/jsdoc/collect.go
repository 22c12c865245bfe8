package jsdoc

import (
	"sort"

	"shrink/internal/ast"
	"shrink/internal/source"
)

type DeclKind uint8

const (
	DeclFunction DeclKind = iota
	DeclVar
	DeclLet
	DeclConst
)

func (k DeclKind) String() string {
	switch k {
	case DeclFunction:
		return "function"
	case DeclVar:
		return "var"
	case DeclLet:
		return "let"
	case DeclConst:
		return "const"
	}
	return "?"
}

// Entry is a declaration with the doc comment directly preceding it.
type Entry struct {
	Kind    DeclKind
	Names   []string
	Span    source.Span
	Comment ast.Comment
	Tags    []Tag
}

// Deprecated reports whether the entry carries a @deprecated tag.
func (e *Entry) Deprecated() bool {
	for _, t := range e.Tags {
		if t.Kind == TagDeprecated {
			return true
		}
	}
	return false
}

// Collect pairs function and variable declarations at any depth with the
// doc comment that ends right before them, separated by whitespace only.
// Entries come in source order.
func Collect(b *ast.Builder, prog *ast.Program, file *source.File) []Entry {
	if b == nil || prog == nil || file == nil {
		return nil
	}
	var docs []ast.Comment
	for _, c := range prog.Comments {
		if c.Kind == ast.CommentDoc {
			docs = append(docs, c)
		}
	}
	if len(docs) == 0 {
		return nil
	}

	var entries []Entry
	ast.Walk(b, prog, func(n ast.Node) bool {
		if !n.Stmt.IsValid() {
			return true
		}
		st := b.Stmts.Get(n.Stmt)
		entry, ok := declEntry(b, n.Stmt, st)
		if !ok {
			return true
		}
		doc, found := leadingDoc(docs, st.Span.Start, file.Content)
		if !found {
			return true
		}
		entry.Comment = doc
		entry.Tags = ParseTags(doc.Text)
		entries = append(entries, entry)
		return true
	})
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Span.Start < entries[j].Span.Start })
	return entries
}

func declEntry(b *ast.Builder, id ast.StmtID, st *ast.Stmt) (Entry, bool) {
	switch st.Kind {
	case ast.StmtFunction:
		fn, _ := b.Stmts.Function(id)
		return Entry{Kind: DeclFunction, Names: []string{b.Name(fn.Name)}, Span: st.Span}, true
	case ast.StmtVarDecl:
		decl, _ := b.Stmts.VarDecl(id)
		e := Entry{Span: st.Span}
		switch decl.Kind {
		case ast.VarLet:
			e.Kind = DeclLet
		case ast.VarConst:
			e.Kind = DeclConst
		default:
			e.Kind = DeclVar
		}
		for _, d := range decl.Decls {
			e.Names = append(e.Names, b.Name(b.Decls.Get(d).Name))
		}
		return e, true
	}
	return Entry{}, false
}

// leadingDoc finds the last doc comment ending at or before start with only
// whitespace up to start.
func leadingDoc(docs []ast.Comment, start uint32, content []byte) (ast.Comment, bool) {
	i := sort.Search(len(docs), func(i int) bool { return docs[i].Span.End > start })
	if i == 0 {
		return ast.Comment{}, false
	}
	doc := docs[i-1]
	if int(start) > len(content) {
		return ast.Comment{}, false
	}
	for _, c := range content[doc.Span.End:start] {
		switch c {
		case ' ', '\t', '\n', '\r':
		default:
			return ast.Comment{}, false
		}
	}
	return doc, true
}
