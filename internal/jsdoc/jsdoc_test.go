package jsdoc

import (
	"testing"

	"github.com/nalgeon/be"

	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/lexer"
	"shrink/internal/parser"
	"shrink/internal/source"
)

func TestParseTagsSingleLine(t *testing.T) {
	tags := ParseTags("/** @deprecated */")
	be.Equal(t, tags, []Tag{{Kind: TagDeprecated}})
}

func TestParseTagsMultiLine(t *testing.T) {
	src := "/**\n * @param a\n * @deprecated since version 1.0\n */"
	tags := ParseTags(src)
	be.Equal(t, tags, []Tag{
		{Kind: TagParam, Name: "a"},
		{Kind: TagDeprecated, Description: "since version 1.0"},
	})
}

func TestParseTagsParamTypes(t *testing.T) {
	src := "/**\n * @param {string} a\n * @param {string b\n * @param {string} c - description\n */"
	tags := ParseTags(src)
	be.Equal(t, tags, []Tag{
		{Kind: TagParam, Name: "a", Type: "string", HasType: true},
		{Kind: TagParam, Name: "b", Type: "string", HasType: true},
		{Kind: TagParam, Name: "c", Type: "string", HasType: true, Description: "description"},
	})
}

func TestParseTagsSkipsUnknown(t *testing.T) {
	src := "/** @returns {number} total\n * @param n count */"
	tags := ParseTags(src)
	be.Equal(t, len(tags), 1)
	be.Equal(t, tags[0].Name, "n")
	be.Equal(t, tags[0].Description, "count")
}

func TestTagTypeKind(t *testing.T) {
	tests := []struct {
		tag    Tag
		kind   TypeKind
		hasAny bool
	}{
		{Tag{Kind: TagParam, Name: "a"}, TypeNamed, false},
		{Tag{Kind: TagParam, Type: "string", HasType: true}, TypeNamed, true},
		{Tag{Kind: TagParam, Type: "...string", HasType: true}, TypeRepeated, true},
		{Tag{Kind: TagParam, Type: "*", HasType: true}, TypeAny, true},
	}
	for _, tt := range tests {
		kind, ok := tt.tag.TypeKind()
		be.Equal(t, kind, tt.kind)
		be.Equal(t, ok, tt.hasAny)
	}
}

func parseFile(t *testing.T, src string) (*ast.Builder, *ast.Program, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("doc.js", []byte(src)))
	bag := diag.NewBag(20)
	rep := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lx, b, parser.Options{Reporter: rep, MaxErrors: 20})
	be.True(t, !bag.HasErrors())
	return b, res.Program, file
}

func TestCollect(t *testing.T) {
	src := `/** @deprecated use g */
function f(a) {
  /** @param {number} n */
  var n = a, m;
}

/** detached */
x();
function g() {}

/* plain block */
let y;

/**
 * @param {...string} names
 */
const z = 1;
`
	b, prog, file := parseFile(t, src)
	entries := Collect(b, prog, file)
	be.Equal(t, len(entries), 3)

	be.Equal(t, entries[0].Kind, DeclFunction)
	be.Equal(t, entries[0].Names, []string{"f"})
	be.True(t, entries[0].Deprecated())
	be.Equal(t, entries[0].Tags[0].Description, "use g")

	be.Equal(t, entries[1].Kind, DeclVar)
	be.Equal(t, entries[1].Names, []string{"n", "m"})
	be.Equal(t, entries[1].Tags[0].Type, "number")

	be.Equal(t, entries[2].Kind, DeclConst)
	be.Equal(t, entries[2].Names, []string{"z"})
	kind, ok := entries[2].Tags[0].TypeKind()
	be.True(t, ok)
	be.Equal(t, kind, TypeRepeated)
	be.True(t, !entries[2].Deprecated())
}

func TestCollectWithoutDocs(t *testing.T) {
	b, prog, file := parseFile(t, "// line\nfunction f() {}")
	be.Equal(t, len(Collect(b, prog, file)), 0)
}
