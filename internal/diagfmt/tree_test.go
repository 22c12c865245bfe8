package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/lexer"
	"shrink/internal/parser"
	"shrink/internal/source"
	"shrink/internal/token"
)

func parseJS(t *testing.T, src string) (*source.FileSet, *ast.Builder, *ast.Program) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("case.js", []byte(src)))
	bag := diag.NewBag(20)
	rep := &diag.BagReporter{Bag: bag}
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lexer.New(file, lexer.Options{Reporter: rep}), b, parser.Options{Reporter: rep})
	require.False(t, bag.HasErrors(), "parse %q: %v", src, bag.Items())
	return fs, b, res.Program
}

func shape(n *TreeNode) string {
	var sb strings.Builder
	if n.Role != "" {
		sb.WriteString(n.Role + ":")
	}
	sb.WriteString(n.Type)
	if n.Text != "" {
		sb.WriteString("[" + n.Text + "]")
	}
	if len(n.Children) > 0 {
		sb.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(shape(c))
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

func TestBuildTreeShapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"var a = 1, b;", "Program(VarDecl[var](Declarator[a](init:Number[1]) Declarator[b]))"},
		{"if (a) b(); else c;", "Program(If(test:Ident[a] then:Expr(Call(callee:Ident[b])) else:Expr(Ident[c])))"},
		{"while (x) x--;", "Program(While(test:Ident[x] body:Expr(Update[x--](Ident[x]))))"},
		{"for (var k in o) {}", "Program(ForIn[in](left:VarDecl[var](Declarator[k]) right:Ident[o] body:Block))"},
		{"function f(a, ...r) { return typeof a; }", "Program(Function[f(a, ...r)](Return(Unary[typeof](Ident[a]))))"},
		{"x = {a, b: [1, , 2], ...c};", "Program(Expr(Assign[=](target:Ident[x] value:Object(Shorthand[a](value:Ident[a]) Prop[b](value:Array(Number[1] Hole Number[2])) SpreadProp(value:Ident[c])))))"},
		{"o.p[0](...q);", "Program(Expr(Call(callee:Index(object:Member[.p](object:Ident[o]) index:Number[0]) arg:Spread(Ident[q]))))"},
		{"try { a; } catch (e) {} finally { b; }", "Program(Try(try:Expr(Ident[a]) Catch[e] Finally(Expr(Ident[b]))))"},
		{"switch (v) { case 1: break; default: }", "Program(Switch(disc:Ident[v] Case(test:Number[1] Break) Default))"},
		{"f(x => x ? 'y' : null);", "Program(Expr(Call(callee:Ident[f] arg:Function[=> (x)](body:Conditional(test:Ident[x] then:String[\"y\"] else:Null)))))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, b, prog := parseJS(t, tt.src)
			assert.Equal(t, tt.want, shape(BuildTree(b, prog)))
		})
	}
}

func TestFormatProgramTree(t *testing.T) {
	fs, b, prog := parseJS(t, "var a = 1;\nb;")

	var buf bytes.Buffer
	require.NoError(t, FormatProgramTree(&buf, b, prog, fs))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 6)
	assert.Equal(t, "Program case.js (1:1-2:3)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "├─ VarDecl var ("), lines[1])
	assert.Equal(t, "│  └─ Declarator a (1:5-1:10)", lines[2])
	assert.Equal(t, "│     └─ init: Number 1 (1:9-1:10)", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "└─ Expr ("), lines[4])
	assert.Equal(t, "   └─ Ident b (2:1-2:2)", lines[5])
}

func TestFormatProgramTreeMarksSyntheticSpans(t *testing.T) {
	fs, b, prog := parseJS(t, "x;")
	arg, ok := b.Stmts.Arg(prog.Body[0])
	require.True(t, ok)
	arg.Arg = b.Exprs.NewUnary(source.NoSpan, ast.UnaryVoid, b.Exprs.NewNumber(source.NoSpan, 0, "0", ast.BaseDecimal))

	var buf bytes.Buffer
	require.NoError(t, FormatProgramTree(&buf, b, prog, fs))
	assert.Contains(t, buf.String(), "└─ Unary void (synthetic)")
}

func TestFormatProgramJSON(t *testing.T) {
	_, b, prog := parseJS(t, "a + 1;")

	var buf bytes.Buffer
	require.NoError(t, FormatProgramJSON(&buf, b, prog))

	var root TreeNode
	require.NoError(t, json.Unmarshal(buf.Bytes(), &root))
	require.Len(t, root.Children, 1)
	bin := root.Children[0].Children[0]
	assert.Equal(t, "Binary", bin.Type)
	assert.Equal(t, "+", bin.Text)
	require.Len(t, bin.Children, 2)
	assert.Equal(t, "left", bin.Children[0].Role)
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.js", []byte("let x // c\n= 1;")))
	lx := lexer.New(file, lexer.Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var pretty bytes.Buffer
	require.NoError(t, FormatTokensPretty(&pretty, toks, fs))
	lines := strings.Split(strings.TrimRight(pretty.String(), "\n"), "\n")
	require.Len(t, lines, len(toks))
	assert.Contains(t, lines[1], `"x" at 1:5-1:6`)
	assert.Contains(t, lines[2], "(leading: ")

	var js bytes.Buffer
	require.NoError(t, FormatTokensJSON(&js, toks))
	var out []TokenOutput
	require.NoError(t, json.Unmarshal(js.Bytes(), &out))
	require.Len(t, out, len(toks))
	assert.Equal(t, "x", out[1].Text)
	assert.Nil(t, out[0].Leading)
	assert.NotEmpty(t, out[2].Leading)
}
