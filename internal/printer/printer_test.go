package printer

import (
	"testing"

	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/lexer"
	"shrink/internal/parser"
	"shrink/internal/source"
)

func parse(t *testing.T, input string) (*ast.Builder, *ast.Program) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.js", []byte(input)))
	bag := diag.NewBag(50)
	rep := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lx, b, parser.Options{Reporter: rep, MaxErrors: 50})
	if bag.HasErrors() {
		for _, d := range bag.Items() {
			t.Logf("%s: %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("parse %q failed", input)
	}
	return b, res.Program
}

func printSource(t *testing.T, input string) string {
	t.Helper()
	b, prog := parse(t, input)
	return string(Print(b, prog))
}

func TestPrintStatements(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"var a = 1, b;", "var a=1,b;"},
		{"let x = y\nconst z = 2", "let x=y;const z=2;"},
		{"if (a) b(); else { c() }", "if(a)b();else{c();}"},
		{"if (a) if (b) c(); else d();", "if(a)if(b)c();else d();"},
		{"while (x) x--;", "while(x)x--;"},
		{"do { x++ } while (x < 3)", "do{x++;}while(x<3);"},
		{"for (var i = 0; i < n; i++) {}", "for(var i=0;i<n;i++){}"},
		{"for (;;) break;", "for(;;)break;"},
		{"for (var k in o) f(k);", "for(var k in o)f(k);"},
		{"for (const v of list) f(v);", "for(const v of list)f(v);"},
		{"outer: for (;;) { continue outer; }", "outer:for(;;){continue outer;}"},
		{"function f(a, ...rest) { return a; }", "function f(a,...rest){return a;}"},
		{"try { a() } catch (e) { b() } finally { c() }", "try{a();}catch(e){b();}finally{c();}"},
		{"try { a() } catch { }", "try{a();}catch{}"},
		{"switch (x) { case 1: a(); break; default: b() }", "switch(x){case 1:a();break;default:b();}"},
		{"throw new Error('x');", "throw new Error('x');"},
		{"debugger;", "debugger;"},
		{";", ";"},
	}
	for _, tt := range tests {
		if got := printSource(t, tt.in); got != tt.want {
			t.Errorf("Print(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrintExpressions(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a + b * c;", "a+b*c;"},
		{"(a + b) * c;", "(a+b)*c;"},
		{"a - -b;", "a- -b;"},
		{"a + +b;", "a+ +b;"},
		{"a++ + b;", "a++ +b;"},
		{"typeof x === 'undefined';", "typeof x==='undefined';"},
		{"void 0;", "void 0;"},
		{"!0;", "!0;"},
		{"a ? b : c;", "a?b:c;"},
		{"x = y = z;", "x=y=z;"},
		{"a, b;", "a,b;"},
		{"f(a, b)(c);", "f(a,b)(c);"},
		{"new Foo;", "new Foo();"},
		{"new a.b.C(1);", "new a.b.C(1);"},
		{"a?.b?.(c)?.[d];", "a?.b?.(c)?.[d];"},
		{"[1, , 2, ,];", "[1,,2,,];"},
		{"x = {a: 1, b, [k]: v, ...rest, m() { return 1 }};", "x={a:1,b,[k]:v,...rest,m(){return 1;}};"},
		{"x = 'a' in o;", "x='a'in o;"},
		{"f = (a, b) => a + b;", "f=(a,b)=>a+b;"},
		{"f = a => ({a});", "f=a=>({a});"},
		{"f = () => { return 1 };", "f=()=>{return 1;};"},
		{"(function () {})();", "(function(){})();"},
		{"x = function named() {};", "x=function named(){};"},
		{"x = 0x1F + 1.5e3;", "x=0x1F+1.5e3;"},
		{"a ** b ** c;", "a**b**c;"},
		{"x instanceof Y;", "x instanceof Y;"},
		{"delete o[k];", "delete o[k];"},
	}
	for _, tt := range tests {
		if got := printSource(t, tt.in); got != tt.want {
			t.Errorf("Print(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrintSynthesizedNodes(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	zero := b.Exprs.NewNumber(source.NoSpan, 0, "0", ast.BaseDecimal)
	void0 := b.Exprs.NewUnary(source.NoSpan, ast.UnaryVoid, zero)
	x := b.Exprs.NewIdent(source.NoSpan, b.Intern("x"))
	eq := b.Exprs.NewBinary(source.NoSpan, ast.BinaryStrictEq, x, void0)
	not := b.Exprs.NewUnary(source.NoSpan, ast.UnaryLogicalNot, eq)
	str := b.Exprs.NewStringLit(source.NoSpan, "a\"b\n", "")
	seq := b.Exprs.NewSequence(source.NoSpan, []ast.ExprID{not, str})
	loop := b.Stmts.NewFor(source.NoSpan, ast.StmtForData{
		Test: seq,
		Body: b.Stmts.NewEmpty(source.NoSpan),
	})
	prog := &ast.Program{Body: []ast.StmtID{loop}}

	want := `for(;!(x===void 0),"a\"b\n";);`
	if got := string(Print(b, prog)); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintParenthesizesInsideForInit(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	a := b.Exprs.NewIdent(source.NoSpan, b.Intern("a"))
	o := b.Exprs.NewIdent(source.NoSpan, b.Intern("o"))
	in := b.Exprs.NewBinary(source.NoSpan, ast.BinaryIn, a, o)
	d := b.Decls.New(source.NoSpan, b.Intern("x"), in)
	decl := b.Stmts.NewVarDecl(source.NoSpan, ast.VarVar, []ast.DeclaratorID{d})
	loop := b.Stmts.NewFor(source.NoSpan, ast.StmtForData{
		InitStmt: decl,
		Body:     b.Stmts.NewEmpty(source.NoSpan),
	})
	prog := &ast.Program{Body: []ast.StmtID{loop}}

	want := "for(var x=(a in o);;);"
	if got := string(Print(b, prog)); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintShorthandWithRewrittenValue(t *testing.T) {
	b, prog := parse(t, "x = {undefined};")
	obj := onlyAssignValue(t, b, prog)
	data, _ := b.Exprs.Object(obj)
	zero := b.Exprs.NewNumber(source.NoSpan, 0, "0", ast.BaseDecimal)
	b.Exprs.Replace(data.Props[0].Value, b.Exprs.NewUnary(source.NoSpan, ast.UnaryVoid, zero))

	want := "x={undefined:void 0};"
	if got := string(Print(b, prog)); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintIsFixedPoint(t *testing.T) {
	inputs := []string{
		"var a = 1; var b = 2; while (a) { if (b) continue; else break }",
		"x = a ? b ? 1 : 2 : (c, d);",
		"f((a, b), c); new (g())();",
		"label: { let q = -(-x); q = q ** -1 }",
		"o = {'quoted': 1, 2: two, get: 3}; (1).toString();",
	}
	for _, in := range inputs {
		first := printSource(t, in)
		second := printSource(t, first)
		if first != second {
			t.Errorf("not a fixed point for %q:\n first: %s\nsecond: %s", in, first, second)
		}
	}
}

func onlyAssignValue(t *testing.T, b *ast.Builder, prog *ast.Program) ast.ExprID {
	t.Helper()
	if len(prog.Body) != 1 {
		t.Fatalf("expected one statement, got %d", len(prog.Body))
	}
	stmt, ok := b.Stmts.Arg(prog.Body[0])
	if !ok {
		t.Fatal("expected expression statement")
	}
	assign, ok := b.Exprs.Assign(stmt.Arg)
	if !ok {
		t.Fatal("expected assignment")
	}
	return assign.Value
}
