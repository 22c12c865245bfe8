package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shrink/internal/ast"
	"shrink/internal/source"
)

// TreeNode is one line of a program dump. Role names the slot the node
// occupies in its parent (test, body, init...), Type the node kind.
type TreeNode struct {
	Role     string      `json:"role,omitempty"`
	Type     string      `json:"type"`
	Text     string      `json:"text,omitempty"`
	Span     source.Span `json:"span"`
	Children []*TreeNode `json:"children,omitempty"`
}

func (n *TreeNode) add(role string, child *TreeNode) {
	if child == nil {
		return
	}
	child.Role = role
	n.Children = append(n.Children, child)
}

type treeBuilder struct {
	b *ast.Builder
}

// BuildTree converts prog into a TreeNode hierarchy.
func BuildTree(b *ast.Builder, prog *ast.Program) *TreeNode {
	tb := treeBuilder{b: b}
	root := &TreeNode{Type: "Program", Span: prog.Span}
	for _, id := range prog.Body {
		root.add("", tb.stmt(id))
	}
	return root
}

func (tb treeBuilder) name(id source.StringID) string {
	if id == source.NoStringID {
		return ""
	}
	return tb.b.Name(id)
}

func (tb treeBuilder) stmts(parent *TreeNode, role string, ids []ast.StmtID) {
	for _, id := range ids {
		parent.add(role, tb.stmt(id))
	}
}

func (tb treeBuilder) stmt(id ast.StmtID) *TreeNode {
	if !id.IsValid() {
		return nil
	}
	st := tb.b.Stmts.Get(id)
	if st == nil {
		return &TreeNode{Type: "<nil>"}
	}
	n := &TreeNode{Type: st.Kind.String(), Span: st.Span}
	s := tb.b.Stmts

	switch st.Kind {
	case ast.StmtVarDecl:
		if data, ok := s.VarDecl(id); ok {
			n.Text = data.Kind.String()
			for _, did := range data.Decls {
				d := tb.b.Decls.Get(did)
				dn := &TreeNode{Type: "Declarator", Text: tb.name(d.Name), Span: d.Span}
				dn.add("init", tb.expr(d.Init))
				n.add("", dn)
			}
		}
	case ast.StmtWhile:
		if data, ok := s.While(id); ok {
			n.add("test", tb.expr(data.Test))
			n.add("body", tb.stmt(data.Body))
		}
	case ast.StmtDoWhile:
		if data, ok := s.DoWhile(id); ok {
			n.add("body", tb.stmt(data.Body))
			n.add("test", tb.expr(data.Test))
		}
	case ast.StmtFor:
		if data, ok := s.For(id); ok {
			n.add("init", tb.stmt(data.InitStmt))
			n.add("init", tb.expr(data.InitExpr))
			n.add("test", tb.expr(data.Test))
			n.add("update", tb.expr(data.Update))
			n.add("body", tb.stmt(data.Body))
		}
	case ast.StmtForIn:
		if data, ok := s.ForIn(id); ok {
			n.Text = "in"
			if data.Of {
				n.Text = "of"
			}
			n.add("left", tb.stmt(data.LeftStmt))
			n.add("left", tb.expr(data.LeftExpr))
			n.add("right", tb.expr(data.Right))
			n.add("body", tb.stmt(data.Body))
		}
	case ast.StmtExpr, ast.StmtReturn, ast.StmtThrow:
		if data, ok := s.Arg(id); ok {
			n.add("", tb.expr(data.Arg))
		}
	case ast.StmtBlock:
		if data, ok := s.Block(id); ok {
			tb.stmts(n, "", data.Stmts)
		}
	case ast.StmtIf:
		if data, ok := s.If(id); ok {
			n.add("test", tb.expr(data.Test))
			n.add("then", tb.stmt(data.Cons))
			n.add("else", tb.stmt(data.Alt))
		}
	case ast.StmtBreak, ast.StmtContinue:
		if data, ok := s.Jump(id); ok {
			n.Text = tb.name(data.Label)
		}
	case ast.StmtLabeled:
		if data, ok := s.Labeled(id); ok {
			n.Text = tb.name(data.Label)
			n.add("body", tb.stmt(data.Body))
		}
	case ast.StmtFunction:
		if fn, ok := s.Function(id); ok {
			tb.function(n, fn)
		}
	case ast.StmtTry:
		if data, ok := s.Try(id); ok {
			tb.stmts(n, "try", data.Block)
			if data.HasCatch {
				c := &TreeNode{Type: "Catch", Text: tb.name(data.Param)}
				tb.stmts(c, "", data.Handler)
				n.add("", c)
			}
			if data.HasFinally {
				f := &TreeNode{Type: "Finally"}
				tb.stmts(f, "", data.Finalizer)
				n.add("", f)
			}
		}
	case ast.StmtSwitch:
		if data, ok := s.Switch(id); ok {
			n.add("disc", tb.expr(data.Disc))
			for _, c := range data.Cases {
				cn := &TreeNode{Type: "Case", Span: c.Span}
				if !c.Test.IsValid() {
					cn.Type = "Default"
				}
				cn.add("test", tb.expr(c.Test))
				tb.stmts(cn, "", c.Body)
				n.add("", cn)
			}
		}
	}
	return n
}

func (tb treeBuilder) function(n *TreeNode, fn *ast.FuncData) {
	params := make([]string, 0, len(fn.Params))
	for i, p := range fn.Params {
		name := tb.name(p)
		if fn.Rest && i == len(fn.Params)-1 {
			name = "..." + name
		}
		params = append(params, name)
	}
	n.Text = tb.name(fn.Name) + "(" + strings.Join(params, ", ") + ")"
	if fn.Arrow {
		n.Text = "=> " + n.Text
	}
	if fn.ExprBody.IsValid() {
		n.add("body", tb.expr(fn.ExprBody))
		return
	}
	tb.stmts(n, "", fn.Body)
}

func (tb treeBuilder) expr(id ast.ExprID) *TreeNode {
	if !id.IsValid() {
		return nil
	}
	ex := tb.b.Exprs.Get(id)
	if ex == nil {
		return &TreeNode{Type: "<nil>"}
	}
	n := &TreeNode{Type: ex.Kind.String(), Span: ex.Span}
	e := tb.b.Exprs

	switch ex.Kind {
	case ast.ExprBool:
		if data, ok := e.Bool(id); ok {
			n.Text = strconv.FormatBool(data.Value)
		}
	case ast.ExprNumber:
		if data, ok := e.Number(id); ok {
			n.Text = data.Raw
			if n.Text == "" {
				n.Text = strconv.FormatFloat(data.Value, 'g', -1, 64)
			}
		}
	case ast.ExprString:
		if data, ok := e.StringLit(id); ok {
			n.Text = strconv.Quote(data.Value)
		}
	case ast.ExprIdent:
		if data, ok := e.Ident(id); ok {
			n.Text = tb.name(data.Name)
		}
	case ast.ExprUnary:
		if data, ok := e.Unary(id); ok {
			n.Text = data.Op.String()
			n.add("", tb.expr(data.Arg))
		}
	case ast.ExprUpdate:
		if data, ok := e.Update(id); ok {
			n.Text = data.Op.String() + "x"
			if !data.Prefix {
				n.Text = "x" + data.Op.String()
			}
			n.add("", tb.expr(data.Arg))
		}
	case ast.ExprBinary:
		if data, ok := e.Binary(id); ok {
			n.Text = data.Op.String()
			n.add("left", tb.expr(data.Left))
			n.add("right", tb.expr(data.Right))
		}
	case ast.ExprAssign:
		if data, ok := e.Assign(id); ok {
			n.Text = data.Op.String()
			n.add("target", tb.expr(data.Target))
			n.add("value", tb.expr(data.Value))
		}
	case ast.ExprConditional:
		if data, ok := e.Conditional(id); ok {
			n.add("test", tb.expr(data.Test))
			n.add("then", tb.expr(data.Cons))
			n.add("else", tb.expr(data.Alt))
		}
	case ast.ExprCall, ast.ExprNew:
		if data, ok := e.Call(id); ok {
			if data.Optional {
				n.Text = "?."
			}
			n.add("callee", tb.expr(data.Callee))
			for _, arg := range data.Args {
				n.add("arg", tb.expr(arg))
			}
		}
	case ast.ExprMember:
		if data, ok := e.Member(id); ok {
			n.Text = "." + tb.name(data.Property)
			if data.Optional {
				n.Text = "?" + n.Text
			}
			n.add("object", tb.expr(data.Object))
		}
	case ast.ExprIndex:
		if data, ok := e.Index(id); ok {
			if data.Optional {
				n.Text = "?."
			}
			n.add("object", tb.expr(data.Object))
			n.add("index", tb.expr(data.Index))
		}
	case ast.ExprParen:
		if data, ok := e.Paren(id); ok {
			n.add("", tb.expr(data.Inner))
		}
	case ast.ExprArray:
		if data, ok := e.Array(id); ok {
			for _, el := range data.Elems {
				if !el.IsValid() {
					n.add("", &TreeNode{Type: "Hole"})
					continue
				}
				n.add("", tb.expr(el))
			}
		}
	case ast.ExprObject:
		if data, ok := e.Object(id); ok {
			for _, p := range data.Props {
				pn := &TreeNode{Type: propKindName(p.Kind), Text: tb.name(p.Key), Span: p.Span}
				pn.add("key", tb.expr(p.Computed))
				pn.add("value", tb.expr(p.Value))
				n.add("", pn)
			}
		}
	case ast.ExprFunction:
		if fn, ok := e.Function(id); ok {
			tb.function(n, fn)
		}
	case ast.ExprSequence:
		if data, ok := e.Sequence(id); ok {
			for _, x := range data.Exprs {
				n.add("", tb.expr(x))
			}
		}
	case ast.ExprSpread:
		if data, ok := e.Spread(id); ok {
			n.add("", tb.expr(data.Arg))
		}
	}
	return n
}

func propKindName(k ast.PropKind) string {
	switch k {
	case ast.PropShorthand:
		return "Shorthand"
	case ast.PropSpread:
		return "SpreadProp"
	case ast.PropMethod:
		return "Method"
	}
	return "Prop"
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if span.Synthetic() {
		return "synthetic"
	}
	if known(fs, span) {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}

func (n *TreeNode) label(fs *source.FileSet) string {
	var sb strings.Builder
	if n.Role != "" {
		sb.WriteString(n.Role)
		sb.WriteString(": ")
	}
	sb.WriteString(n.Type)
	if n.Text != "" {
		sb.WriteByte(' ')
		sb.WriteString(n.Text)
	}
	sb.WriteString(" (")
	sb.WriteString(formatSpan(n.Span, fs))
	sb.WriteByte(')')
	return sb.String()
}

func writeTree(w io.Writer, n *TreeNode, fs *source.FileSet, prefix string) error {
	for i, child := range n.Children {
		branch, next := "├─ ", "│  "
		if i == len(n.Children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label(fs)); err != nil {
			return err
		}
		if err := writeTree(w, child, fs, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

// FormatProgramTree prints prog as an indented tree, one node per line.
// The root line names the file when fs knows it.
func FormatProgramTree(w io.Writer, b *ast.Builder, prog *ast.Program, fs *source.FileSet) error {
	root := BuildTree(b, prog)
	if known(fs, prog.Span) {
		root.Text = fs.Get(prog.File).DisplayPath(fs.BaseDir())
	}
	if _, err := fmt.Fprintln(w, root.label(fs)); err != nil {
		return err
	}
	return writeTree(w, root, fs, "")
}

// FormatProgramJSON writes the tree built by BuildTree as indented JSON.
func FormatProgramJSON(w io.Writer, b *ast.Builder, prog *ast.Program) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTree(b, prog))
}
