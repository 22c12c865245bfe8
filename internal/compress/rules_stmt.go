package compress

import (
	"fmt"

	"shrink/internal/ast"
	"shrink/internal/source"
)

// dropStatements removes empty statements and, when enabled, debugger statements.
func (c *Compressor) dropStatements(stmts []ast.StmtID) []ast.StmtID {
	out := make([]ast.StmtID, 0, len(stmts))
	for _, id := range stmts {
		switch c.b.Stmts.Get(id).Kind {
		case ast.StmtEmpty:
			c.stats.DroppedEmpty++
			continue
		case ast.StmtDebugger:
			if c.opts.DropDebugger {
				c.stats.DroppedDebugger++
				continue
			}
		}
		out = append(out, id)
	}
	return out
}

// declRun is a half-open index range of joinable declarations.
type declRun struct {
	start, end int
}

// joinVars merges every maximal run of two or more consecutive declarations
// of the same kind into its first member.
func (c *Compressor) joinVars(stmts []ast.StmtID) []ast.StmtID {
	runs := c.findDeclRuns(stmts)
	if len(runs) == 0 {
		return stmts
	}

	joined := 0
	for _, r := range runs {
		joined += r.end - r.start - 1
	}
	out := make([]ast.StmtID, 0, len(stmts)-joined)
	next := 0
	for i := 0; i < len(stmts); {
		if next < len(runs) && runs[next].start == i {
			r := runs[next]
			out = append(out, c.mergeDecls(stmts[r.start:r.end]))
			i = r.end
			next++
			continue
		}
		out = append(out, stmts[i])
		i++
	}
	c.stats.JoinedDecls += joined
	return out
}

func (c *Compressor) findDeclRuns(stmts []ast.StmtID) []declRun {
	var runs []declRun
	for i := 0; i < len(stmts); {
		first, ok := c.b.Stmts.VarDecl(stmts[i])
		if !ok {
			i++
			continue
		}
		j := i + 1
		for j < len(stmts) {
			cur, ok := c.b.Stmts.VarDecl(stmts[j])
			if !ok || cur.Kind != first.Kind {
				break
			}
			j++
		}
		if j-i >= 2 {
			runs = append(runs, declRun{start: i, end: j})
		}
		i = j
	}
	return runs
}

// mergeDecls moves the declarators of run[1:] onto run[0] and returns run[0].
// The merged span starts at the first member and covers the last one.
func (c *Compressor) mergeDecls(run []ast.StmtID) ast.StmtID {
	head := run[0]
	decl, ok := c.b.Stmts.VarDecl(head)
	if !ok {
		panic(fmt.Errorf("join vars: statement %d is not a declaration", head))
	}
	var span source.Span
	for _, id := range run {
		member, ok := c.b.Stmts.VarDecl(id)
		if !ok {
			panic(fmt.Errorf("join vars: statement %d is not a declaration", id))
		}
		if id != head {
			decl.Decls = append(decl.Decls, member.Decls...)
			member.Decls = nil
		}
		span = c.b.Stmts.Get(id).Span
	}
	st := c.b.Stmts.Get(head)
	st.Span = st.Span.Cover(span)
	return head
}

// compressWhile turns while (test) body into for (; test; ) body in the same slot.
func (c *Compressor) compressWhile(id ast.StmtID) {
	if !c.opts.Loops {
		return
	}
	w, ok := c.b.Stmts.While(id)
	if !ok {
		return
	}
	loop := c.b.Stmts.NewFor(source.NoSpan, ast.StmtForData{Test: w.Test, Body: w.Body})
	w.Test, w.Body = ast.NoExprID, ast.NoStmtID
	c.b.Stmts.Replace(id, loop)
	c.stats.LoopsRewritten++
}
