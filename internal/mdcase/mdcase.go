// Package mdcase extracts golden test cases from Markdown documents.
//
// A case starts at a heading "Test: <name>" and owns the fenced blocks that
// follow it until the next case heading:
//
//	```js       input program (required, once)
//	```min      expected printed output (required, once)
//	```options  key=value lines (optional)
package mdcase

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	FenceInput   = "js"
	FenceExpect  = "min"
	FenceOptions = "options"
)

// Case is one golden test.
type Case struct {
	Name   string
	Line   int // line of the heading
	Input  string
	Expect string
	Flags  map[string]bool
}

// Flag returns the named flag, or def when the case does not set it.
func (c *Case) Flag(name string, def bool) bool {
	if v, ok := c.Flags[name]; ok {
		return v
	}
	return def
}

// Extract parses markdown and returns its cases in document order.
func Extract(markdown []byte) ([]Case, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(markdown))

	var cases []Case
	var cur *Case
	finish := func() error {
		if cur == nil {
			return nil
		}
		if err := validate(cur); err != nil {
			return err
		}
		cases = append(cases, *cur)
		return nil
	}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Heading:
			heading := nodeText(n, markdown)
			if !strings.HasPrefix(heading, "Test: ") {
				return ast.WalkContinue, nil
			}
			if err := finish(); err != nil {
				return ast.WalkStop, err
			}
			cur = &Case{
				Name: strings.TrimSpace(strings.TrimPrefix(heading, "Test: ")),
				Line: lineOf(n, markdown),
			}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			lang := string(n.Language(markdown))
			line := lineOf(n, markdown)
			if cur == nil {
				if lang == FenceInput || lang == FenceExpect || lang == FenceOptions {
					return ast.WalkStop, fmt.Errorf("line %d: %s fence outside of a test case", line, lang)
				}
				return ast.WalkContinue, nil
			}
			content := fenceContent(n, markdown)
			switch lang {
			case FenceInput:
				if cur.Input != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple js fences in test %q", line, cur.Name)
				}
				cur.Input = content
			case FenceExpect:
				if cur.Expect != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple min fences in test %q", line, cur.Name)
				}
				cur.Expect = strings.TrimRight(content, "\n")
			case FenceOptions:
				flags, err := parseFlags(content)
				if err != nil {
					return ast.WalkStop, fmt.Errorf("line %d: test %q: %w", line, cur.Name, err)
				}
				cur.Flags = flags
			case "":
			default:
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language %q in test %q", line, lang, cur.Name)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}
	if err := finish(); err != nil {
		return nil, err
	}
	return cases, nil
}

func validate(c *Case) error {
	if c.Input == "" {
		return fmt.Errorf("test %q has no js fence", c.Name)
	}
	if c.Expect == "" {
		return fmt.Errorf("test %q has no min fence", c.Name)
	}
	return nil
}

func parseFlags(content string) (map[string]bool, error) {
	flags := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("option %q is not key=value", line)
		}
		v, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", line, err)
		}
		flags[strings.TrimSpace(key)] = v
	}
	return flags, nil
}

func nodeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func fenceContent(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

// lineOf returns the 1-based line where node's first content line starts.
func lineOf(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	start := node.Lines().At(0).Start
	return bytes.Count(source[:min(start, len(source))], []byte{'\n'}) + 1
}
