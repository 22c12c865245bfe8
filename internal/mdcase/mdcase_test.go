package mdcase

import (
	"testing"

	"github.com/nalgeon/be"
)

const sample = "# Rules\n\n" +
	"Some prose.\n\n" +
	"### Test: first\n\n" +
	"```js\nvar a = 1;\nvar b = 2;\n```\n\n" +
	"```min\nvar a=1,b=2;\n```\n\n" +
	"### Test: second\n\n" +
	"```options\njoin_vars=false\n# comment\nloops = true\n```\n\n" +
	"```js\nwhile (x) y();\n```\n\n" +
	"```min\nfor(;x;)y();\n```\n"

func TestExtract(t *testing.T) {
	cases, err := Extract([]byte(sample))
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 2)

	be.Equal(t, cases[0].Name, "first")
	be.Equal(t, cases[0].Input, "var a = 1;\nvar b = 2;\n")
	be.Equal(t, cases[0].Expect, "var a=1,b=2;")
	be.Equal(t, cases[0].Flag("join_vars", true), true)

	be.Equal(t, cases[1].Name, "second")
	be.Equal(t, cases[1].Flag("join_vars", true), false)
	be.Equal(t, cases[1].Flag("loops", false), true)
	be.True(t, cases[1].Line > cases[0].Line)
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"fence outside case", "```js\nx;\n```\n"},
		{"missing min", "### Test: a\n\n```js\nx;\n```\n"},
		{"missing js", "### Test: a\n\n```min\nx;\n```\n"},
		{"duplicate js", "### Test: a\n\n```js\nx;\n```\n\n```js\ny;\n```\n\n```min\nx;\n```\n"},
		{"unknown fence", "### Test: a\n\n```ts\nx;\n```\n"},
		{"bad option", "### Test: a\n\n```options\nloops\n```\n\n```js\nx;\n```\n\n```min\nx;\n```\n"},
		{"bad option value", "### Test: a\n\n```options\nloops=maybe\n```\n\n```js\nx;\n```\n\n```min\nx;\n```\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract([]byte(tt.doc))
			be.True(t, err != nil)
		})
	}
}

func TestExtractIgnoresPlainFences(t *testing.T) {
	doc := "```\nnot a case\n```\n\n### Test: a\n\n```js\nx;\n```\n\n```\nnotes\n```\n\n```min\nx;\n```\n"
	cases, err := Extract([]byte(doc))
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 1)
}
