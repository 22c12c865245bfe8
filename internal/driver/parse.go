package driver

import (
	"fortio.org/safecast"

	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/lexer"
	"shrink/internal/parser"
	"shrink/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Program *ast.Program
	Bag     *diag.Bag
}

// Parse loads and parses path without compressing it. A non-positive
// maxDiagnostics uses the driver default.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs, file, err := loadOne(path)
	if err != nil {
		return nil, err
	}
	limit := Request{MaxDiagnostics: maxDiagnostics}.maxDiagnostics()
	maxErrors, err := safecast.Conv[uint](limit)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(limit)
	rep := &diag.BagReporter{Bag: bag}
	builder := ast.NewBuilder(hintsFor(len(file.Content)))
	result := parser.ParseFile(fs, lexer.New(file, lexer.Options{Reporter: rep}), builder, parser.Options{
		Reporter:  rep,
		MaxErrors: maxErrors,
	})
	return &ParseResult{FileSet: fs, File: file, Builder: builder, Program: result.Program, Bag: bag}, nil
}
