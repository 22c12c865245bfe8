package driver

import (
	"path/filepath"

	"shrink/internal/diag"
	"shrink/internal/lexer"
	"shrink/internal/source"
	"shrink/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes path up to and including EOF. A non-positive
// maxDiagnostics uses the driver default.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs, file, err := loadOne(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(Request{MaxDiagnostics: maxDiagnostics}.maxDiagnostics())
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	// roughly one token per 5 bytes
	tokens := make([]token.Token, 0, len(file.Content)/5+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Bag: bag}, nil
}

// loadOne reads path into a FileSet rooted at its directory, so
// diagnostics name the file relative to it.
func loadOne(path string) (*source.FileSet, *source.File, error) {
	fs := source.NewFileSetWithBase(filepath.Dir(path))
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return fs, fs.Get(fileID), nil
}
