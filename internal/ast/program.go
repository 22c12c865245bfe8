package ast

import (
	"shrink/internal/source"
)

type CommentKind uint8

const (
	CommentLine CommentKind = iota
	CommentBlock
	CommentDoc // /** ... */
)

// Comment is a source comment kept for documentation tooling. The printer drops them.
type Comment struct {
	Kind CommentKind
	Span source.Span
	Text string
}

// Program is the root of one parsed file.
type Program struct {
	File     source.FileID
	Span     source.Span
	Body     []StmtID
	Comments []Comment // in source order
}
