package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside one file.
// The zero Span marks nodes synthesized by a rewrite; they have no source origin.
type Span struct {
	File  FileID
	Start uint32 // inclusive
	End   uint32 // exclusive
}

// NoSpan is the sentinel span carried by synthesized nodes.
var NoSpan = Span{}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// Synthetic reports whether s is the sentinel span.
func (s Span) Synthetic() bool {
	return s == NoSpan
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
// Spans of different files are not merged; s is returned unchanged.
// A synthetic operand is ignored.
func (s Span) Cover(other Span) Span {
	if other.Synthetic() {
		return s
	}
	if s.Synthetic() {
		return other
	}
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Contains reports whether other lies fully inside s.
func (s Span) Contains(other Span) bool {
	return s.File == other.File && other.Start >= s.Start && other.End <= s.End
}
