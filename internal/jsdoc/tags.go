// Package jsdoc reads /** ... */ comments attached to declarations.
package jsdoc

import "strings"

type TagKind uint8

const (
	TagDeprecated TagKind = iota
	TagParam
)

func (k TagKind) String() string {
	switch k {
	case TagDeprecated:
		return "deprecated"
	case TagParam:
		return "param"
	}
	return "?"
}

// TypeKind classifies a @param type annotation.
type TypeKind uint8

const (
	TypeNamed    TypeKind = iota
	TypeAny               // {*}
	TypeRepeated          // {...T}
)

// Tag is one recognized block tag. Name and Type are set for @param only.
type Tag struct {
	Kind        TagKind
	Name        string
	Type        string
	HasType     bool
	Description string
}

// TypeKind reports how the @param type reads. ok is false without a type.
func (t Tag) TypeKind() (kind TypeKind, ok bool) {
	if !t.HasType {
		return TypeNamed, false
	}
	switch {
	case t.Type == "*":
		return TypeAny, true
	case len(t.Type) > 3 && strings.HasPrefix(t.Type, "..."):
		return TypeRepeated, true
	}
	return TypeNamed, true
}

// ParseTags extracts @deprecated and @param tags from comment text. Other
// tags are skipped. A description runs to the end of its line or the next '*'.
func ParseTags(comment string) []Tag {
	s := tagScanner{src: comment}
	var tags []Tag
	for s.pos < len(s.src) {
		if s.src[s.pos] != '@' {
			s.pos++
			continue
		}
		s.pos++
		name := s.takeUntil(func(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' })
		switch name {
		case "deprecated":
			s.skipBlanks()
			tags = append(tags, Tag{Kind: TagDeprecated, Description: s.description()})
		case "param":
			tags = append(tags, s.param())
		}
	}
	return tags
}

type tagScanner struct {
	src string
	pos int
}

func (s *tagScanner) takeUntil(stop func(byte) bool) string {
	start := s.pos
	for s.pos < len(s.src) && !stop(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *tagScanner) eat(c byte) bool {
	if s.pos < len(s.src) && s.src[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

func (s *tagScanner) skipBlanks() {
	for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
		s.pos++
	}
}

func (s *tagScanner) description() string {
	d := s.takeUntil(func(c byte) bool { return c == '\n' || c == '*' })
	return strings.TrimSpace(d)
}

// param reads "@param [{type}] name [- description]". An unclosed type ends
// at the first space.
func (s *tagScanner) param() Tag {
	tag := Tag{Kind: TagParam}
	s.skipBlanks()
	if s.eat('{') {
		tag.Type = s.takeUntil(func(c byte) bool { return c == '}' || c == ' ' || c == '\n' })
		tag.HasType = true
		s.eat('}')
		s.skipBlanks()
	}
	tag.Name = s.takeUntil(func(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' })
	s.skipBlanks()
	if s.eat('-') {
		s.skipBlanks()
	}
	tag.Description = s.description()
	return tag
}
