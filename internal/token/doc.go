// Package token defines lexical token kinds and trivia for JavaScript sources.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Whitespace and comments never appear in the token stream; they travel as
//     leading Trivia of the next significant token.
//   - Contextual words (of, get, set, async, type, undefined, ...) have their own
//     kinds so callers can recognize them, and IsIdentName reports them as usable
//     binding names.
package token
