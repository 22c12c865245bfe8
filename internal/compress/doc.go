// Package compress rewrites a parsed JavaScript tree in place into a smaller,
// equivalent tree before printing.
//
// The pass is a single pre-order walk. Statement lists are filtered and
// merged before their members are visited; statements may be replaced in
// their slot before descent; expressions are checked against an ordered
// rule list where the first match wins and stops descent. Every rule either
// fires or leaves the tree untouched, so the pass has no error results.
//
// New nodes come from the same ast.Builder that owns the tree and carry
// source.NoSpan.
package compress
