// Package printer emits compact JavaScript text from a tree.
//
// Output is a single line. Parentheses come from precedence, except that
// parenthesized expressions from the source are printed as written.
package printer
