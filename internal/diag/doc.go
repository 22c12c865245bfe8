// Package diag defines the diagnostic model shared by the lexer, the parser,
// the config loader and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error.
//   - Code – compact numeric identifier with a stable string form (LEX1001, SYN2003, ...).
//   - Message – short, actionable text.
//   - Primary – the source.Span the finding points at.
//   - Notes – optional secondary spans with extra context.
//
// Producers emit through a Reporter so they never depend on storage; BagReporter
// collects into a bounded Bag that can be sorted and deduplicated. Rendering
// lives in internal/diagfmt; this package performs no IO.
package diag
