// Package diag defines the error and diagnostic model shared by the lexer,
// parser and semantic actions.
//
// # Errors
//
// Every phase fails fast: the first problem aborts the compilation unit and
// is returned as a *Error. An Error carries a Code, a message, the primary
// source.Span and the source.Location of the token that triggered it.
// Codes are partitioned by range into categories:
//
//   - 1xxx Lexical   (invalid character, unterminated literal, bad escape)
//   - 2xxx Syntactic (expected-token mismatch, malformed declaration)
//   - 3xxx Semantic  (unresolved name, redeclaration, type/arity mismatch)
//   - 4xxx I/O, 5xxx project manifest
//
// # Diagnostics
//
// The driver turns an *Error into a Diagnostic and routes it through a
// Reporter into a Bag, which is what renderers in internal/diagfmt consume.
// A Bag may hold diagnostics of several files when a directory is checked,
// but never more than one error per file.
package diag
