// Package token defines the lexical tokens of Sable.
// Invariants:
//   - The payload carried by a Token is fully determined by its Kind;
//     asking for the wrong payload panics (see the accessors in token.go).
//   - Token.Text is the exact source slice, Token.Span covers it.
//   - Keywords, boolean literals and the builtin type names are reserved
//     words; the lexer resolves them through the same interner as identifiers.
//   - Every operator spelling has its own Kind; the lexer always emits the
//     longest spelling that matches.
package token
