package token

import "iter"

// Reserved describes a reserved spelling: its kind and, for literal-like
// words, the payload the lexer attaches.
type Reserved struct {
	Kind Kind
	Bool bool     // BoolLit only
	Spec TypeSpec // TypeName only
}

var reserved = map[string]Reserved{
	"as":       {Kind: KwAs},
	"break":    {Kind: KwBreak},
	"continue": {Kind: KwContinue},
	"def":      {Kind: KwDef},
	"else":     {Kind: KwElse},
	"if":       {Kind: KwIf},
	"let":      {Kind: KwLet},
	"return":   {Kind: KwReturn},
	"var":      {Kind: KwVar},
	"when":     {Kind: KwWhen},
	"while":    {Kind: KwWhile},
	"and":      {Kind: KwAnd},
	"or":       {Kind: KwOr},
	"not":      {Kind: KwNot},
	"true":     {Kind: BoolLit, Bool: true},
	"false":    {Kind: BoolLit, Bool: false},
	"bool":     {Kind: TypeName, Spec: SpecBool},
	"char":     {Kind: TypeName, Spec: SpecChar},
	"int":      {Kind: TypeName, Spec: SpecInt},
	"float":    {Kind: TypeName, Spec: SpecFloat},
}

// LookupReserved ищет зарезервированное слово. Регистрозависимо.
func LookupReserved(word string) (Reserved, bool) {
	r, ok := reserved[word]
	return r, ok
}

// ReservedWords iterates over every reserved spelling.
// The lexer uses it to seed its interned keyword table.
func ReservedWords() iter.Seq2[string, Reserved] {
	return func(yield func(string, Reserved) bool) {
		for word, r := range reserved {
			if !yield(word, r) {
				return
			}
		}
	}
}
