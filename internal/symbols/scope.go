package symbols

import (
	"sable/internal/ast"
	"sable/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid   ScopeKind = iota
	ScopeGlobal              // top-level declarations of a program
	ScopeParameter           // function parameters
	ScopeBlock               // `{ ... }`, including function bodies
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeParameter:
		return "parameter"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Scope maps names to declarations. It never owns the declarations:
// they live in the ast.Builder and outlive the scope.
type Scope struct {
	Kind   ScopeKind
	Parent *Scope
	Depth  int
	names  map[source.StringID]ast.DeclID
}

func newScope(kind ScopeKind, parent *Scope) *Scope {
	depth := 0
	if parent != nil {
		depth = parent.Depth + 1
	}
	return &Scope{
		Kind:   kind,
		Parent: parent,
		Depth:  depth,
		names:  make(map[source.StringID]ast.DeclID),
	}
}

// Local looks the name up in this scope only.
func (s *Scope) Local(name source.StringID) (ast.DeclID, bool) {
	id, ok := s.names[name]
	return id, ok
}

// Declare binds name in s unless it is already bound there.
func (s *Scope) Declare(name source.StringID, decl ast.DeclID) (prev ast.DeclID, ok bool) {
	if existing, dup := s.names[name]; dup {
		return existing, false
	}
	s.names[name] = decl
	return ast.NoDeclID, true
}

func (s *Scope) Len() int { return len(s.names) }
