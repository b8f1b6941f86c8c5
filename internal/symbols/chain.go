package symbols

import (
	"sable/internal/ast"
	"sable/internal/source"
)

// Chain is the stack of currently open scopes.
// The zero value has no scopes; Declare and Lookup need at least one Enter.
type Chain struct {
	current *Scope
}

func NewChain() *Chain {
	return &Chain{}
}

// Enter pushes an empty scope whose parent is the current one.
func (c *Chain) Enter(kind ScopeKind) *Scope {
	c.current = newScope(kind, c.current)
	return c.current
}

// Leave pops the current scope and returns it.
// Leaving with no open scope is a programming error.
func (c *Chain) Leave() *Scope {
	if c.current == nil {
		panic("symbols: Leave without matching Enter")
	}
	s := c.current
	c.current = s.Parent
	return s
}

// Current returns the innermost open scope, or nil.
func (c *Chain) Current() *Scope { return c.current }

// Depth is the number of open scopes.
func (c *Chain) Depth() int {
	if c.current == nil {
		return 0
	}
	return c.current.Depth + 1
}

// Declare binds name in the current scope. When name is already bound
// there, nothing changes and the existing declaration is returned with ok=false.
func (c *Chain) Declare(name source.StringID, decl ast.DeclID) (prev ast.DeclID, ok bool) {
	if c.current == nil {
		panic("symbols: Declare with no open scope")
	}
	return c.current.Declare(name, decl)
}

// Lookup walks from the current scope outward and returns the first binding.
func (c *Chain) Lookup(name source.StringID) (ast.DeclID, bool) {
	for s := c.current; s != nil; s = s.Parent {
		if id, ok := s.names[name]; ok {
			return id, true
		}
	}
	return ast.NoDeclID, false
}
