package sema

import (
	"fmt"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/symbols"
	"sable/internal/trace"
	"sable/internal/types"
)

// Options configure a Context. Nil fields are created fresh.
type Options struct {
	File    *source.File
	Strings *source.Interner
	Types   *types.Interner
	Builder *ast.Builder
	// Tracer receives one node span per top-level declaration, below TraceParent.
	Tracer      trace.Tracer
	TraceParent uint64
}

// Context is the mutable state of one compilation unit: the open scopes,
// the function being defined and the node arenas. It is threaded through
// the parser explicitly and must not be shared between goroutines.
type Context struct {
	File    *source.File
	Strings *source.Interner
	Types   *types.Interner
	Builder *ast.Builder
	Scopes  *symbols.Chain

	Tracer      trace.Tracer
	TraceParent uint64

	function ast.DeclID
	loops    int
	builtins types.Builtins
}

func NewContext(opts Options) *Context {
	if opts.Strings == nil {
		opts.Strings = source.NewInterner()
	}
	if opts.Types == nil {
		opts.Types = types.NewInterner()
	}
	if opts.Builder == nil {
		opts.Builder = ast.NewBuilder(ast.Hints{})
	}
	return &Context{
		File:     opts.File,
		Strings:  opts.Strings,
		Types:    opts.Types,
		Builder:  opts.Builder,
		Scopes:   symbols.NewChain(),
		builtins: opts.Types.Builtins(),

		Tracer:      opts.Tracer,
		TraceParent: opts.TraceParent,
	}
}

// CurrentFunction returns the function whose body is being parsed.
func (c *Context) CurrentFunction() ast.DeclID { return c.function }

// InLoop reports whether a while body is being parsed.
func (c *Context) InLoop() bool { return c.loops > 0 }

func (c *Context) locate(span source.Span) source.Location {
	if c.File == nil || c.File.ID != span.File {
		return source.Location{}
	}
	return c.File.LocationOf(span.Start)
}

func (c *Context) errorf(code diag.Code, span source.Span, format string, args ...any) *diag.Error {
	return diag.Errorf(code, span, c.locate(span), format, args...)
}

func (c *Context) name(id source.StringID) string {
	if s, ok := c.Strings.Lookup(id); ok {
		return s
	}
	return fmt.Sprintf("#%d", id)
}

func (c *Context) typeName(id types.TypeID) string {
	return c.Types.Format(id)
}

func (c *Context) expr(id ast.ExprID) *ast.Expr {
	e := c.Builder.Exprs.Get(id)
	if e == nil {
		panic(fmt.Errorf("sema: unknown expression %d", id))
	}
	return e
}

func (c *Context) typeOf(id ast.ExprID) types.TypeID {
	return c.expr(id).Type
}

func (c *Context) spanOf(id ast.ExprID) source.Span {
	return c.expr(id).Span
}
