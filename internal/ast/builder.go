package ast

type Hints struct{ Decls, Stmts, Exprs uint }

// Builder owns every node of one compilation unit.
type Builder struct {
	Decls *Decls
	Stmts *Stmts
	Exprs *Exprs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Decls == 0 {
		hints.Decls = 1 << 6
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Decls: NewDecls(hints.Decls),
		Stmts: NewStmts(hints.Stmts),
		Exprs: NewExprs(hints.Exprs),
	}
}

// Stats reports node counts, used by the driver and the --timings output.
type Stats struct {
	Decls, Stmts, Exprs uint32
}

func (b *Builder) Stats() Stats {
	return Stats{
		Decls: b.Decls.Arena.Len(),
		Stmts: b.Stmts.Arena.Len(),
		Exprs: b.Exprs.Arena.Len(),
	}
}
