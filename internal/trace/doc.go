// Package trace records compiler phases as spans.
//
// A Tracer receives begin/end/point events. The driver opens one span per
// phase (load, lex, parse) and, below it, one per file. Events are either
// streamed (text or NDJSON) or kept in a ring buffer for post-mortem dumps.
// The tracer travels through context.Context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "parse", 0)
//	defer sp.End("")
package trace
