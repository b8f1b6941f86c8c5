package trace

import (
	"sync/atomic"
	"time"
)

var globalSpans atomic.Uint64

// Span tracks one begin/end pair. A nil or disabled Span is safe to use.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	started time.Time
	fields  map[string]string
}

// Begin starts a span below parent (0 for a root) and emits its begin event.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !Enabled(t) || !t.Level().Allows(scope, KindSpanBegin) {
		return &Span{}
	}
	s := &Span{
		tracer:  t,
		id:      globalSpans.Add(1),
		parent:  parent,
		scope:   scope,
		name:    name,
		started: time.Now(),
	}
	t.Emit(&Event{
		Time:     s.started,
		Kind:     KindSpanBegin,
		Scope:    scope,
		SpanID:   s.id,
		ParentID: parent,
		Name:     name,
	})
	return s
}

// End emits the end event and returns the span duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	dur := time.Since(s.started)
	s.tracer.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindSpanEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
		Detail:   detail,
		Elapsed:  dur,
		Fields:   s.fields,
	})
	return dur
}

// WithField attaches a key/value to the end event.
func (s *Span) WithField(key, value string) *Span {
	if s == nil || s.tracer == nil {
		return s
	}
	if s.fields == nil {
		s.fields = make(map[string]string)
	}
	s.fields[key] = value
	return s
}

func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point emits an instant event.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	emitPoint(t, KindPoint, scope, name, detail, parent)
}

// Failure records an error; it passes every level except off.
func Failure(t Tracer, scope Scope, name string, err error, parent uint64) {
	if err == nil {
		return
	}
	emitPoint(t, KindFailure, scope, name, err.Error(), parent)
}

func emitPoint(t Tracer, kind Kind, scope Scope, name, detail string, parent uint64) {
	if !Enabled(t) || !t.Level().Allows(scope, kind) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     kind,
		Scope:    scope,
		ParentID: parent,
		Name:     name,
		Detail:   detail,
	})
}
