package trace

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
)

var globalSeq atomic.Uint64

// StreamTracer writes every accepted event immediately.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
	depth  int
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: w, level: level, format: format}
}

func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.Allows(ev.Scope, ev.Kind) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	ev.Seq = globalSeq.Add(1)
	if ev.Kind == KindSpanEnd && t.depth > 0 {
		t.depth--
	}
	// ошибки записи трассы не должны ронять компиляцию
	_, _ = t.w.Write(encode(ev, t.format, t.depth)) //nolint:errcheck
	if ev.Kind == KindSpanBegin {
		t.depth++
	}
}

func (t *StreamTracer) Flush() error {
	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes and closes the writer unless it is stdout/stderr.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if t.w == os.Stderr || t.w == os.Stdout {
		return nil
	}
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level { return t.level }
