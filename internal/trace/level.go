package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // only failures
	LevelPhase               // driver and phase boundaries
	LevelDetail              // plus per-file spans
	LevelDebug               // everything
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a flag or manifest value to a Level.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|detail|debug)", s)
}

// Scope is the granularity of an event; lower values are coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // whole command
	ScopePhase                   // load, lex, parse
	ScopeFile                    // one source file
	ScopeNode                    // single declarations
)

func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePhase:
		return "phase"
	case ScopeFile:
		return "file"
	case ScopeNode:
		return "node"
	default:
		return "unknown"
	}
}

// Allows reports whether events of the given scope pass this level.
// Failures are always recorded unless tracing is off.
func (l Level) Allows(scope Scope, kind Kind) bool {
	switch {
	case l == LevelOff:
		return false
	case kind == KindFailure:
		return true
	case l == LevelError:
		return false
	case l == LevelPhase:
		return scope <= ScopePhase
	case l == LevelDetail:
		return scope <= ScopeFile
	default:
		return true
	}
}
