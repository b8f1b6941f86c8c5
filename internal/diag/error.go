package diag

import (
	"errors"
	"fmt"

	"sable/internal/source"
)

// Error is the fail-fast error returned by the lexer, parser and sema.
type Error struct {
	Code Code
	Msg  string
	Span source.Span
	Loc  source.Location
	// Note is an optional secondary hint, e.g. the previous declaration.
	Note *Note
}

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, span source.Span, loc source.Location, format string, args ...any) *Error {
	return &Error{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
		Span: span,
		Loc:  loc,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s error at %s: %s", e.Code.ID(), e.Code.Category(), e.Loc, e.Msg)
}

// Category is a shortcut for e.Code.Category().
func (e *Error) Category() Category {
	return e.Code.Category()
}

// WithNote attaches a secondary span.
func (e *Error) WithNote(sp source.Span, msg string) *Error {
	e.Note = &Note{Span: sp, Msg: msg}
	return e
}

// Diagnostic converts e into an error-severity Diagnostic.
func (e *Error) Diagnostic() Diagnostic {
	d := NewError(e.Code, e.Span, e.Msg)
	d.Loc = e.Loc
	if e.Note != nil {
		d = d.WithNote(e.Note.Span, e.Note.Msg)
	}
	return d
}

// AsError unwraps err into *Error if there is one in the chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// CodeOf returns the Code of a diag error, or UnknownCode.
func CodeOf(err error) Code {
	if de, ok := AsError(err); ok {
		return de.Code
	}
	return UnknownCode
}
