package diag

import "sable/internal/source"

// Reporter: минимальный контракт получения диагностик от фаз.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter: адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes,
	})
}

// LocatedReporter is implemented by reporters that keep the token Location.
type LocatedReporter interface {
	ReportLocated(d Diagnostic)
}

func (r BagReporter) ReportLocated(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// ReportErr routes a fail-fast error to r. Errors that are not *Error are
// reported as UnknownCode without a span.
func ReportErr(r Reporter, err error) {
	if r == nil || err == nil {
		return
	}
	de, ok := AsError(err)
	if !ok {
		r.Report(UnknownCode, SevError, source.Span{}, err.Error(), nil)
		return
	}
	d := de.Diagnostic()
	if lr, ok := r.(LocatedReporter); ok {
		lr.ReportLocated(d)
		return
	}
	r.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
}
