package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sable/internal/diag"
	"sable/internal/source"
)

const tabWidth = 4

type painter struct {
	err, warn, info *color.Color
	bold, gutter    *color.Color
	note            *color.Color
}

func newPainter(enabled bool) painter {
	p := painter{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		bold:   color.New(color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		note:   color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.bold, p.gutter, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p painter) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty печатает диагностики для человека: заголовок, позиция,
// строка исходника с подчёркиванием и (опционально) заметки.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPainter(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := prettyOne(w, d, fs, opts, p); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p painter) error {
	var sb strings.Builder
	head := fmt.Sprintf("%s[%s]", strings.ToLower(d.Severity.String()), d.Code.ID())
	sb.WriteString(p.severity(d.Severity).Sprint(head))
	sb.WriteString(p.bold.Sprint(": " + d.Message))
	sb.WriteByte('\n')

	if fs == nil || int(d.Primary.File) >= fs.Len() {
		_, err := io.WriteString(w, sb.String())
		return err
	}

	f := fs.Get(d.Primary.File)
	loc := d.Loc
	if !loc.IsValid() {
		loc = f.LocationOf(d.Primary.Start)
	}
	gw := len(strconv.FormatUint(uint64(loc.Line), 10))
	pad := strings.Repeat(" ", gw)
	bar := p.gutter.Sprint("|")

	fmt.Fprintf(&sb, "%s%s %s:%d:%d\n", pad, p.gutter.Sprint("-->"), formatPath(fs, f.ID, opts.PathMode), loc.Line, loc.Col)
	fmt.Fprintf(&sb, "%s %s\n", pad, bar)

	first := uint32(1)
	if ctx := uint32(max(opts.Context, 0)); loc.Line > ctx {
		first = loc.Line - ctx
	}
	for ln := first; ln <= loc.Line; ln++ {
		num := p.gutter.Sprint(fmt.Sprintf("%*d", gw, ln))
		fmt.Fprintf(&sb, "%s %s %s\n", num, bar, expandTabs(f.GetLine(ln)))
	}

	line := f.GetLine(loc.Line)
	col := min(int(loc.Col)-1, len(line))
	col = max(col, 0)
	end := min(col+int(d.Primary.Len()), len(line))
	indent := runewidth.StringWidth(expandTabs(line[:col]))
	width := max(runewidth.StringWidth(expandTabs(line[col:end])), 1)
	underline := p.severity(d.Severity).Sprint(strings.Repeat("^", width))
	fmt.Fprintf(&sb, "%s %s %s%s\n", pad, bar, strings.Repeat(" ", indent), underline)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(&sb, "%s %s %s%s", pad, p.gutter.Sprint("="), p.note.Sprint("note: "), n.Msg)
			if int(n.Span.File) < fs.Len() {
				nl := fs.LocationOf(n.Span.File, n.Span.Start)
				fmt.Fprintf(&sb, " (%s:%d:%d)", formatPath(fs, n.Span.File, opts.PathMode), nl.Line, nl.Col)
			}
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
