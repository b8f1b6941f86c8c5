package diag

import (
	"fmt"
	"sort"
	"strings"

	"sable/internal/source"
)

// FormatShort renders diagnostics one per line, "path:line:col: SEV CODE: msg",
// sorted by path and position. Used for non-pretty CLI output and tests.
func FormatShort(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	type row struct {
		path      string
		line, col uint32
		text      string
	}
	rows := make([]row, 0, len(diags))
	for _, d := range diags {
		path := "<unknown>"
		line, col := d.Loc.Line, d.Loc.Col
		if int(d.Primary.File) < fs.Len() {
			path = fs.DisplayPath(d.Primary.File)
			if !d.Loc.IsValid() {
				start, _ := fs.Resolve(d.Primary)
				line, col = start.Line, start.Col
			}
		}
		rows = append(rows, row{
			path: path, line: line, col: col,
			text: fmt.Sprintf("%s:%d:%d: %s %s: %s", path, line, col, d.Severity, d.Code.ID(), d.Message),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].path != rows[j].path {
			return rows[i].path < rows[j].path
		}
		if rows[i].line != rows[j].line {
			return rows[i].line < rows[j].line
		}
		return rows[i].col < rows[j].col
	})
	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(r.text)
		sb.WriteByte('\n')
	}
	return sb.String()
}
