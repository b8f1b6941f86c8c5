package main

import (
	"fmt"
	"io"

	"sable/internal/diag"
	"sable/internal/diagfmt"
	"sable/internal/source"
)

// printDiagnostics renders bag in one of pretty|json|short.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, format string) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	switch format {
	case "", "pretty":
		return diagfmt.Pretty(w, bag, fs, prettyOpts())
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         current.pathMode,
			IncludeNotes:     true,
		})
	case "short":
		_, err := io.WriteString(w, diag.FormatShort(bag.Items(), fs))
		return err
	default:
		return fmt.Errorf("unknown diagnostics format: %s", format)
	}
}
