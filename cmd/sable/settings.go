package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sable/internal/diagfmt"
	"sable/internal/project"
)

// settings is the effective configuration: sable.toml first, then flags
// that were set explicitly on the command line.
type settings struct {
	manifest       *project.Manifest
	hasManifest    bool
	maxDiagnostics int
	color          bool
	pathMode       diagfmt.PathMode
}

var current settings

func prepare(cmd *cobra.Command, args []string) error {
	manifest, ok, err := project.Load(".")
	if err != nil {
		return err
	}
	current = settings{
		manifest:       manifest,
		hasManifest:    ok,
		maxDiagnostics: manifest.Config.Check.MaxDiagnostics,
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("max-diagnostics") || !ok {
		if current.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	if current.color, err = resolveColor(colorFlag, os.Stderr); err != nil {
		return err
	}
	pathMode, err := flags.GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	current.pathMode = diagfmt.ParsePathMode(pathMode)

	if err := setupTracing(cmd, manifest.Config.Trace); err != nil {
		return err
	}
	return setupProfiling(cmd)
}

func resolveColor(mode string, f *os.File) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return isTerminal(f) && os.Getenv("NO_COLOR") == "", nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

func prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     current.color,
		Context:   1,
		PathMode:  current.pathMode,
		ShowNotes: true,
	}
}
