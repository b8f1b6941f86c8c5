package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sable/internal/diagfmt"
	"sable/internal/driver"
)

var (
	errLexFailed   = errors.New("lexing failed")
	errCheckFailed = errors.New("check failed")
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.sb",
	Short: "Parse and type-check a file, then print the typed tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json|yaml)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "tree", "json", "yaml":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	res, err := driver.Check(cmd.Context(), args[0], driver.CheckOptions{MaxDiagnostics: current.maxDiagnostics})
	if err != nil {
		return err
	}
	if !res.OK() {
		if err := printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, "pretty"); err != nil {
			return err
		}
		return errCheckFailed
	}

	in := diagfmt.ASTInput{
		Builder: res.Sema.Builder,
		Strings: res.Sema.Strings,
		Types:   res.Sema.Types,
		Files:   res.FileSet,
	}
	switch format {
	case "json":
		return diagfmt.FormatASTJSON(cmd.OutOrStdout(), in, res.Program)
	case "yaml":
		return diagfmt.FormatASTYAML(cmd.OutOrStdout(), in, res.Program)
	default:
		return diagfmt.FormatASTTree(cmd.OutOrStdout(), in, res.Program)
	}
}
