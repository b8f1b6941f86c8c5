package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sable/internal/diag"
	"sable/internal/driver"
	"sable/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.sb|dir>",
	Short: "Type-check a file or every *.sb file under a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
	checkCmd.Flags().String("ui", "off", "progress view for directories (auto|on|off)")
	checkCmd.Flags().Bool("cache", false, "reuse per-file results from the disk cache")
	checkCmd.Flags().Int("jobs", 0, "parallel files (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("timings", false, "print per-file timings and node counts")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]
	flags := cmd.Flags()
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	uiFlag, err := flags.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	showTimings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	cfg := current.manifest.Config.Check
	jobs := cfg.Jobs
	if flags.Changed("jobs") {
		if jobs, err = flags.GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	useCache := cfg.Cache
	if flags.Changed("cache") {
		if useCache, err = flags.GetBool("cache"); err != nil {
			return fmt.Errorf("failed to get cache flag: %w", err)
		}
	}

	opts := driver.CheckOptions{MaxDiagnostics: current.maxDiagnostics, Jobs: jobs}
	if useCache {
		cache, err := openCache()
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		opts.Cache = cache
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	var (
		fs      *source.FileSet
		results []*driver.CheckResult
	)
	switch {
	case !info.IsDir():
		res, err := driver.Check(cmd.Context(), target, opts)
		if err != nil {
			return err
		}
		fs, results = res.FileSet, []*driver.CheckResult{res}
	case shouldUseTUI(mode):
		fs, results, err = runCheckWithUI(cmd.Context(), target, opts)
	default:
		fs, results, err = driver.CheckDir(cmd.Context(), target, opts)
	}
	if err != nil {
		return err
	}

	failed := reportResults(cmd, fs, results, format)
	if showTimings {
		printTimings(cmd.OutOrStdout(), results)
	}
	summary := color.New(color.FgGreen, color.Bold)
	if failed > 0 {
		summary = color.New(color.FgRed, color.Bold)
	}
	if current.color {
		summary.EnableColor()
	} else {
		summary.DisableColor()
	}
	fmt.Fprintln(cmd.ErrOrStderr(), summary.Sprintf("checked %d file(s), %d failed", len(results), failed))
	if failed > 0 {
		return errCheckFailed
	}
	return nil
}

func openCache() (*driver.DiskCache, error) {
	if current.hasManifest {
		return driver.OpenDiskCache(current.manifest.CachePath())
	}
	dir, err := driver.DefaultCacheDir("sable")
	if err != nil {
		return nil, err
	}
	return driver.OpenDiskCache(dir)
}

// reportResults prints every diagnostic and returns the number of failed files.
func reportResults(cmd *cobra.Command, fs *source.FileSet, results []*driver.CheckResult, format string) int {
	failed := 0
	combined := diag.NewBag(1)
	for _, res := range results {
		if !res.OK() {
			failed++
		}
		if res.File == nil {
			// ошибка загрузки: span не к чему привязать
			for _, d := range res.Bag.Items() {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s %s: %s\n", res.Path, d.Severity, d.Code.ID(), d.Message)
			}
			continue
		}
		combined.Merge(res.Bag)
	}
	out := cmd.ErrOrStderr()
	if format == "json" {
		out = cmd.OutOrStdout()
	}
	if err := printDiagnostics(out, combined, fs, format); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed to print diagnostics: %v\n", err)
	}
	return failed
}

func printTimings(w io.Writer, results []*driver.CheckResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSOURCE\tLOAD\tCHECK\tDECLS\tSTMTS\tEXPRS")
	for _, res := range results {
		src := "fresh"
		if res.Cached {
			src = "cache"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
			res.Path, src,
			res.Timings.Duration(driver.StageLoad),
			res.Timings.Duration(driver.StageCheck)+res.Timings.Duration(driver.StageCache),
			res.Stats.Decls, res.Stats.Stmts, res.Stats.Exprs)
	}
	_ = tw.Flush()
}
