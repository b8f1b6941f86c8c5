package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the sable CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI. It is also mixed into
	// disk cache keys, so a new release never reads stale summaries.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Banner renders "sable <version> (<commit>, <date>)". With colorize the
// major, minor and patch parts are painted separately.
func Banner(colorize bool) string {
	v := Version
	if colorize {
		v = paint(v)
	}
	var extra []string
	if GitCommit != "" {
		commit := GitCommit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		extra = append(extra, commit)
	}
	if BuildDate != "" {
		extra = append(extra, BuildDate)
	}
	if len(extra) == 0 {
		return "sable " + v
	}
	return fmt.Sprintf("sable %s (%s)", v, strings.Join(extra, ", "))
}

func paint(v string) string {
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	cs := []*color.Color{majorColor, minorColor, patchColor}
	for i, c := range cs {
		c.EnableColor()
		parts[i] = c.Sprint(parts[i])
	}
	out := strings.Join(parts, ".")
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
