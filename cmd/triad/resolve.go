package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"triad"
	"triad/internal/manifest"
	"triad/internal/observ"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] [target]",
	Short: "Resolve a target triple or specification file",
	Long: `Resolve looks the target up in the built-in triple table, then treats
it as a path to a specification document, then searches the directories
listed in TRIAD_TARGET_PATH for <target>.json.

The target argument may be omitted: resolve then falls back to the
TARGET environment variable, and after that to the [target].default
entry of the nearest triad.toml manifest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

var (
	resolveFormat  string
	resolveTimings bool
)

func init() {
	resolveCmd.Flags().StringVar(&resolveFormat, "format", "pretty", "output format (pretty|json|env)")
	resolveCmd.Flags().BoolVar(&resolveTimings, "timings", false, "print resolution phase timings to stderr")
}

func runResolve(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(resolveFormat)
	switch format {
	case "pretty", "json", "env":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json, or env)", resolveFormat)
	}

	name, origin, err := chooseTarget(args)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	info, err := resolveStaged(timer, name)
	if resolveTimings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return renderInfoJSON(out, info)
	case "env":
		for _, line := range envLines(info) {
			fmt.Fprintln(out, line)
		}
		return nil
	default:
		renderInfoPretty(out, name, origin, info)
		return nil
	}
}

// chooseTarget picks the identifier to resolve: the positional argument
// wins, then the TARGET environment variable, then the default target of
// the nearest triad.toml. A TARGET value that is not valid text counts
// as unset here; the fallback chain continues instead of failing.
func chooseTarget(args []string) (name, origin string, err error) {
	if len(args) == 1 && args[0] != "" {
		return args[0], "argument", nil
	}
	if raw, ok := os.LookupEnv(triad.EnvTarget); ok && utf8.ValidString(raw) && raw != "" {
		return raw, triad.EnvTarget, nil
	}
	m, ok, err := manifest.Discover(".")
	if err != nil {
		return "", "", err
	}
	if ok {
		return m.DefaultTarget, m.Path, nil
	}
	return "", "", fmt.Errorf("no target: no argument given, TARGET is unset, and no %s manifest was found", manifest.FileName)
}

// resolveStaged mirrors triad.Resolve step by step so each phase lands
// in the timer. The fallback order must stay in lockstep with the
// library; TestResolveStagedMatchesLibrary guards that.
func resolveStaged(timer *observ.Timer, name string) (triad.Info, error) {
	stop := timer.Begin("builtin lookup")
	if info, ok := triad.LookupTriple(name); ok {
		stop("hit")
		return info, nil
	}
	stop("miss")

	host := triad.SystemHost()

	stop = timer.Begin("direct path")
	if host.IsFile(name) {
		stop("hit")
		return loadTimed(timer, name)
	}
	stop("miss")

	stop = timer.Begin("search path")
	candidate := name + triad.SpecSuffix
	searchPath, _ := host.LookupEnv(triad.EnvTargetPath)
	for _, dir := range filepath.SplitList(searchPath) {
		if path := filepath.Join(dir, candidate); host.IsFile(path) {
			stop(path)
			return loadTimed(timer, path)
		}
	}
	stop("miss")

	return triad.Info{}, fmt.Errorf("%s: %w", name, triad.ErrTargetNotFound)
}

func loadTimed(timer *observ.Timer, path string) (triad.Info, error) {
	stop := timer.Begin("document load")
	info, err := triad.LoadSpec(path)
	if err != nil {
		stop("error")
		return triad.Info{}, err
	}
	stop("ok")
	return info, nil
}

var targetStyle = color.New(color.Bold)

func renderInfoPretty(out io.Writer, name, origin string, info triad.Info) {
	fmt.Fprintf(out, "%-15s %s (from %s)\n", "target:", targetStyle.Sprint(name), origin)
	fmt.Fprintf(out, "%-15s %s\n", "arch:", info.Arch())
	fmt.Fprintf(out, "%-15s %s\n", "vendor:", info.Vendor())
	fmt.Fprintf(out, "%-15s %s\n", "os:", info.OS())
	if env := info.Env(); env != "" {
		fmt.Fprintf(out, "%-15s %s\n", "env:", env)
	}
	fmt.Fprintf(out, "%-15s %s\n", "endian:", info.Endian())
	fmt.Fprintf(out, "%-15s %s\n", "pointer width:", info.PointerWidth())
}

func renderInfoJSON(out io.Writer, info triad.Info) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

// envLines renders info as shell variable assignments, single-quoted so
// the output can be eval'd directly.
func envLines(info triad.Info) []string {
	return []string{
		"TARGET_ARCH=" + shellQuote(info.Arch()),
		"TARGET_VENDOR=" + shellQuote(info.Vendor()),
		"TARGET_OS=" + shellQuote(info.OS()),
		"TARGET_ENV=" + shellQuote(info.Env()),
		"TARGET_ENDIAN=" + shellQuote(string(info.Endian())),
		"TARGET_POINTER_WIDTH=" + shellQuote(info.PointerWidth()),
	}
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
