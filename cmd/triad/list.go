package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"triad"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in target triples",
	Long: `List prints the triples the resolver knows without touching the
filesystem. Filters narrow the table by component; an empty result is
not an error.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listFormat string
	listArch   string
	listOS     string
	listVendor string
	listEnv    string
)

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table", "output format (table|plain|json)")
	listCmd.Flags().StringVar(&listArch, "arch", "", "only triples with this architecture")
	listCmd.Flags().StringVar(&listOS, "os", "", "only triples with this operating system")
	listCmd.Flags().StringVar(&listVendor, "vendor", "", "only triples with this vendor")
	listCmd.Flags().StringVar(&listEnv, "env", "", "only triples with this environment")
}

// listEntry is one row of list output: the triple name plus the fields
// a specification document would carry for it.
type listEntry struct {
	Triple       string `json:"triple"`
	Arch         string `json:"arch"`
	Vendor       string `json:"vendor"`
	OS           string `json:"os"`
	Env          string `json:"env,omitempty"`
	Endian       string `json:"target-endian"`
	PointerWidth string `json:"target-pointer-width"`
}

type listFilter struct {
	arch   string
	os     string
	vendor string
	env    string
}

func (f listFilter) matches(info triad.Info) bool {
	if f.arch != "" && info.Arch() != f.arch {
		return false
	}
	if f.os != "" && info.OS() != f.os {
		return false
	}
	if f.vendor != "" && info.Vendor() != f.vendor {
		return false
	}
	if f.env != "" && info.Env() != f.env {
		return false
	}
	return true
}

func runList(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(listFormat)
	switch format {
	case "table", "plain", "json":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be table, plain, or json)", listFormat)
	}

	filter := listFilter{arch: listArch, os: listOS, vendor: listVendor, env: listEnv}
	entries := collectEntries(filter)

	out := cmd.OutOrStdout()
	switch format {
	case "plain":
		renderEntriesPlain(out, entries)
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		renderEntriesTable(out, entries)
		return nil
	}
}

// collectEntries walks the triple table in sorted order and keeps the
// rows the filter admits.
func collectEntries(filter listFilter) []listEntry {
	entries := make([]listEntry, 0, len(triad.Triples()))
	for _, name := range triad.Triples() {
		info, ok := triad.LookupTriple(name)
		if !ok || !filter.matches(info) {
			continue
		}
		entries = append(entries, listEntry{
			Triple:       name,
			Arch:         info.Arch(),
			Vendor:       info.Vendor(),
			OS:           info.OS(),
			Env:          info.Env(),
			Endian:       string(info.Endian()),
			PointerWidth: info.PointerWidth(),
		})
	}
	return entries
}

func renderEntriesPlain(out io.Writer, entries []listEntry) {
	for _, e := range entries {
		fmt.Fprintln(out, e.Triple)
	}
}

var headerStyle = color.New(color.Bold)

func renderEntriesTable(out io.Writer, entries []listEntry) {
	width := len("triple")
	for _, e := range entries {
		if len(e.Triple) > width {
			width = len(e.Triple)
		}
	}
	fmt.Fprintln(out, headerStyle.Sprintf("%-*s  %-10s %-8s %-11s %-7s %-7s %s", width, "triple", "arch", "vendor", "os", "env", "endian", "width"))
	for _, e := range entries {
		fmt.Fprintf(out, "%-*s  %-10s %-8s %-11s %-7s %-7s %s\n", width, e.Triple, e.Arch, e.Vendor, e.OS, e.Env, e.Endian, e.PointerWidth)
	}
}
