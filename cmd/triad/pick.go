package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"triad"
	"triad/internal/ui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a target triple interactively",
	Long: `Pick opens a filterable list of the built-in triples and prints the
selection to stdout. The list itself renders on stderr, so

	TARGET=$(triad pick)

captures only the chosen triple.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

var pickUI string

func init() {
	pickCmd.Flags().StringVar(&pickUI, "ui", "auto", "interactive picker (auto|on|off)")
}

func runPick(cmd *cobra.Command, args []string) error {
	mode, err := readUIMode(pickUI)
	if err != nil {
		return err
	}
	if !shouldUsePicker(mode) {
		return fmt.Errorf("pick needs an interactive terminal (use --ui on to force, or triad list for plain output)")
	}

	choice, err := ui.Pick("select a target triple", pickerEntries())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), choice)
	return nil
}

// pickerEntries builds one row per built-in triple. The detail line
// repeats the searchable components so filtering by endianness or
// pointer width works.
func pickerEntries() []ui.Entry {
	names := triad.Triples()
	entries := make([]ui.Entry, 0, len(names))
	for _, name := range names {
		info, ok := triad.LookupTriple(name)
		if !ok {
			continue
		}
		detail := fmt.Sprintf("%s %s, %s endian, %s-bit", info.Arch(), info.OS(), info.Endian(), info.PointerWidth())
		entries = append(entries, ui.Entry{Name: name, Detail: detail})
	}
	return entries
}
