package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"triad/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "triad",
	Short: "Compile-target triple resolver",
	Long: `Triad resolves compile-target identifiers the way cross-compiling
build scripts expect: built-in triple lookup first, then a direct path
to a specification document, then a TRIAD_TARGET_PATH search.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyColorMode(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyColorMode syncs fatih/color's process-wide toggle with the
// --color flag, so every styled renderer follows one decision. Runs
// before each subcommand via the root PersistentPreRun.
func applyColorMode(cmd *cobra.Command) {
	color.NoColor = !useColor(cmd, os.Stdout)
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor applies the --color persistent flag against the stream the
// styled output goes to.
func useColor(cmd *cobra.Command, out *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(out))
}
