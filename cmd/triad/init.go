package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"triad"
)

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Scaffold a target specification file",
	Long: `Init writes <name>.json prefilled from a built-in triple, ready to
edit into a custom target. The file loads as-is: comments in it are
fine, the loader strips them.

If [name] is omitted the file is called custom-target.json.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initFrom string

func init() {
	initCmd.Flags().StringVar(&initFrom, "from", "x86_64-unknown-linux-gnu", "built-in triple to copy fields from")
}

func runInit(cmd *cobra.Command, args []string) error {
	name := "custom-target"
	if len(args) == 1 && args[0] != "" {
		name = strings.TrimSuffix(args[0], triad.SpecSuffix)
	}

	base, ok := triad.LookupTriple(initFrom)
	if !ok {
		return fmt.Errorf("unknown base triple %q (triad list shows the known ones)", initFrom)
	}

	path := name + triad.SpecSuffix
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	content, err := scaffoldSpec(filepath.Base(name), initFrom, base)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s (fields copied from %s)\n", path, initFrom)
	fmt.Fprintf(cmd.OutOrStdout(), "Resolve it with TARGET=%s or put its directory on %s\n", path, triad.EnvTargetPath)
	return nil
}

// scaffoldSpec renders a commented specification document. The comment
// header survives loading because the loader accepts JSONC.
func scaffoldSpec(display, from string, base triad.Info) ([]byte, error) {
	payload, err := json.MarshalIndent(base, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", from, err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "// Target specification %q, starting from %s.\n", display, from)
	b.WriteString("// arch, os, target-endian and target-pointer-width are required;\n")
	b.WriteString("// vendor defaults to \"unknown\" and env to \"\" when removed.\n")
	b.Write(payload)
	b.WriteString("\n")
	return []byte(b.String()), nil
}
