// Package manifest locates and parses triad.toml project manifests.
//
// A manifest pins the default target for a project tree:
//
//	[target]
//	default = "x86_64-unknown-linux-gnu"
//
// The resolve command falls back to the nearest manifest when neither
// an argument nor the TARGET variable names a target.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest file name looked up in each directory.
const FileName = "triad.toml"

var (
	// ErrTargetSectionMissing indicates that [target] is missing in a manifest.
	ErrTargetSectionMissing = errors.New("missing [target]")
	// ErrDefaultTargetMissing indicates that [target].default is missing or empty.
	ErrDefaultTargetMissing = errors.New("missing [target].default")
)

// Manifest is a parsed triad.toml.
type Manifest struct {
	Path          string
	Root          string
	DefaultTarget string
}

type manifestFile struct {
	Target struct {
		Default string `toml:"default"`
	} `toml:"target"`
}

// Find walks up from startDir to locate the nearest triad.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the manifest at path and validates its [target] section.
func Load(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("target") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrTargetSectionMissing)
	}
	def := strings.TrimSpace(cfg.Target.Default)
	if !meta.IsDefined("target", "default") || def == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrDefaultTargetMissing)
	}
	return Manifest{
		Path:          path,
		Root:          filepath.Dir(path),
		DefaultTarget: def,
	}, nil
}

// Discover finds the nearest manifest above startDir and loads it.
// ok is false when no manifest exists anywhere up the tree.
func Discover(startDir string) (Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return Manifest{}, ok, err
	}
	m, err := Load(path)
	if err != nil {
		return Manifest{}, true, err
	}
	return m, true, nil
}
