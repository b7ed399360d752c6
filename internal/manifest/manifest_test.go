package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestFindNearest(t *testing.T) {
	root := t.TempDir()
	rootManifest := writeManifest(t, root, "[target]\ndefault = \"outer\"\n")

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", nested, err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find(%q) error: %v", nested, err)
	}
	if !ok {
		t.Fatalf("Find(%q) ok = false, want true", nested)
	}
	if path != rootManifest {
		t.Errorf("Find(%q) = %q, want %q", nested, path, rootManifest)
	}

	// A manifest closer to the start directory shadows the outer one.
	mid := filepath.Join(root, "a")
	midManifest := writeManifest(t, mid, "[target]\ndefault = \"inner\"\n")
	path, ok, err = Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find(%q) = %v, %v after adding inner manifest", nested, ok, err)
	}
	if path != midManifest {
		t.Errorf("Find(%q) = %q, want nearest %q", nested, path, midManifest)
	}
}

func TestFindMissing(t *testing.T) {
	dir := t.TempDir()
	path, ok, err := Find(dir)
	if err != nil {
		t.Fatalf("Find(%q) error: %v", dir, err)
	}
	if ok {
		t.Errorf("Find(%q) = %q, ok = true, want no manifest", dir, path)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[target]\ndefault = \"x86_64-unknown-linux-gnu\"\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if m.DefaultTarget != "x86_64-unknown-linux-gnu" {
		t.Errorf("DefaultTarget = %q, want %q", m.DefaultTarget, "x86_64-unknown-linux-gnu")
	}
	if m.Path != path {
		t.Errorf("Path = %q, want %q", m.Path, path)
	}
	if m.Root != dir {
		t.Errorf("Root = %q, want %q", m.Root, dir)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no target section",
			content: "[build]\njobs = 4\n",
			wantErr: ErrTargetSectionMissing,
		},
		{
			name:    "no default key",
			content: "[target]\nnotes = \"later\"\n",
			wantErr: ErrDefaultTargetMissing,
		},
		{
			name:    "blank default",
			content: "[target]\ndefault = \"  \"\n",
			wantErr: ErrDefaultTargetMissing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeManifest(t, dir, tt.content)
			_, err := Load(path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load(%q) error = %v, want %v", path, err, tt.wantErr)
			}
			if err == nil || !strings.Contains(err.Error(), path) {
				t.Errorf("Load(%q) error %q should name the manifest path", path, err)
			}
		})
	}
}

func TestLoadParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[target\ndefault = broken")
	if _, err := Load(path); err == nil {
		t.Errorf("Load(%q) = nil error for malformed TOML", path)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[target]\ndefault = \"thumbv7em-none-eabi\"\n")

	nested := filepath.Join(root, "firmware", "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", nested, err)
	}

	m, ok, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover(%q) error: %v", nested, err)
	}
	if !ok {
		t.Fatalf("Discover(%q) ok = false, want true", nested)
	}
	if m.DefaultTarget != "thumbv7em-none-eabi" {
		t.Errorf("DefaultTarget = %q, want %q", m.DefaultTarget, "thumbv7em-none-eabi")
	}

	empty := t.TempDir()
	if _, ok, err := Discover(empty); err != nil || ok {
		t.Errorf("Discover(%q) = ok %v, err %v, want no manifest and nil error", empty, ok, err)
	}
}
