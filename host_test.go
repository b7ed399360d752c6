package triad_test

import (
	"os"
	"path/filepath"
	"testing"

	"triad"
)

func TestSystemHost_IsFile(t *testing.T) {
	host := triad.SystemHost()
	dir := t.TempDir()
	file := writeSpec(t, dir, "spec.json", `{}`)

	if !host.IsFile(file) {
		t.Fatalf("IsFile(%q) = false for a regular file", file)
	}
	if host.IsFile(dir) {
		t.Fatalf("IsFile(%q) = true for a directory", dir)
	}
	if missing := filepath.Join(dir, "missing.json"); host.IsFile(missing) {
		t.Fatalf("IsFile(%q) = true for a missing path", missing)
	}

	link := filepath.Join(dir, "link.json")
	if err := os.Symlink(file, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if !host.IsFile(link) {
		t.Fatalf("IsFile(%q) = false, want symlinks followed", link)
	}
}

func TestSystemHost_LookupEnv(t *testing.T) {
	host := triad.SystemHost()
	t.Setenv("TRIAD_HOST_PROBE", "set")

	if value, ok := host.LookupEnv("TRIAD_HOST_PROBE"); !ok || value != "set" {
		t.Fatalf("LookupEnv = %q, %v, want \"set\", true", value, ok)
	}
	if _, ok := host.LookupEnv("TRIAD_HOST_PROBE_MISSING"); ok {
		t.Fatalf("LookupEnv reported a missing variable as set")
	}
}
