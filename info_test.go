package triad_test

import (
	"encoding/json"
	"testing"

	"triad"
)

func TestInfoString(t *testing.T) {
	cases := []struct {
		triple string
		want   string
	}{
		{"x86_64-unknown-linux-gnu", "x86_64-unknown-linux-gnu (little endian, 64-bit)"},
		{"mips-unknown-linux-gnu", "mips-unknown-linux-gnu (big endian, 32-bit)"},
		// The rendering is built from the description fields, not the
		// lookup key, so darwin reads back as macos with no env part.
		{"x86_64-apple-darwin", "x86_64-apple-macos (little endian, 64-bit)"},
	}
	for _, tc := range cases {
		info := lookup(t, tc.triple)
		if got := info.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestPointerBits(t *testing.T) {
	info := lookup(t, "x86_64-unknown-linux-gnu")
	bits, err := info.PointerBits()
	if err != nil {
		t.Fatalf("PointerBits() error: %v", err)
	}
	if bits != 64 {
		t.Fatalf("PointerBits() = %d, want 64", bits)
	}

	path := writeSpec(t, t.TempDir(), "exotic.json",
		`{"arch":"x86_64","os":"nux","target-endian":"little","target-pointer-width":"42"}`)
	exotic, err := triad.LoadSpec(path)
	if err != nil {
		t.Fatalf("LoadSpec error: %v", err)
	}
	if bits, err = exotic.PointerBits(); err != nil || bits != 42 {
		t.Fatalf("PointerBits() = %d, %v, want 42, nil", bits, err)
	}
}

func TestPointerBits_NonDecimalWidth(t *testing.T) {
	// The loader keeps the width as text, so a non-decimal value only
	// fails when interpreted numerically.
	path := writeSpec(t, t.TempDir(), "words.json",
		`{"arch":"x86_64","os":"nux","target-endian":"little","target-pointer-width":"sixty-four"}`)
	info, err := triad.LoadSpec(path)
	if err != nil {
		t.Fatalf("LoadSpec error: %v", err)
	}
	if _, err := info.PointerBits(); err == nil {
		t.Fatalf("PointerBits() on %q did not fail", info.PointerWidth())
	}
	if info.PointerWidth() != "sixty-four" {
		t.Fatalf("PointerWidth() = %q, want the stored text back", info.PointerWidth())
	}
}

func TestMarshalJSON_DocumentFieldNames(t *testing.T) {
	info := lookup(t, "x86_64-pc-windows-msvc")
	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	for _, key := range []string{"arch", "vendor", "os", "env", "target-endian", "target-pointer-width"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("marshalled document misses %q: %s", key, data)
		}
	}
	if len(doc) != 6 {
		t.Fatalf("marshalled document has %d fields, want 6: %s", len(doc), data)
	}
}

func TestMarshalJSON_RoundTripsThroughLoader(t *testing.T) {
	for _, triple := range []string{
		"x86_64-unknown-linux-gnu",
		"mips-unknown-linux-gnu",
		"x86_64-rumprun-netbsd",
		"i686-linux-android",
	} {
		info := lookup(t, triple)
		data, err := json.Marshal(info)
		if err != nil {
			t.Fatalf("Marshal(%s) error: %v", triple, err)
		}
		path := writeSpec(t, t.TempDir(), "roundtrip.json", string(data))
		loaded, err := triad.LoadSpec(path)
		if err != nil {
			t.Fatalf("LoadSpec(%s) error: %v", triple, err)
		}
		if loaded != info {
			t.Fatalf("round trip of %s = %v, want %v", triple, loaded, info)
		}
	}
}
