package triad

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// LoadSpec reads a target specification document and validates it into
// an Info. Documents are JSON objects, optionally with JSONC comments
// and trailing commas since they are authored by hand:
//
//	{
//	    "arch": "x86_64",             // required
//	    "os": "nux",                  // required
//	    "target-endian": "little",    // required, "little" or "big"
//	    "target-pointer-width": "64", // required, kept as text
//	    "vendor": "unknown",          // optional, defaults to "unknown"
//	    "env": ""                     // optional, defaults to ""
//	}
//
// Unknown fields are ignored; there is no schema versioning. Open or
// read failures return *IOError; everything the file's bytes are to
// blame for returns ErrInvalidSpec. Extraction short-circuits on the
// first bad required field, so a partial Info is never produced.
func LoadSpec(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, &IOError{Path: path, Err: err}
	}

	// The input is fully buffered at this point, so any unmarshal
	// error below is structural, never an I/O fault.
	var doc map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return Info{}, fmt.Errorf("%s: %w: %v", path, ErrInvalidSpec, err)
	}

	required := func(key string) (string, error) {
		value, ok := doc[key].(string)
		if !ok {
			return "", fmt.Errorf("%s: required field %q missing or not a string: %w", path, key, ErrInvalidSpec)
		}
		return value, nil
	}
	optional := func(key, fallback string) string {
		if value, ok := doc[key].(string); ok {
			return value
		}
		return fallback
	}

	arch, err := required("arch")
	if err != nil {
		return Info{}, err
	}
	osName, err := required("os")
	if err != nil {
		return Info{}, err
	}
	endian, err := required("target-endian")
	if err != nil {
		return Info{}, err
	}
	if e := Endianness(endian); e != LittleEndian && e != BigEndian {
		return Info{}, fmt.Errorf("%s: target-endian is %q, want %q or %q: %w",
			path, endian, LittleEndian, BigEndian, ErrInvalidSpec)
	}
	width, err := required("target-pointer-width")
	if err != nil {
		return Info{}, err
	}

	return Info{
		arch:         arch,
		vendor:       optional("vendor", "unknown"),
		os:           osName,
		env:          optional("env", ""),
		endian:       Endianness(endian),
		pointerWidth: width,
	}, nil
}
