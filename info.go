package triad

import (
	"encoding/json"
	"fmt"
	"strconv"

	"fortio.org/safecast"
)

// Endianness is the byte order of a target.
type Endianness string

const (
	LittleEndian Endianness = "little"
	BigEndian    Endianness = "big"
)

// Info describes a resolved compilation target. It is an immutable
// value: constructed once per resolution and handed to the caller by
// value, with no shared state behind it.
type Info struct {
	arch         string
	vendor       string
	os           string
	env          string
	endian       Endianness
	pointerWidth string
}

// Arch returns the architecture of the target, e.g. "x86_64" or "arm".
// Never empty.
func (i Info) Arch() string { return i.arch }

// Vendor returns the vendor of the target, e.g. "unknown", "apple" or
// "pc". Documents that omit it default to "unknown".
func (i Info) Vendor() string { return i.vendor }

// OS returns the operating system of the target, e.g. "linux" or
// "windows". Never empty.
func (i Info) OS() string { return i.os }

// Env returns the ABI environment of the target, e.g. "gnu", "musl" or
// "msvc". Empty when the target has no distinguishing ABI.
func (i Info) Env() string { return i.env }

// Endian returns the byte order of the target.
func (i Info) Endian() Endianness { return i.endian }

// PointerWidth returns the pointer width in bits as a string. It stays
// text because custom documents may use non-standard widths.
func (i Info) PointerWidth() string { return i.pointerWidth }

// PointerBits parses PointerWidth on demand for tooling that branches
// numerically. The stored value is not validated at load time, so this
// can fail for documents with a non-decimal width.
func (i Info) PointerBits() (uint, error) {
	bits, err := strconv.ParseUint(i.pointerWidth, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("pointer width %q is not a decimal number: %w", i.pointerWidth, err)
	}
	return safecast.Conv[uint](bits)
}

// String renders the target on one line for logs and error messages.
func (i Info) String() string {
	name := i.arch + "-" + i.vendor + "-" + i.os
	if i.env != "" {
		name += "-" + i.env
	}
	return fmt.Sprintf("%s (%s endian, %s-bit)", name, i.endian, i.pointerWidth)
}

// specDocument is the wire form of a target specification document.
// Only marshalling goes through it; loading uses the generic document
// model in spec.go so wrong-typed optional fields can fall back to
// their defaults.
type specDocument struct {
	Arch         string `json:"arch"`
	Vendor       string `json:"vendor"`
	OS           string `json:"os"`
	Env          string `json:"env"`
	Endian       string `json:"target-endian"`
	PointerWidth string `json:"target-pointer-width"`
}

// MarshalJSON emits the specification-document form of the target, so
// a marshalled Info is itself loadable by LoadSpec. There is
// deliberately no UnmarshalJSON: LoadSpec is the single entry point
// carrying the defaulting and validation rules.
func (i Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(specDocument{
		Arch:         i.arch,
		Vendor:       i.vendor,
		OS:           i.os,
		Env:          i.env,
		Endian:       string(i.endian),
		PointerWidth: i.pointerWidth,
	})
}
