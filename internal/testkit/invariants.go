// Package testkit holds shared invariant checks used across test suites.
package testkit

import (
	"fmt"

	"triad"
)

// CheckInfoInvariants runs the structural invariants every resolved
// target must satisfy:
// 1) arch and os are non-empty
// 2) endianness is either little or big
// 3) pointer width is non-empty
func CheckInfoInvariants(info triad.Info) error {
	if info.Arch() == "" {
		return fmt.Errorf("empty arch")
	}
	if info.OS() == "" {
		return fmt.Errorf("empty os")
	}
	if e := info.Endian(); e != triad.LittleEndian && e != triad.BigEndian {
		return fmt.Errorf("endianness %q outside {little, big}", e)
	}
	if info.PointerWidth() == "" {
		return fmt.Errorf("empty pointer width")
	}
	return nil
}

// CheckBuiltinInvariants extends CheckInfoInvariants with what the
// built-in triple table additionally guarantees:
// 1) vendor is non-empty
// 2) pointer width parses as a bit count
func CheckBuiltinInvariants(info triad.Info) error {
	if err := CheckInfoInvariants(info); err != nil {
		return err
	}
	if info.Vendor() == "" {
		return fmt.Errorf("empty vendor")
	}
	bits, err := info.PointerBits()
	if err != nil {
		return fmt.Errorf("pointer width %q does not parse: %w", info.PointerWidth(), err)
	}
	if bits != 16 && bits != 32 && bits != 64 {
		return fmt.Errorf("pointer width %d outside {16, 32, 64}", bits)
	}
	return nil
}
