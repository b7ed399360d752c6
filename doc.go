// Package triad resolves compile-target identifiers into structured
// target descriptions for build-time tooling.
//
// Build scripts, code generators and cross-compilation drivers often
// need to branch on the target they are building for, but unlike the
// compiler itself they only see the target as a string, usually through
// the TARGET environment variable. This package turns that string into
// the target's architecture, vendor, operating system, ABI environment,
// byte order and pointer width.
//
// An identifier is resolved in three steps, first match wins:
//  1. exact lookup in the built-in triple table (no filesystem access)
//  2. the identifier taken as a path to a specification document
//  3. search for "<identifier>.json" in the directories listed by the
//     TRIAD_TARGET_PATH environment variable, in listed order
//
// Typical use:
//
//	info, err := triad.FromEnvironment()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if info.OS() == "windows" {
//	    // windows-specific build steps
//	}
//
// Invariants:
//   - Every successfully resolved Info has a non-empty Arch and OS, an
//     Endian of exactly LittleEndian or BigEndian, and a non-empty
//     PointerWidth. Vendor and Env are always defaulted, never absent.
//   - Resolution never caches: each call re-reads environment and
//     filesystem state, so concurrent callers are safe by construction.
//   - Failures are data. The package never logs and never prints; every
//     failure is one of the four error kinds in errors.go.
package triad
