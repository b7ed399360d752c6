package triad

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"
)

// Environment variables consulted during resolution.
const (
	// EnvTarget names the variable FromEnvironment reads the target
	// identifier from. Build orchestrators conventionally export it for
	// the scripts they invoke.
	EnvTarget = "TARGET"

	// EnvTargetPath names the variable holding the search path for
	// specification documents: a platform-native list of directories,
	// colon-separated on POSIX systems and semicolon-separated on
	// Windows. Unset is treated as an empty list.
	EnvTargetPath = "TRIAD_TARGET_PATH"
)

// SpecSuffix is appended to a bare target name to form the candidate
// document filename during search-path lookup.
const SpecSuffix = ".json"

// Resolver resolves target identifiers against the built-in triple
// table and the filesystem. It holds no state besides its Host; calls
// never cache, so one Resolver may be shared by concurrent callers.
//
// The zero value is not usable; construct with NewResolver.
type Resolver struct {
	host Host
}

// NewResolver returns a Resolver that performs its environment and
// filesystem probes through host. Passing a nil host is a programmer
// error and panics.
func NewResolver(host Host) *Resolver {
	if host == nil {
		panic("triad: NewResolver called with nil Host")
	}
	return &Resolver{host: host}
}

// Resolve resolves a raw target identifier. The identifier may be a
// triple ("x86_64-unknown-linux-gnu"), a path to a specification
// document, or a bare name to locate in the search path. The three
// interpretations are tried in that order; the first match wins:
//
//  1. Built-in lookup. An exact hit in the triple table returns
//     immediately with no I/O.
//  2. Direct path. If raw names an existing regular file it is loaded
//     as a specification document.
//  3. Search path. raw + ".json" is probed in each directory listed by
//     EnvTargetPath, in listed order; the first existing file is
//     loaded. Empty list entries probe the working directory.
//
// When no step matches, the error is ErrTargetNotFound. Loader errors
// from steps 2 and 3 propagate unchanged.
func (r *Resolver) Resolve(raw string) (Info, error) {
	if info, ok := LookupTriple(raw); ok {
		return info, nil
	}
	if r.host.IsFile(raw) {
		return LoadSpec(raw)
	}
	candidate := raw + SpecSuffix
	searchPath, _ := r.host.LookupEnv(EnvTargetPath)
	for _, dir := range filepath.SplitList(searchPath) {
		if path := filepath.Join(dir, candidate); r.host.IsFile(path) {
			return LoadSpec(path)
		}
	}
	return Info{}, fmt.Errorf("%s: %w", raw, ErrTargetNotFound)
}

// FromEnvironment resolves the identifier held by the TARGET
// environment variable. It fails with ErrTargetUnset when the variable
// is absent or its value is not valid UTF-8; otherwise it delegates to
// Resolve.
func (r *Resolver) FromEnvironment() (Info, error) {
	raw, ok := r.host.LookupEnv(EnvTarget)
	if !ok || !utf8.ValidString(raw) {
		return Info{}, fmt.Errorf("%s: %w", EnvTarget, ErrTargetUnset)
	}
	return r.Resolve(raw)
}

// Resolve resolves raw against the real process environment and
// filesystem. See Resolver.Resolve for the resolution order.
func Resolve(raw string) (Info, error) {
	return NewResolver(SystemHost()).Resolve(raw)
}

// FromEnvironment resolves the target named by the TARGET environment
// variable of this process. See Resolver.FromEnvironment.
func FromEnvironment() (Info, error) {
	return NewResolver(SystemHost()).FromEnvironment()
}
