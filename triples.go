package triad

import "sort"

// tri builds one table entry. Keeping the rows on one line each keeps
// the table auditable against the toolchain's target list.
func tri(arch, vendor, os, env string, endian Endianness, width string) Info {
	return Info{arch: arch, vendor: vendor, os: os, env: env, endian: endian, pointerWidth: width}
}

// triples maps every built-in target triple to its description. Adding
// a target is a data-only change: add a row, nothing else.
var triples = map[string]Info{
	"x86_64-unknown-linux-gnu":      tri("x86_64", "unknown", "linux", "gnu", LittleEndian, "64"),
	"i686-unknown-linux-gnu":        tri("x86", "unknown", "linux", "gnu", LittleEndian, "32"),
	"i586-unknown-linux-gnu":        tri("x86", "unknown", "linux", "gnu", LittleEndian, "32"),
	"mips-unknown-linux-gnu":        tri("mips", "unknown", "linux", "gnu", BigEndian, "32"),
	"mipsel-unknown-linux-gnu":      tri("mips", "unknown", "linux", "gnu", LittleEndian, "32"),
	"powerpc-unknown-linux-gnu":     tri("powerpc", "unknown", "linux", "gnu", BigEndian, "32"),
	"powerpc64-unknown-linux-gnu":   tri("powerpc64", "unknown", "linux", "gnu", BigEndian, "64"),
	"powerpc64le-unknown-linux-gnu": tri("powerpc64", "unknown", "linux", "gnu", LittleEndian, "64"),
	"arm-unknown-linux-gnueabi":     tri("arm", "unknown", "linux", "gnu", LittleEndian, "32"),
	"arm-unknown-linux-gnueabihf":   tri("arm", "unknown", "linux", "gnu", LittleEndian, "32"),
	"armv7-unknown-linux-gnueabihf": tri("arm", "unknown", "linux", "gnu", LittleEndian, "32"),
	"aarch64-unknown-linux-gnu":     tri("aarch64", "unknown", "linux", "gnu", LittleEndian, "64"),
	"x86_64-unknown-linux-musl":     tri("x86_64", "unknown", "linux", "musl", LittleEndian, "64"),
	"i686-unknown-linux-musl":       tri("x86", "unknown", "linux", "musl", LittleEndian, "32"),
	"mips-unknown-linux-musl":       tri("mips", "unknown", "linux", "musl", BigEndian, "32"),
	"mipsel-unknown-linux-musl":     tri("mips", "unknown", "linux", "musl", LittleEndian, "32"),
	"i686-linux-android":            tri("x86", "unknown", "android", "", LittleEndian, "32"),
	"arm-linux-androideabi":         tri("arm", "unknown", "android", "", LittleEndian, "32"),
	"armv7-linux-androideabi":       tri("arm", "unknown", "android", "", LittleEndian, "32"),
	"aarch64-linux-android":         tri("aarch64", "unknown", "android", "", LittleEndian, "64"),
	"i686-unknown-freebsd":          tri("x86", "unknown", "freebsd", "", LittleEndian, "32"),
	"x86_64-unknown-freebsd":        tri("x86_64", "unknown", "freebsd", "", LittleEndian, "64"),
	"i686-unknown-dragonfly":        tri("x86", "unknown", "dragonfly", "", LittleEndian, "32"),
	"x86_64-unknown-dragonfly":      tri("x86_64", "unknown", "dragonfly", "", LittleEndian, "64"),
	"x86_64-unknown-bitrig":         tri("x86_64", "unknown", "bitrig", "", LittleEndian, "64"),
	"x86_64-unknown-openbsd":        tri("x86_64", "unknown", "openbsd", "", LittleEndian, "64"),
	"x86_64-unknown-netbsd":         tri("x86_64", "unknown", "netbsd", "", LittleEndian, "64"),
	"x86_64-rumprun-netbsd":         tri("x86_64", "rumprun", "netbsd", "", LittleEndian, "64"),
	"x86_64-apple-darwin":           tri("x86_64", "apple", "macos", "", LittleEndian, "64"),
	"i686-apple-darwin":             tri("x86", "apple", "macos", "", LittleEndian, "32"),
	"i386-apple-ios":                tri("x86", "apple", "ios", "", LittleEndian, "32"),
	"x86_64-apple-ios":              tri("x86_64", "apple", "ios", "", LittleEndian, "64"),
	"aarch64-apple-ios":             tri("aarch64", "apple", "ios", "", LittleEndian, "64"),
	"armv7-apple-ios":               tri("arm", "apple", "ios", "", LittleEndian, "32"),
	"armv7s-apple-ios":              tri("arm", "apple", "ios", "", LittleEndian, "32"),
	"x86_64-sun-solaris":            tri("x86_64", "sun", "solaris", "", LittleEndian, "64"),
	"x86_64-pc-windows-gnu":         tri("x86_64", "pc", "windows", "gnu", LittleEndian, "64"),
	"i686-pc-windows-gnu":           tri("x86", "pc", "windows", "gnu", LittleEndian, "32"),
	"x86_64-pc-windows-msvc":        tri("x86_64", "pc", "windows", "msvc", LittleEndian, "64"),
	"i586-pc-windows-msvc":          tri("x86", "pc", "windows", "msvc", LittleEndian, "32"),
	"i686-pc-windows-msvc":          tri("x86", "pc", "windows", "msvc", LittleEndian, "32"),
	"le32-unknown-nacl":             tri("le32", "unknown", "nacl", "newlib", LittleEndian, "32"),
	"asmjs-unknown-emscripten":      tri("asmjs", "unknown", "emscripten", "", LittleEndian, "32"),
}

// LookupTriple returns the description of a built-in target triple.
// Matching is case-sensitive and byte-exact; no filesystem access.
func LookupTriple(triple string) (Info, bool) {
	info, ok := triples[triple]
	return info, ok
}

// Triples returns the names of all built-in triples, sorted.
func Triples() []string {
	names := make([]string, 0, len(triples))
	for name := range triples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
