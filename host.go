package triad

import "os"

// Host abstracts the environment and filesystem probes a Resolver
// performs, so tests can substitute fixed values without mutating real
// process state. Both methods are read-only queries.
type Host interface {
	// LookupEnv returns the value of the named environment variable
	// and whether it is set.
	LookupEnv(name string) (string, bool)
	// IsFile reports whether path names an existing regular file.
	// Symlinks are followed.
	IsFile(path string) bool
}

// SystemHost returns the Host backed by the real process environment
// and filesystem.
func SystemHost() Host { return systemHost{} }

type systemHost struct{}

func (systemHost) LookupEnv(name string) (string, bool) { return os.LookupEnv(name) }

func (systemHost) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
