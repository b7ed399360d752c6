package triad

import (
	"errors"
	"fmt"
)

// The four error kinds a resolution can fail with. They are mutually
// exclusive: every error returned by this package matches exactly one
// of them under errors.Is / errors.As.
var (
	// ErrTargetUnset indicates that the TARGET environment variable is
	// absent or not valid text. Only FromEnvironment returns it.
	ErrTargetUnset = errors.New("TARGET is unset or not valid text")

	// ErrTargetNotFound indicates that the identifier matched no
	// built-in triple, no direct file, and no file in any search-path
	// directory.
	ErrTargetNotFound = errors.New("target not found")

	// ErrInvalidSpec indicates that a specification document was found
	// and read but failed structural validation: unparseable syntax, or
	// a missing or wrong-typed required field.
	ErrInvalidSpec = errors.New("invalid target specification")
)

// IOError reports a filesystem fault while opening or reading a
// specification document. It wraps the underlying cause, so
// errors.Is(err, os.ErrNotExist) and similar checks keep working.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
