package scenerouter

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a declaration file whose extension is not
// .toml, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("unsupported scene file format")

// LoadError represents a failure to read or decode a declaration file.
// Build errors (duplicate keys and the like) are returned as they are,
// since they point at the declaration rather than the file.
type LoadError struct {
	Op   string // Operation that failed (e.g., "read", "decode")
	Path string // File being loaded
	Err  error  // Underlying error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scenerouter: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("scenerouter: %s %s", e.Op, e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new load error.
func NewLoadError(op, path string, err error) *LoadError {
	return &LoadError{Op: op, Path: path, Err: err}
}

// IsLoadError checks if an error is a load error.
func IsLoadError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}
