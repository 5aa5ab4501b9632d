package scene

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Build. They are wrapped with the path of the
// offending declaration; test with errors.Is.
var (
	ErrNoScenes        = errors.New("no scenes declared")
	ErrMissingKey      = errors.New("scene has no key")
	ErrDuplicateKey    = errors.New("duplicate scene key")
	ErrUnknownKind     = errors.New("unknown scene kind")
	ErrEmptyContainer  = errors.New("container has no children")
	ErrLeafChildren    = errors.New("scene declared as leaf has children")
	ErrMultipleInitial = errors.New("more than one child marked initial")
)

// DuplicateKeyError reports two siblings that resolve to the same key.
// It is fatal to the build and has to be fixed in the declaration.
type DuplicateKeyError struct {
	Parent string // Path of the container holding both siblings
	Key    string // The normalized key they share
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("scene: duplicate key %q under %q", e.Key, e.Parent)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// IsDuplicateKey checks if an error reports a duplicate sibling key.
func IsDuplicateKey(err error) bool {
	var dup *DuplicateKeyError
	return errors.As(err, &dup)
}
