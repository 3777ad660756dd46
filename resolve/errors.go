package resolve

import (
	"errors"
	"fmt"

	"github.com/signadot/spatch/ir/spath"
)

var (
	ErrNotFound = errors.New("not found")
	ErrReadOnly = errors.New("reference is read-only")
	ErrNoParent = errors.New("root has no parent")
)

// TypeMismatchError reports a segment applied to a value of the wrong
// type.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, found %s", e.Expected, e.Actual)
}

// InvalidPathError wraps a syntax error in a path given as text.
type InvalidPathError struct {
	Err *spath.PathError
}

func (e *InvalidPathError) Error() string {
	return "invalid path: " + e.Err.Error()
}

func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

func notFound(at spath.Spath) error {
	return fmt.Errorf("%w: %s", ErrNotFound, display(at))
}

func display(p spath.Spath) string {
	if p.IsRoot() {
		return `""`
	}
	return p.String()
}
