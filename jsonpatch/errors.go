package jsonpatch

import (
	"errors"
	"fmt"

	"github.com/signadot/spatch/ir/spath"
)

var (
	ErrMissingParent       = errors.New("parent of the target location does not exist")
	ErrCannotRemoveRoot    = errors.New("cannot remove the root of the document")
	ErrCannotMoveIntoChild = errors.New("cannot move a value into one of its children")
	ErrValuesNotEqual      = errors.New("the values at the source and target paths are not equal")
	ErrInvalidOperation    = errors.New("invalid patch operation")
	ErrNotRFC6902          = errors.New("patch is not plain RFC 6902")
)

// MissingFinalTokenError reports an add whose path ends in a filter
// segment, which names no place to put the new value.
type MissingFinalTokenError struct {
	Path spath.Spath
}

func (e *MissingFinalTokenError) Error() string {
	return fmt.Sprintf("path %s must end in a field name, array index or '-'", displayPath(e.Path))
}

// NotAContainerError reports a parent that is neither object nor array.
type NotAContainerError struct {
	Parent spath.Spath
	Actual string
}

func (e *NotAContainerError) Error() string {
	return fmt.Sprintf("value at %s is %s, not an object or array", displayPath(e.Parent), e.Actual)
}

type InvalidArrayIndexTokenError struct {
	Path  spath.Spath
	Token string
}

func (e *InvalidArrayIndexTokenError) Error() string {
	return fmt.Sprintf("invalid array index %q in %s", e.Token, displayPath(e.Path))
}

type ArrayIndexOutOfBoundsError struct {
	Path  spath.Spath
	Index int
	Len   int
}

func (e *ArrayIndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("array index %d out of bounds for length %d in %s", e.Index, e.Len, displayPath(e.Path))
}

// TargetNotFoundError reports a remove of an absent object member.
type TargetNotFoundError struct {
	Path spath.Spath
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("nothing to remove at %s", displayPath(e.Path))
}
