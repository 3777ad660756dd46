package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/spatch/ir/spath"
)

type DiffErrorKind int

const (
	MissingIndexKey DiffErrorKind = iota
	NonStringIndexKey
	DuplicateIndexKey
	// UnaddressableIndexKey is a string key value that cannot be written
	// in a filter segment.
	UnaddressableIndexKey
)

func (k DiffErrorKind) String() string {
	switch k {
	case MissingIndexKey:
		return "MissingIndexKey"
	case NonStringIndexKey:
		return "NonStringIndexKey"
	case DuplicateIndexKey:
		return "DuplicateIndexKey"
	case UnaddressableIndexKey:
		return "UnaddressableIndexKey"
	}
	return fmt.Sprintf("DiffErrorKind(%d)", int(k))
}

// DiffError describes an array element that keyed diffing could not
// match.  Path is the position of the element, IndexKey the schema's
// index key and Value the offending key value, as JSON for
// NonStringIndexKey.
type DiffError struct {
	Kind     DiffErrorKind
	Path     spath.Spath
	IndexKey string
	Value    string
}

func (e DiffError) Error() string {
	switch e.Kind {
	case MissingIndexKey:
		return fmt.Sprintf("Item %s is missing index key '%s'", e.Path, e.IndexKey)
	case NonStringIndexKey:
		return fmt.Sprintf("Item %s has non-string index key: %s", e.Path, e.Value)
	case DuplicateIndexKey:
		return fmt.Sprintf("Item %s has duplicate index key '%s' with value '%s'", e.Path, e.IndexKey, e.Value)
	case UnaddressableIndexKey:
		return fmt.Sprintf("Item %s has index key '%s' with value %q, which a filter cannot express", e.Path, e.IndexKey, e.Value)
	}
	return e.Kind.String()
}

// DiffErrorSummary collects the errors found in the left and right
// documents.  When it is empty, applying the patch returned with it to
// the left document yields the right one.
type DiffErrorSummary struct {
	Left  []DiffError
	Right []DiffError
}

func (s DiffErrorSummary) IsEmpty() bool {
	return len(s.Left) == 0 && len(s.Right) == 0
}

func (s DiffErrorSummary) Len() int {
	return len(s.Left) + len(s.Right)
}

// Err returns s as an error, or nil when s is empty.
func (s DiffErrorSummary) Err() error {
	if s.IsEmpty() {
		return nil
	}
	return s
}

func (s DiffErrorSummary) Error() string {
	return fmt.Sprintf("Diff errors occurred; left: %s, right: %s", errList(s.Left), errList(s.Right))
}

// Append adds the errors of o after those of s.
func (s *DiffErrorSummary) Append(o DiffErrorSummary) {
	s.Left = append(s.Left, o.Left...)
	s.Right = append(s.Right, o.Right...)
}

func errList(errs []DiffError) string {
	msgs := make([]string, len(errs))
	for i := range errs {
		msgs[i] = errs[i].Error()
	}
	return "[" + strings.Join(msgs, "; ") + "]"
}
