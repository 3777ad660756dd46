package jsonpatch

import (
	"errors"
	"fmt"

	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/resolve"
)

// container resolves the parent of the non-root path p for writing.  A
// parent that does not exist is ErrMissingParent; one that is not an
// object or array is a NotAContainerError.
func container(doc *ir.Node, p spath.Spath) (*ir.Node, spath.Segment, error) {
	ref, last, err := resolve.Parent(doc, p, resolve.Mutable)
	if err != nil {
		if errors.Is(err, resolve.ErrNotFound) {
			return nil, last, fmt.Errorf("%w: %w", ErrMissingParent, err)
		}
		return nil, last, err
	}
	parent := ref.Node()
	if !parent.Type.IsContainer() {
		return nil, last, &NotAContainerError{Parent: ref.Path(), Actual: ir.Describe(parent)}
	}
	return parent, last, nil
}

// arrayIndex parses the final token of p as an index into arr.  When
// allowEnd is set, "-" and len(arr) address the position after the last
// element.
func arrayIndex(arr *ir.Node, p spath.Spath, tok string, allowEnd bool) (int, error) {
	n := len(arr.Values)
	if tok == "-" && allowEnd {
		return n, nil
	}
	i, ok := resolve.ParseIndex(tok)
	if !ok {
		return 0, &InvalidArrayIndexTokenError{Path: p, Token: tok}
	}
	if i > n || (i == n && !allowEnd) {
		return 0, &ArrayIndexOutOfBoundsError{Path: p, Index: i, Len: n}
	}
	return i, nil
}

func resolveErr(what string, p spath.Spath, err error) error {
	return fmt.Errorf("failed to resolve %s %s: %w", what, displayPath(p), err)
}
