package jsonpatch

import (
	"fmt"

	"github.com/signadot/spatch/debug"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/resolve"
)

// Remove deletes the value at path.  An array element may be named by
// index or by a filter segment, in which case the first matching element
// is removed.
func Remove(doc *ir.Node, path spath.Spath) (*ir.Node, error) {
	_, err := remove(doc, path)
	return doc, err
}

func remove(doc *ir.Node, path spath.Spath) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("remove %s\n", path)
	}
	if path.IsRoot() {
		return nil, ErrCannotRemoveRoot
	}
	parent, last, err := container(doc, path)
	if err != nil {
		return nil, err
	}
	if parent.Type == ir.ObjectType {
		if last.IsFilter() {
			return nil, &resolve.TypeMismatchError{Expected: "array", Actual: ir.Describe(parent)}
		}
		v := ir.Get(parent, last.Field)
		if v == nil {
			return nil, &TargetNotFoundError{Path: path}
		}
		parent.Delete(last.Field)
		return v, nil
	}
	if last.IsFilter() {
		i := resolve.FilterIndex(parent, last.Conditions)
		if i == -1 {
			return nil, fmt.Errorf("%w: %s", resolve.ErrNotFound, path)
		}
		return parent.RemoveAt(i), nil
	}
	i, err := arrayIndex(parent, path, last.Field, false)
	if err != nil {
		return nil, err
	}
	return parent.RemoveAt(i), nil
}
