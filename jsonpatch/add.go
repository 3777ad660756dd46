package jsonpatch

import (
	"github.com/signadot/spatch/debug"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
)

// Add inserts value at path.  On an object the member named by the last
// segment is set, keeping its position if it exists and appending it
// otherwise.  On an array the last segment is an index in [0, len] or
// "-", and later elements shift right.  The empty path replaces the
// whole document with value.
//
// Add returns the resulting document.  doc is modified in place except
// when path is the root.
func Add(doc *ir.Node, path spath.Spath, value *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("add %s %v\n", path, value)
	}
	if path.IsRoot() {
		return value, nil
	}
	parent, last, err := container(doc, path)
	if err != nil {
		return doc, err
	}
	if last.IsFilter() {
		return doc, &MissingFinalTokenError{Path: path}
	}
	if parent.Type == ir.ObjectType {
		parent.Set(last.Field, value)
		return doc, nil
	}
	i, err := arrayIndex(parent, path, last.Field, true)
	if err != nil {
		return doc, err
	}
	parent.Insert(i, value)
	return doc, nil
}
