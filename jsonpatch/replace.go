package jsonpatch

import (
	"fmt"

	"github.com/signadot/spatch/debug"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/resolve"
)

// Replace overwrites the existing value at path.  The empty path
// replaces the whole document.
func Replace(doc *ir.Node, path spath.Spath, value *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("replace %s %v\n", path, value)
	}
	if path.IsRoot() {
		return value, nil
	}
	ref, err := resolve.Write(doc, path)
	if err != nil {
		return doc, resolveErr("path", path, err)
	}
	if err := ref.Set(value); err != nil {
		return doc, err
	}
	return doc, nil
}

// Copy adds a deep copy of the value at from to path.
func Copy(doc *ir.Node, from, path spath.Spath) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("copy %s -> %s\n", from, path)
	}
	v, err := resolve.Read(doc, from)
	if err != nil {
		return doc, resolveErr("from", from, err)
	}
	return Add(doc, path, v.Clone())
}

// Test checks that the value at path equals value.
func Test(doc *ir.Node, path spath.Spath, value *ir.Node) error {
	if debug.Patch() {
		debug.Logf("test %s %v\n", path, value)
	}
	v, err := resolve.Read(doc, path)
	if err != nil {
		return resolveErr("path", path, err)
	}
	if !ir.Equal(v, value) {
		return fmt.Errorf("%w: %s: expected %s, found %s",
			ErrValuesNotEqual, displayPath(path), compact(value), compact(v))
	}
	return nil
}

func compact(v *ir.Node) string {
	d, err := marshalValue(v)
	if err != nil {
		return ir.Describe(v)
	}
	return string(d)
}

