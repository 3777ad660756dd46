package jsonpatch

import (
	"github.com/signadot/spatch/debug"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/resolve"
)

// Move removes the value at from and adds it at path.  It fails with
// ErrCannotMoveIntoChild when from is a proper ancestor of path; from
// equal to path is a no-op.  Both halves run on a copy of doc, so on
// failure doc is unchanged.
func Move(doc *ir.Node, from, path spath.Spath) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("move %s -> %s\n", from, path)
	}
	if _, err := resolve.Read(doc, from); err != nil {
		return doc, resolveErr("from", from, err)
	}
	if from.IsProperPrefixOf(path) {
		return doc, ErrCannotMoveIntoChild
	}
	if from.Equal(path) {
		return doc, nil
	}
	work := doc.Clone()
	v, err := remove(work, from)
	if err != nil {
		return doc, err
	}
	work, err = Add(work, path, v)
	if err != nil {
		return doc, err
	}
	return work, nil
}
