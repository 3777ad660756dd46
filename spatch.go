// Package spatch computes and applies JSON patches whose paths may select
// array elements by content.
//
// Paths are Spaths: JSON Pointers extended with filter segments, so that
// "/users/[name=ann]/roles" names the roles of the first element of
// users whose name is "ann".  See [spath.Parse].
package spatch

import (
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/jsonpatch"
	"github.com/signadot/spatch/libdiff"
	"github.com/signadot/spatch/resolve"
)

// Diff produces a patch which turns left into right.  If there are no
// differences, the patch is empty.
//
// schema, which may be nil, steers the diff with three members at each
// level of nesting:
//
//   - properties maps member names to the schema of the member's value.
//
//   - items is the schema of the elements of an array.
//
//   - indexKey names a member identifying the elements of an array.
//     Elements are then matched by the value of that member rather than
//     by position, and patched through filter segments.
//
// Elements of a keyed array which lack the key, carry a non-string key or
// repeat a key already seen are reported in the summary.  When the
// summary is empty, Apply(left, patch) is equal to right.
func Diff(left, right, schema *ir.Node) (jsonpatch.Patch, libdiff.DiffErrorSummary) {
	return libdiff.Diff(left, right, schema)
}

// Apply applies patch to doc.  All operations are applied or none are:
// on failure doc is returned unchanged with an error listing every
// operation which failed.
func Apply(doc *ir.Node, patch jsonpatch.Patch) (*ir.Node, error) {
	return jsonpatch.Apply(doc, patch)
}

// GetValueAt returns the value in doc at the Spath written as path.
func GetValueAt(doc *ir.Node, path string) (*ir.Node, error) {
	return resolve.GetValueAt(doc, path)
}

// ParsePath parses the text form of a Spath.
func ParsePath(path string) (spath.Spath, error) {
	return spath.Parse(path)
}
