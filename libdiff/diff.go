package libdiff

import (
	"github.com/signadot/spatch/debug"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/jsonpatch"
)

// Diff returns a patch turning left into right, together with the
// problems found while matching array elements by key.  Those problems
// do not stop the diff; the elements concerned are left out of the
// patch.  schema may be nil.
//
// Neither left nor right is modified and the patch shares no nodes with
// them.
func Diff(left, right, schema *ir.Node) (jsonpatch.Patch, DiffErrorSummary) {
	p, errs := diffAt(left, right, schema, spath.Root())
	if p == nil {
		p = jsonpatch.Patch{}
	}
	return p, errs
}

func diffAt(left, right, schema *ir.Node, at spath.Spath) (jsonpatch.Patch, DiffErrorSummary) {
	switch {
	case left.Type == ir.ObjectType && right.Type == ir.ObjectType:
		return diffObject(left, right, schema, at)
	case left.Type == ir.ArrayType && right.Type == ir.ArrayType:
		return diffArray(left, right, schema, at)
	case ir.Equal(left, right):
		return nil, DiffErrorSummary{}
	}
	if debug.Diff() {
		debug.Logf("diff %s: replace %v with %v\n", at, left, right)
	}
	return jsonpatch.Patch{jsonpatch.ReplaceOp(at, right.Clone())}, DiffErrorSummary{}
}

func diffArray(left, right, schema *ir.Node, at spath.Spath) (jsonpatch.Patch, DiffErrorSummary) {
	key, ok := indexKey(schema)
	if !ok {
		return diffArrayByIndex(left, right, schema, at)
	}
	if !spath.IsAddressableCondition(key, "x") {
		if debug.Diff() {
			debug.Logf("diff %s: index key %q cannot be used in a filter, diffing by index\n", at, key)
		}
		return diffArrayByIndex(left, right, schema, at)
	}
	return diffArrayByKey(left, right, key, schema, at)
}
