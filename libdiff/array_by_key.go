package libdiff

import (
	"slices"

	"github.com/signadot/spatch/debug"
	"github.com/signadot/spatch/encode"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/jsonpatch"
)

// diffArrayByKey matches the elements of left and right by the string
// value of their member key.  Elements only in left are removed by
// filter and elements only in right are appended.  Moves then put the
// elements in the order of right, and elements in both are diffed in
// place under the items schema.
func diffArrayByKey(left, right *ir.Node, key string, schema *ir.Node, at spath.Spath) (jsonpatch.Patch, DiffErrorSummary) {
	var errs DiffErrorSummary
	leftMap, leftKeys := keyMap(left, key, at, &errs.Left)
	rightMap, rightKeys := keyMap(right, key, at, &errs.Right)
	if debug.Diff() {
		debug.Logf("diff %s: by key %q, %d left, %d right\n", at, key, len(leftKeys), len(rightKeys))
	}

	var res jsonpatch.Patch
	cur := make([]string, 0, len(rightKeys))
	for _, k := range leftKeys {
		if _, ok := rightMap[k]; !ok {
			res = append(res, jsonpatch.RemoveOp(at.PushFilter(key, k)))
			continue
		}
		cur = append(cur, k)
	}
	for _, k := range rightKeys {
		if _, ok := leftMap[k]; !ok {
			res = append(res, jsonpatch.AddOp(at.PushField("-"), rightMap[k].Clone()))
			cur = append(cur, k)
		}
	}
	res = append(res, reorder(cur, rightKeys, key, at)...)
	items := itemsSchema(schema)
	for _, k := range rightKeys {
		lv, ok := leftMap[k]
		if !ok {
			continue
		}
		sub, subErrs := diffAt(lv, rightMap[k], items, at.PushFilter(key, k))
		res = append(res, sub...)
		errs.Append(subErrs)
	}
	return res, errs
}

// keyMap indexes the elements of arr by their key value, the last
// element winning on duplicates.  It returns the distinct key values in
// order of first appearance.  Elements with no usable key are recorded
// in errs and left out.
func keyMap(arr *ir.Node, key string, at spath.Spath, errs *[]DiffError) (map[string]*ir.Node, []string) {
	m := make(map[string]*ir.Node, len(arr.Values))
	var order []string
	for i, elt := range arr.Values {
		var kv *ir.Node
		if elt.Type == ir.ObjectType {
			kv = ir.Get(elt, key)
		}
		e := DiffError{Path: at.PushIndex(i), IndexKey: key}
		switch {
		case kv == nil:
			e.Kind = MissingIndexKey
		case kv.Type != ir.StringType:
			e.Kind = NonStringIndexKey
			e.Value = encode.MustString(kv)
		case !spath.IsAddressableCondition(key, kv.String):
			e.Kind = UnaddressableIndexKey
			e.Value = kv.String
		default:
			if _, dup := m[kv.String]; dup {
				*errs = append(*errs, DiffError{
					Kind:     DuplicateIndexKey,
					Path:     e.Path,
					IndexKey: key,
					Value:    kv.String,
				})
			} else {
				order = append(order, kv.String)
			}
			m[kv.String] = elt
			continue
		}
		*errs = append(*errs, e)
	}
	return m, order
}

// reorder returns the moves turning the key sequence cur into want, a
// permutation of it.  Each move brings the element due at position i
// forward from a later position.
func reorder(cur, want []string, key string, at spath.Spath) jsonpatch.Patch {
	var res jsonpatch.Patch
	cur = slices.Clone(cur)
	for i, k := range want {
		if cur[i] == k {
			continue
		}
		j := slices.Index(cur[i:], k) + i
		res = append(res, jsonpatch.MoveOp(at.PushFilter(key, k), at.PushIndex(i)))
		cur = slices.Delete(cur, j, j+1)
		cur = slices.Insert(cur, i, k)
	}
	return res
}
