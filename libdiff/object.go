package libdiff

import (
	"math"

	"github.com/signadot/spatch/debug"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/jsonpatch"
)

// diffObject visits the members of right in order, recursing into those
// left shares and adding the others, then removes the members only left
// has.  A single replace of the whole object is returned instead when it
// is shorter on the wire, or when a changed member name cannot be
// written as a path segment.
func diffObject(left, right, schema *ir.Node, at spath.Spath) (jsonpatch.Patch, DiffErrorSummary) {
	var (
		res        jsonpatch.Patch
		errs       DiffErrorSummary
		unwritable bool
	)
	for i, f := range right.Fields {
		key := f.String
		child := at.PushField(key)
		n := len(res)
		if lv := ir.Get(left, key); lv != nil {
			sub, subErrs := diffAt(lv, right.Values[i], propertySchema(schema, key), child)
			res = append(res, sub...)
			errs.Append(subErrs)
		} else {
			res = append(res, jsonpatch.AddOp(child, right.Values[i].Clone()))
		}
		if len(res) > n && !spath.IsAddressableField(key) {
			unwritable = true
		}
	}
	for _, f := range left.Fields {
		key := f.String
		if right.FieldIndex(key) != -1 {
			continue
		}
		res = append(res, jsonpatch.RemoveOp(at.PushField(key)))
		if !spath.IsAddressableField(key) {
			unwritable = true
		}
	}
	if len(res) == 0 {
		return nil, errs
	}
	replace := jsonpatch.Patch{jsonpatch.ReplaceOp(at, right.Clone())}
	if unwritable {
		return replace, errs
	}
	members, whole := wireSize(res), wireSize(replace)
	if debug.Diff() {
		debug.Logf("diff %s: %d member ops in %d bytes, replace in %d bytes\n", at, len(res), members, whole)
	}
	if whole < members {
		return replace, errs
	}
	return res, errs
}

func wireSize(p jsonpatch.Patch) int {
	d, err := p.MarshalJSON()
	if err != nil {
		return math.MaxInt
	}
	return len(d)
}
