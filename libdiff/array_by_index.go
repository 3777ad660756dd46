package libdiff

import (
	"github.com/signadot/spatch/debug"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/jsonpatch"
)

// diffArrayByIndex diffs arrays by position.  Truncation, removal from
// the front, appending and insertion at the front are recognized as
// such; anything else diffs the common prefix pairwise, then removes the
// surplus of left from the end or appends the surplus of right.
func diffArrayByIndex(left, right, schema *ir.Node, at spath.Spath) (jsonpatch.Patch, DiffErrorSummary) {
	l, r := left.Values, right.Values
	nl, nr := len(l), len(r)
	var res jsonpatch.Patch
	switch {
	case nr < nl && seqEqual(l[:nr], r):
		for i := nl - 1; i >= nr; i-- {
			res = append(res, jsonpatch.RemoveOp(at.PushIndex(i)))
		}
		logIndexed(at, "truncate", len(res))
		return res, DiffErrorSummary{}
	case nr < nl && seqEqual(l[nl-nr:], r):
		for range nl - nr {
			res = append(res, jsonpatch.RemoveOp(at.PushIndex(0)))
		}
		logIndexed(at, "remove front", len(res))
		return res, DiffErrorSummary{}
	case nl < nr && seqEqual(r[:nl], l):
		for _, v := range r[nl:] {
			res = append(res, jsonpatch.AddOp(at.PushField("-"), v.Clone()))
		}
		logIndexed(at, "append", len(res))
		return res, DiffErrorSummary{}
	case nl < nr && seqEqual(r[nr-nl:], l):
		for i := nr - nl - 1; i >= 0; i-- {
			res = append(res, jsonpatch.AddOp(at.PushIndex(0), r[i].Clone()))
		}
		logIndexed(at, "insert front", len(res))
		return res, DiffErrorSummary{}
	}

	var errs DiffErrorSummary
	items := itemsSchema(schema)
	for i := range min(nl, nr) {
		sub, subErrs := diffAt(l[i], r[i], items, at.PushIndex(i))
		res = append(res, sub...)
		errs.Append(subErrs)
	}
	for i := nl - 1; i >= nr; i-- {
		res = append(res, jsonpatch.RemoveOp(at.PushIndex(i)))
	}
	for _, v := range r[min(nl, nr):] {
		res = append(res, jsonpatch.AddOp(at.PushField("-"), v.Clone()))
	}
	logIndexed(at, "positional", len(res))
	return res, errs
}

func seqEqual(a, b []*ir.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ir.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func logIndexed(at spath.Spath, how string, n int) {
	if debug.Diff() {
		debug.Logf("diff %s: by index, %s, %d ops\n", at, how, n)
	}
}
