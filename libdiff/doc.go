// Package libdiff computes the patch that turns one document into
// another.
//
// # Usage
//
//	patch, errs := libdiff.Diff(left, right, schema)
//	if !errs.IsEmpty() {
//		// some array elements could not be matched by key
//	}
//	doc, err := jsonpatch.Apply(left, patch)
//
// Objects are diffed member by member, falling back to a single replace
// when that is shorter on the wire.  Arrays are diffed by position unless
// the schema names an index key for them, in which case elements are
// matched by the value of that key and addressed with filter segments
// such as "/items/[id=a]".
//
// The schema is any document; only its "properties", "items" and
// "indexKey" members are read.
package libdiff
