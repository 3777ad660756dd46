// Package ir provides the in-memory tree value for JSON documents.
//
// # Overview
//
// Every document handled by spatch, whether decoded from JSON or YAML,
// produced by a diff, or carried in a patch operation, is an *ir.Node tree.
// The tree is a recursive tagged union: the Type field selects which of the
// other fields carry the value.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean, in Bool
//   - NumberType: number, see Numbers below
//   - StringType: string, in String
//   - ArrayType: ordered list, in Values
//   - ObjectType: key-value pairs, in Fields and Values
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "id", Val: ir.FromString("abc")},
//	    {Key: "count", Val: ir.FromInt(2)},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the StringType key for the value at
// Values[i]. Keys are unique and keep insertion order; Set on an existing
// key overwrites in place, Set on a new key appends.
//
// # Numbers
//
// Number always holds the literal text of the number. In addition:
//   - Int64 is set for integers fitting in 64 signed bits
//   - Float64 is set for numbers written with a fraction or exponent
//   - neither is set for integers beyond the int64 range up to the
//     uint64 maximum, which are compared by their canonical text
//
// Integers and floats never compare equal, so 1 and 1.0 are distinct values.
//
// # Equality
//
// Equal is structural: arrays compare element-wise in order, objects
// compare by key regardless of key order.
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone a tree for each goroutine that
// mutates it.
//
// # Related Packages
//
//   - github.com/signadot/spatch/parse - decodes text into nodes
//   - github.com/signadot/spatch/encode - encodes nodes to text
//   - github.com/signadot/spatch/ir/spath - paths into node trees
package ir
