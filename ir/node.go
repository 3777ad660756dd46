package ir

import (
	"slices"
	"strconv"
)

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  formatFloat(f),
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object with keys in kvs order.  A repeated key
// overwrites the earlier value at the earlier position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

func Get(y *Node, field string) *Node {
	i := y.FieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// FieldIndex returns the position of field in an object, or -1.
func (y *Node) FieldIndex(field string) int {
	if y.Type != ObjectType {
		return -1
	}
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// Set sets field to v, overwriting an existing member in place or
// appending a new one.
func (y *Node) Set(field string, v *Node) {
	if i := y.FieldIndex(field); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, v)
}

// Delete removes field and reports whether it was present.
func (y *Node) Delete(field string) bool {
	i := y.FieldIndex(field)
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

// Insert inserts v at index i of an array, shifting later elements right.
// i must be in [0, len(y.Values)].
func (y *Node) Insert(i int, v *Node) {
	y.Values = slices.Insert(y.Values, i, v)
}

// RemoveAt removes element i of an array, shifting later elements left.
func (y *Node) RemoveAt(i int) *Node {
	v := y.Values[i]
	y.Values = slices.Delete(y.Values, i, i+1)
	return v
}

// Replace overwrites y in place with the contents of v, so that
// references to y observe the new value.
func (y *Node) Replace(v *Node) {
	*y = *v
}
