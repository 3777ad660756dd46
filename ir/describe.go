package ir

import "strconv"

// Describe renders the type and, for scalars, the value of y in the form
// used by error messages: null, boolean(true), number(2), string("x"),
// array, object.
func Describe(y *Node) string {
	if y == nil {
		return "missing"
	}
	switch y.Type {
	case NullType:
		return "null"
	case BoolType:
		return "boolean(" + strconv.FormatBool(y.Bool) + ")"
	case NumberType:
		return "number(" + y.Number + ")"
	case StringType:
		return "string(" + strconv.Quote(y.String) + ")"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	}
	return y.Type.String()
}
