package ir

// Equal reports whether a and b are structurally equal.  Arrays compare
// element-wise in order; objects compare by key independent of key order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return numbersEqual(a, b)
	case StringType:
		return a.String == b.String
	case ArrayType:
		return arraysEqual(a, b)
	case ObjectType:
		return objectsEqual(a, b)
	}
	return false
}

func arraysEqual(a, b *Node) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

func objectsEqual(a, b *Node) bool {
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	for i, f := range a.Fields {
		bv := Get(b, f.String)
		if bv == nil || !Equal(a.Values[i], bv) {
			return false
		}
	}
	return true
}
