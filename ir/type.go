package ir

// Type is the JSON type of a node.
type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

var typeNames = [...]string{
	NullType:   "null",
	BoolType:   "boolean",
	NumberType: "number",
	StringType: "string",
	ArrayType:  "array",
	ObjectType: "object",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "<unknown type>"
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// IsContainer reports whether values of type t hold child values.
func (t Type) IsContainer() bool {
	return t == ObjectType || t == ArrayType
}
