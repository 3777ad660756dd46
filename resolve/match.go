package resolve

import (
	"strings"

	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"

	"github.com/tidwall/gjson"
)

// FilterIndex returns the index of the first element of arr matching all
// conds, or -1.
func FilterIndex(arr *ir.Node, conds []spath.Condition) int {
	for i, elt := range arr.Values {
		if Matches(elt, conds) {
			return i
		}
	}
	return -1
}

// Matches reports whether elt is an object whose fields match every
// condition.
func Matches(elt *ir.Node, conds []spath.Condition) bool {
	if elt.Type != ir.ObjectType {
		return false
	}
	for _, c := range conds {
		v := ir.Get(elt, c.Key)
		if v == nil || !MatchValue(v, c.Value) {
			return false
		}
	}
	return true
}

// MatchValue compares a scalar against the text of a filter value.
// Strings match exactly, booleans match "true" or "false" in any case and
// numbers match when text is a JSON number of the same kind and value.
// Null, arrays and objects never match.
func MatchValue(v *ir.Node, text string) bool {
	switch v.Type {
	case ir.StringType:
		return v.String == text
	case ir.BoolType:
		switch strings.ToLower(text) {
		case "true":
			return v.Bool
		case "false":
			return !v.Bool
		}
		return false
	case ir.NumberType:
		return matchNumber(v, text)
	default:
		return false
	}
}

func matchNumber(v *ir.Node, text string) bool {
	if !gjson.Valid(text) || gjson.Parse(text).Type != gjson.Number {
		return false
	}
	n, err := ir.FromNumberText(text)
	if err != nil {
		return false
	}
	return ir.Equal(v, n)
}
