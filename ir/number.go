package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FromNumberText builds a number node from the literal text of a JSON
// number.  Integer literals that overflow int64 but fit uint64 keep only
// their text; larger integers become floats, as does negative zero.
func FromNumberText(raw string) (*Node, error) {
	res := &Node{Type: NumberType, Number: raw}
	if !strings.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil && !(i == 0 && strings.HasPrefix(raw, "-")) {
			res.Int64 = &i
			return res, nil
		}
		if _, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return res, nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !isRangeErr(err) {
		return nil, fmt.Errorf("%w: %q", ErrNumber, raw)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("%w: %q out of range", ErrNumber, raw)
	}
	res.Float64 = &f
	return res, nil
}

// IsInteger reports whether a number node holds an integer.
func (y *Node) IsInteger() bool {
	return y.Type == NumberType && y.Float64 == nil
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func numbersEqual(a, b *Node) bool {
	if a.IsInteger() != b.IsInteger() {
		return false
	}
	if !a.IsInteger() {
		return *a.Float64 == *b.Float64
	}
	if a.Int64 != nil && b.Int64 != nil {
		return *a.Int64 == *b.Int64
	}
	if a.Int64 != nil || b.Int64 != nil {
		return false
	}
	return a.Number == b.Number
}
