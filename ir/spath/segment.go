package spath

import (
	"slices"
	"strings"
)

// Condition is one key=value test of a filter segment.
type Condition struct {
	Key   string
	Value string
}

// Segment is either a field (Conditions == nil) or a filter.
type Segment struct {
	Field      string
	Conditions []Condition
}

func Field(name string) Segment {
	return Segment{Field: name}
}

func Filter(conds ...Condition) Segment {
	if conds == nil {
		conds = []Condition{}
	}
	return Segment{Conditions: slices.Clone(conds)}
}

func (s Segment) IsFilter() bool {
	return s.Conditions != nil
}

func (s Segment) Equal(o Segment) bool {
	if s.IsFilter() != o.IsFilter() {
		return false
	}
	if !s.IsFilter() {
		return s.Field == o.Field
	}
	return slices.Equal(s.Conditions, o.Conditions)
}

// String returns the canonical text of the segment without the leading '/'.
func (s Segment) String() string {
	if !s.IsFilter() {
		return escaper.Replace(s.Field)
	}
	buf := &strings.Builder{}
	buf.WriteByte('[')
	for i, c := range s.Conditions {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(c.Key)
		buf.WriteByte('=')
		buf.WriteString(c.Value)
	}
	buf.WriteByte(']')
	return buf.String()
}

var escaper = strings.NewReplacer("~", "~0", "/", "~1")

// IsAddressableField reports whether a field segment named name survives
// rendering and parsing.  '[' may not occur in a field name.
func IsAddressableField(name string) bool {
	return !strings.ContainsRune(name, '[')
}

// IsAddressableCondition reports whether key=value can be written as a
// filter condition that parses back to the same key and value.
func IsAddressableCondition(key, value string) bool {
	if !isIdent(key) {
		return false
	}
	if value == "" || strings.TrimSpace(value) != value {
		return false
	}
	return !strings.ContainsAny(value, ",]")
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}
