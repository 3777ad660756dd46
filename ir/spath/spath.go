package spath

import (
	"slices"
	"strconv"
	"strings"
)

// Spath is an ordered sequence of segments.  The zero value is the root
// path.
type Spath struct {
	segments []Segment
}

func New(segs ...Segment) Spath {
	return Spath{segments: slices.Clone(segs)}
}

// Root returns the empty path.
func Root() Spath {
	return Spath{}
}

func (p Spath) IsRoot() bool {
	return len(p.segments) == 0
}

func (p Spath) Len() int {
	return len(p.segments)
}

// Segments returns a copy of the segments of p.
func (p Spath) Segments() []Segment {
	return slices.Clone(p.segments)
}

func (p Spath) Segment(i int) Segment {
	return p.segments[i]
}

// Push returns a new path extending p by seg.
func (p Spath) Push(seg Segment) Spath {
	segs := make([]Segment, len(p.segments), len(p.segments)+1)
	copy(segs, p.segments)
	return Spath{segments: append(segs, seg)}
}

func (p Spath) PushField(name string) Spath {
	return p.Push(Field(name))
}

func (p Spath) PushIndex(i int) Spath {
	return p.Push(Field(strconv.Itoa(i)))
}

func (p Spath) PushFilter(key, value string) Spath {
	return p.Push(Filter(Condition{Key: key, Value: value}))
}

// Parent returns p without its last segment.  The root has no parent.
func (p Spath) Parent() (Spath, bool) {
	if p.IsRoot() {
		return p, false
	}
	return Spath{segments: p.segments[:len(p.segments)-1:len(p.segments)-1]}, true
}

func (p Spath) Last() (Segment, bool) {
	if p.IsRoot() {
		return Segment{}, false
	}
	return p.segments[len(p.segments)-1], true
}

func (p Spath) Equal(o Spath) bool {
	return slices.EqualFunc(p.segments, o.segments, Segment.Equal)
}

// IsProperPrefixOf reports whether p is a strict ancestor of o.
func (p Spath) IsProperPrefixOf(o Spath) bool {
	if len(p.segments) >= len(o.segments) {
		return false
	}
	return slices.EqualFunc(p.segments, o.segments[:len(p.segments)], Segment.Equal)
}

// HasFilter reports whether any segment of p is a filter.
func (p Spath) HasFilter() bool {
	return slices.ContainsFunc(p.segments, Segment.IsFilter)
}

// String returns the canonical text of p, "" for the root.
func (p Spath) String() string {
	buf := &strings.Builder{}
	for _, seg := range p.segments {
		buf.WriteByte('/')
		buf.WriteString(seg.String())
	}
	return buf.String()
}

func (p Spath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Spath) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}
