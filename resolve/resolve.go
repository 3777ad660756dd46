package resolve

import (
	"errors"
	"math"

	"github.com/signadot/spatch/debug"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"

	"github.com/agentflare-ai/jsonpointer"
)

type Mode int

const (
	ReadOnly Mode = iota
	Mutable
)

func (m Mode) String() string {
	if m == Mutable {
		return "mutable"
	}
	return "read-only"
}

// Ref references a node inside a document.
type Ref struct {
	node *ir.Node
	path spath.Spath
	mode Mode
}

func (r Ref) Node() *ir.Node    { return r.node }
func (r Ref) Path() spath.Spath { return r.path }
func (r Ref) Mode() Mode        { return r.mode }

// Set overwrites the referenced node with v.  It fails with ErrReadOnly
// unless r is Mutable.
func (r Ref) Set(v *ir.Node) error {
	if r.mode != Mutable {
		return ErrReadOnly
	}
	r.node.Replace(v)
	return nil
}

// Resolve follows p from doc.
func Resolve(doc *ir.Node, p spath.Spath, mode Mode) (Ref, error) {
	node, err := walk(doc, p)
	if debug.Resolve() {
		debug.Logf("resolve %s (%s) -> %v err=%v\n", p, mode, node, err)
	}
	if err != nil {
		return Ref{}, err
	}
	return Ref{node: node, path: p, mode: mode}, nil
}

// Read resolves p for reading.
func Read(doc *ir.Node, p spath.Spath) (*ir.Node, error) {
	ref, err := Resolve(doc, p, ReadOnly)
	if err != nil {
		return nil, err
	}
	return ref.Node(), nil
}

// Write resolves p for writing.
func Write(doc *ir.Node, p spath.Spath) (Ref, error) {
	return Resolve(doc, p, Mutable)
}

// GetValueAt parses text as a Spath and reads the value it addresses.
func GetValueAt(doc *ir.Node, text string) (*ir.Node, error) {
	p, err := spath.Parse(text)
	if err != nil {
		var pe *spath.PathError
		if errors.As(err, &pe) {
			return nil, &InvalidPathError{Err: pe}
		}
		return nil, err
	}
	return Read(doc, p)
}

func walk(doc *ir.Node, p spath.Spath) (*ir.Node, error) {
	cur := doc
	at := spath.Root()
	for _, seg := range p.Segments() {
		at = at.Push(seg)
		next, err := step(cur, seg, at)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func step(cur *ir.Node, seg spath.Segment, at spath.Spath) (*ir.Node, error) {
	if seg.IsFilter() {
		if cur.Type != ir.ArrayType {
			return nil, &TypeMismatchError{Expected: "array", Actual: ir.Describe(cur)}
		}
		i := FilterIndex(cur, seg.Conditions)
		if i == -1 {
			return nil, notFound(at)
		}
		return cur.Values[i], nil
	}
	switch cur.Type {
	case ir.ObjectType:
		v := ir.Get(cur, seg.Field)
		if v == nil {
			return nil, notFound(at)
		}
		return v, nil
	case ir.ArrayType:
		i, ok := ParseIndex(seg.Field)
		if !ok {
			return nil, &TypeMismatchError{
				Expected: "number",
				Actual:   ir.Describe(ir.FromString(seg.Field)),
			}
		}
		if i >= len(cur.Values) {
			return nil, notFound(at)
		}
		return cur.Values[i], nil
	default:
		return nil, &TypeMismatchError{Expected: "object or array", Actual: ir.Describe(cur)}
	}
}

// ParseIndex parses an RFC 6901 array index: base-10 digits with no
// sign and no leading zero.
func ParseIndex(tok string) (int, bool) {
	i, err := jsonpointer.ParseArrayIndex(tok)
	if err != nil || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}

// Parent resolves the container of the value p addresses, returning a
// reference to it and the final segment of p.  The root has no parent.
func Parent(doc *ir.Node, p spath.Spath, mode Mode) (Ref, spath.Segment, error) {
	pp, ok := p.Parent()
	if !ok {
		return Ref{}, spath.Segment{}, ErrNoParent
	}
	last, _ := p.Last()
	ref, err := Resolve(doc, pp, mode)
	if err != nil {
		return Ref{}, spath.Segment{}, err
	}
	return ref, last, nil
}
