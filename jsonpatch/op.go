package jsonpatch

import (
	"fmt"

	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
)

type Op string

const (
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
	OpMove    Op = "move"
	OpCopy    Op = "copy"
	OpTest    Op = "test"
)

func Ops() []Op {
	return []Op{OpAdd, OpRemove, OpReplace, OpMove, OpCopy, OpTest}
}

func (o Op) IsValid() bool {
	switch o {
	case OpAdd, OpRemove, OpReplace, OpMove, OpCopy, OpTest:
		return true
	}
	return false
}

// HasValue reports whether operations of kind o carry a value.
func (o Op) HasValue() bool {
	return o == OpAdd || o == OpReplace || o == OpTest
}

// HasFrom reports whether operations of kind o carry a source path.
func (o Op) HasFrom() bool {
	return o == OpMove || o == OpCopy
}

// Operation is one step of a Patch.  From is used by move and copy,
// Value by add, replace and test.
type Operation struct {
	Op    Op
	Path  spath.Spath
	From  spath.Spath
	Value *ir.Node
}

type Patch []Operation

func AddOp(path spath.Spath, value *ir.Node) Operation {
	return Operation{Op: OpAdd, Path: path, Value: value}
}

func RemoveOp(path spath.Spath) Operation {
	return Operation{Op: OpRemove, Path: path}
}

func ReplaceOp(path spath.Spath, value *ir.Node) Operation {
	return Operation{Op: OpReplace, Path: path, Value: value}
}

func MoveOp(from, path spath.Spath) Operation {
	return Operation{Op: OpMove, From: from, Path: path}
}

func CopyOp(from, path spath.Spath) Operation {
	return Operation{Op: OpCopy, From: from, Path: path}
}

func TestOp(path spath.Spath, value *ir.Node) Operation {
	return Operation{Op: OpTest, Path: path, Value: value}
}

// Apply applies the single operation o to doc.  The value of o is cloned
// so the result never shares nodes with the patch.
func (o Operation) Apply(doc *ir.Node) (*ir.Node, error) {
	switch o.Op {
	case OpAdd:
		return Add(doc, o.Path, o.Value.Clone())
	case OpRemove:
		return Remove(doc, o.Path)
	case OpReplace:
		return Replace(doc, o.Path, o.Value.Clone())
	case OpMove:
		return Move(doc, o.From, o.Path)
	case OpCopy:
		return Copy(doc, o.From, o.Path)
	case OpTest:
		return doc, Test(doc, o.Path, o.Value)
	}
	return doc, fmt.Errorf("%w: unknown op %q", ErrInvalidOperation, o.Op)
}

// String renders o on one line, as in "move /a -> /b".
func (o Operation) String() string {
	s := string(o.Op) + " "
	if o.Op.HasFrom() {
		s += displayPath(o.From) + " -> "
	}
	s += displayPath(o.Path)
	if o.Op.HasValue() && o.Value != nil {
		d, err := marshalValue(o.Value)
		if err == nil {
			s += " " + string(d)
		}
	}
	return s
}

// Paths returns the paths touched by p, in order, with the source of a
// move or copy before its target.
func (p Patch) Paths() []spath.Spath {
	res := make([]spath.Spath, 0, len(p))
	for i := range p {
		if p[i].Op.HasFrom() {
			res = append(res, p[i].From)
		}
		res = append(res, p[i].Path)
	}
	return res
}

func displayPath(p spath.Spath) string {
	if p.IsRoot() {
		return `""`
	}
	return p.String()
}
