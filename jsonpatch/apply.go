package jsonpatch

import (
	"fmt"

	"github.com/signadot/spatch/debug"
	"github.com/signadot/spatch/ir"

	"go.uber.org/multierr"
)

// Apply applies p to a copy of doc.  Every operation is attempted; if
// any fails, Apply returns doc itself together with an error combining
// each failure in order, which multierr.Errors splits back apart.
func Apply(doc *ir.Node, p Patch) (*ir.Node, error) {
	work := doc.Clone()
	var errs error
	for i := range p {
		op := &p[i]
		next, err := op.Apply(work)
		if debug.Apply() {
			debug.Logf("apply %d %s: %v -> %v err=%v\n", i, op, work, next, err)
		}
		if err != nil {
			multierr.AppendInto(&errs, &OpError{Index: i, Op: *op, Err: err})
			continue
		}
		work = next
	}
	if errs != nil {
		return doc, errs
	}
	return work, nil
}

// OpError is the failure of one operation of a patch.
type OpError struct {
	Index int
	Op    Operation
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("operation %d (%s %s): %v", e.Index, e.Op.Op, displayPath(e.Op.Path), e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
