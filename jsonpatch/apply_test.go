package jsonpatch

import (
	"errors"
	"testing"

	"github.com/signadot/spatch/resolve"
	"go.uber.org/multierr"
)

func TestApply(t *testing.T) {
	doc := node(t, `{"a":1,"b":2}`)
	p := Patch{
		AddOp(sp("/c"), node(t, `{"foo":"bar"}`)),
		TestOp(sp("/a"), node(t, `1`)),
		ReplaceOp(sp("/b"), node(t, `{"baz":[1,2,3]}`)),
	}
	got, err := Apply(doc, p)
	if err != nil {
		t.Fatal(err)
	}
	if s := jsonOf(t, got); s != `{"a":1,"b":{"baz":[1,2,3]},"c":{"foo":"bar"}}` {
		t.Errorf("got %s", s)
	}
	if s := jsonOf(t, doc); s != `{"a":1,"b":2}` {
		t.Errorf("input modified: %s", s)
	}
	got.Values[2].Set("foo", node(t, `0`))
	if s := jsonOf(t, p[0].Value); s != `{"foo":"bar"}` {
		t.Errorf("result shares nodes with the patch: %s", s)
	}
}

func TestApplyFailingTest(t *testing.T) {
	doc := node(t, `{"a":1,"b":2}`)
	p := Patch{
		AddOp(sp("/c"), node(t, `{"foo":"bar"}`)),
		TestOp(sp("/a"), node(t, `2`)),
	}
	got, err := Apply(doc, p)
	if err == nil {
		t.Fatal("expected error")
	}
	errs := multierr.Errors(err)
	if len(errs) != 1 {
		t.Fatalf("got %d errors: %v", len(errs), err)
	}
	var opErr *OpError
	if !errors.As(errs[0], &opErr) || opErr.Index != 1 || opErr.Op.Op != OpTest {
		t.Errorf("error = %v", errs[0])
	}
	if !errors.Is(err, ErrValuesNotEqual) {
		t.Errorf("error does not wrap ErrValuesNotEqual: %v", err)
	}
	if got != doc {
		t.Error("Apply did not return the original document")
	}
	if s := jsonOf(t, got); s != `{"a":1,"b":2}` {
		t.Errorf("document changed: %s", s)
	}
}

func TestApplyCollectsAllErrors(t *testing.T) {
	doc := node(t, `{"a":[1,2]}`)
	p := Patch{
		RemoveOp(sp("/x")),
		AddOp(sp("/a/-"), node(t, `3`)),
		ReplaceOp(sp("/a/5"), node(t, `0`)),
		RemoveOp(sp("")),
		MoveOp(sp("/a"), sp("/a/0")),
	}
	_, err := Apply(doc, p)
	errs := multierr.Errors(err)
	if len(errs) != 4 {
		t.Fatalf("got %d errors: %v", len(errs), err)
	}
	wantIdx := []int{0, 2, 3, 4}
	for i, e := range errs {
		var opErr *OpError
		if !errors.As(e, &opErr) || opErr.Index != wantIdx[i] {
			t.Errorf("error %d = %v", i, e)
		}
	}
	var tnf *TargetNotFoundError
	if !errors.As(errs[0], &tnf) {
		t.Errorf("error 0 = %v", errs[0])
	}
	if !errors.Is(errs[1], resolve.ErrNotFound) {
		t.Errorf("error 1 = %v", errs[1])
	}
	if !errors.Is(errs[2], ErrCannotRemoveRoot) {
		t.Errorf("error 2 = %v", errs[2])
	}
	if !errors.Is(errs[3], ErrCannotMoveIntoChild) {
		t.Errorf("error 3 = %v", errs[3])
	}
}

func TestApplySequential(t *testing.T) {
	doc := node(t, `{"list":[{"id":"a","n":1},{"id":"b","n":2}]}`)
	p := Patch{
		CopyOp(sp("/list/[id=a]"), sp("/list/-")),
		ReplaceOp(sp("/list/2/id"), node(t, `"c"`)),
		TestOp(sp("/list/[id=c]/n"), node(t, `1`)),
		RemoveOp(sp("/list/[id=a]")),
		MoveOp(sp("/list/[id=c]"), sp("/first")),
	}
	got, err := Apply(doc, p)
	if err != nil {
		t.Fatal(err)
	}
	if s := jsonOf(t, got); s != `{"list":[{"id":"b","n":2}],"first":{"id":"c","n":1}}` {
		t.Errorf("got %s", s)
	}
}

func TestApplyRoot(t *testing.T) {
	got, err := Apply(node(t, `{"a":1}`), Patch{
		ReplaceOp(sp(""), node(t, `[]`)),
		AddOp(sp("/-"), node(t, `"x"`)),
	})
	if err != nil {
		t.Fatal(err)
	}
	if s := jsonOf(t, got); s != `["x"]` {
		t.Errorf("got %s", s)
	}
}
