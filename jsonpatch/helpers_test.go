package jsonpatch

import (
	"testing"

	"github.com/signadot/spatch/encode"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/ir/spath"
	"github.com/signadot/spatch/parse"
)

func node(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return n
}

func sp(s string) spath.Spath {
	return spath.MustParse(s)
}

func jsonOf(t *testing.T, n *ir.Node) string {
	t.Helper()
	d, err := encode.MarshalJSON(n)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}
