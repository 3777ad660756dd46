package libdiff

import (
	"testing"

	"github.com/signadot/spatch/ir/spath"
)

func node2path(t *testing.T, s string) spath.Spath {
	t.Helper()
	p, err := spath.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return p
}
