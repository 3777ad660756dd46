package debug

import (
	"testing"

	"github.com/signadot/spatch/ir"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogf(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	old := SetLogger(zap.New(core))
	defer SetLogger(old)

	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("x")})},
	})
	Logf("diff %s at %s\n", node, "/a")
	Logf("nil %s", (*ir.Node)(nil))

	entries := logs.AllUntimed()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	want := []string{`diff {"a":[1,"x"]} at /a`, "nil <nil>"}
	for i, e := range entries {
		if e.Message != want[i] {
			t.Errorf("entry %d: got %q want %q", i, e.Message, want[i])
		}
		if e.Level != zapcore.DebugLevel {
			t.Errorf("entry %d: level %s", i, e.Level)
		}
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("SPATCH_TEST_FLAG", "true")
	if !boolEnv("SPATCH_TEST_FLAG") {
		t.Error("true not parsed")
	}
	t.Setenv("SPATCH_TEST_FLAG", "nope")
	if boolEnv("SPATCH_TEST_FLAG") {
		t.Error("nope parsed as true")
	}
	if boolEnv("SPATCH_TEST_UNSET") {
		t.Error("unset parsed as true")
	}
}
