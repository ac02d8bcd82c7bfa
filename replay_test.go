package conjecture

import (
	"testing"

	"github.com/byteseq/conjecture/choice"
)

func TestReplayRecordsNamedBindingsInDrawOrder(t *testing.T) {
	seq := choice.NewFrozen([]byte{0, 255, 50})
	bindings, err := Replay(fakeTB{t}, seq, func(tt *T) {
		Bool(tt, "a")
		Bool(tt, "b")
		ASCIIChar(tt, "c")
		tt.Assert(false, "deliberate failure")
	})
	if err == nil {
		t.Fatalf("expected a TestError since the predicate deliberately fails")
	}
	if len(bindings) != 3 {
		t.Fatalf("bindings = %v, want 3 entries", bindings)
	}
	if bindings[0].Name != "a" || bindings[1].Name != "b" || bindings[2].Name != "c" {
		t.Fatalf("bindings = %v, want names a, b, c in order", bindings)
	}
}

func TestReplaySkipsUnnamedDraws(t *testing.T) {
	seq := choice.NewFrozen([]byte{200, 0, 1})
	bindings, _ := Replay(fakeTB{t}, seq, func(tt *T) {
		SliceOf(tt, "xs", func(tt *T) bool { return Bool(tt, "") })
	})
	for _, b := range bindings {
		if b.Name == "" {
			t.Fatalf("bindings = %v, want no unnamed entries", bindings)
		}
	}
	if len(bindings) != 1 || bindings[0].Name != "xs" {
		t.Fatalf("bindings = %v, want exactly one entry named xs", bindings)
	}
}
