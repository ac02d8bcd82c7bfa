package conjecture

import (
	"testing"

	"github.com/byteseq/conjecture/choice"
)

func TestRunPassOnSuccessfulPredicate(t *testing.T) {
	result := Run(fakeTB{t}, choice.NewFrozen(nil), func(tt *T) {})
	if result.Outcome != OutcomePass {
		t.Fatalf("Outcome = %v, want OutcomePass", result.Outcome)
	}
}

func TestRunCounterexampleOnAssertFailure(t *testing.T) {
	result := Run(fakeTB{t}, choice.NewFrozen(nil), func(tt *T) {
		tt.Assert(false, "always fails")
	})
	if result.Outcome != OutcomeCounterexample {
		t.Fatalf("Outcome = %v, want OutcomeCounterexample", result.Outcome)
	}
	if result.Err == nil || !result.Err.Assertion {
		t.Fatalf("Err = %v, want an assertion TestError", result.Err)
	}
}

func TestRunCounterexampleOnUncaughtPanic(t *testing.T) {
	result := Run(fakeTB{t}, choice.NewFrozen(nil), func(tt *T) {
		var xs []int
		_ = xs[0]
	})
	if result.Outcome != OutcomeCounterexample {
		t.Fatalf("Outcome = %v, want OutcomeCounterexample", result.Outcome)
	}
	if result.Err == nil || result.Err.Assertion {
		t.Fatalf("Err = %v, want a non-assertion TestError", result.Err)
	}
}

func TestRunOverrunOnExhaustedFrozenSequence(t *testing.T) {
	result := Run(fakeTB{t}, choice.NewFrozen(nil), func(tt *T) {
		Bool(tt, "b")
	})
	if result.Outcome != OutcomeOverrun {
		t.Fatalf("Outcome = %v, want OutcomeOverrun", result.Outcome)
	}
}

func TestRunConfigurationErrorEscapesRecover(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected the configuration error to escape Run as a raw panic")
		}
	}()
	Run(fakeTB{t}, choice.NewFrozen([]byte{0}), func(tt *T) {
		min := int64(10)
		max := int64(5)
		IntRange(tt, "i", IntOpts{Min: &min, Max: &max})
	})
}
