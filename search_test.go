package conjecture

import "testing"

func TestSearchZeroMaxExamplesReturnsNil(t *testing.T) {
	cfg := Config{MaxExamples: 0, MaxShrinks: 0}
	result := Search(fakeTB{t}, cfg, func(tt *T) {})
	if result != nil {
		t.Fatalf("Search with MaxExamples=0 = %v, want nil", result)
	}
}

func TestSearchFindsAFailingPredicate(t *testing.T) {
	cfg := Config{MaxExamples: 200, MaxShrinks: 0, Seed: 1}
	result := Search(fakeTB{t}, cfg, func(tt *T) {
		tt.Assert(!Bool(tt, "b"))
	})
	if result == nil {
		t.Fatalf("Search found no counterexample for an always-sometimes-failing predicate")
	}
	if result.Outcome != OutcomeCounterexample {
		t.Fatalf("Outcome = %v, want OutcomeCounterexample", result.Outcome)
	}
}

func TestSearchExhaustsOnAlwaysPassingPredicate(t *testing.T) {
	cfg := Config{MaxExamples: 50, MaxShrinks: 0, Seed: 1}
	result := Search(fakeTB{t}, cfg, func(tt *T) {
		tt.Assert(true)
	})
	if result != nil {
		t.Fatalf("Search = %v, want nil for an always-passing predicate", result)
	}
}
