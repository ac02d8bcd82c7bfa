package conjecture

import "github.com/byteseq/conjecture/internal/obslog"

// Report is what Check hands back: the outcome, the failure (if any),
// and the bindings the replay driver recorded against the minimal
// counterexample, plus a coverage summary for cmd/conjecture's
// -debugvis flag.
type Report struct {
	Outcome   Outcome
	Err       *TestError
	Bindings  []Binding
	Examples  int
	Covered   int
	Uncovered []int
}

// Check is the convenience entry point a host harness uses to run one
// property end to end: run Search to find a counterexample, Shrink it
// to a local fixed point, then Replay the result once more to harvest
// named bindings for the report. It is the single call cmd/conjecture
// makes per registered property.
func Check(tb TB, cfg Config, prop func(*T)) *Report {
	found := Search(tb, cfg, prop)
	if found == nil {
		return &Report{Outcome: OutcomePass, Examples: cfg.MaxExamples}
	}

	shrinker := NewShrinker(tb, cfg, found.Seq, found.Err, prop)
	minimal, minimalErr := shrinker.Shrink()

	bindings, replayErr := Replay(tb, minimal, prop)
	if replayErr == nil {
		replayErr = minimalErr
	}

	obslog.Infof("check %q: %s with %d bound value(s)", tb.Name(), found.Outcome, len(bindings))

	return &Report{
		Outcome:   OutcomeCounterexample,
		Err:       replayErr,
		Bindings:  bindings,
		Covered:   shrinker.Coverage().Covered(),
		Uncovered: shrinker.Coverage().Uncovered(),
	}
}
