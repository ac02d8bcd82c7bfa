package conjecture

import (
	"errors"
	"time"

	"github.com/byteseq/conjecture/choice"
	"github.com/byteseq/conjecture/internal/telemetry"
)

// Outcome classifies the result of one predicate invocation.
type Outcome int

const (
	// OutcomePass means the predicate returned normally with no failure.
	OutcomePass Outcome = iota
	// OutcomeCounterexample means the predicate raised an Assert failure
	// or any other error (a crash is treated the same as an assertion).
	OutcomeCounterexample
	// OutcomeOverrun means a draw ran past the end of a frozen sequence.
	// It only ever occurs during shrinking or replay and is never a
	// reportable failure.
	OutcomeOverrun
)

func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "pass"
	case OutcomeCounterexample:
		return "counterexample"
	case OutcomeOverrun:
		return "overrun"
	default:
		return "unknown"
	}
}

// RunResult is what Run hands back to its caller.
type RunResult struct {
	Outcome Outcome
	Seq     *choice.Sequence
	Err     *TestError
}

// Run executes prop once against seq: it clears seq's intervals,
// installs it as the ambient sequence of a fresh *T, and invokes prop
// under a single recover() frame.
//
// Run and Replay are the only places in the engine that use
// panic/recover as control flow. Here a deliberate T.Assert failure,
// any other panic raised from inside prop (including a genuine runtime
// error such as a division by zero), and an overrun from a draw against
// an exhausted frozen sequence are all caught by this one deferred
// recover and turned into a RunResult. The one exception is an
// ErrConfiguration panic, which is re-panicked and escapes Run.
func Run(tb TB, seq *choice.Sequence, prop func(*T)) RunResult {
	seq = seq.ClearIntervals()
	t := newT(tb, seq, nil)

	result := RunResult{Outcome: OutcomePass, Seq: seq}

	started := time.Now()
	func() {
		defer func() {
			telemetry.PredicateDuration.Observe(time.Since(started).Seconds())
			r := recover()
			if r == nil {
				return
			}
			if err, ok := r.(error); ok && errors.Is(err, ErrConfiguration) {
				// Configuration errors (bad generator bounds, too many
				// OneOf values, ...) are a caller mistake, not a test
				// failure: they propagate synchronously and are never
				// turned into a counterexample or silently swallowed.
				panic(err)
			}
			switch v := r.(type) {
			case errOverrunSignal:
				result.Outcome = OutcomeOverrun
			case *TestError:
				result.Outcome = OutcomeCounterexample
				result.Err = v
			default:
				result.Outcome = OutcomeCounterexample
				result.Err = newPanicError(v)
			}
		}()
		prop(t)
	}()

	return result
}
