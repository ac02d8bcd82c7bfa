package conjecture

import (
	"errors"

	"github.com/byteseq/conjecture/choice"
	"github.com/byteseq/conjecture/internal/obslog"
)

// Binding is one named top-level value harvested from a predicate run,
// in draw order.
type Binding struct {
	Name  string
	Value any
}

// Replay runs prop once more against the minimal sequence the shrinker
// settled on, this time recording every named top-level draw, and
// hands back the bindings a report can print alongside the failure.
//
// seq is expected to already be rewound (bytes trimmed to what was
// actually consumed); Replay runs it exactly as given rather than
// rewinding again, so callers that want a fresh frozen copy should pass
// choice.NewFrozen(seq.Bytes()).
func Replay(tb TB, seq *choice.Sequence, prop func(*T)) ([]Binding, *TestError) {
	seq = seq.ClearIntervals()
	rec := &replayRecorder{}
	t := newT(tb, seq, rec)

	var testErr *TestError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if err, ok := r.(error); ok && errors.Is(err, ErrConfiguration) {
				panic(err)
			}
			switch v := r.(type) {
			case errOverrunSignal:
				// A minimal sequence that overruns on replay means the
				// shrinker's own accept gate let a non-reproducing edit
				// through; the bindings recorded before the overrun are
				// returned with no error.
			case *TestError:
				testErr = v
			default:
				testErr = newPanicError(v)
			}
		}()
		prop(t)
	}()

	if testErr == nil {
		obslog.Warnf("replay: minimal sequence for %q no longer reproduces the failure", tb.Name())
	}

	bindings := make([]Binding, len(rec.bindings))
	for i, b := range rec.bindings {
		bindings[i] = Binding{Name: b.Name, Value: b.Value}
	}
	return bindings, testErr
}
