package conjecture

import (
	"fmt"

	"github.com/byteseq/conjecture/choice"
)

// TB is the minimal subset of testing.TB the engine needs. Any
// *testing.T or *testing.B satisfies it; the engine otherwise has no
// dependency on the "testing" package, so a caller can drive it from a
// plain CLI or any other host harness.
type TB interface {
	Helper()
	Logf(format string, args ...any)
	Name() string
}

// nopTB is a TB that discards everything. The engine's own re-runs
// during shrinking and replay use the caller's TB, not this one.
type nopTB struct{ name string }

func (nopTB) Helper()                       {}
func (nopTB) Logf(format string, args ...any) {}
func (n nopTB) Name() string                { return n.name }

// binding is one (name, value) pair harvested during replay.
type binding struct {
	Name  string
	Value any
}

// replayRecorder accumulates bindings while replay is active. It is nil
// on a *T outside of Replay.
type replayRecorder struct {
	bindings []binding
}

// T is the ambient choice sequence threaded explicitly through every
// predicate and generator call, an explicit parameter rather than
// goroutine-local state so that concurrent tests can each own their own
// T without any shared mutable global. This mirrors pgregory.net/rapid's
// *rapid.T.
type T struct {
	seq    *choice.Sequence
	replay *replayRecorder
	tb     TB
}

func newT(tb TB, seq *choice.Sequence, replay *replayRecorder) *T {
	return &T{seq: seq, replay: replay, tb: tb}
}

// Helper marks the calling function as a test helper, forwarding to the
// underlying TB the same way testing.T.Helper does.
func (t *T) Helper() { t.tb.Helper() }

// Logf forwards a diagnostic message to the underlying TB.
func (t *T) Logf(format string, args ...any) { t.tb.Logf(format, args...) }

// Assert falsifies the property if cond is false, raising an internal
// counterexample signal caught only by Run and Replay.
func (t *T) Assert(cond bool, msgAndArgs ...any) {
	t.tb.Helper()
	if cond {
		return
	}
	panic(newAssertionError(formatAssertMessage(msgAndArgs)))
}

func formatAssertMessage(msgAndArgs []any) any {
	if len(msgAndArgs) == 0 {
		return "assertion failed"
	}
	if len(msgAndArgs) == 1 {
		return msgAndArgs[0]
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return msgAndArgs
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...)
}

// draw is the single low-level entry point every built-in generator
// funnels through. It reads n bytes from the ambient sequence and turns
// an overrun into the package-private panic Run recognizes.
func (t *T) draw(n int) []byte {
	b, err := t.seq.Draw(n)
	if err != nil {
		panic(errOverrunSignal{})
	}
	return b
}

// record appends (name, value) to the ambient replay recorder, a no-op
// unless replay is active and name is non-empty.
func (t *T) record(name string, value any) {
	if t.replay == nil || name == "" {
		return
	}
	t.replay.bindings = append(t.replay.bindings, binding{Name: name, Value: value})
}

// errOverrunSignal is the internal panic value Run recognizes as an
// overrun rather than a counterexample. It is never exported and never
// observed outside the recover() frames of Run and Replay.
type errOverrunSignal struct{}
