package conjecture

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrConfiguration is the sentinel wrapped by every generator
// configuration error (invalid bounds, too many one-of values, ...).
// Unlike Counterexample and Overrun, configuration errors are raised
// synchronously to the caller and never caught by the runner.
var ErrConfiguration = errors.New("conjecture: invalid generator configuration")

// configErrorf wraps ErrConfiguration with a formatted message and a
// captured stack, matching RiemaLabs-alma-ssz/oracle/roundtrip.go's
// fmt.Errorf("%w: ...", ErrInvalidInput) idiom, upgraded to pkg/errors so
// callers that want a stack trace can ask for one with "%+v".
func configErrorf(format string, args ...any) error {
	return errors.WithStack(fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...)))
}

// TestError describes a counterexample: either a deliberate Assert
// failure or an uncaught panic from inside the predicate. The engine
// does not distinguish the two when reporting: both carry a Cause and,
// where available, a captured stack.
type TestError struct {
	Cause     any
	Assertion bool // true if raised by T.Assert, false if an uncaught panic
	stack     error
}

func (e *TestError) Error() string {
	if e == nil {
		return "<nil TestError>"
	}
	if s, ok := e.Cause.(string); ok {
		return s
	}
	if err, ok := e.Cause.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", e.Cause)
}

// Format implements fmt.Formatter so "%+v" prints the captured stack,
// the same way pkg/errors.WithStack values do.
func (e *TestError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') && e.stack != nil {
		fmt.Fprintf(s, "%s\n%+v", e.Error(), e.stack)
		return
	}
	fmt.Fprint(s, e.Error())
}

func newAssertionError(cause any) *TestError {
	return &TestError{Cause: cause, Assertion: true, stack: errors.WithStack(errors.New("assertion failed"))}
}

func newPanicError(cause any) *TestError {
	return &TestError{Cause: cause, Assertion: false, stack: errors.WithStack(errors.New("panic recovered"))}
}
