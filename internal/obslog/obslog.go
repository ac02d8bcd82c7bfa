// Package obslog provides the engine's structured logging, built on
// github.com/sirupsen/logrus. It replaces the fmt.Printf diagnostic
// lines RiemaLabs-alma-ssz/fuzzer/real_bitvector_fuzzer.go prints
// directly (e.g. "BUG_FOUND: ...") with structured fields a log
// aggregator can filter on, while keeping the same call-site shape:
// a handful of package-level Debugf/Infof/Warnf functions so most of
// the engine never imports logrus itself.
package obslog

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu     sync.Mutex
	logger = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetVerbose toggles debug-level logging, mirroring pgregory.net/rapid's
// flags.debug/flags.verbose switches.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	if v {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// Debugf logs a low-level trace line (per-example, per-shrink-attempt).
func Debugf(format string, args ...any) {
	logger.WithField("component", "conjecture").Debugf(format, args...)
}

// Infof logs a user-relevant milestone (counterexample found, shrink
// session finished).
func Infof(format string, args ...any) {
	logger.WithField("component", "conjecture").Infof(format, args...)
}

// Warnf logs something that should not happen but is recoverable, such
// as the replay driver's minimal sequence unexpectedly passing.
func Warnf(format string, args ...any) {
	logger.WithField("component", "conjecture").Warnf(format, args...)
}
