package conjecture

// Config holds the process-wide knobs governing a Check run:
// MaxExamples bounds the search loop, MaxShrinks bounds the shrinker's
// total predicate-evaluation budget. Every entry point also accepts an
// explicit Config rather than only reading package globals, the same
// way RiemaLabs-alma-ssz/cmd/rlrunner exposes its RLOpts both as CLI
// flags and as a struct any caller can build directly.
type Config struct {
	MaxExamples int
	MaxShrinks  int
	Verbose     bool
	Seed        int64
}

// DefaultConfig returns the documented defaults: 100 examples, 200
// shrinks.
func DefaultConfig() Config {
	return Config{MaxExamples: 100, MaxShrinks: 200}
}
