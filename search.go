package conjecture

import (
	"math/rand"

	"github.com/byteseq/conjecture/choice"
	"github.com/byteseq/conjecture/internal/obslog"
	"github.com/byteseq/conjecture/internal/telemetry"
)

// Search runs prop against up to cfg.MaxExamples fresh generating
// sequences, returning the first RunResult whose Outcome is not
// OutcomePass, with its sequence rewound ready for shrinking. It
// returns nil if the budget is exhausted with no failure found.
// cfg.MaxExamples == 0 returns nil immediately.
//
// Structurally this mirrors RiemaLabs-alma-ssz/rl/orchestrator.go's
// episode loop: iterate up to a configured count, log each step, stop
// early on a terminal condition — generalized here from RL episodes to
// property-test examples.
func Search(tb TB, cfg Config, prop func(*T)) *RunResult {
	rng := rand.New(rand.NewSource(seedOrRandom(cfg.Seed)))

	for i := 0; i < cfg.MaxExamples; i++ {
		seq := choice.NewGenerating(rng)
		result := Run(tb, seq, prop)

		telemetry.ExamplesTotal.WithLabelValues(result.Outcome.String()).Inc()
		if cfg.Verbose {
			obslog.Debugf("search: example %d/%d outcome=%s", i+1, cfg.MaxExamples, result.Outcome)
		}

		if result.Outcome != OutcomePass {
			rewound := result.Seq.Rewind()
			result.Seq = rewound
			obslog.Infof("search: found %s after %d example(s)", result.Outcome, i+1)
			return &result
		}
	}

	obslog.Debugf("search: exhausted %d example(s) with no counterexample", cfg.MaxExamples)
	return nil
}

func seedOrRandom(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return rand.Int63()
}
