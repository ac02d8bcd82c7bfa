package conjecture

import (
	"math/big"

	"github.com/cespare/xxhash/v2"

	"github.com/byteseq/conjecture/choice"
	"github.com/byteseq/conjecture/internal/coverage"
	"github.com/byteseq/conjecture/internal/obslog"
	"github.com/byteseq/conjecture/internal/telemetry"
)

// Shrinker runs a fixed-order sequence of passes, each walking either
// the interval or byte dimension of the current best counterexample,
// gated by a shared predicate-evaluation budget.
//
// Its candidate-gate (accept, below) is grounded directly on
// pgregory.net/rapid's shrinker.accept (moby-moby's vendored
// shrink.go): re-run the predicate on the candidate and adopt it only
// if it still reproduces a failure. The dedup cache keyed by an
// xxhash digest plays the same role as rapid's cache map, swapped from
// a stringified []uint64 key to an xxhash of the raw []byte candidate
// because our choice sequence is a byte buffer, not a block array.
type Shrinker struct {
	tb       TB
	prop     func(*T)
	best     *choice.Sequence
	bestErr  *TestError
	budget   int
	seen     map[uint64]struct{}
	coverage *coverage.Map
}

// NewShrinker builds a Shrinker seeded with the counterexample found by
// Search (or supplied directly), ready to run Shrink.
func NewShrinker(tb TB, cfg Config, failing *choice.Sequence, failingErr *TestError, prop func(*T)) *Shrinker {
	return &Shrinker{
		tb:       tb,
		prop:     prop,
		best:     failing,
		bestErr:  failingErr,
		budget:   cfg.MaxShrinks,
		seen:     make(map[uint64]struct{}),
		coverage: coverage.NewMap(failing.Len()),
	}
}

// Shrink runs the six passes once, in a fixed order, each to its own
// local fixed point, and returns the smallest sequence still
// reproducing the failure. It does not re-enter earlier passes once a
// later one has run — a documented termination limitation, not a bug:
// the global budget is the termination guarantee in practice.
func (s *Shrinker) Shrink() (*choice.Sequence, *TestError) {
	if s.budget <= 0 {
		return s.best, s.bestErr
	}

	s.perIntervalPass(labelZeroInterval, zeroTransform)
	s.zeroBytePass()
	s.swapIntervalsPass()
	s.perIntervalPass(labelShiftRight, shiftRightTransform)
	s.perIntervalPass(labelSubtract10, subtractTransform(10))
	s.perIntervalPass(labelSubtract1, subtractTransform(1))

	obslog.Infof("shrink: finished with %d byte(s), %d covered, %d uncovered",
		s.best.Len(), s.coverage.Covered(), len(s.coverage.Uncovered()))

	return s.best, s.bestErr
}

// Coverage returns the byte-offset coverage map accumulated across every
// pass, for cmd/conjecture's -debugvis summary.
func (s *Shrinker) Coverage() *coverage.Map { return s.coverage }

const (
	labelZeroInterval = "zero_interval"
	labelZeroByte     = "zero_byte"
	labelSwapInterval = "swap_intervals"
	labelShiftRight   = "shift_right"
	labelSubtract10   = "subtract_10"
	labelSubtract1    = "subtract_1"
)

// perIntervalPass drives passes 1, 4, 5, and 6, which all share the same
// shape: for every recorded interval, ask transform for a proposed
// replacement (nil means "no valid reduction here"), try it, and loop
// until a full scan adopts nothing.
func (s *Shrinker) perIntervalPass(label string, transform func([]byte) []byte) {
	for {
		changed := false
		ivs := s.best.Intervals()
		for i := 0; i < len(ivs) && s.budget > 0; i++ {
			iv := ivs[i]
			if iv.Len() == 0 {
				continue
			}
			data := s.best.Bytes()
			next := transform(data[iv.Start:iv.End])
			if next == nil {
				continue
			}
			candidate := append([]byte(nil), data...)
			copy(candidate[iv.Start:iv.End], next)
			if s.accept(candidate, label) {
				changed = true
				break
			}
		}
		if !changed {
			return
		}
	}
}

// zeroBytePass is pass 2: try setting each individual byte to zero,
// independent of interval boundaries, catching reductions that span
// them or that intervals never captured at all.
func (s *Shrinker) zeroBytePass() {
	for {
		changed := false
		data := s.best.Bytes()
		for i := 0; i < len(data) && s.budget > 0; i++ {
			if data[i] == 0 {
				continue
			}
			candidate := append([]byte(nil), data...)
			candidate[i] = 0
			if s.accept(candidate, labelZeroByte) {
				changed = true
				break
			}
		}
		if !changed {
			return
		}
	}
}

// swapIntervalsPass is pass 3: for every pair of equal-length intervals
// i < j, if j's bytes are lexicographically less than i's, swap them so
// the smaller drawn value appears first.
func (s *Shrinker) swapIntervalsPass() {
	for {
		changed := false
		ivs := s.best.Intervals()
	outer:
		for i := 0; i < len(ivs) && s.budget > 0; i++ {
			for j := i + 1; j < len(ivs) && s.budget > 0; j++ {
				a, b := ivs[i], ivs[j]
				if a.Len() == 0 || a.Len() != b.Len() {
					continue
				}
				data := s.best.Bytes()
				aBytes := data[a.Start:a.End]
				bBytes := data[b.Start:b.End]
				if !lessBytes(bBytes, aBytes) {
					continue
				}
				candidate := append([]byte(nil), data...)
				copy(candidate[a.Start:a.End], bBytes)
				copy(candidate[b.Start:b.End], aBytes)
				if s.accept(candidate, labelSwapInterval) {
					changed = true
					break outer
				}
			}
		}
		if !changed {
			return
		}
	}
}

// lessBytes is a lexicographic comparison: equal-length sequences
// compared element by element from index 0; the first differing
// position decides; equal sequences are not less.
func lessBytes(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// accept is the candidate gate every pass funnels through: re-run the
// predicate against candidate, and adopt it (rewound) as the new best
// iff it still reproduces a counterexample. Every call that actually
// runs the predicate decrements the shared budget, win or lose; a
// candidate whose bytes were already tried this session is skipped
// without touching the budget at all.
func (s *Shrinker) accept(candidate []byte, label string) bool {
	if s.budget <= 0 {
		return false
	}

	digest := xxhash.Sum64(candidate)
	if _, tried := s.seen[digest]; tried {
		return false
	}

	s.budget--
	telemetry.ShrinkBudgetRemaining.Set(float64(s.budget))

	result := Run(s.tb, choice.NewFrozen(candidate), s.prop)
	if result.Outcome != OutcomeCounterexample {
		s.seen[digest] = struct{}{}
		telemetry.ShrinkAttemptsTotal.WithLabelValues(label, "rejected").Inc()
		return false
	}

	s.best = result.Seq.Rewind()
	s.bestErr = result.Err
	for _, iv := range s.best.Intervals() {
		s.coverage.MarkInterval(iv)
	}
	telemetry.ShrinkAttemptsTotal.WithLabelValues(label, "adopted").Inc()
	obslog.Debugf("shrink: %s adopted, now %d byte(s)", label, s.best.Len())
	return true
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

func zeroTransform(cur []byte) []byte {
	if allZero(cur) {
		return nil
	}
	return make([]byte, len(cur))
}

func shiftRightTransform(cur []byte) []byte {
	v := new(big.Int).SetBytes(cur)
	if v.Sign() == 0 {
		return nil
	}
	v.Rsh(v, 1)
	return bigToBytes(v, len(cur))
}

// subtractTransform implements passes 5 and 6: subtract amount from the
// interval's big-endian integer value, saturating at zero, but never
// proposing an all-zero result for a nonzero interval (the zero-interval
// pass already covers that case). We use math/big for the arbitrary-
// precision subtraction-with-borrow the spec describes operationally
// ("find the rightmost earlier nonzero byte, decrement it, and add 255
// to every byte between it and the last"); big.Int.Sub implements
// exactly that borrow chain and handles intervals of any length.
func subtractTransform(amount int64) func([]byte) []byte {
	return func(cur []byte) []byte {
		v := new(big.Int).SetBytes(cur)
		if v.Sign() == 0 {
			return nil
		}
		v.Sub(v, big.NewInt(amount))
		if v.Sign() <= 0 {
			return nil
		}
		return bigToBytes(v, len(cur))
	}
}

func bigToBytes(v *big.Int, length int) []byte {
	out := make([]byte, length)
	raw := v.Bytes()
	copy(out[length-len(raw):], raw)
	return out
}
