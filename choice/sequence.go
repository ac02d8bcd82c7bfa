// Package choice implements the growable byte buffer that backs every
// generated value in conjecture: the choice sequence. All randomness in
// the engine flows through a Sequence, which makes generators pure
// functions of their input bytes and lets the shrinker work on bytes
// alone rather than on typed values.
package choice

import (
	"math/rand"

	"github.com/pkg/errors"
)

// ErrOverrun is returned by Draw when a frozen Sequence's bytes are
// exhausted. It signals "this edit does not reproduce," never a test
// failure, and must never be reported as a counterexample.
var ErrOverrun = errors.New("choice: overrun")

// Interval marks the half-open byte range [Start, End) consumed by one
// Draw call, in the order the calls occurred. Every Draw records its own
// interval, including draws made by nested generators; no interval spans
// a whole top-level generator call that draws more than once.
type Interval struct {
	Start, End int
}

// Len reports the number of bytes the interval spans.
func (iv Interval) Len() int { return iv.End - iv.Start }

// Sequence is the central data structure of the engine: an ordered byte
// buffer, a read cursor, and the list of intervals recorded by the draws
// made against it.
//
// A generating Sequence grows its buffer on demand, drawing fresh random
// bytes; a frozen Sequence (used during shrinking and replay) never
// grows — reading past its end is an overrun, not a generation event.
type Sequence struct {
	bytes     []byte
	cursor    int
	intervals []Interval
	frozen    bool
	rng       *rand.Rand
}

// NewGenerating returns an empty Sequence that grows on demand, drawing
// fresh pseudo-random bytes as generators consume them. rng may be nil,
// in which case a process-default source is used.
func NewGenerating(rng *rand.Rand) *Sequence {
	if rng == nil {
		rng = defaultRand()
	}
	return &Sequence{frozen: false, rng: rng}
}

// NewFrozen returns a Sequence fixed to data. Draws beyond len(data)
// fail with ErrOverrun instead of growing the buffer; this is the mode
// used for shrinking and replay, where the byte sequence must be treated
// as a fixed, edited recording rather than a fresh source of entropy.
func NewFrozen(data []byte) *Sequence {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Sequence{bytes: buf, frozen: true}
}

// Draw reads n bytes starting at the cursor, advances the cursor by n,
// and records the interval it just consumed. In generating mode the
// buffer grows with fresh random bytes as needed; in frozen mode a read
// past the end of the buffer returns ErrOverrun and the cursor is left
// at len(bytes).
func (s *Sequence) Draw(n int) ([]byte, error) {
	if n < 0 {
		panic("choice: Draw with negative length")
	}
	if n == 0 {
		s.intervals = append(s.intervals, Interval{Start: s.cursor, End: s.cursor})
		return nil, nil
	}

	start := s.cursor
	end := start + n

	if end > len(s.bytes) {
		if s.frozen {
			s.cursor = len(s.bytes)
			return nil, ErrOverrun
		}
		fresh := make([]byte, end-len(s.bytes))
		s.rng.Read(fresh)
		s.bytes = append(s.bytes, fresh...)
	}

	out := s.bytes[start:end]
	s.cursor = end
	s.intervals = append(s.intervals, Interval{Start: start, End: end})
	return out, nil
}

// Rewind returns a copy of s truncated to the bytes actually consumed
// (bytes[0:cursor]), with the cursor reset to 0 and the recorded
// intervals carried over unchanged. This is the snapshot taken the
// moment a predicate fails, and the step applied after every adopted
// shrink before the next pass re-runs the predicate.
func (s *Sequence) Rewind() *Sequence {
	buf := make([]byte, s.cursor)
	copy(buf, s.bytes[:s.cursor])
	ivs := make([]Interval, len(s.intervals))
	copy(ivs, s.intervals)
	return &Sequence{bytes: buf, cursor: 0, intervals: ivs, frozen: true}
}

// ClearIntervals returns a copy of s with an empty interval list, ready
// for a fresh run whose generators will repopulate it from scratch. The
// bytes, cursor, and frozen-ness are preserved.
func (s *Sequence) ClearIntervals() *Sequence {
	return &Sequence{
		bytes:  append([]byte(nil), s.bytes...),
		cursor: s.cursor,
		frozen: s.frozen,
		rng:    s.rng,
	}
}

// SetByte returns a copy of s with bytes[i] replaced by v. Used by the
// shrinker to build edited candidates without mutating the current best
// sequence in place.
func (s *Sequence) SetByte(i int, v byte) *Sequence {
	buf := append([]byte(nil), s.bytes...)
	buf[i] = v
	return &Sequence{bytes: buf, cursor: s.cursor, intervals: s.intervals, frozen: s.frozen, rng: s.rng}
}

// WithBytes returns a new frozen Sequence holding a copy of data, with
// the cursor at 0 and no intervals. It is equivalent to NewFrozen.
func WithBytes(data []byte) *Sequence {
	return NewFrozen(data)
}

// Bytes returns the sequence's underlying bytes. Callers must not
// mutate the returned slice.
func (s *Sequence) Bytes() []byte { return s.bytes }

// Cursor returns the current read position.
func (s *Sequence) Cursor() int { return s.cursor }

// Intervals returns the recorded draw intervals, in draw order. Callers
// must not mutate the returned slice.
func (s *Sequence) Intervals() []Interval { return s.intervals }

// Frozen reports whether the sequence is in shrink/replay mode.
func (s *Sequence) Frozen() bool { return s.frozen }

// Len returns the number of bytes currently in the buffer.
func (s *Sequence) Len() int { return len(s.bytes) }

func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(rand.Int63()))
}
