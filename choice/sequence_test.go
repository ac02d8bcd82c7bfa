package choice

import (
	"math/rand"
	"testing"
)

func TestDrawGrowsGeneratingSequence(t *testing.T) {
	s := NewGenerating(rand.New(rand.NewSource(1)))

	b, err := s.Draw(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) != 3 {
		t.Fatalf("expected 3 bytes, got %d", len(b))
	}
	if s.Len() != 3 {
		t.Fatalf("expected buffer length 3, got %d", s.Len())
	}
	if s.Cursor() != 3 {
		t.Fatalf("expected cursor 3, got %d", s.Cursor())
	}

	ivs := s.Intervals()
	if len(ivs) != 1 || ivs[0] != (Interval{Start: 0, End: 3}) {
		t.Fatalf("unexpected intervals: %v", ivs)
	}
}

func TestDrawOverrunsFrozenSequence(t *testing.T) {
	s := NewFrozen([]byte{1, 2})

	if _, err := s.Draw(2); err != nil {
		t.Fatalf("unexpected error on exact read: %v", err)
	}
	if _, err := s.Draw(1); err != ErrOverrun {
		t.Fatalf("expected ErrOverrun, got %v", err)
	}
}

func TestFrozenSequenceNeverGrows(t *testing.T) {
	s := NewFrozen([]byte{9, 9, 9})
	before := s.Len()
	_, _ = s.Draw(100)
	if s.Len() != before {
		t.Fatalf("frozen sequence grew: before=%d after=%d", before, s.Len())
	}
}

func TestRewindTruncatesToCursorAndResetsIt(t *testing.T) {
	s := NewGenerating(rand.New(rand.NewSource(1)))
	_, _ = s.Draw(4)

	// The cursor sits at 4 after the draw, so the rewound copy keeps all
	// 4 bytes and starts reading from 0 again.
	r := s.Rewind()
	if r.Cursor() != 0 {
		t.Fatalf("expected cursor 0 after rewind, got %d", r.Cursor())
	}
	if r.Len() != 4 {
		t.Fatalf("expected rewound length 4, got %d", r.Len())
	}
	if !r.Frozen() {
		t.Fatalf("expected rewound sequence to be frozen")
	}
	if len(r.Intervals()) != 1 {
		t.Fatalf("expected intervals to survive rewind, got %v", r.Intervals())
	}
}

func TestClearIntervalsDropsIntervalsKeepsBytes(t *testing.T) {
	s := NewFrozen([]byte{1, 2, 3})
	_, _ = s.Draw(3)
	if len(s.Intervals()) != 1 {
		t.Fatalf("expected one interval before clear")
	}

	c := s.ClearIntervals()
	if len(c.Intervals()) != 0 {
		t.Fatalf("expected no intervals after clear, got %v", c.Intervals())
	}
	if c.Len() != 3 {
		t.Fatalf("expected bytes preserved, got len %d", c.Len())
	}
}

func TestSetByteIsNonMutatingCopy(t *testing.T) {
	s := NewFrozen([]byte{1, 2, 3})
	edited := s.SetByte(1, 42)

	if s.Bytes()[1] != 2 {
		t.Fatalf("original sequence was mutated: %v", s.Bytes())
	}
	if edited.Bytes()[1] != 42 {
		t.Fatalf("edit did not apply: %v", edited.Bytes())
	}
}

func TestZeroLengthDrawRecordsEmptyInterval(t *testing.T) {
	s := NewFrozen([]byte{1, 2, 3})
	b, err := s.Draw(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != nil {
		t.Fatalf("expected nil bytes for zero-length draw, got %v", b)
	}
	ivs := s.Intervals()
	if len(ivs) != 1 || ivs[0].Len() != 0 {
		t.Fatalf("expected a single zero-length interval, got %v", ivs)
	}
}
