// Package coverage tracks which byte offsets of a choice sequence have
// been touched by an adopted shrink candidate, for the debug
// visualization cmd/conjecture's -debugvis flag prints. It is grounded
// on RiemaLabs-alma-ssz/tracer's use of a dense bitmap to record which
// instructions executed, generalized here from instruction addresses to
// choice-sequence byte offsets, and built on
// github.com/bits-and-blooms/bitset rather than OffchainLabs/go-bitfield,
// which is an SSZ bitfield codec with no use outside that domain.
package coverage

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/byteseq/conjecture/choice"
)

// Map records, for one shrink session, which byte offsets of the
// current best sequence have appeared inside an interval that the
// shrinker adopted.
type Map struct {
	bits   *bitset.BitSet
	length int
}

// NewMap allocates a coverage map sized to a sequence of the given
// length in bytes.
func NewMap(length int) *Map {
	if length < 0 {
		length = 0
	}
	return &Map{bits: bitset.New(uint(length)), length: length}
}

// MarkInterval marks every byte offset spanned by iv as covered,
// growing the map if the interval runs past its current length.
func (m *Map) MarkInterval(iv choice.Interval) {
	if iv.End > m.length {
		m.length = iv.End
	}
	for i := iv.Start; i < iv.End; i++ {
		if i < 0 {
			continue
		}
		m.bits.Set(uint(i))
	}
}

// Covered returns the number of distinct byte offsets marked so far.
func (m *Map) Covered() int {
	return int(m.bits.Count())
}

// Uncovered returns the byte offsets within the map's current length
// that were never marked, in ascending order.
func (m *Map) Uncovered() []int {
	var out []int
	for i := 0; i < m.length; i++ {
		if !m.bits.Test(uint(i)) {
			out = append(out, i)
		}
	}
	return out
}
