package conjecture

import (
	"math"
)

// Generator is the typed, user-facing shape of a draw function: given
// the ambient T, produce a V. SliceOf and ArrayOf take one of these for
// their element generator; the built-ins below are ordinary functions
// rather than Generator values themselves so that callers can pass name
// and opts directly in a single call, rather than rapid's two-step
// construct-then-.Draw pattern.
type Generator[V any] func(t *T) V

const (
	listContinueThreshold   = 51 // ~20% stop chance per element
	stringContinueThreshold = 26 // ~10% stop chance per element
	asciiLow                = 0x20
	asciiSpan               = 0x7e - 0x20 + 1
)

// Bool draws one byte; byte >= 128 is true, else false. Zero bytes
// shrink to false, satisfying the bool order false < true.
func Bool(t *T, name string) bool {
	b := t.draw(1)
	v := b[0] >= 128
	t.record(name, v)
	return v
}

// IntOpts bounds IntRange. A nil Min or Max means that side is
// unbounded; when both are nil the value shrinks toward zero.
type IntOpts struct {
	Min, Max *int64
}

// defaultSpan bounds the open side of a half- or fully-unbounded
// IntRange so the generator still draws a bounded number of bytes.
const defaultSpan = 1 << 20

// IntRange draws a bounded integer. When the caller supplies Min, the
// range's bit width is reduced to a byte count, the raw draw is reduced
// modulo the range size and added to Min: byte 0 yields exactly Min,
// and every value in [Min, Max] is reachable. This is the "shrinks
// toward lo" branch.
//
// When Min is nil, the draw is folded around zero with zigzagDecode
// instead, clamped into whatever finite window the (possibly still
// Max-bounded) range allows, so the value shrinks toward zero rather
// than toward an arbitrary synthetic lower bound.
func IntRange(t *T, name string, opts IntOpts) int64 {
	var v int64
	if opts.Min != nil {
		lo := *opts.Min
		hi := lo + defaultSpan
		if opts.Max != nil {
			hi = *opts.Max
		}
		if hi <= lo {
			panic(configErrorf("IntRange: max %d is not greater than min %d", hi, lo))
		}
		width := uint64(hi - lo)
		raw := drawUint(t, byteWidth(width))
		v = lo + int64(reduceMod(raw, width))
	} else {
		hi := int64(defaultSpan)
		if opts.Max != nil {
			hi = *opts.Max
		}
		lo := hi - 2*defaultSpan
		if hi < lo {
			panic(configErrorf("IntRange: max %d leaves no room below it", hi))
		}
		target := int64(0)
		if hi < 0 {
			target = hi
		}
		width := uint64(hi - lo)
		raw := drawUint(t, byteWidth(width))
		offset := zigzagDecode(reduceMod(raw, width))
		v = clampInt64(target, offset, lo, hi)
	}
	t.record(name, v)
	return v
}

func reduceMod(raw, width uint64) uint64 {
	if width == math.MaxUint64 {
		return raw
	}
	return raw % (width + 1)
}

// zigzagDecode folds an unsigned counter into 0, +1, -1, +2, -2, ... so
// small draws land close to the shrink target on either side of it.
func zigzagDecode(n uint64) int64 {
	if n%2 == 0 {
		return int64(n / 2)
	}
	return -int64((n + 1) / 2)
}

func clampInt64(target, offset, lo, hi int64) int64 {
	v := target + offset
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func byteWidth(width uint64) int {
	if width == 0 {
		return 1
	}
	n := 0
	for width > 0 {
		n++
		width >>= 8
	}
	return n
}

func drawUint(t *T, n int) uint64 {
	if n > 8 {
		n = 8
	}
	b := t.draw(n)
	var v uint64
	for _, by := range b {
		v = v<<8 | uint64(by)
	}
	return v
}

// OneOf draws one byte and picks an element of values. values must
// have between 1 and 256 entries, else drawing raises a configuration
// error. Byte 0 always selects values[0].
func OneOf[V any](t *T, name string, values []V) V {
	n := len(values)
	if n == 0 {
		panic(configErrorf("OneOf: values must be non-empty"))
	}
	if n > 256 {
		panic(configErrorf("OneOf: %d values exceeds the 256 limit", n))
	}

	b := t.draw(1)
	var idx int
	if n&(n-1) == 0 {
		idx = int(b[0]) * n / 256
	} else {
		idx = int(b[0]) % n
	}
	if idx >= n {
		idx = n - 1
	}
	v := values[idx]
	t.record(name, v)
	return v
}

// ASCIIChar draws one byte mapped into the printable ASCII range
// [0x20, 0x7e], with byte 0 mapping to space, the minimum printable
// character.
func ASCIIChar(t *T, name string) byte {
	b := t.draw(1)
	v := asciiLow + b[0]%asciiSpan
	t.record(name, v)
	return v
}

// ASCIIString draws a variable-length printable ASCII string using the
// same continuation-byte loop as SliceOf, with a ~10% per-character
// stop threshold. All-zero bytes yield the empty string.
func ASCIIString(t *T, name string) string {
	var out []byte
	for {
		cont := t.draw(1)
		if cont[0] < stringContinueThreshold {
			break
		}
		out = append(out, ASCIIChar(t, ""))
	}
	s := string(out)
	t.record(name, s)
	return s
}

// SliceOf draws a variable-length list using elem as the element
// generator. A continuation byte is drawn before every element; once
// it falls below the stop threshold (~20% chance), the accumulated
// slice is returned. All-zero bytes yield an empty slice, the smallest
// possible value.
func SliceOf[V any](t *T, name string, elem Generator[V]) []V {
	var out []V
	for {
		cont := t.draw(1)
		if cont[0] < listContinueThreshold {
			break
		}
		out = append(out, elem(t))
	}
	t.record(name, out)
	return out
}

// ArrayOf draws exactly n elements with elem. Unlike SliceOf there is
// no continuation byte, since the length is fixed by the caller rather
// than discovered from the byte stream.
func ArrayOf[V any](t *T, name string, n int, elem Generator[V]) []V {
	if n < 0 {
		panic(configErrorf("ArrayOf: length %d is negative", n))
	}
	out := make([]V, n)
	for i := range out {
		out[i] = elem(t)
	}
	t.record(name, out)
	return out
}

// Float64Range draws a float64 in [min, max]. It draws 8 bytes as a
// big-endian integer and scales it linearly onto the range: all-zero
// bytes yield min, and smaller bytes yield smaller values. The IEEE-754
// mantissa space is not sampled directly, so the attainable values are
// limited to those this linear scaling produces.
func Float64Range(t *T, name string, min, max float64) float64 {
	if max < min {
		panic(configErrorf("Float64Range: max %f is less than min %f", max, min))
	}
	raw := drawUint(t, 8)
	frac := float64(raw) / float64(math.MaxUint64)
	v := min + frac*(max-min)
	t.record(name, v)
	return v
}
