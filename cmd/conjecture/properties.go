package main

import "github.com/byteseq/conjecture"

// properties bundles six concrete example scenarios by name, for
// -property to select from.
var properties = map[string]func(t *conjecture.T){
	"int-nonneg":      propIntNonNeg,
	"list-sum":        propListSum,
	"reverse-reverse": propReverseReverse,
	"one-of-nil":      propOneOfNil,
	"string-len":      propStringLen,
	"empty-list":      propEmptyList,
}

// propIntNonNeg is scenario 1: assert (i == 0) <=> (i >= 0). Any
// positive i falsifies it. Shrinking ends on a small positive i, but not
// always on 1: a shift-right or subtract-1 step that turns the value
// negative passes the predicate and is rejected.
func propIntNonNeg(t *conjecture.T) {
	i := conjecture.IntRange(t, "i", conjecture.IntOpts{})
	t.Assert((i == 0) == (i >= 0), "i=%d", i)
}

// propListSum is scenario 2: a list of ASCII characters whose sum must
// never equal exactly 200.
func propListSum(t *conjecture.T) {
	chars := conjecture.SliceOf(t, "chars", func(t *conjecture.T) byte {
		return conjecture.ASCIIChar(t, "")
	})
	sum := 0
	for _, c := range chars {
		sum += int(c)
	}
	t.Assert(sum != 200, "chars=%v sum=%d", chars, sum)
}

// propReverseReverse is scenario 3: reversing a list of bools twice
// always returns the original list. It never fails.
func propReverseReverse(t *conjecture.T) {
	xs := conjecture.SliceOf(t, "xs", func(t *conjecture.T) bool {
		return conjecture.Bool(t, "")
	})
	t.Assert(boolSlicesEqual(xs, reverseBools(reverseBools(xs))), "xs=%v", xs)
}

// propOneOfNil is scenario 4: one-of [nil, true], asserting the drawn
// value is nil. Byte 0 maps to nil (the smallest draw), so only the
// upper half of the byte range falsifies this.
func propOneOfNil(t *conjecture.T) {
	v := conjecture.OneOf(t, "v", []any{nil, true})
	t.Assert(v == nil, "v=%v", v)
}

// propStringLen is scenario 5: every generated string must be shorter
// than 5 characters.
func propStringLen(t *conjecture.T) {
	s := conjecture.ASCIIString(t, "s")
	t.Assert(len(s) < 5, "s=%q", s)
}

// propEmptyList is scenario 6: every generated list of integers must be
// empty.
func propEmptyList(t *conjecture.T) {
	xs := conjecture.SliceOf(t, "xs", func(t *conjecture.T) int64 {
		return conjecture.IntRange(t, "", conjecture.IntOpts{})
	})
	t.Assert(len(xs) == 0, "xs=%v", xs)
}

func reverseBools(xs []bool) []bool {
	out := make([]bool, len(xs))
	for i, v := range xs {
		out[len(xs)-1-i] = v
	}
	return out
}

func boolSlicesEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
