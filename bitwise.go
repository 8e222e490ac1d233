// bitwise.go
//
// float64 <-> uint64 reinterpretation shared by the bitwise operators, the
// bit-oriented builtins and the hex/bin/oct renderers. Go leaves the
// conversion of out-of-range floats to integers target-dependent, so the
// truncation policy is pinned here once and the rest of the package never
// converts directly.

package termcalc

import "math"

const (
	two64    = 18446744073709551616.0 // 1 << 64
	minInt64 = -9223372036854775808.0 // -(1 << 63)
)

// truncWord truncates v toward zero into a 64-bit word: negatives through
// two's complement, magnitudes past the word clamped to the nearest edge.
func truncWord(v float64) uint64 {
	switch {
	case v >= two64:
		return math.MaxUint64
	case v >= 0:
		return uint64(v)
	case v >= minInt64:
		return uint64(int64(v))
	default: // below -2^63; also catches NaN if it ever leaks in
		return 1 << 63
	}
}

// shiftCount clamps a shift amount: fractions truncate, anything outside
// [0,64) shifts every bit out. Go defines over-wide shifts as zero, so no
// amount can fault.
func shiftCount(n float64) uint64 {
	if n >= 0 && n < 64 {
		return uint64(n)
	}
	return 64
}

func bitAnd(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN()
	}
	return float64(truncWord(a) & truncWord(b))
}

func bitOr(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN()
	}
	return float64(truncWord(a) | truncWord(b))
}

func bitXor(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN()
	}
	return float64(truncWord(a) ^ truncWord(b))
}

func bitNot(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return float64(^truncWord(v))
}

func shiftLeft(a, n float64) float64 {
	if math.IsNaN(a) || math.IsNaN(n) {
		return math.NaN()
	}
	return float64(truncWord(a) << shiftCount(n))
}

func shiftRight(a, n float64) float64 {
	if math.IsNaN(a) || math.IsNaN(n) {
		return math.NaN()
	}
	return float64(truncWord(a) >> shiftCount(n))
}
