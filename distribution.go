package mt64

import (
	"fmt"
	"math"
)

// uniformDivisor is the largest int64 as a float64. It rounds to 2^63.
const uniformDivisor = float64(math.MaxInt64)

// Uniform returns a float64 in [0.0, 1.0) built from the top 63 bits of the
// next word.
func (e *Engine) Uniform() float64 {
	for {
		// Numerators within 2^9 of 2^63 round up to the divisor.
		f := float64(e.Uint64()>>1) / uniformDivisor
		if f < 1 {
			return f
		}
	}
}

// RandInt returns an int32 in [0, bound). Draws that would bias the result
// toward small values are rejected and redrawn.
func (e *Engine) RandInt(bound int32) (int32, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: bound must be positive, got %d", ErrInvalidArgument, bound)
	}
	return e.randInt(bound), nil
}

func (e *Engine) randInt(bound int32) int32 {
	for {
		bits := int32(e.Uint64() >> (64 - 31))
		val := bits % bound
		// Wraps negative when bits falls in the incomplete last block.
		if bits-val+(bound-1) >= 0 {
			return val
		}
	}
}

// RandFloat returns a float32 in [0.0, bound). bound must be positive and
// finite.
func (e *Engine) RandFloat(bound float32) (float32, error) {
	if !(bound > 0) || math.IsInf(float64(bound), 1) {
		return 0, fmt.Errorf("%w: bound must be positive, got %v", ErrInvalidArgument, bound)
	}
	for {
		// Narrowing can round up to 1, and for subnormal bounds the product
		// can round up to bound.
		if r := float32(e.Uniform()) * bound; r < bound {
			return r, nil
		}
	}
}

// RandDouble returns a float64 in [0.0, bound). bound must be positive and
// finite.
func (e *Engine) RandDouble(bound float64) (float64, error) {
	if !(bound > 0) || math.IsInf(bound, 1) {
		return 0, fmt.Errorf("%w: bound must be positive, got %v", ErrInvalidArgument, bound)
	}
	for {
		// Subnormal bounds can round the product up to bound.
		if r := e.Uniform() * bound; r < bound {
			return r, nil
		}
	}
}

// RandRange returns an int32 in [lo, hi). The span hi-lo must fit in an
// int32.
func (e *Engine) RandRange(lo, hi int32) (int32, error) {
	if lo >= hi {
		return 0, fmt.Errorf("%w: min must be less than max, got [%d, %d)", ErrInvalidArgument, lo, hi)
	}
	span := int64(hi) - int64(lo)
	if span > math.MaxInt32 {
		return 0, fmt.Errorf("%w: range [%d, %d) is wider than %d", ErrInvalidArgument, lo, hi, math.MaxInt32)
	}
	return e.randInt(int32(span)) + lo, nil
}
