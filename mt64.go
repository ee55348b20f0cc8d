// Package mt64 implements the 64-bit Mersenne Twister (MT19937-64)
// pseudo-random number generator and a few bounded distributions built on it.
//
// The generator follows the reference algorithm by Matsumoto and Nishimura:
// http://www.math.sci.hiroshima-u.ac.jp/~m-mat/MT/emt64.html
//
// MT19937-64 is not cryptographically secure. After observing 312 consecutive
// outputs the rest of the sequence can be predicted.
//
// An Engine is not safe for concurrent use. Give each goroutine its own engine
// or guard a shared one with a mutex.
//
// Basic usage:
//
//	e := mt64.New(mt64.DefaultSeed)
//	n, err := e.RandInt(8)
package mt64

const (
	stateSize = 312 // words in the recurrence register
	shiftSize = 156 // recurrence offset

	matrixA   uint64 = 0xb5026f5aa96619e9
	upperMask uint64 = 0xffffffff80000000 // 33 most significant bits
	lowerMask uint64 = 0x000000007fffffff // 31 least significant bits

	// initMul drives the seeding recurrence.
	initMul uint64 = 6364136223846793005

	// Tempering shifts and masks.
	temperU = 29
	temperD = 0x5555555555555555
	temperS = 17
	temperB = 0x71d67fffeda60000
	temperT = 37
	temperC = 0xfff7eee000000000
	temperL = 43
)

// DefaultSeed is the seed used by the reference implementation.
const DefaultSeed uint64 = 5489

// Engine is a MT19937-64 generator. The zero value is not usable; create
// engines with New, NewFromProvider or NewWithConfig.
type Engine struct {
	words  [stateSize]uint64
	cursor int
	seed   uint64
}

// New creates an engine seeded with seed. Any value, including 0, is valid.
func New(seed uint64) *Engine {
	e := &Engine{}
	e.Reset(seed)
	return e
}

// Reset reseeds the engine in place. The next extraction twists a fresh
// state, exactly as for a newly created engine.
func (e *Engine) Reset(seed uint64) {
	e.seed = seed
	e.words[0] = seed
	for i := 1; i < stateSize; i++ {
		prev := e.words[i-1]
		e.words[i] = initMul*(prev^(prev>>62)) + uint64(i)
	}
	e.cursor = stateSize
}

// Seed returns the seed the engine was created (or last reset) with.
//
// This differs from reading the first state word, which every twist
// rewrites. Use Head for that value.
func (e *Engine) Seed() uint64 {
	return e.seed
}

// Head returns the current first word of the state. It equals Seed until the
// first extraction triggers a twist.
func (e *Engine) Head() uint64 {
	return e.words[0]
}

// twist regenerates all state words from themselves.
func (e *Engine) twist() {
	for i := 0; i < stateSize; i++ {
		x := e.words[i]&upperMask | e.words[(i+1)%stateSize]&lowerMask
		xA := x >> 1
		if x&1 != 0 {
			xA ^= matrixA
		}
		e.words[i] = e.words[(i+shiftSize)%stateSize] ^ xA
	}
	e.cursor = 0
}

// Uint64 returns the next tempered 64-bit word. It makes Engine a
// math/rand/v2 Source.
func (e *Engine) Uint64() uint64 {
	if e.cursor >= stateSize {
		e.twist()
	}

	y := e.words[e.cursor]
	e.cursor++

	// Tempering
	y ^= (y >> temperU) & temperD
	y ^= (y << temperS) & temperB
	y ^= (y << temperT) & temperC
	y ^= y >> temperL

	return y
}
