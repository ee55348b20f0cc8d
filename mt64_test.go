package mt64_test

import (
	"math/rand/v2"
	"testing"

	"github.com/nozzle/mt64"
)

// Engine must be usable wherever math/rand/v2 expects a Source.
var _ rand.Source = (*mt64.Engine)(nil)

func TestUint64DefaultSeed(t *testing.T) {
	// Reference values for mt19937_64 seeded with 5489, see
	// http://www.math.sci.hiroshima-u.ac.jp/~m-mat/MT/emt64.html
	expected := []uint64{
		14514284786278117030,
		4620546740167642908,
		13109570281517897720,
	}

	e := mt64.New(mt64.DefaultSeed)
	for i, want := range expected {
		if got := e.Uint64(); got != want {
			t.Errorf("value %d: got %d, expected %d", i, got, want)
		}
	}

	// The 10000th value, as listed for std::mt19937_64 on cppreference.
	for i := len(expected); i < 9999; i++ {
		e.Uint64()
	}
	if got, want := e.Uint64(), uint64(9981545732273789042); got != want {
		t.Errorf("10000th value: got %d, expected %d", got, want)
	}
}

func TestUint64OtherSeeds(t *testing.T) {
	tests := []struct {
		seed uint64
		want uint64
	}{
		{0, 2947667278772165694},
		{42, 13930160852258120406},
	}

	for _, tt := range tests {
		if got := mt64.New(tt.seed).Uint64(); got != tt.want {
			t.Errorf("seed %d: got %d, expected %d", tt.seed, got, tt.want)
		}
	}
}

func TestSeeding(t *testing.T) {
	const seed = 0xdeadbeefcafe
	e := mt64.New(seed)
	state := e.State()

	if state[0] != seed {
		t.Errorf("words[0] = %d, expected the seed %d", state[0], uint64(seed))
	}
	for i := 1; i < mt64.StateSize; i++ {
		prev := state[i-1]
		want := 6364136223846793005*(prev^(prev>>62)) + uint64(i)
		if state[i] != want {
			t.Fatalf("words[%d] = %d, expected %d", i, state[i], want)
		}
	}
	if e.Cursor() != mt64.StateSize {
		t.Errorf("cursor = %d after seeding, expected %d", e.Cursor(), mt64.StateSize)
	}
}

func TestDeterminism(t *testing.T) {
	a := mt64.New(20240611)
	b := mt64.New(20240611)

	for i := 0; i < 2000; i++ {
		switch i % 5 {
		case 0:
			if x, y := a.Uint64(), b.Uint64(); x != y {
				t.Fatalf("step %d: Uint64 diverged: %d vs %d", i, x, y)
			}
		case 1:
			if x, y := a.Uniform(), b.Uniform(); x != y {
				t.Fatalf("step %d: Uniform diverged: %v vs %v", i, x, y)
			}
		case 2:
			x, _ := a.RandInt(1000)
			y, _ := b.RandInt(1000)
			if x != y {
				t.Fatalf("step %d: RandInt diverged: %d vs %d", i, x, y)
			}
		case 3:
			x, _ := a.RandFloat(3.5)
			y, _ := b.RandFloat(3.5)
			if x != y {
				t.Fatalf("step %d: RandFloat diverged: %v vs %v", i, x, y)
			}
		case 4:
			x, _ := a.RandRange(-50, 50)
			y, _ := b.RandRange(-50, 50)
			if x != y {
				t.Fatalf("step %d: RandRange diverged: %d vs %d", i, x, y)
			}
		}
	}
}

func TestSeedIndependence(t *testing.T) {
	seen := make(map[uint64]uint64)
	for seed := uint64(0); seed < 1000; seed++ {
		first := mt64.New(seed).Uint64()
		if other, ok := seen[first]; ok {
			t.Errorf("seeds %d and %d share the first output %d", other, seed, first)
		}
		seen[first] = seed
	}
}

func TestTwistPeriodicity(t *testing.T) {
	e := mt64.New(mt64.DefaultSeed)
	seeded := e.State()

	e.Uint64()
	if e.Cursor() != 1 {
		t.Fatalf("cursor = %d after first extraction, expected 1", e.Cursor())
	}
	firstBatch := e.State()
	if firstBatch == seeded {
		t.Fatal("first extraction did not twist the seeded state")
	}

	for i := 1; i < mt64.StateSize; i++ {
		e.Uint64()
	}
	if e.Cursor() != mt64.StateSize {
		t.Fatalf("cursor = %d after %d extractions, expected %d", e.Cursor(), mt64.StateSize, mt64.StateSize)
	}
	if e.State() != firstBatch {
		t.Fatal("state changed within a batch: more than one twist in 312 extractions")
	}

	// Word 313 starts the second batch.
	e.Uint64()
	if e.Cursor() != 1 {
		t.Errorf("cursor = %d after word 313, expected 1", e.Cursor())
	}
	if e.State() == firstBatch {
		t.Error("word 313 did not twist the state")
	}
}

func TestSeedAccessor(t *testing.T) {
	e := mt64.New(mt64.DefaultSeed)
	if e.Seed() != mt64.DefaultSeed || e.Head() != mt64.DefaultSeed {
		t.Fatalf("before extraction: Seed() = %d, Head() = %d", e.Seed(), e.Head())
	}

	e.Uint64()

	if e.Seed() != mt64.DefaultSeed {
		t.Errorf("Seed() = %d after a twist, expected %d", e.Seed(), mt64.DefaultSeed)
	}
	if got, want := e.Head(), uint64(2619718836730839568); got != want {
		t.Errorf("Head() = %d after a twist, expected %d", got, want)
	}
}

func TestReset(t *testing.T) {
	e := mt64.New(1)
	for k := 0; k < 500; k++ {
		e.Uint64()
	}

	e.Reset(mt64.DefaultSeed)
	if e.Seed() != mt64.DefaultSeed {
		t.Errorf("Seed() = %d after Reset, expected %d", e.Seed(), mt64.DefaultSeed)
	}
	if got, want := e.Uint64(), uint64(14514284786278117030); got != want {
		t.Errorf("first value after Reset: got %d, expected %d", got, want)
	}
}

func TestRandSource(t *testing.T) {
	r := rand.New(mt64.New(mt64.DefaultSeed))
	for k := 0; k < 1000; k++ {
		if n := r.IntN(10); n < 0 || n >= 10 {
			t.Fatalf("IntN(10) = %d", n)
		}
	}
}

func BenchmarkUint64(b *testing.B) {
	e := mt64.New(mt64.DefaultSeed)
	for i := 0; i < b.N; i++ {
		e.Uint64()
	}
}

func BenchmarkReset(b *testing.B) {
	e := mt64.New(mt64.DefaultSeed)
	for i := 0; i < b.N; i++ {
		e.Reset(uint64(i))
	}
}
