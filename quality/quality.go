// Package quality measures the statistical quality of engine output.
//
// The checks are smoke tests, not a replacement for a full battery such as
// TestU01: a chi-square goodness of fit over bounded integers, the first two
// moments of uniform draws and the lag-1 serial correlation.
package quality

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/nozzle/mt64"
	"github.com/nozzle/mt64/internal/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrNoDraws is returned when a check is asked for no samples.
	ErrNoDraws = errors.New("quality: draws must be positive")
	// ErrTooFewBins is returned when a goodness-of-fit test has fewer than
	// two categories.
	ErrTooFewBins = errors.New("quality: need at least two bins")
)

// Sampler is the subset of the engine the checks draw from.
type Sampler interface {
	RandInt(bound int32) (int32, error)
	Uniform() float64
}

// Config configures a quality report.
type Config struct {
	// Seed for the engine under test.
	// Default: mt64.DefaultSeed
	Seed uint64

	// Draws is the number of samples per check.
	// Default: 100000
	Draws int

	// Bound is the number of bins for the chi-square check.
	// Default: 8
	Bound int32

	// Alpha is the significance level below which a check fails.
	// Default: 0.001
	Alpha float64

	// NumWorkers for seed sweeps.
	// 0 = auto-detect based on CPU cores.
	// Default: 0
	NumWorkers int

	// Verbose enables progress output.
	// Default: false
	Verbose bool

	// Output receives progress output.
	// Default: os.Stdout
	Output io.Writer
}

// DefaultConfig returns the default report configuration.
func DefaultConfig() Config {
	return Config{
		Seed:       mt64.DefaultSeed,
		Draws:      100000,
		Bound:      8,
		Alpha:      0.001,
		NumWorkers: 0,
		Verbose:    false,
	}
}

func (c Config) logf(format string, args ...any) {
	if !c.Verbose {
		return
	}
	w := c.Output
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, format, args...)
}

// Result is the outcome of a chi-square goodness-of-fit test.
type Result struct {
	Seed      uint64
	Statistic float64
	DF        int
	PValue    float64
}

// Pass reports whether the p-value is at least alpha.
func (r Result) Pass(alpha float64) bool {
	return r.PValue >= alpha
}

// Summary collects every check of a report.
type Summary struct {
	Seed      uint64
	Draws     int
	ChiSquare Result
	Mean      float64
	Variance  float64
	Lag1      float64
}

// Pass reports whether all checks are within tolerance: the chi-square
// p-value is at least alpha and the moments and lag-1 correlation are within
// five standard errors of their expected values.
func (s *Summary) Pass(alpha float64) bool {
	n := float64(s.Draws)
	meanTol := 5 * math.Sqrt(1.0/12/n)
	// Var of the sample variance of U(0,1) is (1/80 - 1/144)/n.
	varTol := 5 * math.Sqrt((1.0/80-1.0/144)/n)
	lagTol := 5 / math.Sqrt(n)

	return s.ChiSquare.Pass(alpha) &&
		math.Abs(s.Mean-0.5) <= meanTol &&
		math.Abs(s.Variance-1.0/12) <= varTol &&
		math.Abs(s.Lag1) <= lagTol
}

// Counts draws RandInt(bound) draws times and returns the number of hits per
// value.
func Counts(s Sampler, bound int32, draws int) ([]float64, error) {
	if draws <= 0 {
		return nil, ErrNoDraws
	}
	if bound <= 0 {
		return nil, fmt.Errorf("%w: bound must be positive, got %d", mt64.ErrInvalidArgument, bound)
	}

	counts := make([]float64, bound)
	for k := 0; k < draws; k++ {
		v, err := s.RandInt(bound)
		if err != nil {
			return nil, err
		}
		counts[v]++
	}
	return counts, nil
}

// ChiSquareUniform tests counts against the uniform distribution over its
// bins.
func ChiSquareUniform(counts []float64) (Result, error) {
	k := len(counts)
	if k < 2 {
		return Result{}, ErrTooFewBins
	}

	expected := make([]float64, k)
	floats.AddConst(floats.Sum(counts)/float64(k), expected)

	chi := stat.ChiSquare(counts, expected)
	df := k - 1
	return Result{
		Statistic: chi,
		DF:        df,
		PValue:    distuv.ChiSquared{K: float64(df)}.Survival(chi),
	}, nil
}

// Moments returns the mean and unbiased variance of samples.
func Moments(samples []float64) (mean, variance float64) {
	return stat.MeanVariance(samples, nil)
}

// SerialCorrelation returns the Pearson correlation between each sample and
// its successor. It returns 0 for fewer than three samples.
func SerialCorrelation(samples []float64) float64 {
	if len(samples) < 3 {
		return 0
	}
	return stat.Correlation(samples[:len(samples)-1], samples[1:], nil)
}

// Report runs every check against a fresh engine seeded with cfg.Seed.
func Report(cfg Config) (*Summary, error) {
	if cfg.Draws <= 0 {
		return nil, ErrNoDraws
	}

	e := mt64.New(cfg.Seed)

	cfg.logf("Chi-square over %d draws of RandInt(%d)\n", cfg.Draws, cfg.Bound)
	chi, err := chiSquare(e, cfg)
	if err != nil {
		return nil, err
	}
	chi.Seed = cfg.Seed

	cfg.logf("Moments and serial correlation over %d uniform draws\n", cfg.Draws)
	samples := make([]float64, cfg.Draws)
	for i := range samples {
		samples[i] = e.Uniform()
	}
	mean, variance := Moments(samples)

	return &Summary{
		Seed:      cfg.Seed,
		Draws:     cfg.Draws,
		ChiSquare: chi,
		Mean:      mean,
		Variance:  variance,
		Lag1:      SerialCorrelation(samples),
	}, nil
}

// Sweep runs the chi-square check once per seed. Every trial owns its own
// engine, so trials run in parallel on cfg.NumWorkers goroutines.
func Sweep(seeds []uint64, cfg Config) ([]Result, error) {
	if cfg.Draws <= 0 {
		return nil, ErrNoDraws
	}

	type trial struct {
		result Result
		err    error
	}

	workers := parallel.Workers(cfg.NumWorkers)
	cfg.logf("Sweeping %d seeds on %d workers\n", len(seeds), workers)

	trials := parallel.Map(len(seeds), workers, func(i int) trial {
		r, err := chiSquare(mt64.New(seeds[i]), cfg)
		r.Seed = seeds[i]
		return trial{result: r, err: err}
	})

	results := make([]Result, len(trials))
	for i, tr := range trials {
		if tr.err != nil {
			return nil, fmt.Errorf("seed %d: %w", seeds[i], tr.err)
		}
		results[i] = tr.result
	}
	return results, nil
}

func chiSquare(s Sampler, cfg Config) (Result, error) {
	counts, err := Counts(s, cfg.Bound, cfg.Draws)
	if err != nil {
		return Result{}, err
	}
	return ChiSquareUniform(counts)
}
