package main

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/nozzle/mt64"
	"github.com/nozzle/mt64/quality"
)

var (
	title  = color.New(color.FgCyan, color.Bold)
	header = color.New(color.FgYellow)
)

// maxSize keeps the range section's span [-size, size) within an int32.
const maxSize = math.MaxInt32 / 2

// checkSize validates the -size flag before any section is generated.
func checkSize(size int) error {
	if size <= 0 || size > maxSize {
		return fmt.Errorf("-size must be in [1, %d], got %d", maxSize, size)
	}
	return nil
}

// printDemo prints size values from each distribution, one section at a time.
func printDemo(w io.Writer, e *mt64.Engine, size int32) error {
	fmt.Fprintln(w, title.Sprint("Mersenne Twister 64 bit"))
	fmt.Fprintf(w, "seed: %d\n", e.Seed())

	sections := []struct {
		name string
		next func() (any, error)
	}{
		{"random", func() (any, error) { return e.Uniform(), nil }},
		{"random int", func() (any, error) { return e.RandInt(8) }},
		{"random float", func() (any, error) { return e.RandFloat(float32(size)) }},
		{"random double", func() (any, error) { return e.RandDouble(float64(size)) }},
		{"random range", func() (any, error) { return e.RandRange(-size, size) }},
	}

	for _, s := range sections {
		values := make([]any, size)
		for i := range values {
			v, err := s.next()
			if err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
			values[i] = v
		}

		fmt.Fprintln(w, header.Sprint(s.name))
		for _, v := range values {
			fmt.Fprintln(w, v)
		}
	}
	return nil
}

// printSummary prints a quality report with a verdict per check.
func printSummary(w io.Writer, s *quality.Summary, alpha float64) {
	fmt.Fprintln(w, title.Sprint("quality"))
	fmt.Fprintf(w, "chi-square: %.4f (df %d, p %.4f) %s\n",
		s.ChiSquare.Statistic, s.ChiSquare.DF, s.ChiSquare.PValue, verdict(s.ChiSquare.Pass(alpha)))
	fmt.Fprintf(w, "mean: %.6f\n", s.Mean)
	fmt.Fprintf(w, "variance: %.6f\n", s.Variance)
	fmt.Fprintf(w, "lag-1 correlation: %.6f\n", s.Lag1)
	fmt.Fprintf(w, "overall: %s\n", verdict(s.Pass(alpha)))
}

func verdict(ok bool) string {
	if ok {
		return color.GreenString("PASS")
	}
	return color.RedString("FAIL")
}
