// Package testkit provides the statistical assertions shared by the
// sampler tests.
package testkit

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// SummaryStats bundles the summary statistics of one sample
type SummaryStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes summary statistics for a sample
func Summarize(data []float64) (SummaryStats, error) {
	mean, err := stats.Mean(data)
	if err != nil {
		return SummaryStats{}, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return SummaryStats{}, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return SummaryStats{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return SummaryStats{}, err
	}
	return SummaryStats{Mean: mean, StdDev: stdDev, Min: min, Max: max}, nil
}

// KSDistance returns the two-sample Kolmogorov-Smirnov statistic of a
// and b. Inputs are copied and sorted, not mutated.
func KSDistance(a, b []float64) float64 {
	x := append([]float64(nil), a...)
	y := append([]float64(nil), b...)
	sort.Float64s(x)
	sort.Float64s(y)
	return stat.KolmogorovSmirnov(x, nil, y, nil)
}

// SqrtLawCDF is the CDF of the zero-limb-darkening direction cosine
// law mu = sqrt(z): P(mu <= m) = m^2 on [0, 1].
func SqrtLawCDF(m float64) float64 {
	switch {
	case m <= 0:
		return 0
	case m >= 1:
		return 1
	default:
		return m * m
	}
}

// KSDistanceToCDF returns the one-sample Kolmogorov-Smirnov statistic
// of data against an analytic CDF.
func KSDistanceToCDF(data []float64, cdf func(float64) float64) float64 {
	x := append([]float64(nil), data...)
	sort.Float64s(x)
	n := float64(len(x))
	d := 0.0
	for i, v := range x {
		c := cdf(v)
		lower := float64(i) / n
		upper := float64(i+1) / n
		d = math.Max(d, math.Max(c-lower, upper-c))
	}
	return d
}
