package dtmodel

import (
	"math"
	"sort"
)

// Summary is the numeric digest of a batch of samples, what a host
// shows side by side when comparing an index across scenarios.
//
// Percentiles, not just the mean: a skewed distribution index makes
// the mean alone misleading, so the digest carries the median and
// upper tail as well.
type Summary struct {
	Count  int
	Mean   float64
	Stddev float64
	Min    float64
	Max    float64
	P50    float64
	P95    float64
	P99    float64
}

// Summarize computes the digest of samples. An empty batch yields the
// zero Summary.
func Summarize(samples []float64) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	var sq float64
	for _, v := range sorted {
		d := v - mean
		sq += d * d
	}

	return Summary{
		Count:  n,
		Mean:   mean,
		Stddev: math.Sqrt(sq / float64(n)),
		Min:    sorted[0],
		Max:    sorted[n-1],
		P50:    percentile(sorted, 0.50),
		P95:    percentile(sorted, 0.95),
		P99:    percentile(sorted, 0.99),
	}
}

// percentile picks the p-th percentile from sorted samples
// (0 < p < 1, nearest-rank).
func percentile(sorted []float64, p float64) float64 {
	idx := int(float64(len(sorted)-1) * p)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Sample draws n samples from an index's value. Constants repeat;
// distributions sample; compiled indices need context-variable
// columns and go through Program.Across instead, so Sample returns
// nil for them.
func Sample(ix Index, n int) []float64 {
	v := ix.Value()
	switch v.Kind {
	case KindConstant:
		out := make([]float64, n)
		for i := range out {
			out[i] = v.Constant
		}
		return out
	case KindDistribution:
		out := make([]float64, n)
		for i := range out {
			out[i] = v.Dist.Rand()
		}
		return out
	default:
		return nil
	}
}
