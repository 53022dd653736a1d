// Package binning decides histogram bin edges from data and a policy and
// fills histograms from samples.
//
// Three policies are supported: a fixed bin count (equal-width partition of
// the sample range), a fixed bin step (edges anchored at multiples of the
// step from an origin at or below zero, so boundaries are comparable across
// channels and layers), and an automatic density-based heuristic.
package binning

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/okian/beamplot/internal/domain/model"
)

// degenerateWidth widens a zero-width sample range so equal-width
// partitioning never divides by zero.
const degenerateWidth = 1e-9

type specKind int

const (
	kindAuto specKind = iota
	kindCount
	kindStep
)

// Spec selects a binning policy.
type Spec struct {
	kind  specKind
	count int
	step  float64
}

// Auto selects the automatic density-based heuristic: the larger of the
// Sturges and Freedman-Diaconis bin counts over the sample range.
func Auto() Spec { return Spec{kind: kindAuto} }

// Count selects an equal-width partition into n bins spanning the sample range.
func Count(n int) Spec { return Spec{kind: kindCount, count: n} }

// Step selects fixed-width bins of width w anchored at min(0, sampleMin),
// extending to at least the sample maximum.
func Step(w float64) Spec { return Spec{kind: kindStep, step: w} }

// Edges produces a strictly increasing sequence of bin edges for the sample.
// An empty or nil sample returns ErrEmptySample.
func Edges(sample []float64, spec Spec) ([]float64, error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}

	smin, smax := minMax(sample)

	switch spec.kind {
	case kindCount:
		if spec.count <= 0 {
			return nil, ErrInvalidSpec
		}
		return equalWidth(smin, smax, spec.count), nil

	case kindStep:
		if spec.step <= 0 {
			return nil, ErrInvalidSpec
		}
		return stepEdges(smin, smax, spec.step), nil

	default:
		return equalWidth(smin, smax, autoBinCount(sample, smin, smax)), nil
	}
}

// stepEdges mirrors arange(min(0, smin), smax+w, w): edges start at or below
// zero and are spaced exactly w apart, the last edge landing at or beyond smax.
func stepEdges(smin, smax, w float64) []float64 {
	start := math.Min(0, smin)
	stop := smax + w
	n := int(math.Ceil((stop - start) / w))
	if n < 2 {
		n = 2
	}
	edges := make([]float64, n)
	for i := range edges {
		edges[i] = start + float64(i)*w
	}
	return edges
}

// equalWidth partitions [smin, smax] into n bins of equal width.
func equalWidth(smin, smax float64, n int) []float64 {
	if smax == smin {
		smax = smin + degenerateWidth
	}
	width := (smax - smin) / float64(n)
	edges := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		edges[i] = smin + float64(i)*width
	}
	edges[n] = smax // avoid float drift on the closing edge
	return edges
}

// autoBinCount is the "auto" heuristic: max of Sturges and Freedman-Diaconis.
func autoBinCount(sample []float64, smin, smax float64) int {
	n := len(sample)
	sturges := int(math.Ceil(math.Log2(float64(n)))) + 1

	sorted := make([]float64, n)
	copy(sorted, sample)
	sort.Float64s(sorted)

	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) -
		stat.Quantile(0.25, stat.Empirical, sorted, nil)
	if iqr <= 0 || smax == smin {
		return sturges
	}

	width := 2 * iqr / math.Cbrt(float64(n))
	fd := int(math.Ceil((smax - smin) / width))

	if fd > sturges {
		return fd
	}
	return sturges
}

// Histogram bins the sample under the given spec and computes its summary
// statistics. Bins are half-open on the right except the last, which is
// closed so the sample maximum is counted.
func Histogram(sample []float64, spec Spec) (*model.Histogram, error) {
	edges, err := Edges(sample, spec)
	if err != nil {
		return nil, err
	}

	counts := make([]float64, len(edges)-1)
	for _, v := range sample {
		idx := binIndex(edges, v)
		if idx >= 0 {
			counts[idx]++
		}
	}

	return &model.Histogram{
		Edges:   edges,
		Counts:  counts,
		Mean:    stat.Mean(sample, nil),
		Std:     stat.PopStdDev(sample, nil),
		Entries: len(sample),
	}, nil
}

// binIndex locates the bin for v, or -1 when v falls outside the edges.
func binIndex(edges []float64, v float64) int {
	last := len(edges) - 1
	if v < edges[0] || v > edges[last] {
		return -1
	}
	if v == edges[last] {
		return last - 1
	}
	// First edge strictly greater than v closes v's bin.
	i := sort.SearchFloat64s(edges, v)
	if edges[i] == v {
		return i
	}
	return i - 1
}

func minMax(sample []float64) (float64, float64) {
	smin, smax := sample[0], sample[0]
	for _, v := range sample {
		if v < smin {
			smin = v
		}
		if v > smax {
			smax = v
		}
	}
	return smin, smax
}
