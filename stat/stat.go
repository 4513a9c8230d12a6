// Package stat contains the numeric helpers behind the plots: counting
// categories, binning, central tendency and grouped means.
//
// NaN is treated as a missing value throughout.
package stat

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// Present returns the non-NaN values of xs. If xs contains no NaN, xs
// itself is returned.
func Present(xs []float64) []float64 {
	n := 0
	for _, x := range xs {
		if !math.IsNaN(x) {
			n++
		}
	}
	if n == len(xs) {
		return xs
	}
	p := make([]float64, 0, n)
	for _, x := range xs {
		if !math.IsNaN(x) {
			p = append(p, x)
		}
	}
	return p
}

// MinMax returns the smallest and largest value in xs. xs must be
// non-empty and free of NaN.
func MinMax(xs []float64) (min, max float64) {
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		} else if x > max {
			max = x
		}
	}
	return min, max
}

// Mean is the arithmetic mean of the present values in xs. It is NaN
// if there are none.
func Mean(xs []float64) float64 {
	xs = Present(xs)
	if len(xs) == 0 {
		return math.NaN()
	}
	return stats.Mean(xs)
}

// Median is the statistical median of the present values in xs. For
// an even number of values it is the mean of the two middle ones.
func Median(xs []float64) float64 {
	xs = Present(xs)
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Count is the number of occurrences of one category.
type Count struct {
	Level string
	N     int
}

// Counts counts the occurrences of each distinct value in data. The
// result lists the levels in order of their first appearance.
func Counts(data []string) []Count {
	idx := make(map[string]int)
	var counts []Count
	for _, s := range data {
		i, ok := idx[s]
		if !ok {
			i = len(counts)
			idx[s] = i
			counts = append(counts, Count{Level: s})
		}
		counts[i].N++
	}
	return counts
}

// Group is the mean of the values sharing one key.
type Group struct {
	Key  float64
	Mean float64
	N    int // number of present values averaged
}

// GroupMeans groups values by keys and averages each group over its
// present values. Rows with a NaN key are dropped. The groups are
// returned in ascending key order. keys and values must have the same
// length.
func GroupMeans(keys, values []float64, less func(a, b float64) bool) []Group {
	sums := make(map[float64]float64)
	ns := make(map[float64]int)
	var order []float64
	for i, k := range keys {
		if math.IsNaN(k) {
			continue
		}
		if _, ok := ns[k]; !ok {
			order = append(order, k)
			ns[k] = 0
		}
		if v := values[i]; !math.IsNaN(v) {
			sums[k] += v
			ns[k]++
		}
	}

	if less == nil {
		less = func(a, b float64) bool { return a < b }
	}
	sort.SliceStable(order, func(i, j int) bool { return less(order[i], order[j]) })

	groups := make([]Group, len(order))
	for i, k := range order {
		groups[i] = Group{Key: k, N: ns[k], Mean: math.NaN()}
		if ns[k] > 0 {
			groups[i].Mean = sums[k] / float64(ns[k])
		}
	}
	return groups
}
