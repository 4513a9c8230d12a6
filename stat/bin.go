package stat

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// MaxBins is the largest number of bins Bins produces.
const MaxBins = 1000000

// ErrTooManyBins is returned when the bin width would need more than
// MaxBins bins to cover the data.
var ErrTooManyBins = errors.New("too many bins")

// Bin is one bin of a histogram. It covers [Min,Max), the last bin of
// a histogram also contains its right edge.
type Bin struct {
	Min, Max float64
	Count    int64
}

// BinOptions controls how Bins chooses the bin edges.
type BinOptions struct {
	// N is the number of bins. Zero selects the count automatically.
	N int

	// BinWidth is used if N is zero and BinWidth is positive.
	BinWidth float64
}

// Bins groups xs into bins and counts occurrences in these bins.
// NaN values are ignored. A nil options will use the automatic rule
// which picks the finer of the Sturges and Freedman-Diaconis bin widths.
// All-NaN or empty xs yield no bins and no error.
func Bins(xs []float64, options *BinOptions) ([]Bin, error) {
	xs = Present(xs)
	if len(xs) == 0 {
		return nil, nil
	}
	if options == nil {
		options = &BinOptions{}
	}

	min, max := MinMax(xs)
	if min == max {
		min -= 0.5
		max += 0.5
	}

	n := options.N
	if n > MaxBins {
		return nil, fmt.Errorf("%w: %d", ErrTooManyBins, n)
	}
	if n <= 0 {
		var err error
		if options.BinWidth > 0 {
			n, err = binCount(max-min, options.BinWidth)
		} else {
			n, err = AutoBinCount(xs)
		}
		if err != nil {
			return nil, err
		}
	}

	width := (max - min) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Min = min + float64(i)*width
		bins[i].Max = min + float64(i+1)*width
	}
	bins[n-1].Max = max

	for _, x := range xs {
		b := int((x - min) / width)
		if b >= n {
			b = n - 1
		} else if b < 0 {
			b = 0
		}
		bins[b].Count++
	}
	return bins, nil
}

// binCount is the number of bins of the given width covering span.
func binCount(span, width float64) (int, error) {
	n := math.Ceil(span / width)
	if math.IsNaN(n) || n > MaxBins {
		return 0, fmt.Errorf("%w: width %g over a range of %g", ErrTooManyBins, width, span)
	}
	if n < 1 {
		return 1, nil
	}
	return int(n), nil
}

// AutoBinCount returns the number of bins numpy's "auto" estimator
// would use for xs, which must not contain NaN.
func AutoBinCount(xs []float64) (int, error) {
	n := float64(len(xs))
	if n == 0 {
		return 1, nil
	}
	min, max := MinMax(xs)
	span := max - min
	if span == 0 {
		return 1, nil
	}

	sturges := span / (math.Log2(n) + 1)

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	iqr := quantile(sorted, 0.75) - quantile(sorted, 0.25)
	fd := 2 * iqr * math.Pow(n, -1.0/3.0)

	width := sturges
	if fd > 0 && fd < sturges {
		width = fd
	}
	return binCount(span, width)
}

// quantile interpolates linearly between the closest ranks of the
// sorted xs (numpy's default, Hyndman and Fan type 7).
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// MaxCount returns the largest count of all bins.
func MaxCount(bins []Bin) int64 {
	var max int64
	for _, b := range bins {
		if b.Count > max {
			max = b.Count
		}
	}
	return max
}
