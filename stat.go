package quickplot

import (
	"fmt"
	"math"

	"github.com/vdobler/quickplot/stat"
)

// Stat is the interface of statistical transform.
//
// Statistical transform take a data frame and produce an other data frame.
// This is typically done by "summarizing" the data: counting levels,
// binning values or averaging groups. The input frame is never modified.
type Stat interface {
	// Name returns the name of this statistic.
	Name() string

	// Apply this statistic to data.
	Apply(data *DataFrame) (*DataFrame, error)

	// Info returns the StatInfo which describes how this
	// statistic can be used.
	Info() StatInfo
}

// StatInfo contains information about how a stat can be used.
type StatInfo struct {
	// NeededAes are the aesthetics which must be present in the
	// data frame. If not all needed aesthetics are mapped this
	// statistics cannot be applied.
	NeededAes []string

	// Produces lists the columns the statistic computes. Only these
	// may be mapped to aesthetics of a layer.
	Produces []string
}

// checkNeeded makes sure all needed aesthetics of s are columns of data.
func checkNeeded(s Stat, data *DataFrame) error {
	if data == nil {
		return fmt.Errorf("%s: %w", s.Name(), ErrNoFrame)
	}
	missing := NewStringSetFrom(s.Info().NeededAes)
	missing.Remove(NewStringSetFrom(data.FieldNames()))
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %v", s.Name(), ErrNoColumn, missing.Elements())
	}
	return nil
}

// -------------------------------------------------------------------------
// StatChain

// StatChain applies its stats one after the other.
type StatChain []Stat

var _ Stat = StatChain{}

func (StatChain) Name() string { return "StatChain" }

func (c StatChain) Info() StatInfo {
	if len(c) == 0 {
		return StatInfo{}
	}
	var produces []string
	seen := NewStringSet()
	for _, s := range c {
		for _, p := range s.Info().Produces {
			if !seen.Contains(p) {
				seen.Add(p)
				produces = append(produces, p)
			}
		}
	}
	return StatInfo{
		NeededAes: c[0].Info().NeededAes,
		Produces:  produces,
	}
}

func (c StatChain) Apply(data *DataFrame) (*DataFrame, error) {
	var err error
	for _, s := range c {
		data, err = s.Apply(data)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// -------------------------------------------------------------------------
// StatCount

// StatCount counts the occurrences of each present level of x. The
// levels keep the order of their first appearance. prop is the share
// of count in all counted rows.
type StatCount struct{}

var _ Stat = StatCount{}

func (StatCount) Name() string { return "StatCount" }

func (StatCount) Info() StatInfo {
	return StatInfo{
		NeededAes: []string{"x"},
		Produces:  []string{"x", "count", "prop"},
	}
}

func (s StatCount) Apply(data *DataFrame) (*DataFrame, error) {
	if err := checkNeeded(s, data); err != nil {
		return nil, err
	}
	x := data.Columns["x"]
	counts := stat.Counts(x.Strings())
	if len(counts) == 0 {
		return nil, fmt.Errorf("%s: %w", s.Name(), ErrEmptyData)
	}
	total := 0
	for _, c := range counts {
		total += c.N
	}

	pool := data.Pool
	n := len(counts)
	result := NewDataFrame(fmt.Sprintf("%s counted by x", data.Name), pool)
	levels := NewField(n, String, pool)
	count := NewField(n, Float, pool)
	prop := NewField(n, Float, pool)
	for i, c := range counts {
		levels.Data[i] = float64(pool.Add(c.Level))
		count.Data[i] = float64(c.N)
		prop.Data[i] = float64(c.N) / float64(total)
	}
	result.Add("x", levels)
	result.Add("count", count)
	result.Add("prop", prop)
	return result, nil
}

// -------------------------------------------------------------------------
// StatBin

// StatBin bins the present values of x. Bins is the number of bins;
// zero selects it automatically.
type StatBin struct {
	Bins     int
	BinWidth float64
}

var _ Stat = StatBin{}

func (StatBin) Name() string { return "StatBin" }

func (StatBin) Info() StatInfo {
	return StatInfo{
		NeededAes: []string{"x"},
		Produces:  []string{"xmin", "xmax", "count"},
	}
}

func (s StatBin) Apply(data *DataFrame) (*DataFrame, error) {
	if err := checkNeeded(s, data); err != nil {
		return nil, err
	}
	x := data.Columns["x"]
	if x.Discrete() {
		return nil, fmt.Errorf("%s: %w: x is %s", s.Name(), ErrNotNumeric, x.Type)
	}
	bins, err := stat.Bins(x.Data, &stat.BinOptions{N: s.Bins, BinWidth: s.BinWidth})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name(), err)
	}
	if len(bins) == 0 {
		return nil, fmt.Errorf("%s: %w", s.Name(), ErrEmptyData)
	}

	pool := data.Pool
	n := len(bins)
	result := NewDataFrame(fmt.Sprintf("%s binned by x", data.Name), pool)
	xmin := NewField(n, Float, pool)
	xmax := NewField(n, Float, pool)
	count := NewField(n, Float, pool)
	for i, b := range bins {
		xmin.Data[i] = b.Min
		xmax.Data[i] = b.Max
		count.Data[i] = float64(b.Count)
	}
	result.Add("xmin", xmin)
	result.Add("xmax", xmax)
	result.Add("count", count)
	return result, nil
}

// -------------------------------------------------------------------------
// StatSummary

// StatSummary reduces x to a single row with its mean and median.
type StatSummary struct{}

var _ Stat = StatSummary{}

func (StatSummary) Name() string { return "StatSummary" }

func (StatSummary) Info() StatInfo {
	return StatInfo{
		NeededAes: []string{"x"},
		Produces:  []string{"mean", "median", "n"},
	}
}

func (s StatSummary) Apply(data *DataFrame) (*DataFrame, error) {
	if err := checkNeeded(s, data); err != nil {
		return nil, err
	}
	x := data.Columns["x"]
	if x.Discrete() {
		return nil, fmt.Errorf("%s: %w: x is %s", s.Name(), ErrNotNumeric, x.Type)
	}
	present := stat.Present(x.Data)
	if len(present) == 0 {
		return nil, fmt.Errorf("%s: %w", s.Name(), ErrEmptyData)
	}

	result := NewDataFrame(fmt.Sprintf("summary of %s", data.Name), data.Pool)
	result.AddFloat("mean", []float64{stat.Mean(present)})
	result.AddFloat("median", []float64{stat.Median(present)})
	result.AddFloat("n", []float64{float64(len(present))})
	return result, nil
}

// -------------------------------------------------------------------------
// StatGroupMean

// StatGroupMean averages y within each present level of x. The groups
// come out in ascending order of x; a group without any present y gets
// a NaN mean.
type StatGroupMean struct{}

var _ Stat = StatGroupMean{}

func (StatGroupMean) Name() string { return "StatGroupMean" }

func (StatGroupMean) Info() StatInfo {
	return StatInfo{
		NeededAes: []string{"x", "y"},
		Produces:  []string{"x", "y", "n"},
	}
}

func (s StatGroupMean) Apply(data *DataFrame) (*DataFrame, error) {
	if err := checkNeeded(s, data); err != nil {
		return nil, err
	}
	x, y := data.Columns["x"], data.Columns["y"]
	if y.Discrete() {
		return nil, fmt.Errorf("%s: %w: y is %s", s.Name(), ErrNotNumeric, y.Type)
	}
	groups := stat.GroupMeans(x.Data, y.Data, x.Less)
	if len(groups) == 0 {
		return nil, fmt.Errorf("%s: %w", s.Name(), ErrNoGroups)
	}

	pool := data.Pool
	n := len(groups)
	result := NewDataFrame(fmt.Sprintf("%s averaged by x", data.Name), pool)
	xf := NewField(n, x.Type, x.Pool)
	yf := NewField(n, Float, pool)
	nf := NewField(n, Float, pool)
	for i, g := range groups {
		xf.Data[i] = g.Key
		yf.Data[i] = g.Mean
		nf.Data[i] = float64(g.N)
	}
	result.Add("x", xf)
	result.Add("y", yf)
	result.Add("n", nf)
	return result, nil
}

// -------------------------------------------------------------------------
// StatLabel

// StatLabel adds a string column "label" with the formatted values of
// column Value. All other columns are kept. The labels get a string pool
// of their own, the pool of data is not extended.
type StatLabel struct {
	Value  string
	Format func(float64) string // Thousands if nil
}

var _ Stat = StatLabel{}

func (StatLabel) Name() string { return "StatLabel" }

func (s StatLabel) Info() StatInfo {
	return StatInfo{
		NeededAes: []string{s.Value},
		Produces:  []string{"label"},
	}
}

func (s StatLabel) Apply(data *DataFrame) (*DataFrame, error) {
	if err := checkNeeded(s, data); err != nil {
		return nil, err
	}
	format := s.Format
	if format == nil {
		format = Thousands
	}

	result := data.Copy()
	result.Name = fmt.Sprintf("labeling %s", data.Name)
	value := data.Columns[s.Value].Data
	labels := NewStringPool()
	text := NewField(data.N, String, labels)
	for i, v := range value {
		text.Data[i] = float64(labels.Add(format(v)))
	}
	if err := result.Add("label", text); err != nil {
		return nil, err
	}
	return result, nil
}

// proportion formats a share in [0,1] as a percentage.
func proportion(p float64) string {
	if math.IsNaN(p) {
		return "nan%"
	}
	return Percent(p, 1)
}
