package quickplot

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

func newTestPlotter() (*Plotter, *Recorder) {
	rec := &Recorder{}
	return New(rec), rec
}

func TestCountPlot(t *testing.T) {
	p, rec := newTestPlotter()
	data := []string{"dog", "cat", "dog", "fish", "dog", "cat"}
	if err := p.CountPlot(data, "pet"); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	fig := rec.Last()
	if fig == nil {
		t.Fatalf("No figure shown")
	}
	if fig.Title != "Pet Class Distribution" || fig.XLabel != "Categories" || fig.YLabel != "Frequency" {
		t.Errorf("Got title %q, labels %q/%q", fig.Title, fig.XLabel, fig.YLabel)
	}
	if fig.TitleSize != 16 {
		t.Errorf("Got title size %g, want 16", fig.TitleSize)
	}

	want := []struct {
		level  string
		height float64
		label  string
	}{
		{"dog", 3, "50.0%"},
		{"cat", 2, "33.3%"},
		{"fish", 1, "16.7%"},
	}
	if len(fig.Bars) != len(want) {
		t.Fatalf("Got %d bars, want %d", len(fig.Bars), len(want))
	}
	for i, w := range want {
		bar := fig.Bars[i]
		if bar.Level != w.level || bar.Height != w.height || bar.Label != w.label {
			t.Errorf("Bar %d: got %s, want %s %g %q", i, bar, w.level, w.height, w.label)
		}
		if bar.X != float64(i) || bar.Fill != PaletteColor("bright", i) {
			t.Errorf("Bar %d: got x=%g fill=%s", i, bar.X, bar.Fill)
		}
	}
	if !fig.Nominal {
		t.Errorf("Count plot must have a nominal x axis")
	}
}

func TestCountPlotPercentagesSumTo100(t *testing.T) {
	for _, data := range [][]string{
		{"a"},
		{"a", "b", "c"},
		{"x", "y", "y", "z", "z", "z", "w"},
		strings.Split("abcdefghijklmnopqrstuvwxyzabc", ""),
	} {
		p, rec := newTestPlotter()
		if err := p.CountPlot(data, "letters"); err != nil {
			t.Fatalf("Unexpected error %s", err)
		}
		fig := rec.Last()
		sum := 0.0
		for _, bar := range fig.Bars {
			pct, err := strconv.ParseFloat(strings.TrimSuffix(bar.Label, "%"), 64)
			if err != nil {
				t.Fatalf("Bad label %q: %s", bar.Label, err)
			}
			sum += pct
		}
		// Each label is off by at most 0.05 due to rounding.
		if tol := 0.05 * float64(len(fig.Bars)); math.Abs(sum-100) > tol {
			t.Errorf("%v: percentages sum to %g", data, sum)
		}
	}
}

func TestCountPlotEmpty(t *testing.T) {
	p, rec := newTestPlotter()
	err := p.CountPlot(nil, "nothing")
	if !errors.Is(err, ErrEmptyData) {
		t.Errorf("Got %v, want ErrEmptyData", err)
	}
	if n := len(rec.Figures()); n != 0 {
		t.Errorf("Got %d shown figures, want none", n)
	}
}

func TestHist(t *testing.T) {
	p, rec := newTestPlotter()
	data := []float64{1, 2, 3, 4, 10, math.NaN()}
	if err := p.Hist(data, "age"); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	fig := rec.Last()
	if fig.Title != "Age Distribution" || fig.XLabel != "Age" || fig.YLabel != "Frequency" {
		t.Errorf("Got title %q, labels %q/%q", fig.Title, fig.XLabel, fig.YLabel)
	}
	if !fig.Legend {
		t.Errorf("Histogram needs a legend")
	}

	total := 0.0
	for _, bin := range fig.Bins {
		total += bin.Count
		if bin.Fill != "blue" || bin.Alpha != 0.5 {
			t.Errorf("Got bin %s filled %s/%g", bin, bin.Fill, bin.Alpha)
		}
	}
	if total != 5 {
		t.Errorf("Got %g values in bins, want 5", total)
	}

	if len(fig.Lines) != 2 {
		t.Fatalf("Got %d lines, want 2", len(fig.Lines))
	}
	mean, median := fig.Lines[0], fig.Lines[1]
	if mean.Legend != "Mean" || mean.X != 4 || mean.Color != "red" || mean.LineType != DashedLine {
		t.Errorf("Got mean line %s", mean)
	}
	if median.Legend != "Median" || median.X != 3 || median.Color != "green" || median.LineType != DashedLine {
		t.Errorf("Got median line %s", median)
	}
}

func TestHistMedianEvenCount(t *testing.T) {
	p, rec := newTestPlotter()
	if err := p.Hist([]float64{7, 1, 3, 100}, "x"); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	lines := rec.Last().Lines
	if math.Abs(lines[0].X-27.75) > 1e-9 || lines[1].X != 5 {
		t.Errorf("Got mean %g median %g, want 27.75 and 5", lines[0].X, lines[1].X)
	}
}

func TestHistBins(t *testing.T) {
	p, rec := newTestPlotter()
	p.Theme.HistBins = 4
	if err := p.Hist([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8}, "x"); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	bins := rec.Last().Bins
	if len(bins) != 4 || bins[0].Min != 0 || bins[3].Max != 8 {
		t.Errorf("Got bins %v", bins)
	}
}

func TestHistTooManyBins(t *testing.T) {
	var data []float64
	for i := 0; i < 50; i++ {
		data = append(data, 0, 1e-12)
	}
	data = append(data, 1000)

	p, rec := newTestPlotter()
	if err := p.Hist(data, "x"); !errors.Is(err, ErrTooManyBins) {
		t.Errorf("Got %v, want ErrTooManyBins", err)
	}
	if rec.Last() != nil {
		t.Errorf("Figure shown")
	}

	p.Theme.HistBins = 10
	if err := p.Hist(data, "x"); err != nil {
		t.Errorf("Unexpected error with fixed bin count: %s", err)
	}
}

func TestHistEmpty(t *testing.T) {
	for _, data := range [][]float64{nil, {math.NaN(), math.NaN()}} {
		p, rec := newTestPlotter()
		if err := p.Hist(data, "x"); !errors.Is(err, ErrEmptyData) {
			t.Errorf("%v: got %v, want ErrEmptyData", data, err)
		}
		if rec.Last() != nil {
			t.Errorf("%v: figure shown", data)
		}
	}
}

func TestScatter(t *testing.T) {
	p, rec := newTestPlotter()
	if err := p.Scatter([]float64{1, 2, 3}, "x", []float64{2, 4, 6}, "y", nil); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	fig := rec.Last()
	if fig.Title != "Y against X" {
		t.Errorf("Got title %q, want \"Y against X\"", fig.Title)
	}
	if fig.XLabel != "X" || fig.YLabel != "Y" {
		t.Errorf("Got labels %q/%q", fig.XLabel, fig.YLabel)
	}
	if len(fig.Points) != 3 {
		t.Fatalf("Got %d points, want 3", len(fig.Points))
	}
	for i, pt := range fig.Points {
		if pt.X != float64(i+1) || pt.Y != float64(2*(i+1)) {
			t.Errorf("Point %d: got %s", i, pt)
		}
		if pt.Alpha != 0.5 || pt.Color != "blue" || pt.Group != "" {
			t.Errorf("Point %d: got style %s alpha %g", i, pt, pt.Alpha)
		}
	}
	if fig.Legend {
		t.Errorf("Scatter without hue must not have a legend")
	}
}

func TestScatterTitleNamesYFirst(t *testing.T) {
	p, rec := newTestPlotter()
	err := p.Scatter([]float64{1}, "sepal_length", []float64{2}, "petal width", nil)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if got := rec.Last().Title; got != "Petal Width against Sepal_Length" {
		t.Errorf("Got title %q", got)
	}
}

func TestScatterHue(t *testing.T) {
	p, rec := newTestPlotter()
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 4, 9, 16}
	hue := []string{"m", "f", "m", "d"}
	if err := p.Scatter(x, "a", y, "b", hue); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	fig := rec.Last()
	if !fig.Legend {
		t.Errorf("Missing legend")
	}
	groups, colors := fig.Groups()
	if len(groups) != 3 || groups[0] != "m" || groups[1] != "f" || groups[2] != "d" {
		t.Errorf("Got groups %v", groups)
	}
	for i, g := range groups {
		if colors[g] != PaletteColor("bright", i) {
			t.Errorf("Group %s: got color %s", g, colors[g])
		}
	}
}

func TestScatterLengthMismatch(t *testing.T) {
	p, rec := newTestPlotter()
	err := p.Scatter([]float64{1, 2, 3}, "x", []float64{2, 4}, "y", nil)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Got %v, want ErrLengthMismatch", err)
	}
	err = p.Scatter([]float64{1, 2, 3}, "x", []float64{2, 4, 6}, "y", []string{"a"})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Got %v, want ErrLengthMismatch for hue", err)
	}
	if rec.Last() != nil {
		t.Errorf("Figure shown despite error")
	}
}

func groupValueFrame(t *testing.T) *DataFrame {
	df := NewDataFrame("test", nil)
	if err := df.AddString("group", []string{"b", "a", "a"}); err != nil {
		t.Fatal(err)
	}
	if err := df.AddFloat("value", []float64{30, 10, 20}); err != nil {
		t.Fatal(err)
	}
	return df
}

func TestBivBarPlot(t *testing.T) {
	p, rec := newTestPlotter()
	df := groupValueFrame(t)
	agg, err := p.BivBarPlot(df, "group", "value")
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	if names := agg.FieldNames(); len(names) != 2 || names[0] != "group" || names[1] != "value" {
		t.Errorf("Got fields %v", names)
	}
	if agg.N != 2 {
		t.Fatalf("Got %d rows, want 2", agg.N)
	}
	groups, values := agg.Columns["group"], agg.Columns["value"]
	if groups.Text(0) != "a" || groups.Text(1) != "b" {
		t.Errorf("Got groups %v", groups.Strings())
	}
	if values.Data[0] != 15 || values.Data[1] != 30 {
		t.Errorf("Got means %v, want [15 30]", values.Data)
	}

	fig := rec.Last()
	if fig.Title != "Average for each category" || fig.XLabel != "group" || fig.YLabel != "Average value" {
		t.Errorf("Got title %q, labels %q/%q", fig.Title, fig.XLabel, fig.YLabel)
	}
	if len(fig.Bars) != 2 || fig.Bars[0].Label != "15.0" || fig.Bars[1].Label != "30.0" {
		t.Errorf("Got bars %v", fig.Bars)
	}

	// Input must be untouched, its string pool included.
	if df.N != 3 || len(df.FieldNames()) != 2 || df.Columns["value"].Data[0] != 30 {
		t.Errorf("Input frame modified")
	}
	if got := df.Pool.Get(2); got != NA {
		t.Errorf("Got %q interned into the input pool", got)
	}
}

func TestBivBarPlotIdempotent(t *testing.T) {
	p, _ := newTestPlotter()
	first, err := p.BivBarPlot(groupValueFrame(t), "group", "value")
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	second, err := p.BivBarPlot(first, "group", "value")
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if second.N != first.N {
		t.Fatalf("Got %d rows, want %d", second.N, first.N)
	}
	for i := 0; i < first.N; i++ {
		if second.Columns["group"].Text(i) != first.Columns["group"].Text(i) ||
			second.Columns["value"].Data[i] != first.Columns["value"].Data[i] {
			t.Errorf("Row %d differs: %s %g", i,
				second.Columns["group"].Text(i), second.Columns["value"].Data[i])
		}
	}
}

func TestBivBarPlotLabels(t *testing.T) {
	p, rec := newTestPlotter()
	df := NewDataFrame("test", nil)
	df.AddFloat("year", []float64{2021, 2020, 2021, 2022})
	df.AddFloat("income", []float64{1234.5, 1000000, 1234.5, math.NaN()})
	agg, err := p.BivBarPlot(df, "year", "income")
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	want := []string{"1,000,000.0", "1,234.5", "nan"}
	bars := rec.Last().Bars
	if len(bars) != len(want) {
		t.Fatalf("Got %d bars, want %d", len(bars), len(want))
	}
	for i, w := range want {
		if bars[i].Label != w {
			t.Errorf("Bar %d: got label %q, want %q", i, bars[i].Label, w)
		}
	}
	if bars[0].Level != "2020" {
		t.Errorf("Got first level %q, want 2020", bars[0].Level)
	}
	if !math.IsNaN(agg.Columns["income"].Data[2]) {
		t.Errorf("Group without values must average to NaN")
	}
}

func TestBivBarPlotErrors(t *testing.T) {
	p, rec := newTestPlotter()
	df := groupValueFrame(t)

	if _, err := p.BivBarPlot(df, "color", "value"); !errors.Is(err, ErrNoColumn) {
		t.Errorf("Got %v, want ErrNoColumn", err)
	}
	if _, err := p.BivBarPlot(df, "group", "weight"); !errors.Is(err, ErrNoColumn) {
		t.Errorf("Got %v, want ErrNoColumn", err)
	}
	if _, err := p.BivBarPlot(df, "value", "group"); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("Got %v, want ErrNotNumeric", err)
	}
	if _, err := p.BivBarPlot(nil, "group", "value"); !errors.Is(err, ErrNoFrame) {
		t.Errorf("Got %v, want ErrNoFrame", err)
	}
	if _, err := p.BivBarPlot(df, "value", "value"); !errors.Is(err, ErrSameColumn) {
		t.Errorf("Got %v, want ErrSameColumn", err)
	}

	empty := NewDataFrame("empty", nil)
	empty.AddFloat("group", []float64{math.NaN()})
	empty.AddFloat("value", []float64{1})
	if _, err := p.BivBarPlot(empty, "group", "value"); !errors.Is(err, ErrNoGroups) {
		t.Errorf("Got %v, want ErrNoGroups", err)
	}

	if rec.Last() != nil {
		t.Errorf("Figure shown despite error")
	}
}

func TestFigureClearedAfterShow(t *testing.T) {
	var shown *Figure
	bars := 0
	p := New(DeviceFunc(func(fig *Figure) error {
		shown = fig
		bars = len(fig.Bars)
		return nil
	}))
	if err := p.CountPlot([]string{"a", "b"}, "x"); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if bars != 2 {
		t.Errorf("Device saw %d bars, want 2", bars)
	}
	if len(shown.Bars) != 0 {
		t.Errorf("Figure not cleared after show")
	}
}

func TestDeviceError(t *testing.T) {
	boom := errors.New("boom")
	p := New(DeviceFunc(func(*Figure) error { return boom }))
	if err := p.Hist([]float64{1, 2}, "x"); !errors.Is(err, boom) {
		t.Errorf("Got %v, want device error", err)
	}
	if _, err := p.BivBarPlot(groupValueFrame(t), "group", "value"); !errors.Is(err, boom) {
		t.Errorf("Got %v, want device error", err)
	}
}

func TestLayerMissingSlots(t *testing.T) {
	df := NewDataFrame("test", nil)
	df.AddFloat("x", []float64{1, 2})
	fig := NewFigure("t", "x", "y", DefaultTheme)
	err := Layer{Name: "bars", Geom: GeomBar{}}.Render(df, fig)
	if !errors.Is(err, ErrNoColumn) {
		t.Errorf("Got %v, want ErrNoColumn", err)
	}
}

func TestLayerMapping(t *testing.T) {
	df := NewDataFrame("test", nil)
	df.AddString("x", []string{"a", "b", "a"})

	tests := []struct {
		layer Layer
		want  error
	}{
		{
			// GeomBar has no color slot.
			Layer{Name: "color", Stat: StatCount{}, Mapping: map[string]string{"color": "count"}, Geom: GeomBar{}},
			ErrUnknownSlot,
		},
		{
			// StatCount does not compute a mean.
			Layer{Name: "mean", Stat: StatCount{}, Mapping: map[string]string{"y": "mean"}, Geom: GeomBar{}},
			ErrNoColumn,
		},
		{
			// Columns of earlier stats in a chain may be mapped.
			Layer{Name: "chain", Mapping: map[string]string{"y": "count"}, Geom: GeomBar{},
				Stat: StatChain{StatCount{}, StatLabel{Value: "prop", Format: proportion}}},
			nil,
		},
		{
			// The optional label slot is accepted.
			Layer{Name: "label", Mapping: map[string]string{"y": "count", "label": "prop"}, Geom: GeomBar{},
				Stat: StatCount{}},
			nil,
		},
	}
	for _, tc := range tests {
		fig := NewFigure("t", "x", "y", DefaultTheme)
		if err := tc.layer.Render(df, fig); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.layer.Name, err, tc.want)
		}
	}
}
