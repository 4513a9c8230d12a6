package quickplot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/vdobler/quickplot/stat"
)

var (
	// ErrEmptyData is returned when there is nothing to plot.
	ErrEmptyData = errors.New("empty data")
	// ErrLengthMismatch is returned when paired columns differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrNoColumn is returned for an unknown column name.
	ErrNoColumn = errors.New("no such column")
	// ErrNotNumeric is returned when a numeric column is required.
	ErrNotNumeric = errors.New("column is not numeric")
	// ErrNoGroups is returned when a grouping column has no present value.
	ErrNoGroups = errors.New("no groups")
	// ErrUnknownFormat is returned for unsupported output formats.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrNoFrame is returned when a data frame is required but nil.
	ErrNoFrame = errors.New("no data frame")
	// ErrTooManyBins is returned when a histogram would need more than
	// stat.MaxBins bins.
	ErrTooManyBins = stat.ErrTooManyBins
	// ErrUnknownSlot is returned when a layer maps to a slot its geom
	// does not have.
	ErrUnknownSlot = errors.New("unknown slot")
	// ErrSameColumn is returned when one column is asked to play two roles.
	ErrSameColumn = errors.New("same column used twice")
)

// Layer combines a statistical transform with a geom. The stat output
// is renamed according to Mapping (aesthetic -> field) before the geom
// renders it.
type Layer struct {
	Name string

	// Stat is the statistical transformation used in this layer.
	// nil is the identity.
	Stat Stat

	Mapping map[string]string

	// Geom is the geom to use for this layer
	Geom Geom
}

// check validates the mapping of layer: every aesthetic must be a slot
// of the geom and, with a stat, every field one the stat produces.
func (layer Layer) check() error {
	if layer.Geom == nil {
		return fmt.Errorf("layer %s: no geom", layer.Name)
	}
	slots := NewStringSetFrom(layer.Geom.NeededSlots())
	for _, s := range layer.Geom.OptionalSlots() {
		slots.Add(s)
	}
	var produced StringSet
	if layer.Stat != nil {
		produced = NewStringSetFrom(layer.Stat.Info().Produces)
	}
	for aes, field := range layer.Mapping {
		if !slots.Contains(aes) {
			return fmt.Errorf("layer %s: %w: %s has no slot %q (have %v)",
				layer.Name, ErrUnknownSlot, layer.Geom.Name(), aes, slots.Elements())
		}
		if produced != nil && !produced.Contains(field) {
			return fmt.Errorf("layer %s: %w: %s does not produce %q",
				layer.Name, ErrNoColumn, layer.Stat.Name(), field)
		}
	}
	return nil
}

// Render runs data through the stat and the geom of layer, adding the
// grobs to fig. data itself is left untouched.
func (layer Layer) Render(data *DataFrame, fig *Figure) error {
	if err := layer.check(); err != nil {
		return err
	}
	if layer.Stat != nil {
		var err error
		data, err = layer.Stat.Apply(data)
		if err != nil {
			return fmt.Errorf("layer %s: %w", layer.Name, err)
		}
	} else if len(layer.Mapping) > 0 {
		data = data.Copy()
	}

	for aes, field := range layer.Mapping {
		if !data.Has(field) {
			return fmt.Errorf("layer %s: %w: %q", layer.Name, ErrNoColumn, field)
		}
		data.Rename(field, aes)
	}

	if err := layer.Geom.Render(data, fig); err != nil {
		return fmt.Errorf("layer %s: %w", layer.Name, err)
	}
	return nil
}

// Plotter draws the quick plots and shows them on Device.
type Plotter struct {
	Device Device
	Theme  Theme
	Logger *slog.Logger
}

// New returns a plotter showing on device with the default theme.
func New(device Device) *Plotter {
	return &Plotter{
		Device: device,
		Theme:  DefaultTheme,
		Logger: slog.Default(),
	}
}

// DefaultPlotter is used by the package level plot functions. It
// writes PNG files to the working directory.
var DefaultPlotter = New(&ImageDevice{})

func (p *Plotter) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

// show hands fig to the device.
func (p *Plotter) show(fig *Figure) error {
	if p.Device == nil {
		return errors.New("quickplot: no device")
	}
	if err := p.Device.Show(fig); err != nil {
		return fmt.Errorf("show %q: %w", fig.Title, err)
	}
	return nil
}

// -------------------------------------------------------------------------
// Count plot

// CountPlot draws the number of occurrences of each category in data.
// Every bar is labeled with its share of all observations, e.g. "33.3%".
func (p *Plotter) CountPlot(data []string, name string) error {
	if len(data) == 0 {
		return fmt.Errorf("count plot of %s: %w", name, ErrEmptyData)
	}
	df := NewDataFrame(name, nil)
	if err := df.AddString("x", data); err != nil {
		return err
	}

	fig := NewFigure(Title(name)+" Class Distribution", "Categories", "Frequency", p.Theme)
	defer fig.Clear()

	layer := Layer{
		Name:    "counts",
		Stat:    StatChain{StatCount{}, StatLabel{Value: "prop", Format: proportion}},
		Mapping: map[string]string{"y": "count"},
		Geom:    GeomBar{Palette: p.Theme.Palette},
	}
	if err := layer.Render(df, fig); err != nil {
		return fmt.Errorf("count plot of %s: %w", name, err)
	}
	p.logger().Debug("count plot", "variable", name, "observations", len(data), "categories", len(fig.Bars))
	return p.show(fig)
}

// -------------------------------------------------------------------------
// Histogram

// Hist draws a histogram of data with dashed reference lines at the
// mean and the median. NaN values are ignored.
func (p *Plotter) Hist(data []float64, name string) error {
	df := NewDataFrame(name, nil)
	if err := df.AddFloat("x", data); err != nil {
		return err
	}

	fig := NewFigure(Title(name)+" Distribution", Title(name), "Frequency", p.Theme)
	defer fig.Clear()

	t := p.Theme
	layers := []Layer{
		{
			Name: "histogram",
			Stat: StatBin{Bins: t.HistBins},
			Geom: GeomHist{Fill: t.HistColor, Alpha: t.HistAlpha},
		},
		{
			Name:    "mean",
			Stat:    StatSummary{},
			Mapping: map[string]string{"x": "mean"},
			Geom:    GeomVLine{Color: t.MeanColor, LineType: t.RefLineType, Legend: "Mean"},
		},
		{
			Name:    "median",
			Stat:    StatSummary{},
			Mapping: map[string]string{"x": "median"},
			Geom:    GeomVLine{Color: t.MedianColor, LineType: t.RefLineType, Legend: "Median"},
		},
	}
	for _, layer := range layers {
		if err := layer.Render(df, fig); err != nil {
			return fmt.Errorf("histogram of %s: %w", name, err)
		}
	}

	if p.logger().Enabled(context.Background(), slog.LevelDebug) {
		var mean, median float64
		for _, l := range fig.Lines {
			switch l.Legend {
			case "Mean":
				mean = l.X
			case "Median":
				median = l.X
			}
		}
		p.logger().Debug("histogram", "variable", name, "bins", len(fig.Bins),
			"mean", mean, "median", median)
	}
	return p.show(fig)
}

// -------------------------------------------------------------------------
// Scatter plot

// Scatter draws the pairs (x[i], y[i]). A non-nil hue colors the points
// by category and adds a legend; it must have the same length as x.
//
// The title reads "<yName> against <xName>", naming y first.
func (p *Plotter) Scatter(x []float64, xName string, y []float64, yName string, hue []string) error {
	if len(x) != len(y) {
		return fmt.Errorf("scatter of %s and %s: %w: %d x values, %d y values",
			xName, yName, ErrLengthMismatch, len(x), len(y))
	}
	if hue != nil && len(hue) != len(x) {
		return fmt.Errorf("scatter of %s and %s: %w: %d hue values, %d points",
			xName, yName, ErrLengthMismatch, len(hue), len(x))
	}

	df := NewDataFrame(yName+" against "+xName, nil)
	if err := df.AddFloat("x", x); err != nil {
		return err
	}
	if err := df.AddFloat("y", y); err != nil {
		return err
	}
	if hue != nil {
		if err := df.AddString("color", hue); err != nil {
			return err
		}
	}

	fig := NewFigure(Title(yName)+" against "+Title(xName), Title(xName), Title(yName), p.Theme)
	defer fig.Clear()

	t := p.Theme
	layer := Layer{
		Name: "points",
		Geom: GeomPoint{
			Color:   t.PointColor,
			Alpha:   t.PointAlpha,
			Shape:   t.PointShape,
			Size:    t.PointSize,
			Palette: t.Palette,
		},
	}
	if err := layer.Render(df, fig); err != nil {
		return fmt.Errorf("scatter of %s and %s: %w", xName, yName, err)
	}
	groups, _ := fig.Groups()
	p.logger().Debug("scatter", "x", xName, "y", yName, "points", len(fig.Points), "groups", len(groups))
	return p.show(fig)
}

// -------------------------------------------------------------------------
// Grouped mean bar plot

// BivBarPlot averages column numVar of df within each category of
// column catVar and draws the means as labeled bars. The returned data
// frame has the two columns catVar and numVar with one row per category
// in ascending order.
func (p *Plotter) BivBarPlot(df *DataFrame, catVar, numVar string) (*DataFrame, error) {
	if df == nil {
		return nil, ErrNoFrame
	}
	if catVar == numVar {
		return nil, fmt.Errorf("%w: %q as category and value", ErrSameColumn, catVar)
	}
	cat, err := df.Column(catVar)
	if err != nil {
		return nil, err
	}
	num, err := df.Column(numVar)
	if err != nil {
		return nil, err
	}
	if num.Discrete() {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotNumeric, numVar, num.Type)
	}

	work := NewDataFrame(df.Name, df.Pool)
	if err := work.Add("x", cat.Copy()); err != nil {
		return nil, err
	}
	if err := work.Add("y", num.Copy()); err != nil {
		return nil, err
	}
	agg, err := StatGroupMean{}.Apply(work)
	if err != nil {
		return nil, fmt.Errorf("average of %s by %s: %w", numVar, catVar, err)
	}

	fig := NewFigure("Average for each category", catVar, "Average "+numVar, p.Theme)
	defer fig.Clear()

	layer := Layer{
		Name: "means",
		Stat: StatLabel{Value: "y", Format: Thousands},
		Geom: GeomBar{Palette: p.Theme.Palette},
	}
	if err := layer.Render(agg, fig); err != nil {
		return nil, fmt.Errorf("average of %s by %s: %w", numVar, catVar, err)
	}

	result := NewDataFrame(fmt.Sprintf("average %s by %s", numVar, catVar), df.Pool)
	if err := result.Add(catVar, agg.Columns["x"]); err != nil {
		return nil, err
	}
	if err := result.Add(numVar, agg.Columns["y"]); err != nil {
		return nil, err
	}

	empty := 0
	for _, m := range agg.Columns["y"].Data {
		if math.IsNaN(m) {
			empty++
		}
	}
	p.logger().Debug("grouped means", "category", catVar, "value", numVar,
		"groups", result.N, "without values", empty)

	if err := p.show(fig); err != nil {
		return nil, err
	}
	return result, nil
}

// -------------------------------------------------------------------------
// Package level functions

// CountPlot draws a count plot with DefaultPlotter.
func CountPlot(data []string, name string) error {
	return DefaultPlotter.CountPlot(data, name)
}

// Hist draws a histogram with DefaultPlotter.
func Hist(data []float64, name string) error {
	return DefaultPlotter.Hist(data, name)
}

// Scatter draws a scatter plot with DefaultPlotter.
func Scatter(x []float64, xName string, y []float64, yName string, hue []string) error {
	return DefaultPlotter.Scatter(x, xName, y, yName, hue)
}

// BivBarPlot draws the grouped mean bar plot with DefaultPlotter.
func BivBarPlot(df *DataFrame, catVar, numVar string) (*DataFrame, error) {
	return DefaultPlotter.BivBarPlot(df, catVar, numVar)
}
