package quickplot

import (
	"fmt"
	"math"
)

// Geom is a geometrical object, a type of visual for the plot.
// A geom reads the columns named by its slots from a (usually
// stat-transformed) data frame and adds the matching grobs to a figure.
type Geom interface {
	Name() string            // The name of the geom.
	NeededSlots() []string   // The needed slots to construct this geom.
	OptionalSlots() []string // The optional slots this geom understands.

	// Render interprets data as the specific geom and adds its grobs
	// to fig.
	Render(data *DataFrame, fig *Figure) error
}

// checkSlots makes sure data provides all needed slots of g.
func checkSlots(g Geom, data *DataFrame) error {
	missing := NewStringSetFrom(g.NeededSlots())
	missing.Remove(NewStringSetFrom(data.FieldNames()))
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: missing slots %v", g.Name(), ErrNoColumn, missing.Elements())
	}
	return nil
}

// -------------------------------------------------------------------------
// Geom Bar

// GeomBar draws one bar per row at nominal x positions 0, 1, 2, ...
// Bars are filled with the colors of Palette in row order.
type GeomBar struct {
	Palette string
}

var _ Geom = GeomBar{}

func (GeomBar) Name() string            { return "GeomBar" }
func (GeomBar) NeededSlots() []string   { return []string{"x", "y"} }
func (GeomBar) OptionalSlots() []string { return []string{"label"} }

func (g GeomBar) Render(data *DataFrame, fig *Figure) error {
	if err := checkSlots(g, data); err != nil {
		return err
	}
	x, y := data.Columns["x"], data.Columns["y"]
	label, hasLabel := data.Columns["label"]
	for i := 0; i < data.N; i++ {
		bar := GrobBar{
			X:      float64(i),
			Height: y.Data[i],
			Level:  x.Text(i),
			Fill:   PaletteColor(g.Palette, i),
		}
		if hasLabel {
			bar.Label = label.Text(i)
		}
		fig.Bars = append(fig.Bars, bar)
	}
	fig.Nominal = true
	return nil
}

// -------------------------------------------------------------------------
// Geom Histogram

// GeomHist draws the bins produced by StatBin.
type GeomHist struct {
	Fill  string
	Alpha float64
}

var _ Geom = GeomHist{}

func (GeomHist) Name() string            { return "GeomHist" }
func (GeomHist) NeededSlots() []string   { return []string{"xmin", "xmax", "count"} }
func (GeomHist) OptionalSlots() []string { return nil }

func (g GeomHist) Render(data *DataFrame, fig *Figure) error {
	if err := checkSlots(g, data); err != nil {
		return err
	}
	xmin, xmax := data.Columns["xmin"].Data, data.Columns["xmax"].Data
	count := data.Columns["count"].Data
	for i := 0; i < data.N; i++ {
		fig.Bins = append(fig.Bins, GrobBin{
			Min:   xmin[i],
			Max:   xmax[i],
			Count: count[i],
			Fill:  g.Fill,
			Alpha: g.Alpha,
		})
	}
	return nil
}

// -------------------------------------------------------------------------
// Geom VLine

// GeomVLine draws a vertical line at each x. A non-empty Legend turns
// the figure legend on.
type GeomVLine struct {
	Color    string
	LineType LineType
	Legend   string
}

var _ Geom = GeomVLine{}

func (GeomVLine) Name() string            { return "GeomVLine" }
func (GeomVLine) NeededSlots() []string   { return []string{"x"} }
func (GeomVLine) OptionalSlots() []string { return nil }

func (g GeomVLine) Render(data *DataFrame, fig *Figure) error {
	if err := checkSlots(g, data); err != nil {
		return err
	}
	for _, x := range data.Columns["x"].Data {
		fig.Lines = append(fig.Lines, GrobVLine{
			X:        x,
			Color:    g.Color,
			LineType: g.LineType,
			Legend:   g.Legend,
		})
	}
	if g.Legend != "" {
		fig.Legend = true
	}
	return nil
}

// -------------------------------------------------------------------------
// Geom Point

// GeomPoint draws one point per row with present x and y. If data has
// a "color" column the points are grouped by its levels, colored from
// Palette in order of first appearance and listed in the legend.
type GeomPoint struct {
	Color   string
	Alpha   float64
	Shape   PointShape
	Size    float64
	Palette string
}

var _ Geom = GeomPoint{}

func (GeomPoint) Name() string            { return "GeomPoint" }
func (GeomPoint) NeededSlots() []string   { return []string{"x", "y"} }
func (GeomPoint) OptionalSlots() []string { return []string{"color"} }

func (g GeomPoint) Render(data *DataFrame, fig *Figure) error {
	if err := checkSlots(g, data); err != nil {
		return err
	}
	x, y := data.Columns["x"].Data, data.Columns["y"].Data
	hue, grouped := data.Columns["color"]

	levels := make(map[string]int)
	for i := 0; i < data.N; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		pt := GrobPoint{
			X:     x[i],
			Y:     y[i],
			Color: g.Color,
			Alpha: g.Alpha,
			Shape: g.Shape,
			Size:  g.Size,
		}
		if grouped {
			pt.Group = hue.Text(i)
			idx, ok := levels[pt.Group]
			if !ok {
				idx = len(levels)
				levels[pt.Group] = idx
			}
			pt.Color = PaletteColor(g.Palette, idx)
		}
		fig.Points = append(fig.Points, pt)
	}
	if grouped {
		fig.Legend = true
	}
	return nil
}
