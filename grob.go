package quickplot

import (
	"fmt"
	"math"
)

// Grob is a graphical object of a figure, expressed in data
// coordinates. Devices decide how to draw each kind.
type Grob interface {
	fmt.Stringer

	// Train extends the x and y scales to cover the grob.
	Train(x, y *Scale)
}

// -------------------------------------------------------------------------
// Grob Bar

// GrobBar is one bar of a bar chart over a nominal x axis. X is the
// index of the bar's category.
type GrobBar struct {
	X      float64 `yaml:"x"`
	Height float64 `yaml:"height"`
	Level  string  `yaml:"level"`
	Label  string  `yaml:"label"`
	Fill   string  `yaml:"fill"`
}

func (bar GrobBar) String() string {
	return fmt.Sprintf("Bar(%s: %g %q %s)", bar.Level, bar.Height, bar.Label, bar.Fill)
}

func (bar GrobBar) Train(x, y *Scale) {
	x.Train(bar.X-0.5, bar.X+0.5)
	if !math.IsNaN(bar.Height) {
		y.Train(0, bar.Height)
	}
}

// -------------------------------------------------------------------------
// Grob Bin

// GrobBin is one bin of a histogram covering [Min,Max).
type GrobBin struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Count float64 `yaml:"count"`
	Fill  string  `yaml:"fill"`
	Alpha float64 `yaml:"alpha"`
}

func (bin GrobBin) String() string {
	return fmt.Sprintf("Bin([%g,%g): %g)", bin.Min, bin.Max, bin.Count)
}

func (bin GrobBin) Train(x, y *Scale) {
	x.Train(bin.Min, bin.Max)
	y.Train(0, bin.Count)
}

// -------------------------------------------------------------------------
// Grob VLine

// GrobVLine is a vertical reference line spanning the whole y range.
type GrobVLine struct {
	X        float64  `yaml:"x"`
	Color    string   `yaml:"color"`
	LineType LineType `yaml:"linetype"`
	Legend   string   `yaml:"legend,omitempty"`
}

func (line GrobVLine) String() string {
	return fmt.Sprintf("VLine(%s x=%g %s %s)", line.Legend, line.X, line.Color, line.LineType)
}

func (line GrobVLine) Train(x, _ *Scale) {
	x.Train(line.X)
}

// -------------------------------------------------------------------------
// Grob Point

type GrobPoint struct {
	X     float64    `yaml:"x"`
	Y     float64    `yaml:"y"`
	Color string     `yaml:"color"`
	Alpha float64    `yaml:"alpha"`
	Shape PointShape `yaml:"shape"`
	Size  float64    `yaml:"size"`
	Group string     `yaml:"group,omitempty"`
}

func (point GrobPoint) String() string {
	return fmt.Sprintf("Point(%g,%g %s %s)", point.X, point.Y, point.Color, point.Group)
}

func (point GrobPoint) Train(x, y *Scale) {
	x.Train(point.X)
	y.Train(point.Y)
}
