package quickplot

// Theme collects the fixed styling of all plots.
type Theme struct {
	// Palette names the color cycle for categorical data, see Palettes.
	Palette string

	TitleSize, LabelSize float64 // in points

	HistColor   string
	HistAlpha   float64
	HistBins    int // 0 means automatic
	MeanColor   string
	MedianColor string
	RefLineType LineType

	PointColor string
	PointAlpha float64
	PointShape PointShape
	PointSize  float64 // radius in points

	// Width and Height of the rendered figure in inches.
	Width, Height float64
}

var DefaultTheme = Theme{
	Palette:     "bright",
	TitleSize:   16,
	LabelSize:   12,
	HistColor:   "blue",
	HistAlpha:   0.5,
	MeanColor:   "red",
	MedianColor: "green",
	RefLineType: DashedLine,
	PointColor:  "blue",
	PointAlpha:  0.5,
	PointShape:  CirclePoint,
	PointSize:   3,
	Width:       6.4,
	Height:      4.8,
}
