package quickplot

// Figure is the complete, device independent description of one chart.
type Figure struct {
	Title     string  `yaml:"title"`
	TitleSize float64 `yaml:"title_size"`
	XLabel    string  `yaml:"xlabel"`
	YLabel    string  `yaml:"ylabel"`
	LabelSize float64 `yaml:"label_size"`

	// Nominal is set if the x axis shows the levels of Bars instead of
	// numbers.
	Nominal bool `yaml:"nominal"`
	Legend  bool `yaml:"legend"`

	Bars   []GrobBar   `yaml:"bars,omitempty"`
	Bins   []GrobBin   `yaml:"bins,omitempty"`
	Lines  []GrobVLine `yaml:"lines,omitempty"`
	Points []GrobPoint `yaml:"points,omitempty"`

	// Width and Height in inches.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// NewFigure starts an empty figure styled by theme.
func NewFigure(title, xlabel, ylabel string, theme Theme) *Figure {
	return &Figure{
		Title:     title,
		TitleSize: theme.TitleSize,
		XLabel:    xlabel,
		YLabel:    ylabel,
		LabelSize: theme.LabelSize,
		Width:     theme.Width,
		Height:    theme.Height,
	}
}

// Grobs returns all graphical objects of f, bars and bins first.
func (f *Figure) Grobs() []Grob {
	grobs := make([]Grob, 0, len(f.Bars)+len(f.Bins)+len(f.Lines)+len(f.Points))
	for _, g := range f.Bars {
		grobs = append(grobs, g)
	}
	for _, g := range f.Bins {
		grobs = append(grobs, g)
	}
	for _, g := range f.Lines {
		grobs = append(grobs, g)
	}
	for _, g := range f.Points {
		grobs = append(grobs, g)
	}
	return grobs
}

// Scales trains an x and a y scale on all grobs of f.
func (f *Figure) Scales() (x, y *Scale) {
	x, y = NewScale("x"), NewScale("y")
	for _, g := range f.Grobs() {
		g.Train(x, y)
	}
	return x, y
}

// Groups returns the distinct point groups in order of appearance
// together with the color of their first point.
func (f *Figure) Groups() (groups []string, colors map[string]string) {
	colors = make(map[string]string)
	for _, p := range f.Points {
		if _, ok := colors[p.Group]; ok {
			continue
		}
		colors[p.Group] = p.Color
		groups = append(groups, p.Group)
	}
	return groups, colors
}

// Levels returns the category names of the bars in x order.
func (f *Figure) Levels() []string {
	levels := make([]string, len(f.Bars))
	for i, b := range f.Bars {
		levels[i] = b.Level
	}
	return levels
}

// Clone returns a deep copy of f.
func (f *Figure) Clone() *Figure {
	c := *f
	c.Bars = append([]GrobBar(nil), f.Bars...)
	c.Bins = append([]GrobBin(nil), f.Bins...)
	c.Lines = append([]GrobVLine(nil), f.Lines...)
	c.Points = append([]GrobPoint(nil), f.Points...)
	return &c
}

// Clear drops all grobs of f. A cleared figure draws as an empty chart.
func (f *Figure) Clear() {
	f.Bars = nil
	f.Bins = nil
	f.Lines = nil
	f.Points = nil
	f.Legend = false
}
