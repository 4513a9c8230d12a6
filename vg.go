package quickplot

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"unicode"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ImageFormats are the file formats ImageDevice can produce.
var ImageFormats = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff"}

// ImageDevice renders figures with gonum/plot into image files, one
// file per figure, numbered in the order shown.
type ImageDevice struct {
	// Dir is the output directory, "" means the working directory.
	Dir string

	// Format is one of ImageFormats, "" means png.
	Format string

	Logger *slog.Logger

	n atomic.Int64
}

func (d *ImageDevice) Show(fig *Figure) error {
	format := d.Format
	if format == "" {
		format = "png"
	}
	if !validImageFormat(format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	path := filepath.Join(d.Dir, FileName(int(d.n.Add(1)), fig.Title, format))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := WriteImage(f, fig, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}

	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("chart written", "title", fig.Title, "path", path)
	return nil
}

func validImageFormat(format string) bool {
	for _, f := range ImageFormats {
		if f == format {
			return true
		}
	}
	return false
}

// FileName builds "<n>-<title slug>.<ext>", e.g. "003-age-distribution.png".
func FileName(n int, title, ext string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "figure"
	}
	return fmt.Sprintf("%03d-%s.%s", n, slug, ext)
}

// WriteImage renders fig in the given format to w.
func WriteImage(w io.Writer, fig *Figure, format string) error {
	p, err := GonumPlot(fig)
	if err != nil {
		return err
	}
	width, height := fig.Width, fig.Height
	if width <= 0 || height <= 0 {
		width, height = DefaultTheme.Width, DefaultTheme.Height
	}
	wt, err := p.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// GonumPlot translates fig into a gonum plot.
func GonumPlot(fig *Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Title
	if fig.TitleSize > 0 {
		p.Title.TextStyle.Font.Size = vg.Points(fig.TitleSize)
	}
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	if fig.LabelSize > 0 {
		p.X.Label.TextStyle.Font.Size = vg.Points(fig.LabelSize)
		p.Y.Label.TextStyle.Font.Size = vg.Points(fig.LabelSize)
	}
	p.Legend.Top = true

	_, ys := fig.Scales()
	headroom := 0.05
	if len(fig.Bars) > 0 {
		headroom = 0.1 // room for the bar labels
	}
	_, ymax := ys.Expand(headroom)

	if err := addBars(p, fig); err != nil {
		return nil, err
	}
	if err := addBins(p, fig); err != nil {
		return nil, err
	}
	if err := addLines(p, fig, ymax); err != nil {
		return nil, err
	}
	if err := addPoints(p, fig); err != nil {
		return nil, err
	}

	if len(fig.Bars) > 0 || len(fig.Bins) > 0 {
		p.Y.Min = 0
		p.Y.Max = ymax
	}
	if fig.Nominal {
		p.NominalX(fig.Levels()...)
	}
	return p, nil
}

func addBars(p *plot.Plot, fig *Figure) error {
	if len(fig.Bars) == 0 {
		return nil
	}
	width := vg.Length(fig.Width) * vg.Inch * 0.6 / vg.Length(len(fig.Bars))
	if width <= 0 {
		width = vg.Points(20)
	}

	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(fig.Bars)),
		Labels: make([]string, len(fig.Bars)),
	}
	for i, bar := range fig.Bars {
		height := bar.Height
		if math.IsNaN(height) {
			height = 0
		}
		bc, err := plotter.NewBarChart(plotter.Values{height}, width)
		if err != nil {
			return fmt.Errorf("bar %q: %w", bar.Level, err)
		}
		bc.XMin = bar.X
		bc.Color = String2Color(bar.Fill)
		bc.LineStyle.Width = 0
		p.Add(bc)

		labels.XYs[i].X = bar.X
		labels.XYs[i].Y = height
		labels.Labels[i] = bar.Label
	}

	lbl, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("bar labels: %w", err)
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i].XAlign = text.XCenter
	}
	lbl.Offset = vg.Point{Y: vg.Points(3)}
	p.Add(lbl)
	return nil
}

func addBins(p *plot.Plot, fig *Figure) error {
	if len(fig.Bins) == 0 {
		return nil
	}
	first := fig.Bins[0]
	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, len(fig.Bins)),
		Width:     first.Max - first.Min,
		FillColor: SetAlpha(String2Color(first.Fill), first.Alpha),
		LineStyle: plotter.DefaultLineStyle,
	}
	for i, bin := range fig.Bins {
		h.Bins[i] = plotter.HistogramBin{Min: bin.Min, Max: bin.Max, Weight: bin.Count}
	}
	p.Add(h)
	return nil
}

func addLines(p *plot.Plot, fig *Figure, ymax float64) error {
	for _, line := range fig.Lines {
		if math.IsNaN(line.X) {
			continue
		}
		l, err := plotter.NewLine(plotter.XYs{{X: line.X, Y: 0}, {X: line.X, Y: ymax}})
		if err != nil {
			return fmt.Errorf("line %q: %w", line.Legend, err)
		}
		l.LineStyle.Color = String2Color(line.Color)
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Dashes = dashes(line.LineType)
		p.Add(l)
		if fig.Legend && line.Legend != "" {
			p.Legend.Add(line.Legend, l)
		}
	}
	return nil
}

func addPoints(p *plot.Plot, fig *Figure) error {
	if len(fig.Points) == 0 {
		return nil
	}
	groups, _ := fig.Groups()
	for _, group := range groups {
		var xys plotter.XYs
		var style GrobPoint
		for _, pt := range fig.Points {
			if pt.Group != group {
				continue
			}
			if len(xys) == 0 {
				style = pt
			}
			xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("points %q: %w", group, err)
		}
		s.GlyphStyle.Color = SetAlpha(String2Color(style.Color), style.Alpha)
		s.GlyphStyle.Radius = vg.Points(style.Size)
		s.GlyphStyle.Shape = glyph(style.Shape)
		p.Add(s)
		if fig.Legend && group != "" {
			p.Legend.Add(group, s)
		}
	}
	return nil
}

func dashes(lt LineType) []vg.Length {
	switch lt {
	case DashedLine:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case DottedLine:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case DotDashLine:
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}
	}
	return nil
}

func glyph(shape PointShape) draw.GlyphDrawer {
	switch shape {
	case SquarePoint:
		return draw.BoxGlyph{}
	case RingPoint:
		return draw.RingGlyph{}
	case TrianglePoint:
		return draw.TriangleGlyph{}
	case CrossPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	}
	return draw.CircleGlyph{}
}
