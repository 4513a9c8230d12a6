// Package htmlchart shows quickplot figures as interactive HTML pages
// rendered with go-echarts.
package htmlchart

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/vdobler/quickplot"
)

const (
	pixelsPerInch = 96
	pointSymbol   = 4 // echarts symbol size per point of glyph radius
)

// Device writes every figure to its own HTML file in Dir.
type Device struct {
	Dir    string
	Logger *slog.Logger

	n atomic.Int64
}

var _ quickplot.Device = (*Device)(nil)

func (d *Device) Show(fig *quickplot.Figure) error {
	path := filepath.Join(d.Dir, quickplot.FileName(int(d.n.Add(1)), fig.Title, "html"))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if err := Render(f, fig); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart: %w", err)
	}

	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("chart written", "title", fig.Title, "path", path)
	return nil
}

// Render writes fig as a standalone HTML page to w.
func Render(w io.Writer, fig *quickplot.Figure) error {
	if err := Chart(fig).Render(w); err != nil {
		return fmt.Errorf("render %q: %w", fig.Title, err)
	}
	return nil
}

// Chart translates fig into an echarts chart. Figures with points
// become scatter charts, all others bar charts.
func Chart(fig *quickplot.Figure) render.Renderer {
	if len(fig.Points) > 0 {
		return scatterChart(fig)
	}
	if len(fig.Bins) > 0 {
		return histChart(fig)
	}
	return barChart(fig)
}

func globalOpts(fig *quickplot.Figure) []charts.GlobalOpts {
	width, height := fig.Width, fig.Height
	if width <= 0 || height <= 0 {
		width, height = quickplot.DefaultTheme.Width, quickplot.DefaultTheme.Height
	}
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fig.Title,
			Width:     strconv.Itoa(int(width*pixelsPerInch)) + "px",
			Height:    strconv.Itoa(int(height*pixelsPerInch)) + "px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      fig.Title,
			Left:       "center",
			TitleStyle: &opts.TextStyle{FontSize: int(fig.TitleSize)},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(fig.Legend),
			Top:  "bottom",
		}),
	}
}

func color(name string) string {
	return quickplot.Color2String(quickplot.String2Color(name))
}

// value makes x safe for JSON; echarts shows "-" as a missing value.
func value(x float64) interface{} {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "-"
	}
	return x
}

func barChart(fig *quickplot.Figure) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(fig)...)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: fig.XLabel, NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Name: fig.YLabel, Min: 0}),
	)

	bar.SetXAxis(fig.Levels())
	data := make([]opts.BarData, len(fig.Bars))
	for i, b := range fig.Bars {
		data[i] = opts.BarData{
			Name:  b.Level,
			Value: value(b.Height),
			Label: &opts.Label{
				Show:      opts.Bool(b.Label != ""),
				Position:  "top",
				Formatter: types.FuncStr(b.Label),
			},
			ItemStyle: &opts.ItemStyle{Color: color(b.Fill)},
		}
	}
	bar.AddSeries(fig.YLabel, data)
	return bar
}

func binLabel(b quickplot.GrobBin) string {
	return "[" + strconv.FormatFloat(b.Min, 'g', 4, 64) + ", " +
		strconv.FormatFloat(b.Max, 'g', 4, 64) + ")"
}

// histChart draws the bins as touching bars over their interval
// labels. Reference lines mark the bin containing their value.
func histChart(fig *quickplot.Figure) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(fig)...)
	bar.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: fig.XLabel, NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Name: fig.YLabel, Min: 0}),
	)

	labels := make([]string, len(fig.Bins))
	data := make([]opts.BarData, len(fig.Bins))
	for i, b := range fig.Bins {
		labels[i] = binLabel(b)
		data[i] = opts.BarData{Value: b.Count}
	}
	bar.SetXAxis(labels)

	first := fig.Bins[0]
	fill := quickplot.Color2String(quickplot.SetAlpha(quickplot.String2Color(first.Fill), first.Alpha))
	bar.AddSeries("count", data,
		charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "0%"}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: fill, BorderColor: "#000000", BorderWidth: 1}),
	)

	for _, line := range fig.Lines {
		idx := binIndex(fig.Bins, line.X)
		if idx < 0 {
			continue
		}
		empty := make([]opts.BarData, len(fig.Bins))
		for i := range empty {
			empty[i] = opts.BarData{Value: "-"}
		}
		name := line.Legend + " " + quickplot.Thousands(line.X)
		bar.AddSeries(line.Legend, empty,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color(line.Color)}),
			charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
				Name:  name,
				XAxis: labels[idx],
			}),
			charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
				Symbol: []string{"none", "none"},
				Label:  &opts.Label{Show: opts.Bool(true), Formatter: "{b}"},
				LineStyle: &opts.LineStyle{
					Color: color(line.Color),
					Width: 2,
					Type:  lineType(line.LineType),
				},
			}),
		)
	}
	return bar
}

// binIndex returns the index of the bin containing x or -1.
func binIndex(bins []quickplot.GrobBin, x float64) int {
	for i, b := range bins {
		if x >= b.Min && x < b.Max {
			return i
		}
	}
	if n := len(bins); n > 0 && x == bins[n-1].Max {
		return n - 1
	}
	return -1
}

func lineType(lt quickplot.LineType) string {
	switch lt {
	case quickplot.DashedLine, quickplot.DotDashLine:
		return "dashed"
	case quickplot.DottedLine:
		return "dotted"
	}
	return "solid"
}

func scatterChart(fig *quickplot.Figure) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(globalOpts(fig)...)
	scatter.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: fig.XLabel, Type: "value", Scale: opts.Bool(true),
			NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Name: fig.YLabel, Type: "value", Scale: opts.Bool(true)}),
	)

	groups, colors := fig.Groups()
	for _, group := range groups {
		var data []opts.ScatterData
		var alpha, size float64
		for _, pt := range fig.Points {
			if pt.Group != group {
				continue
			}
			alpha, size = pt.Alpha, pt.Size
			data = append(data, opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
		}
		name := group
		if name == "" {
			name = fig.YLabel
		}
		for i := range data {
			data[i].SymbolSize = int(size * pointSymbol)
		}
		scatter.AddSeries(name, data,
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color:   color(colors[group]),
				Opacity: opts.Float(float32(alpha)),
			}),
		)
	}
	return scatter
}
