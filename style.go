package quickplot

import (
	"fmt"
	"image/color"
	"strings"
)

// SetAlpha returns c with its alpha replaced by a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	n.A = uint8(a*0xff + 0.5)
	return n
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	RingPoint
	TrianglePoint
	CrossPoint
	PlusPoint
)

func String2PointShape(s string) PointShape {
	switch s {
	case "circle":
		return CirclePoint
	case "square":
		return SquarePoint
	case "ring":
		return RingPoint
	case "triangle":
		return TrianglePoint
	case "cross":
		return CrossPoint
	case "plus":
		return PlusPoint
	}
	return BlankPoint
}

func (ps PointShape) String() string {
	switch ps {
	case CirclePoint:
		return "circle"
	case SquarePoint:
		return "square"
	case RingPoint:
		return "ring"
	case TrianglePoint:
		return "triangle"
	case CrossPoint:
		return "cross"
	case PlusPoint:
		return "plus"
	}
	return "blank"
}

func (ps PointShape) MarshalText() ([]byte, error) {
	return []byte(ps.String()), nil
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
)

func String2LineType(s string) LineType {
	switch s {
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	default:
		return BlankLine
	}
}

func (lt LineType) String() string {
	switch lt {
	case SolidLine:
		return "solid"
	case DashedLine:
		return "dashed"
	case DottedLine:
		return "dotted"
	case DotDashLine:
		return "dotdash"
	}
	return "blank"
}

// MarshalText makes line types readable in figure dumps.
func (lt LineType) MarshalText() ([]byte, error) {
	return []byte(lt.String()), nil
}

// -------------------------------------------------------------------------
// Colors

// BuiltinColors are the named colors understood by String2Color. The
// basic names follow matplotlib, so "green" is a dark green.
var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// String2Color converts "#rrggbb", "#rrggbbaa" or a builtin color name.
// Unknown colors are rendered in a conspicuous semi-transparent pink.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}

// Color2String is the inverse of String2Color for opaque and
// translucent colors: it always yields "#rrggbb" or "#rrggbbaa".
func Color2String(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// -------------------------------------------------------------------------
// Palettes

// Palettes are the qualitative color cycles of seaborn.
var Palettes = map[string][]string{
	"bright": {"#023eff", "#ff7c00", "#1ac938", "#e8000b", "#8b2be2",
		"#9f4800", "#f14cc1", "#a3a3a3", "#ffc400", "#00d7ff"},
	"deep": {"#4c72b0", "#dd8452", "#55a868", "#c44e52", "#8172b3",
		"#937860", "#da8bc3", "#8c8c8c", "#ccb974", "#64b5cd"},
	"muted": {"#4878d0", "#ee854a", "#6acc64", "#d65f5f", "#956cb4",
		"#8c613c", "#dc7ec0", "#797979", "#d5bb67", "#82c6e2"},
}

// PaletteColor returns the i'th color of the named palette, cycling.
// Unknown palettes fall back to "bright".
func PaletteColor(palette string, i int) string {
	p, ok := Palettes[palette]
	if !ok {
		p = Palettes["bright"]
	}
	return p[i%len(p)]
}
