package quickplot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func recordAll(t *testing.T) []*Figure {
	p, rec := newTestPlotter()
	if err := p.CountPlot([]string{"a", "b", "a"}, "letter"); err != nil {
		t.Fatal(err)
	}
	if err := p.Hist([]float64{1, 2, 2, 3, 7}, "size"); err != nil {
		t.Fatal(err)
	}
	if err := p.Scatter([]float64{1, 2, 3}, "x", []float64{3, 1, 2}, "y", []string{"u", "v", "u"}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.BivBarPlot(groupValueFrame(t), "group", "value"); err != nil {
		t.Fatal(err)
	}
	return rec.Figures()
}

func TestWriteImage(t *testing.T) {
	for _, fig := range recordAll(t) {
		for _, format := range []string{"png", "svg"} {
			buf := &bytes.Buffer{}
			if err := WriteImage(buf, fig, format); err != nil {
				t.Errorf("%s as %s: %s", fig.Title, format, err)
				continue
			}
			if buf.Len() == 0 {
				t.Errorf("%s as %s: no output", fig.Title, format)
			}
		}
	}
}

func TestWriteImageSVGContainsTitle(t *testing.T) {
	fig := recordAll(t)[0]
	buf := &bytes.Buffer{}
	if err := WriteImage(buf, fig, "svg"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("Output is not SVG")
	}
}

func TestImageDevice(t *testing.T) {
	dir := t.TempDir()
	dev := &ImageDevice{Dir: dir, Format: "png"}
	p := New(dev)
	if err := p.CountPlot([]string{"a", "b"}, "pet type"); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if err := p.Hist([]float64{1, 2, 3}, "weight"); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	for _, name := range []string{"001-pet-type-class-distribution.png", "002-weight-distribution.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("Missing %s: %s", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestImageDeviceUnknownFormat(t *testing.T) {
	p := New(&ImageDevice{Dir: t.TempDir(), Format: "bmp"})
	err := p.CountPlot([]string{"a"}, "x")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Got %v, want ErrUnknownFormat", err)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		n           int
		title, want string
	}{
		{1, "Age Distribution", "001-age-distribution.png"},
		{12, "Y against X", "012-y-against-x.png"},
		{3, "  Größe / Gewicht!  ", "003-größe-gewicht.png"},
		{4, "%%%", "004-figure.png"},
	}
	for _, tc := range tests {
		if got := FileName(tc.n, tc.title, "png"); got != tc.want {
			t.Errorf("FileName(%d, %q) = %q, want %q", tc.n, tc.title, got, tc.want)
		}
	}
}
