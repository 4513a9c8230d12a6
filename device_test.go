package quickplot

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRecorder(t *testing.T) {
	p, rec := newTestPlotter()
	p.CountPlot([]string{"a"}, "one")
	p.CountPlot([]string{"b"}, "two")

	figs := rec.Figures()
	if len(figs) != 2 || figs[0].Title != "One Class Distribution" || rec.Last().Title != "Two Class Distribution" {
		t.Errorf("Got %d figures", len(figs))
	}
	// The recorded copy survives clearing of the shown figure.
	if len(figs[0].Bars) != 1 {
		t.Errorf("Recorded figure lost its bars")
	}

	rec.Reset()
	if rec.Last() != nil || len(rec.Figures()) != 0 {
		t.Errorf("Reset kept figures")
	}
}

func TestRecorderWriteYAML(t *testing.T) {
	p, rec := newTestPlotter()
	if err := p.Hist([]float64{1, 2, 3}, "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := p.BivBarPlot(groupValueFrame(t), "group", "value"); err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := rec.WriteYAML(buf); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	out := buf.String()
	for _, want := range []string{"title: X Distribution", "linetype: dashed", "legend: Mean", "15.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output lacks %q:\n%s", want, out)
		}
	}

	dec := yaml.NewDecoder(strings.NewReader(out))
	n := 0
	for {
		var doc map[string]interface{}
		if err := dec.Decode(&doc); err != nil {
			break
		}
		n++
	}
	if n != 2 {
		t.Errorf("Got %d YAML documents, want 2", n)
	}
}
