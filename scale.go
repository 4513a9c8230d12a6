package quickplot

import (
	"fmt"
	"math"
)

// Scale is a continuous position scale like the x- or y-axis. It is
// trained on the grobs of a figure and tells devices which range to
// show.
type Scale struct {
	Type string // "x" or "y"

	DomainMin float64
	DomainMax float64
}

// NewScale sets up an untrained scale for the given aesthetic.
func NewScale(aesthetic string) *Scale {
	return &Scale{
		Type:      aesthetic,
		DomainMin: math.Inf(+1),
		DomainMax: math.Inf(-1),
	}
}

// Train updates the domain range of s to include xs. NaN and
// infinite values are ignored.
func (s *Scale) Train(xs ...float64) {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < s.DomainMin {
			s.DomainMin = x
		}
		if x > s.DomainMax {
			s.DomainMax = x
		}
	}
}

// Trained reports whether s has seen at least one value.
func (s *Scale) Trained() bool {
	return s.DomainMin <= s.DomainMax
}

// Expand returns the domain widened by frac of its width on the upper
// end. A degenerate domain is widened by frac on both ends.
func (s *Scale) Expand(frac float64) (min, max float64) {
	if !s.Trained() {
		return 0, 1
	}
	min, max = s.DomainMin, s.DomainMax
	span := max - min
	if span == 0 {
		return min - frac, max + frac
	}
	return min, max + frac*span
}

func (s *Scale) String() string {
	return fmt.Sprintf("Scale %s [%g,%g]", s.Type, s.DomainMin, s.DomainMax)
}
