package quickplot

import (
	"math"
	"testing"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		part, total float64
		want        string
	}{
		{1, 3, "33.3%"},
		{2, 3, "66.7%"},
		{1, 1, "100.0%"},
		{0, 5, "0.0%"},
		{1, 8, "12.5%"},
	}
	for _, tc := range tests {
		if got := Percent(tc.part, tc.total); got != tc.want {
			t.Errorf("Percent(%g, %g) = %q, want %q", tc.part, tc.total, got, tc.want)
		}
	}
}

func TestThousands(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{15, "15.0"},
		{1234.5, "1,234.5"},
		{999.96, "1,000.0"},
		{-1234567.25, "-1,234,567.2"},
		{0.04, "0.0"},
		{1e20, "100,000,000,000,000,000,000.0"},
		{-9.5e18, "-9,500,000,000,000,000,000.0"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tc := range tests {
		if got := Thousands(tc.x); got != tc.want {
			t.Errorf("Thousands(%g) = %q, want %q", tc.x, got, tc.want)
		}
	}
}

func TestTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"age", "Age"},
		{"sepal_length", "Sepal_Length"},
		{"PETAL width", "Petal Width"},
		{"x2y", "X2Y"},
		{"o'neil", "O'Neil"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Title(tc.in); got != tc.want {
			t.Errorf("Title(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
