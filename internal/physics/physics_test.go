package physics

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		v    float32
		want float32
	}{
		{name: "below", v: 0.1, want: 0.5},
		{name: "inside", v: 2, want: 2},
		{name: "above", v: 9, want: 3.5},
		{name: "on lower edge", v: 0.5, want: 0.5},
		{name: "on upper edge", v: 3.5, want: 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, 0.5, 3.5); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestCrossedBelow(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur float64
		want      bool
	}{
		{name: "falling through", prev: 0.5, cur: -0.2, want: true},
		{name: "still above", prev: 1.0, cur: 0.5, want: false},
		{name: "already below", prev: -0.1, cur: -0.5, want: false},
		{name: "rising through", prev: -0.5, cur: 0.5, want: false},
		{name: "landing on threshold", prev: 0.5, cur: 0.12, want: false},
		{name: "leaving threshold", prev: 0.12, cur: 0.0, want: true},
		{name: "resting on threshold", prev: 0.12, cur: 0.12, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CrossedBelow(tt.prev, tt.cur, 0.12); got != tt.want {
				t.Errorf("CrossedBelow(%v, %v) = %v, want %v", tt.prev, tt.cur, got, tt.want)
			}
		})
	}
}

func TestOutsideBandEdgesAreInside(t *testing.T) {
	const lo, hi float32 = 0.73, 1.1

	if OutsideBand(lo, 1, lo, hi) {
		t.Error("lower edge should be inside the band")
	}
	if OutsideBand(hi, 1, lo, hi) {
		t.Error("upper edge should be inside the band")
	}
	if !OutsideBand(0.72, 1, lo, hi) {
		t.Error("0.72 should be outside the band")
	}
	if !OutsideBand(1.15, 1, lo, hi) {
		t.Error("1.15 should be outside the band")
	}
}
