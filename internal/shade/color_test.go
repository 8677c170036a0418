package shade

import (
	"math"
	"testing"
)

func TestColor_Saturate(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want Color
	}{
		{"In range", Color{0.1, 0.5, 0.9}, Color{0.1, 0.5, 0.9}},
		{"Overflow", Color{1.7, 2, 1.0001}, Color{1, 1, 1}},
		{"Underflow", Color{-0.2, -5, 0}, Color{0, 0, 0}},
		{"Mixed", Color{-1, 0.25, 3}, Color{0, 0.25, 1}},
		{"NaN", Color{math.NaN(), 0.5, math.Inf(1)}, Color{0, 0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Saturate()
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			for _, ch := range []float64{got.R, got.G, got.B} {
				if ch < 0 || ch > 1 {
					t.Errorf("Channel %f outside [0,1]", ch)
				}
			}
			if again := got.Saturate(); again != got {
				t.Errorf("Saturate not idempotent: %v then %v", got, again)
			}
		})
	}
}

func TestColor_Bytes(t *testing.T) {
	tests := []struct {
		name    string
		in      Color
		r, g, b uint8
	}{
		{"Black", Black, 0, 0, 0},
		{"White", White, 255, 255, 255},
		{"Half rounds up", Color{0.5, 0.5, 0.5}, 128, 128, 128},
		{"Out of range clamps", Color{2, -1, 0.2}, 255, 0, 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.in.Bytes()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d,%d,%d), got (%d,%d,%d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

func TestColor_Arithmetic(t *testing.T) {
	a := RGB(0.5, 0.25, 1)
	b := RGB(0.5, 2, 0)

	if got := a.Mul(b); got != RGB(0.25, 0.5, 0) {
		t.Errorf("Mul: got %v", got)
	}
	if got := a.Add(b); got != RGB(1, 2.25, 1) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Scale(2); got != RGB(1, 0.5, 2) {
		t.Errorf("Scale: got %v", got)
	}
}
