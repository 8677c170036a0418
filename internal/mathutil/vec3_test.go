package mathutil

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"Unit X", Vec3{1, 0, 0}},
		{"Axis aligned long", Vec3{0, 0, -42}},
		{"Arbitrary", Vec3{3, -4, 12}},
		{"Tiny", Vec3{1e-9, 2e-9, -1e-9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalize()
			if math.Abs(n.Len()-1) > 1e-9 {
				t.Errorf("Expected unit length, got %f for %v", n.Len(), n)
			}
			if n.Dot(tt.v) <= 0 {
				t.Errorf("Normalized vector %v points away from %v", n, tt.v)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	zero := Vec3{}
	if got := zero.Normalize(); got != zero {
		t.Errorf("Expected zero vector unchanged, got %v", got)
	}
	for _, c := range zero.Normalize() {
		if math.IsNaN(c) {
			t.Fatal("Normalize of zero vector produced NaN")
		}
	}
}

func TestVec3_Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := Vec3{0, 0, 1}

	if got := x.Cross(y); got != z {
		t.Errorf("x × y: expected %v, got %v", z, got)
	}
	if got := y.Cross(x); got != z.Neg() {
		t.Errorf("y × x: expected %v, got %v", z.Neg(), got)
	}

	a := Vec3{2, -1, 3}
	b := Vec3{0.5, 4, -2}
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("Cross product %v not orthogonal to inputs", c)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %f", got)
	}

	// Value semantics: operands are never mutated.
	if a != (Vec3{1, 2, 3}) || b != (Vec3{4, 5, 6}) {
		t.Errorf("Operands mutated: a=%v b=%v", a, b)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-2, 0, 1, 0},
		{7, 0, 1, 1},
		{-math.Pi, -1.5, 1.5, -1.5},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%f, %f, %f) = %f, want %f", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
