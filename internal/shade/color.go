// Package shade holds the floating-point RGB color model used by the tracer.
package shade

import "math"

// Color is an RGB triple, nominally in [0,1]. Intermediate results may leave
// that range; Saturate brings them back.
type Color struct {
	R, G, B float64
}

var (
	White = Color{1, 1, 1}
	Black = Color{}
)

// RGB is shorthand for Color{r, g, b}.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Mul multiplies component-wise (light color times surface color).
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

func (c Color) Div(s float64) Color {
	return Color{c.R / s, c.G / s, c.B / s}
}

// Saturate clamps every channel to [0,1].
func (c Color) Saturate() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Bytes converts to 8-bit channels with round(c*255), clamping first.
func (c Color) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

func clamp01(v float64) float64 {
	// NaN compares false both ways; pin it to black.
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
