// Package postprocess adjusts finished frames before they are encoded.
package postprocess

import (
	"fmt"
	"image"
	"sort"

	"golang.org/x/image/draw"
)

// Filters maps filter names accepted in configuration to interpolators.
var Filters = map[string]draw.Interpolator{
	"nearest":        draw.NearestNeighbor,
	"approxbilinear": draw.ApproxBiLinear,
	"bilinear":       draw.BiLinear,
	"catmullrom":     draw.CatmullRom,
}

// DefaultFilter is used when no filter is configured.
const DefaultFilter = "catmullrom"

// FilterByName looks up an interpolator. An empty name selects DefaultFilter.
func FilterByName(name string) (draw.Interpolator, error) {
	if name == "" {
		name = DefaultFilter
	}
	f, ok := Filters[name]
	if !ok {
		return nil, fmt.Errorf("postprocess: unknown filter %q (have %v)", name, FilterNames())
	}
	return f, nil
}

// FilterNames returns the accepted filter names, sorted.
func FilterNames() []string {
	names := make([]string, 0, len(Filters))
	for n := range Filters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Scale resamples img to width×height. Frames are opaque, so no alpha
// premultiplication is needed. When the size already matches img is
// returned as is.
func Scale(img *image.NRGBA, width, height int, filter draw.Interpolator) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	if width <= 0 || height <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	filter.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// ScaledSize applies factor to a frame size, never going below 1×1.
func ScaledSize(width, height int, factor float64) (int, int) {
	if factor <= 0 {
		factor = 1
	}
	w := int(float64(width)*factor + 0.5)
	h := int(float64(height)*factor + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
