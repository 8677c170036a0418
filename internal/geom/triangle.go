// Package geom defines the scene primitives: triangles and point lights.
package geom

import (
	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/shade"
)

// Epsilon rejects near-parallel rays and hits at or behind the ray origin.
const Epsilon = 1e-7

// Triangle is a single flat-colored triangle. Immutable after construction.
type Triangle struct {
	V0, V1, V2 mathutil.Vec3
	Color      shade.Color
}

// NewTriangle creates a triangle from three vertices and a diffuse color.
func NewTriangle(v0, v1, v2 mathutil.Vec3, color shade.Color) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2, Color: color}
}

// Intersect tests the ray origin + t*dir against the triangle using the
// Möller–Trumbore algorithm and returns the hit distance t.
// A miss is reported with ok == false; it is an expected outcome.
func (tr Triangle) Intersect(origin, dir mathutil.Vec3) (t float64, ok bool) {
	edge1 := tr.V1.Sub(tr.V0)
	edge2 := tr.V2.Sub(tr.V0)
	h := dir.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in (or parallel to) the triangle plane
	if a > -Epsilon && a < Epsilon {
		return 0, false
	}

	f := 1.0 / a
	s := origin.Sub(tr.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * dir.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = f * edge2.Dot(q)
	if t < Epsilon {
		return 0, false
	}
	return t, true
}

// Normal returns the unit face normal. Its sign follows the vertex winding;
// callers orient it toward the viewer themselves.
func (tr Triangle) Normal() mathutil.Vec3 {
	edge1 := tr.V1.Sub(tr.V0)
	edge2 := tr.V2.Sub(tr.V0)
	return edge1.Cross(edge2).Normalize()
}
