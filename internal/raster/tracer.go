package raster

import (
	"math"

	"raycast-renderer/internal/geom"
	"raycast-renderer/internal/mathutil"
)

// ClosestHit scans every triangle and returns the index and distance of the
// nearest intersection. Equal distances keep the earlier triangle.
func ClosestHit(tris []geom.Triangle, origin, dir mathutil.Vec3) (idx int, t float64, ok bool) {
	idx = -1
	t = math.Inf(1)
	for i := range tris {
		if d, hit := tris[i].Intersect(origin, dir); hit && d < t {
			t = d
			idx = i
		}
	}
	if idx < 0 {
		return -1, 0, false
	}
	return idx, t, true
}

// Occluded reports whether any triangle other than skip blocks the segment
// from point toward a light dist away along the unit vector toLight.
func Occluded(tris []geom.Triangle, skip int, point, toLight mathutil.Vec3, dist float64) bool {
	for i := range tris {
		if i == skip {
			continue
		}
		if d, hit := tris[i].Intersect(point, toLight); hit && d <= dist {
			return true
		}
	}
	return false
}

// FaceToward flips n so it opposes the incoming ray direction.
func FaceToward(n, dir mathutil.Vec3) mathutil.Vec3 {
	if n.Dot(dir) > 0 {
		return n.Neg()
	}
	return n
}
