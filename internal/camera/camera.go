// Package camera implements the yaw/pitch fly camera and primary-ray
// generation.
package camera

import (
	"math"

	"raycast-renderer/internal/mathutil"
)

// MaxPitch keeps the basis away from the poles, where forward and world-up
// become parallel.
var MaxPitch = mathutil.Deg2Rad(89)

// DefaultFOV is the vertical field of view in degrees.
const DefaultFOV = 60.0

// Camera holds position, an orthonormal basis and projection parameters.
// Forward, Right and Up are rebuilt from Yaw/Pitch on every rotation.
type Camera struct {
	Position mathutil.Vec3
	Forward  mathutil.Vec3
	Right    mathutil.Vec3
	Up       mathutil.Vec3

	Yaw   float64 // radians
	Pitch float64 // radians

	FOV         float64 // degrees
	AspectRatio float64
}

// New returns the default camera at (0,0,5) looking down -Z.
func New() *Camera {
	return LookAt(mathutil.Vec3{0, 0, 5}, mathutil.Vec3{0, 0, 4}, DefaultFOV, 1)
}

// LookAt builds a camera at pos facing target. Yaw and pitch are derived from
// the view direction so later rotations continue smoothly from it.
func LookAt(pos, target mathutil.Vec3, fov, aspect float64) *Camera {
	dir := target.Sub(pos).Normalize()
	c := &Camera{
		Position:    pos,
		FOV:         fov,
		AspectRatio: aspect,
		Yaw:         math.Atan2(dir[2], dir[0]),
		Pitch:       mathutil.Clamp(math.Asin(mathutil.Clamp(dir[1], -1, 1)), -MaxPitch, MaxPitch),
	}
	c.updateBasis()
	return c
}

// Rotate accumulates yaw and pitch, clamps pitch to ±89° and rebuilds the
// basis.
func (c *Camera) Rotate(deltaYaw, deltaPitch float64) {
	c.Yaw += deltaYaw
	c.Pitch = mathutil.Clamp(c.Pitch+deltaPitch, -MaxPitch, MaxPitch)
	c.updateBasis()
}

// Move translates the camera along its own axes, not the world axes.
func (c *Camera) Move(dx, dy, dz float64) {
	c.Position = c.Position.
		Add(c.Right.Scale(dx)).
		Add(c.Up.Scale(dy)).
		Add(c.Forward.Scale(dz))
}

// SetAspectRatio sets width/height of the image plane.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
}

// Resize updates the aspect ratio after a viewport change. Degenerate sizes
// are ignored.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float64(width) / float64(height)
}

// RayDirection returns the normalized direction of the primary ray through
// pixel (x, y). Pixel (0,0) is the top-left corner.
func (c *Camera) RayDirection(x, y, width, height int) mathutil.Vec3 {
	ndcX := (2*float64(x)/float64(width) - 1) * c.AspectRatio
	// Screen Y grows downward, NDC Y grows upward.
	ndcY := 1 - 2*float64(y)/float64(height)

	scale := math.Tan(mathutil.Deg2Rad(c.FOV) * 0.5)
	ndcX *= scale
	ndcY *= scale

	return c.Forward.
		Add(c.Right.Scale(ndcX)).
		Add(c.Up.Scale(ndcY)).
		Normalize()
}

func (c *Camera) updateBasis() {
	cp := math.Cos(c.Pitch)
	c.Forward = mathutil.Vec3{
		math.Cos(c.Yaw) * cp,
		math.Sin(c.Pitch),
		math.Sin(c.Yaw) * cp,
	}.Normalize()
	c.Right = mathutil.Up.Cross(c.Forward).Normalize()
	c.Up = c.Forward.Cross(c.Right).Normalize()
}
