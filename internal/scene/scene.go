// Package scene holds the triangle soup, lights and camera handed to the
// tracer, plus the authoring helpers that populate it.
package scene

import (
	"raycast-renderer/internal/camera"
	"raycast-renderer/internal/geom"
	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/shade"
)

// DefaultAmbient is the ambient coefficient of a fresh scene.
const DefaultAmbient = 0.2

// Scene is an append-only collection of triangles and lights with an ambient
// coefficient, a background color and the active camera.
//
// A Scene must not be mutated while a frame is being rendered from it.
type Scene struct {
	triangles  []geom.Triangle
	lights     []geom.Light
	ambient    float64
	background shade.Color
	camera     *camera.Camera
}

// New returns an empty scene with the default camera.
func New() *Scene {
	return &Scene{
		ambient:    DefaultAmbient,
		background: shade.Black,
		camera:     camera.New(),
	}
}

func (s *Scene) AddTriangle(t geom.Triangle) {
	s.triangles = append(s.triangles, t)
}

// AddObject appends every triangle of a mesh, preserving order.
func (s *Scene) AddObject(tris []geom.Triangle) {
	s.triangles = append(s.triangles, tris...)
}

func (s *Scene) AddLight(l geom.Light) {
	s.lights = append(s.lights, l)
}

func (s *Scene) AddLights(ls []geom.Light) {
	s.lights = append(s.lights, ls...)
}

// SetAmbient sets the ambient coefficient, clamped to [0,1].
func (s *Scene) SetAmbient(a float64) {
	s.ambient = mathutil.Clamp(a, 0, 1)
}

func (s *Scene) SetCamera(c *camera.Camera) {
	s.camera = c
}

func (s *Scene) SetBackground(c shade.Color) {
	s.background = c
}

// Triangles returns the primitives in insertion order. Callers must not
// modify the returned slice.
func (s *Scene) Triangles() []geom.Triangle { return s.triangles }

// Lights returns the lights in insertion order. Callers must not modify the
// returned slice.
func (s *Scene) Lights() []geom.Light { return s.lights }

func (s *Scene) Ambient() float64 { return s.ambient }
func (s *Scene) Background() shade.Color { return s.background }
func (s *Scene) Camera() *camera.Camera { return s.camera }
func (s *Scene) TriangleCount() int { return len(s.triangles) }
func (s *Scene) LightCount() int { return len(s.lights) }
