package raster

import (
	"fmt"
	"math"

	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/scene"
	"raycast-renderer/internal/shade"
)

// Shader turns a primary ray into a color. Implementations must be safe for
// concurrent use; they only read the scene.
type Shader interface {
	Shade(s *scene.Scene, origin, dir mathutil.Vec3) shade.Color
	Name() string
}

// Lambert is the default policy: an ambient term plus one diffuse term per
// unoccluded light, clamped with max(0, n·l).
type Lambert struct {
	// Attenuate scales each light by 1/(1+k·d²) using the light's own k.
	Attenuate bool
}

func (Lambert) Name() string { return "lambert" }

func (l Lambert) Shade(s *scene.Scene, origin, dir mathutil.Vec3) shade.Color {
	tris := s.Triangles()
	idx, t, ok := ClosestHit(tris, origin, dir)
	if !ok {
		return s.Background()
	}

	tri := tris[idx]
	hit := origin.Add(dir.Scale(t))
	normal := FaceToward(tri.Normal(), dir)
	ambient := s.Ambient()

	result := tri.Color.Scale(ambient)
	for _, light := range s.Lights() {
		toLight := light.Position.Sub(hit)
		dist := toLight.Len()
		toLight = toLight.Normalize()

		if Occluded(tris, idx, hit, toLight, dist) {
			continue
		}
		intensity := normal.Dot(toLight)
		if intensity <= 0 {
			continue
		}
		if l.Attenuate {
			intensity *= light.Falloff(dist)
		}
		result = result.Add(light.Color.Mul(tri.Color).Scale(intensity * (1 - ambient)))
	}
	return result.Saturate()
}

// DefaultLegacyLight is where the single light of the Legacy policy sits.
var DefaultLegacyLight = mathutil.Vec3{0, 10, 0}

// LegacyShadowFactor dims shadowed hits instead of dropping the light.
const LegacyShadowFactor = 0.2

// Legacy lights every surface from one fixed white light. Lighting is
// double-sided (|n·l|) and shadows multiply the intensity by a flat factor.
// Scene lights and the ambient coefficient are not consulted.
type Legacy struct {
	Light mathutil.Vec3
}

// NewLegacy returns the legacy policy with its light at DefaultLegacyLight.
func NewLegacy() Legacy {
	return Legacy{Light: DefaultLegacyLight}
}

func (Legacy) Name() string { return "legacy" }

func (l Legacy) Shade(s *scene.Scene, origin, dir mathutil.Vec3) shade.Color {
	tris := s.Triangles()
	idx, t, ok := ClosestHit(tris, origin, dir)
	if !ok {
		return s.Background()
	}

	tri := tris[idx]
	hit := origin.Add(dir.Scale(t))
	normal := FaceToward(tri.Normal(), dir)

	toLight := l.Light.Sub(hit)
	dist := toLight.Len()
	toLight = toLight.Normalize()

	intensity := math.Abs(normal.Dot(toLight))
	if Occluded(tris, idx, hit, toLight, dist) {
		intensity *= LegacyShadowFactor
	}
	return tri.Color.Scale(intensity).Saturate()
}

// ShaderByName resolves a policy name from configuration.
func ShaderByName(name string, attenuate bool) (Shader, error) {
	switch name {
	case "", "lambert":
		return Lambert{Attenuate: attenuate}, nil
	case "legacy":
		return NewLegacy(), nil
	}
	return nil, fmt.Errorf("raster: unknown shader %q", name)
}
