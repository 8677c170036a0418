package geom

import (
	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/shade"
)

// Light is a point light.
type Light struct {
	Position mathutil.Vec3
	Color    shade.Color

	// Attenuation is the quadratic falloff factor k in 1/(1+k·d²). It is only
	// consulted when the shader has attenuation enabled.
	Attenuation float64
}

// NewLight returns a white light at pos.
func NewLight(pos mathutil.Vec3) Light {
	return Light{Position: pos, Color: shade.White}
}

// NewColoredLight returns a light of the given color at pos.
func NewColoredLight(pos mathutil.Vec3, color shade.Color) Light {
	return Light{Position: pos, Color: color}
}

// NewAttenuatedLight returns a white light with falloff factor k.
func NewAttenuatedLight(pos mathutil.Vec3, k float64) Light {
	return Light{Position: pos, Color: shade.White, Attenuation: k}
}

// NewLightWith returns a light with every field set.
func NewLightWith(pos mathutil.Vec3, color shade.Color, k float64) Light {
	return Light{Position: pos, Color: color, Attenuation: k}
}

// Falloff returns the intensity multiplier at distance d.
func (l Light) Falloff(d float64) float64 {
	if l.Attenuation <= 0 {
		return 1
	}
	return 1 / (1 + l.Attenuation*d*d)
}
