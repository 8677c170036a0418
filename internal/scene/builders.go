package scene

import (
	"fmt"
	"sort"

	"raycast-renderer/internal/geom"
	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/shade"
)

// boxFaces indexes the eight corners of a box into twelve triangles.
var boxFaces = [12][3]int{
	{0, 1, 2}, {0, 2, 3},
	{4, 6, 5}, {4, 7, 6},
	{0, 4, 5}, {0, 5, 1},
	{2, 6, 7}, {2, 7, 3},
	{0, 3, 7}, {0, 7, 4},
	{1, 5, 6}, {1, 6, 2},
}

// Parallelepiped returns the twelve triangles of an axis-aligned box.
func Parallelepiped(center mathutil.Vec3, width, height, depth float64, color shade.Color) []geom.Triangle {
	hx, hy, hz := width*0.5, height*0.5, depth*0.5
	cx, cy, cz := center[0], center[1], center[2]

	corners := [8]mathutil.Vec3{
		{cx - hx, cy - hy, cz - hz},
		{cx + hx, cy - hy, cz - hz},
		{cx + hx, cy + hy, cz - hz},
		{cx - hx, cy + hy, cz - hz},
		{cx - hx, cy - hy, cz + hz},
		{cx + hx, cy - hy, cz + hz},
		{cx + hx, cy + hy, cz + hz},
		{cx - hx, cy + hy, cz + hz},
	}

	tris := make([]geom.Triangle, 0, len(boxFaces))
	for _, f := range boxFaces {
		tris = append(tris, geom.NewTriangle(corners[f[0]], corners[f[1]], corners[f[2]], color))
	}
	return tris
}

// Cubes is three boxes over a single floor triangle, lit from above and by a
// magenta light just over the floor.
func Cubes() *Scene {
	s := New()

	s.AddObject(Parallelepiped(mathutil.Vec3{0, -2, -2}, 2, 2, 2, shade.RGB(0.8, 0.3, 0.3)))
	s.AddObject(Parallelepiped(mathutil.Vec3{3, -2, -4}, 1, 1, 1, shade.RGB(0.3, 0.3, 0.8)))
	s.AddObject(Parallelepiped(mathutil.Vec3{-3, -1, -1}, 1.5, 1.5, 1.5, shade.RGB(0.8, 0.8, 0.3)))

	s.AddTriangle(geom.NewTriangle(
		mathutil.Vec3{-10, -5, -10},
		mathutil.Vec3{10, -5, -10},
		mathutil.Vec3{0, -5, 10},
		shade.RGB(0.4, 0.6, 0.4),
	))

	s.AddLight(geom.NewAttenuatedLight(mathutil.Vec3{0, 10, 0}, 0.1))
	s.AddLight(geom.NewColoredLight(mathutil.Vec3{0, -4.5, 0}, shade.RGB(1, 0, 1)))
	return s
}

// Towers is a square floor with four colored towers, each lit by a light of
// matching hue placed outside it, plus a low white fill light.
func Towers() *Scene {
	s := New()

	const (
		floorSize = 10.0
		floorY    = -5.0
		towerW    = 1.5
		towerH    = 6.0
		towerD    = 1.5
	)
	half := floorSize / 2
	floor := shade.White

	s.AddTriangle(geom.NewTriangle(
		mathutil.Vec3{-half, floorY, -half},
		mathutil.Vec3{half, floorY, -half},
		mathutil.Vec3{half, floorY, half},
		floor,
	))
	s.AddTriangle(geom.NewTriangle(
		mathutil.Vec3{-half, floorY, -half},
		mathutil.Vec3{half, floorY, half},
		mathutil.Vec3{-half, floorY, half},
		floor,
	))

	midY := floorY + towerH/2
	third := floorSize / 3
	towerPos := [4]mathutil.Vec3{
		{0, midY, third},
		{0, midY, -third},
		{third, midY, 0},
		{-third, midY, 0},
	}
	towerColor := [4]shade.Color{
		shade.RGB(1, 0, 0),
		shade.RGB(0, 1, 0),
		shade.RGB(0, 0, 1),
		shade.RGB(1, 1, 1),
	}
	for i := range towerPos {
		s.AddObject(Parallelepiped(towerPos[i], towerW, towerH, towerD, towerColor[i]))
	}

	lightPos := [4]mathutil.Vec3{
		{0, midY, half},
		{0, midY, -half},
		{half, midY, 0},
		{-half, midY, 0},
	}
	lightColor := [4]shade.Color{
		shade.RGB(0.8, 0.25, 0.25),
		shade.RGB(0.25, 0.8, 0.25),
		shade.RGB(0.25, 0.25, 0.8),
		shade.RGB(1, 1, 1),
	}

	s.AddLight(geom.NewAttenuatedLight(mathutil.Vec3{0, -4.5, 0}, 0.2))
	for i := range lightPos {
		s.AddLight(geom.NewColoredLight(lightPos[i], lightColor[i]))
	}
	return s
}

var builtins = map[string]func() *Scene{
	"cubes":  Cubes,
	"towers": Towers,
}

// Builtin returns a freshly built named scene.
func Builtin(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q (have %v)", name, BuiltinNames())
	}
	return build(), nil
}

// BuiltinNames lists the registered scene names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
