package scene

import (
	"testing"

	"raycast-renderer/internal/geom"
	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/shade"
)

func TestScene_AppendOnlyOrder(t *testing.T) {
	s := New()

	a := geom.NewTriangle(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{0, 1, 0}, shade.RGB(1, 0, 0))
	b := geom.NewTriangle(mathutil.Vec3{0, 0, 1}, mathutil.Vec3{1, 0, 1}, mathutil.Vec3{0, 1, 1}, shade.RGB(0, 1, 0))
	c := geom.NewTriangle(mathutil.Vec3{0, 0, 2}, mathutil.Vec3{1, 0, 2}, mathutil.Vec3{0, 1, 2}, shade.RGB(0, 0, 1))

	s.AddTriangle(a)
	s.AddObject([]geom.Triangle{b, c})

	got := s.Triangles()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Errorf("Triangles out of insertion order: %v", got)
	}

	l1 := geom.NewLight(mathutil.Vec3{0, 5, 0})
	l2 := geom.NewColoredLight(mathutil.Vec3{1, 5, 0}, shade.RGB(0.5, 0.5, 0))
	s.AddLight(l1)
	s.AddLights([]geom.Light{l2})
	if ls := s.Lights(); len(ls) != 2 || ls[0] != l1 || ls[1] != l2 {
		t.Errorf("Lights out of insertion order: %v", ls)
	}
}

func TestScene_Defaults(t *testing.T) {
	s := New()
	if s.Ambient() != DefaultAmbient {
		t.Errorf("Expected ambient %f, got %f", DefaultAmbient, s.Ambient())
	}
	if s.Background() != shade.Black {
		t.Errorf("Expected black background, got %v", s.Background())
	}
	if s.Camera() == nil {
		t.Fatal("Expected a default camera")
	}
	if s.TriangleCount() != 0 || s.LightCount() != 0 {
		t.Errorf("Expected empty scene, got %d triangles %d lights", s.TriangleCount(), s.LightCount())
	}
}

func TestScene_SetAmbientClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.35, 0.35},
		{-0.5, 0},
		{1.5, 1},
	}
	for _, tt := range tests {
		s := New()
		s.SetAmbient(tt.in)
		if s.Ambient() != tt.want {
			t.Errorf("SetAmbient(%f): expected %f, got %f", tt.in, tt.want, s.Ambient())
		}
	}
}

func TestParallelepiped(t *testing.T) {
	center := mathutil.Vec3{1, 2, 3}
	tris := Parallelepiped(center, 2, 4, 6, shade.White)

	if len(tris) != 12 {
		t.Fatalf("Expected 12 triangles, got %d", len(tris))
	}

	for i, tr := range tris {
		for _, v := range []mathutil.Vec3{tr.V0, tr.V1, tr.V2} {
			d := v.Sub(center)
			if abs(d[0]) != 1 || abs(d[1]) != 2 || abs(d[2]) != 3 {
				t.Errorf("Triangle %d vertex %v is not a box corner", i, v)
			}
		}
		if tr.Normal().Len() == 0 {
			t.Errorf("Triangle %d is degenerate", i)
		}
	}

	// A ray through the center crosses exactly two faces.
	hits := 0
	for _, tr := range tris {
		if _, ok := tr.Intersect(mathutil.Vec3{1.3, 2.2, -10}, mathutil.Vec3{0, 0, 1}); ok {
			hits++
		}
	}
	if hits != 2 {
		t.Errorf("Expected 2 face hits through the box, got %d", hits)
	}
}

func TestBuiltinScenes(t *testing.T) {
	tests := []struct {
		name      string
		triangles int
		lights    int
	}{
		{"cubes", 3*12 + 1, 2},
		{"towers", 2 + 4*12, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Builtin(tt.name)
			if err != nil {
				t.Fatalf("Builtin(%q): %v", tt.name, err)
			}
			if s.TriangleCount() != tt.triangles {
				t.Errorf("Expected %d triangles, got %d", tt.triangles, s.TriangleCount())
			}
			if s.LightCount() != tt.lights {
				t.Errorf("Expected %d lights, got %d", tt.lights, s.LightCount())
			}
		})
	}

	if _, err := Builtin("nope"); err == nil {
		t.Error("Expected error for unknown scene")
	}
}

func TestBuiltinNames(t *testing.T) {
	names := BuiltinNames()
	if len(names) != 2 || names[0] != "cubes" || names[1] != "towers" {
		t.Errorf("Unexpected names %v", names)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
