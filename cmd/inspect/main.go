package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"raycast-renderer/internal/raster"
	"raycast-renderer/internal/scene"
)

func main() {
	width := flag.Int("width", 800, "Viewport width used for -probe")
	height := flag.Int("height", 600, "Viewport height used for -probe")
	probe := flag.String("probe", "", "Trace the primary ray through pixel x,y")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: inspect [flags] <%s|file.obj>\n", strings.Join(scene.BuiltinNames(), "|"))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	name := flag.Arg(0)
	var s *scene.Scene
	var err error
	if strings.HasSuffix(strings.ToLower(name), ".obj") {
		s, err = scene.LoadOBJ(name)
	} else {
		s, err = scene.Builtin(name)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	tris := s.Triangles()
	fmt.Printf("Triangles: %d, Lights: %d, Ambient: %.2f\n", len(tris), s.LightCount(), s.Ambient())

	minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
	maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)
	areaByDir := map[string]float64{}
	degenerate := 0
	for _, t := range tris {
		for _, v := range [3][3]float64{t.V0, t.V1, t.V2} {
			minX, maxX = math.Min(minX, v[0]), math.Max(maxX, v[0])
			minY, maxY = math.Min(minY, v[1]), math.Max(maxY, v[1])
			minZ, maxZ = math.Min(minZ, v[2]), math.Max(maxZ, v[2])
		}

		c := t.V1.Sub(t.V0).Cross(t.V2.Sub(t.V0))
		area := 0.5 * c.Len()
		if area < 1e-12 {
			degenerate++
			continue
		}
		areaByDir[dominantAxis(c)] += area
	}
	if len(tris) > 0 {
		fmt.Printf("BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n", minX, maxX, minY, maxY, minZ, maxZ)
		fmt.Printf("Size: %.2f x %.2f x %.2f\n", maxX-minX, maxY-minY, maxZ-minZ)
	}
	if degenerate > 0 {
		fmt.Printf("Degenerate triangles: %d (never hit)\n", degenerate)
	}

	fmt.Println("--- Surface area by winding normal ---")
	for _, d := range []string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"} {
		fmt.Printf("  %s: %.2f sq units\n", d, areaByDir[d])
	}

	fmt.Println("--- Lights ---")
	for i, l := range s.Lights() {
		fmt.Printf("  [%d] pos=(%.2f, %.2f, %.2f) color=(%.2f, %.2f, %.2f) k=%g\n",
			i, l.Position[0], l.Position[1], l.Position[2], l.Color.R, l.Color.G, l.Color.B, l.Attenuation)
	}

	cam := s.Camera()
	fmt.Println("--- Camera ---")
	fmt.Printf("  pos=(%.2f, %.2f, %.2f) yaw=%.1f° pitch=%.1f° fov=%.0f°\n",
		cam.Position[0], cam.Position[1], cam.Position[2], cam.Yaw*180/math.Pi, cam.Pitch*180/math.Pi, cam.FOV)

	if *probe == "" {
		return
	}
	var px, py int
	if _, err := fmt.Sscanf(*probe, "%d,%d", &px, &py); err != nil {
		fmt.Printf("Error: bad -probe %q: %v\n", *probe, err)
		os.Exit(1)
	}

	cam.Resize(*width, *height)
	dir := cam.RayDirection(px, py, *width, *height)
	fmt.Printf("--- Probe (%d, %d) ---\n", px, py)
	fmt.Printf("  dir=(%.4f, %.4f, %.4f)\n", dir[0], dir[1], dir[2])

	idx, t, ok := raster.ClosestHit(tris, cam.Position, dir)
	if !ok {
		fmt.Println("  miss (background)")
		return
	}
	hit := cam.Position.Add(dir.Scale(t))
	fmt.Printf("  hit triangle %d at t=%.4f (%.3f, %.3f, %.3f)\n", idx, t, hit[0], hit[1], hit[2])

	n := raster.FaceToward(tris[idx].Normal(), dir)
	for i, l := range s.Lights() {
		toLight := l.Position.Sub(hit)
		dist := toLight.Len()
		toLight = toLight.Normalize()
		state := "lit"
		if raster.Occluded(tris, idx, hit, toLight, dist) {
			state = "shadowed"
		}
		fmt.Printf("  light %d: n·l=%.3f dist=%.2f %s\n", i, n.Dot(toLight), dist, state)
	}

	for _, sh := range []raster.Shader{raster.Lambert{}, raster.NewLegacy()} {
		r, g, b := sh.Shade(s, cam.Position, dir).Bytes()
		fmt.Printf("  %s: rgb(%d, %d, %d)\n", sh.Name(), r, g, b)
	}
}

func dominantAxis(c [3]float64) string {
	ax, ay, az := math.Abs(c[0]), math.Abs(c[1]), math.Abs(c[2])
	switch {
	case ax >= ay && ax >= az:
		if c[0] > 0 {
			return "+X"
		}
		return "-X"
	case ay >= az:
		if c[1] > 0 {
			return "+Y"
		}
		return "-Y"
	}
	if c[2] > 0 {
		return "+Z"
	}
	return "-Z"
}
