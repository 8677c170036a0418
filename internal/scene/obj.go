package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"raycast-renderer/internal/camera"
	"raycast-renderer/internal/geom"
	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/shade"
)

// Materials maps material names to their resolved diffuse color.
type Materials map[string]shade.Color

// LibraryLoader opens a material library referenced by an "mtllib" line.
type LibraryLoader func(name string) (Materials, error)

// LoadOBJ reads a Wavefront OBJ file (and any MTL libraries next to it) into
// a new scene with one white light overhead and the camera pulled back to
// z=10.
func LoadOBJ(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	loadLib := func(name string) (Materials, error) {
		return LoadMTL(filepath.Join(dir, name))
	}

	tris, err := ParseOBJ(f, loadLib)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	s := New()
	s.AddObject(tris)
	s.AddLight(geom.NewLight(mathutil.Vec3{0, 10, 0}))
	s.SetCamera(camera.LookAt(mathutil.Vec3{0, 0, 10}, mathutil.Vec3{0, 0, 9}, camera.DefaultFOV, 1))
	return s, nil
}

// ParseOBJ reads vertex positions and faces from r. Polygons are fan
// triangulated. Each triangle takes the Kd color of the active material, or
// white when none is set. Texture coordinates and normals are ignored.
func ParseOBJ(r io.Reader, loadLib LibraryLoader) ([]geom.Triangle, error) {
	var (
		verts     []mathutil.Vec3
		tris      []geom.Triangle
		materials = Materials{}
		current   = shade.White
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(stripComment(sc.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			v, err := parseVec3(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			verts = append(verts, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := resolveIndex(tok, len(verts))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				idx = append(idx, i)
			}
			for k := 1; k+1 < len(idx); k++ {
				tris = append(tris, geom.NewTriangle(verts[idx[0]], verts[idx[k]], verts[idx[k+1]], current))
			}

		case "mtllib":
			if loadLib == nil {
				continue
			}
			for _, name := range fields[1:] {
				lib, err := loadLib(name)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				for k, c := range lib {
					materials[k] = c
				}
			}

		case "usemtl":
			current = shade.White
			if len(fields) > 1 {
				if c, ok := materials[fields[1]]; ok {
					current = c
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tris, nil
}

// LoadMTL reads a material library file.
func LoadMTL(path string) (Materials, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open material library %s: %w", path, err)
	}
	defer f.Close()

	m, err := ParseMTL(f)
	if err != nil {
		return nil, fmt.Errorf("scene: parse material library %s: %w", path, err)
	}
	return m, nil
}

// ParseMTL extracts the diffuse (Kd) color of every material in r.
// Materials without Kd default to white.
func ParseMTL(r io.Reader) (Materials, error) {
	m := Materials{}
	name := ""

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(stripComment(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "newmtl":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: newmtl without a name", lineNo)
			}
			name = fields[1]
			m[name] = shade.White
		case "Kd":
			if name == "" {
				return nil, fmt.Errorf("line %d: Kd before newmtl", lineNo)
			}
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: Kd needs 3 components", lineNo)
			}
			v, err := parseVec3(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			m[name] = shade.RGB(v[0], v[1], v[2])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

func parseVec3(fields []string) (mathutil.Vec3, error) {
	var v mathutil.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return v, fmt.Errorf("bad number %q", fields[i])
		}
		v[i] = f
	}
	return v, nil
}

// resolveIndex turns a face token ("7", "7/2", "7//3", "-1") into a
// zero-based vertex index.
func resolveIndex(tok string, nverts int) (int, error) {
	if slash := strings.IndexByte(tok, '/'); slash >= 0 {
		tok = tok[:slash]
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q", tok)
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += nverts
	default:
		return 0, fmt.Errorf("face index 0 is invalid")
	}
	if i < 0 || i >= nverts {
		return 0, fmt.Errorf("face index %s out of range (%d vertices)", tok, nverts)
	}
	return i, nil
}
