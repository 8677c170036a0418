package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"raycast-renderer/internal/batch"
	"raycast-renderer/internal/config"
	"raycast-renderer/internal/control"
	"raycast-renderer/internal/output"
	"raycast-renderer/internal/postprocess"
	"raycast-renderer/internal/raster"
	"raycast-renderer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneName := flag.String("scene", "", fmt.Sprintf("Built-in scene %v or %q (default: towers)", scene.BuiltinNames(), config.SceneOBJ))
	objPath := flag.String("obj", "", "Wavefront OBJ file to load instead of a built-in scene")
	keys := flag.String("keys", "", `Key script, one frame per key (e.g. "10w<<^", '!' quits)`)
	width := flag.Int("width", 0, "Render width in pixels (default: 800)")
	height := flag.Int("height", 0, "Render height in pixels (default: 600)")
	ambient := flag.Float64("ambient", -1, "Ambient coefficient 0-1 (default: 0.2)")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (default: 60)")
	shader := flag.String("shader", "", "Shading policy: lambert or legacy (default: lambert)")
	attenuate := flag.Bool("attenuate", false, "Apply per-light distance falloff (lambert only)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Frame format: webp, tga or png (default: webp)")
	scale := flag.Float64("scale", 0, "Resize saved frames by this factor (default: 1)")
	filter := flag.String("filter", "", fmt.Sprintf("Resize filter %v (default: catmullrom)", postprocess.FilterNames()))

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scene:     *sceneName,
		OBJPath:   *objPath,
		Ambient:   *ambient,
		FOV:       *fov,
		Width:     *width,
		Height:    *height,
		Shader:    *shader,
		Attenuate: *attenuate,
		Workers:   *workers,
		Keys:      *keys,
		OutputDir: *outputDir,
		Format:    *format,
		Scale:     *scale,
		Filter:    *filter,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmtOut, err := output.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sh, err := raster.ShaderByName(cfg.Shader, cfg.Attenuate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	interp, err := postprocess.FilterByName(cfg.Filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	script, err := control.ParseScript(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Build scene
	var s *scene.Scene
	if cfg.Scene == config.SceneOBJ {
		s, err = scene.LoadOBJ(cfg.OBJPath)
	} else {
		s, err = scene.Builtin(cfg.Scene)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	s.SetAmbient(*cfg.Ambient)
	s.Camera().FOV = cfg.FOV
	if s.TriangleCount() == 0 {
		fmt.Fprintln(os.Stderr, "Warning: scene has no triangles, every frame will be background")
	}

	outW, outH := postprocess.ScaledSize(cfg.Width, cfg.Height, cfg.Scale)

	// Print summary
	sceneLabel := cfg.Scene
	if cfg.Scene == config.SceneOBJ {
		sceneLabel = filepath.Base(cfg.OBJPath)
	}
	fmt.Printf("Triangle raycaster → %s\n", fmtOut)
	fmt.Printf("Scene: %s (%d triangles, %d lights)\n", sceneLabel, s.TriangleCount(), s.LightCount())
	fmt.Printf("Size: %dx%d", cfg.Width, cfg.Height)
	if outW != cfg.Width || outH != cfg.Height {
		fmt.Printf(" → %dx%d (%s)", outW, outH, cfg.Filter)
	}
	fmt.Printf(", Shader: %s, Workers: %d\n", sh.Name(), cfg.Workers)
	fmt.Printf("Keys: %d\n", len(script))
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	ctx := raster.NewContext(s)
	ctx.Shader = sh
	ctx.Workers = cfg.Workers

	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    fmtOut,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Filter:    interp,
		Workers:   cfg.Workers,
	}
	if outW != cfg.Width || outH != cfg.Height {
		batchCfg.OutWidth, batchCfg.OutHeight = outW, outH
	}

	results := batch.Run(batchCfg, ctx, script)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	var renderTime time.Duration
	for _, r := range results {
		renderTime += r.Render
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Frames: %d/%d", success, len(results))
	if len(results) > 0 {
		fmt.Printf(", %.1f ms/frame render", float64(renderTime.Microseconds())/1000/float64(len(results)))
	}
	fmt.Println()

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.File, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	m := batch.NewManifest(sceneLabel, sh.Name(), batchCfg, results)
	if err := batch.WriteManifest(manifestPath, m); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
