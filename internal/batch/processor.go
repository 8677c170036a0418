// Package batch drives a render session from a key script: every key press
// moves the camera and triggers exactly one redraw, and finished frames are
// encoded to disk in the background.
package batch

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"raycast-renderer/internal/control"
	"raycast-renderer/internal/mathutil"
	"raycast-renderer/internal/output"
	"raycast-renderer/internal/postprocess"
	"raycast-renderer/internal/raster"

	"golang.org/x/image/draw"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    output.Format
	Width     int
	Height    int

	// Saved frames are resampled to OutWidth×OutHeight when that differs
	// from the render size.
	OutWidth  int
	OutHeight int
	Filter    draw.Interpolator

	// Workers encoding frames. Rendering itself uses the context's workers.
	Workers int

	// Progress is called from the reporter goroutine every ProgressEvery.
	// Nil prints to stdout.
	Progress      func(done, total int, rate float64)
	ProgressEvery time.Duration
}

// Result holds the outcome of one frame.
type Result struct {
	Index    int
	Key      string
	File     string
	Position mathutil.Vec3
	Yaw      float64
	Pitch    float64
	Render   time.Duration
	Success  bool
	Error    string
}

type job struct {
	idx int
	img *image.NRGBA
}

// Run renders the initial view and then one frame per key press. An escape
// key ends the session without drawing. Camera changes and rendering happen
// on the calling goroutine in key order; encoding runs on cfg.Workers
// goroutines.
func Run(cfg Config, ctx *raster.Context, keys []control.Key) []Result {
	total := 1
	for _, k := range keys {
		if k == control.KeyEscape {
			break
		}
		total++
	}
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	every := cfg.ProgressEvery
	if every <= 0 {
		every = 2 * time.Second
	}
	report := cfg.Progress
	if report == nil {
		report = func(done, total int, rate float64) {
			fmt.Printf("  [%d/%d] %.1f frames/sec\n", done, total, rate)
		}
	}
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					report(int(p), total, float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan job, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				saveFrame(cfg, &results[j.idx], j.img)
				processed.Add(1)
			}
		}()
	}

	cam := ctx.Scene.Camera()
	cam.Resize(cfg.Width, cfg.Height)

	redraw := func(idx int, key string) {
		fb := raster.Render(ctx, cfg.Width, cfg.Height)
		results[idx] = Result{
			Index:    idx,
			Key:      key,
			File:     FrameName(idx, cfg.Format),
			Position: cam.Position,
			Yaw:      cam.Yaw,
			Pitch:    cam.Pitch,
			Render:   ctx.Stats().Elapsed,
		}
		// Image copies the buffer, which the next Render overwrites.
		jobs <- job{idx: idx, img: fb.Image()}
	}

	redraw(0, "")
	for i, k := range keys[:total-1] {
		control.Apply(cam, k)
		redraw(i+1, k.String())
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

// FrameName is the file name of frame idx relative to the output directory.
func FrameName(idx int, f output.Format) string {
	return fmt.Sprintf("frame_%04d%s", idx, f.Ext())
}

func saveFrame(cfg Config, r *Result, img *image.NRGBA) {
	if cfg.OutWidth > 0 && cfg.OutHeight > 0 {
		filter := cfg.Filter
		if filter == nil {
			filter = draw.CatmullRom
		}
		img = postprocess.Scale(img, cfg.OutWidth, cfg.OutHeight, filter)
	}

	if err := output.Save(filepath.Join(cfg.OutputDir, r.File), cfg.Format, img); err != nil {
		r.Error = err.Error()
		return
	}
	r.Success = true
}
