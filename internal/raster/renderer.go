// Package raster is the raycasting engine: closest-hit search, shadow rays,
// shading policies and parallel frame assembly.
package raster

import (
	"runtime"
	"sync"
	"time"

	"raycast-renderer/internal/scene"
)

// Context owns everything one render needs. The application holds one
// Context per session and passes it to Render on every redraw request.
type Context struct {
	Scene   *scene.Scene
	Shader  Shader
	Workers int // <= 0 means runtime.NumCPU()

	buf   *FrameBuffer
	stats Stats
}

// Stats describes the last completed frame.
type Stats struct {
	Width     int
	Height    int
	Pixels    int
	Triangles int
	Lights    int
	Workers   int
	Elapsed   time.Duration
}

// NewContext returns a context rendering s with the default Lambert shader.
func NewContext(s *scene.Scene) *Context {
	return &Context{Scene: s, Shader: Lambert{}}
}

// Stats returns statistics for the most recent Render call.
func (ctx *Context) Stats() Stats {
	return ctx.stats
}

// Render traces one primary ray per pixel and fills the context's frame
// buffer, which is reused across calls and resized when the dimensions
// change. Rows are distributed over worker goroutines; each pixel is written
// exactly once, so no locking is needed. Render returns after every pixel is
// done.
func Render(ctx *Context, width, height int) *FrameBuffer {
	start := time.Now()

	if ctx.buf == nil {
		ctx.buf = &FrameBuffer{}
	}
	fb := ctx.buf
	fb.Resize(width, height)

	shader := ctx.Shader
	if shader == nil {
		shader = Lambert{}
	}

	workers := ctx.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > fb.Height {
		workers = fb.Height
	}

	// Worker pool
	rows := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(ctx.Scene, shader, fb, y)
			}
		}()
	}

	for y := 0; y < fb.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	ctx.stats = Stats{
		Width:     fb.Width,
		Height:    fb.Height,
		Pixels:    fb.Width * fb.Height,
		Triangles: ctx.Scene.TriangleCount(),
		Lights:    ctx.Scene.LightCount(),
		Workers:   workers,
		Elapsed:   time.Since(start),
	}
	return fb
}

// renderRow shades screen row y into buffer row height-y-1.
func renderRow(s *scene.Scene, shader Shader, fb *FrameBuffer, y int) {
	cam := s.Camera()
	i := fb.Offset(0, fb.Height-y-1)
	for x := 0; x < fb.Width; x++ {
		dir := cam.RayDirection(x, y, fb.Width, fb.Height)
		r, g, b := shader.Shade(s, cam.Position, dir).Bytes()
		fb.Pix[i] = r
		fb.Pix[i+1] = g
		fb.Pix[i+2] = b
		i += 3
	}
}
