package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index    int        `json:"index"`
	Key      string     `json:"key,omitempty"`
	Image    string     `json:"image"`
	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw"`
	Pitch    float64    `json:"pitch"`
	RenderMS float64    `json:"render_ms"`
}

// Manifest describes a finished session.
type Manifest struct {
	Scene   string          `json:"scene"`
	Shader  string          `json:"shader"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Format  string          `json:"format"`
	Frames  []ManifestEntry `json:"frames"`
	Skipped int             `json:"skipped,omitempty"`
}

// NewManifest lists every successfully saved frame of results.
func NewManifest(scene, shader string, cfg Config, results []Result) Manifest {
	m := Manifest{
		Scene:  scene,
		Shader: shader,
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: string(cfg.Format),
		Frames: make([]ManifestEntry, 0, len(results)),
	}
	if cfg.OutWidth > 0 && cfg.OutHeight > 0 {
		m.Width, m.Height = cfg.OutWidth, cfg.OutHeight
	}

	for _, r := range results {
		if !r.Success {
			m.Skipped++
			continue
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Index:    r.Index,
			Key:      r.Key,
			Image:    r.File,
			Position: r.Position,
			Yaw:      r.Yaw,
			Pitch:    r.Pitch,
			RenderMS: float64(r.Render.Microseconds()) / 1000,
		})
	}
	return m
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}
