package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Defaults applied by Resolve.
const (
	DefaultScene     = "towers"
	DefaultOutputDir = "renders"
	DefaultFormat    = "webp"
	DefaultShader    = "lambert"
	DefaultFilter    = "catmullrom"
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultAmbient   = 0.2
	DefaultFOV       = 60.0
	DefaultScale     = 1.0
)

// SceneOBJ selects the OBJ loader instead of a built-in scene.
const SceneOBJ = "obj"

// Config holds the scene choice, render settings and output settings.
type Config struct {
	// Scene
	Scene   string   `json:"scene"`
	OBJPath string   `json:"obj_path"`
	Ambient *float64 `json:"ambient"`
	FOV     float64  `json:"fov"`

	// Render settings
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Shader    string `json:"shader"`
	Attenuate bool   `json:"attenuate"`
	Workers   int    `json:"workers"`

	// Input
	Keys string `json:"keys"`

	// Output
	OutputDir string  `json:"output_dir"`
	Format    string  `json:"format"`
	Scale     float64 `json:"scale"`
	Filter    string  `json:"filter"`

	// BaseDir is the directory of the loaded file. Relative paths are
	// resolved against it.
	BaseDir string `json:"-"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.BaseDir = filepath.Dir(path)

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values (and a negative Ambient) mean "not set".
type Flags struct {
	Scene     string
	OBJPath   string
	Ambient   float64
	FOV       float64
	Width     int
	Height    int
	Shader    string
	Attenuate bool
	Workers   int
	Keys      string
	OutputDir string
	Format    string
	Scale     float64
	Filter    string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file. Paths given on the command line are
	// relative to the working directory, not to the config file.
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.OBJPath != "" {
		c.OBJPath = flags.OBJPath
		if flags.Scene == "" {
			c.Scene = SceneOBJ
		}
	} else {
		c.OBJPath = c.resolvePath(c.OBJPath)
	}
	if flags.Ambient >= 0 {
		a := flags.Ambient
		c.Ambient = &a
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Shader != "" {
		c.Shader = flags.Shader
	}
	if flags.Attenuate {
		c.Attenuate = true
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Keys != "" {
		c.Keys = flags.Keys
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	} else {
		c.OutputDir = c.resolvePath(c.OutputDir)
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Filter != "" {
		c.Filter = flags.Filter
	}

	// Defaults
	if c.Scene == "" {
		if c.OBJPath != "" {
			c.Scene = SceneOBJ
		} else {
			c.Scene = DefaultScene
		}
	}
	if c.Ambient == nil {
		a := DefaultAmbient
		c.Ambient = &a
	}
	if c.FOV <= 0 {
		c.FOV = DefaultFOV
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Shader == "" {
		c.Shader = DefaultShader
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Scale <= 0 {
		c.Scale = DefaultScale
	}
	if c.Filter == "" {
		c.Filter = DefaultFilter
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	if c.Scene == SceneOBJ && c.OBJPath == "" {
		return fmt.Errorf("config: scene %q needs obj_path", SceneOBJ)
	}
	if c.Ambient != nil && (*c.Ambient < 0 || *c.Ambient > 1) {
		return fmt.Errorf("config: ambient %g outside [0,1]", *c.Ambient)
	}
	if c.FOV >= 180 {
		return fmt.Errorf("config: fov %g must be below 180 degrees", c.FOV)
	}
	return nil
}

func (c *Config) resolvePath(p string) string {
	if p == "" || c.BaseDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}
