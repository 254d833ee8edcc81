package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"wireframe-viewer/internal/camera"
	"wireframe-viewer/internal/input"
	"wireframe-viewer/internal/raster"
)

// Config holds the model path and every viewer setting.
// Fields not set in the file keep their zero values until Resolve.
type Config struct {
	Model string `json:"model" yaml:"model"`

	Window   Window            `json:"window" yaml:"window"`
	Camera   Camera            `json:"camera" yaml:"camera"`
	Style    Style             `json:"style" yaml:"style"`
	Keys     map[string]string `json:"keys" yaml:"keys"`
	Snapshot Snapshot          `json:"snapshot" yaml:"snapshot"`
	Serve    Serve             `json:"serve" yaml:"serve"`
}

type Window struct {
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Title  string `json:"title" yaml:"title"`
	TPS    int    `json:"tps" yaml:"tps"`
}

type Camera struct {
	FOV              float64     `json:"fov" yaml:"fov"`
	Near             float64     `json:"near" yaml:"near"`
	Far              float64     `json:"far" yaml:"far"`
	FocalDistance    float64     `json:"focal_distance" yaml:"focal_distance"`
	EyeOffset        *[3]float64 `json:"eye_offset" yaml:"eye_offset"`
	Fit              bool        `json:"fit" yaml:"fit"`
	StrafeFollowsYaw bool        `json:"strafe_follows_yaw" yaml:"strafe_follows_yaw"`
	RotateStep       float64     `json:"rotate_step" yaml:"rotate_step"`
	ZoomStep         float64     `json:"zoom_step" yaml:"zoom_step"`
}

type Style struct {
	Background string  `json:"background" yaml:"background"`
	LineColor  string  `json:"line_color" yaml:"line_color"`
	LineWidth  float64 `json:"line_width" yaml:"line_width"`
}

type Snapshot struct {
	OutputDir   string  `json:"output_dir" yaml:"output_dir"`
	Frames      int     `json:"frames" yaml:"frames"`
	Pitch       float64 `json:"pitch" yaml:"pitch"`
	Format      string  `json:"format" yaml:"format"`
	Supersample int     `json:"supersample" yaml:"supersample"`
	Workers     int     `json:"workers" yaml:"workers"`
}

type Serve struct {
	Addr string `json:"addr" yaml:"addr"`
}

// Load reads a JSON or YAML config file, chosen by extension.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}

	return cfg, nil
}

// FromFile loads path when it is not empty and resolves it against
// flags. Relative paths in the file are taken from the file's directory.
func FromFile(path string, flags Flags) (Config, error) {
	var cfg Config
	baseDir := ""
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
		baseDir = filepath.Dir(path)
	}
	cfg.Resolve(flags, baseDir)
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Model     string
	OutputDir string
	Format    string
	Frames    int
	Workers   int
	Addr      string
	Fit       bool

	// Pitch is set only when the flag was given, so an explicit 0
	// still overrides the file.
	Pitch *float64
}

// Resolve applies flag overrides and fills empty fields with defaults.
// Relative paths in a config file are taken relative to baseDir.
func (c *Config) Resolve(flags Flags, baseDir string) {
	// CLI flags override config file
	if flags.Model != "" {
		c.Model = flags.Model
	} else if c.Model != "" && baseDir != "" && !filepath.IsAbs(c.Model) {
		c.Model = filepath.Join(baseDir, c.Model)
	}
	if flags.OutputDir != "" {
		c.Snapshot.OutputDir = flags.OutputDir
	} else if c.Snapshot.OutputDir != "" && baseDir != "" && !filepath.IsAbs(c.Snapshot.OutputDir) {
		c.Snapshot.OutputDir = filepath.Join(baseDir, c.Snapshot.OutputDir)
	}
	if flags.Format != "" {
		c.Snapshot.Format = flags.Format
	}
	if flags.Frames > 0 {
		c.Snapshot.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Snapshot.Workers = flags.Workers
	}
	if flags.Addr != "" {
		c.Serve.Addr = flags.Addr
	}
	if flags.Fit {
		c.Camera.Fit = true
	}
	if flags.Pitch != nil {
		c.Snapshot.Pitch = *flags.Pitch
	}

	def := camera.DefaultParams()

	// Window
	if c.Window.Width <= 0 {
		c.Window.Width = int(def.Width)
	}
	if c.Window.Height <= 0 {
		c.Window.Height = int(def.Height)
	}
	if c.Window.Title == "" {
		c.Window.Title = "Wireframe viewer"
	}
	if c.Window.TPS <= 0 {
		c.Window.TPS = 60
	}

	// Camera
	if c.Camera.FOV <= 0 {
		c.Camera.FOV = def.FOV
	}
	if c.Camera.Near <= 0 {
		c.Camera.Near = def.Near
	}
	if c.Camera.Far <= 0 {
		c.Camera.Far = def.Far
	}
	if c.Camera.FocalDistance <= 0 {
		c.Camera.FocalDistance = def.FocalDistance
	}
	if c.Camera.EyeOffset == nil {
		c.Camera.EyeOffset = &[3]float64{def.EyeOffset[0], def.EyeOffset[1], def.EyeOffset[2]}
	}
	steps := input.DefaultSteps()
	if c.Camera.RotateStep == 0 {
		c.Camera.RotateStep = steps.RotateDeg
	}
	if c.Camera.ZoomStep == 0 {
		c.Camera.ZoomStep = steps.ZoomStep
	}

	// Style
	if c.Style.Background == "" {
		c.Style.Background = "#000000"
	}
	if c.Style.LineColor == "" {
		c.Style.LineColor = "#00ffff"
	}
	if c.Style.LineWidth <= 0 {
		c.Style.LineWidth = 1
	}

	// Snapshot
	if c.Snapshot.OutputDir == "" {
		c.Snapshot.OutputDir = "frames"
	}
	if c.Snapshot.Frames <= 0 {
		c.Snapshot.Frames = 36
	}
	if c.Snapshot.Format == "" {
		c.Snapshot.Format = "webp"
	}
	c.Snapshot.Format = strings.ToLower(c.Snapshot.Format)
	if c.Snapshot.Supersample <= 0 {
		c.Snapshot.Supersample = 2
	}
	if c.Snapshot.Workers <= 0 {
		c.Snapshot.Workers = runtime.NumCPU()
	}

	if c.Serve.Addr == "" {
		c.Serve.Addr = ":8000"
	}
}

// CameraParams builds camera construction parameters from the resolved
// config. The viewport matches the window size.
func (c *Config) CameraParams() (camera.Params, error) {
	p := camera.Params{
		Width:            float64(c.Window.Width),
		Height:           float64(c.Window.Height),
		FOV:              c.Camera.FOV,
		Near:             c.Camera.Near,
		Far:              c.Camera.Far,
		FocalDistance:    c.Camera.FocalDistance,
		StrafeFollowsYaw: c.Camera.StrafeFollowsYaw,
	}
	if e := c.Camera.EyeOffset; e != nil {
		p.EyeOffset = mgl64.Vec4{e[0], e[1], e[2], 0}
	}
	if err := p.Validate(); err != nil {
		return camera.Params{}, errors.Wrap(err, "config")
	}
	return p, nil
}

func (c *Config) Steps() input.Steps {
	return input.Steps{RotateDeg: c.Camera.RotateStep, ZoomStep: c.Camera.ZoomStep}
}

// Bindings returns the default key table with the config's overrides.
func (c *Config) Bindings() (input.Bindings, error) {
	b, err := input.DefaultBindings().Override(c.Keys)
	if err != nil {
		return nil, errors.Wrap(err, "config: keys")
	}
	return b, nil
}

func (c *Config) RasterStyle() (raster.Style, error) {
	bg, err := raster.ParseColor(c.Style.Background)
	if err != nil {
		return raster.Style{}, errors.Wrap(err, "config: style.background")
	}
	line, err := raster.ParseColor(c.Style.LineColor)
	if err != nil {
		return raster.Style{}, errors.Wrap(err, "config: style.line_color")
	}
	return raster.Style{Background: bg, Line: line, LineWidth: c.Style.LineWidth}, nil
}
