package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"wireframe-viewer/internal/input"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{}, "")

	p, err := cfg.CameraParams()
	if err != nil {
		t.Fatal(err)
	}
	if p.Width != 800 || p.Height != 600 || p.FOV != 80 || p.Near != 0.1 || p.Far != 100 {
		t.Errorf("default params %+v", p)
	}
	if p.FocalDistance != 1 {
		t.Errorf("FocalDistance=%v; expected 1", p.FocalDistance)
	}
	if want := (mgl64.Vec4{0, 0, 5, 0}); p.EyeOffset != want {
		t.Errorf("EyeOffset=%v; expected %v", p.EyeOffset, want)
	}
	if cfg.Snapshot.Format != "webp" || cfg.Snapshot.Frames != 36 || cfg.Snapshot.Workers <= 0 {
		t.Errorf("snapshot defaults %+v", cfg.Snapshot)
	}
	if cfg.Serve.Addr != ":8000" {
		t.Errorf("Serve.Addr=%q; expected :8000", cfg.Serve.Addr)
	}

	style, err := cfg.RasterStyle()
	if err != nil {
		t.Fatal(err)
	}
	if style.Line.G != 255 || style.Line.B != 255 || style.Line.R != 0 {
		t.Errorf("default line color %v; expected cyan", style.Line)
	}
	if s := cfg.Steps(); s != input.DefaultSteps() {
		t.Errorf("Steps()=%+v; expected %+v", s, input.DefaultSteps())
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "viewer.json", `{
		"model": "models/cube.obj",
		"window": {"width": 1024, "height": 768},
		"camera": {"fov": 60, "eye_offset": [0, 0, 0], "strafe_follows_yaw": true},
		"keys": {"Space": "reset_zoom"},
		"snapshot": {"format": "PNG", "output_dir": "out"}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	base := filepath.Dir(path)
	cfg.Resolve(Flags{}, base)

	if want := filepath.Join(base, "models", "cube.obj"); cfg.Model != want {
		t.Errorf("Model=%q; expected %q", cfg.Model, want)
	}
	if want := filepath.Join(base, "out"); cfg.Snapshot.OutputDir != want {
		t.Errorf("OutputDir=%q; expected %q", cfg.Snapshot.OutputDir, want)
	}
	if cfg.Snapshot.Format != "png" {
		t.Errorf("Format=%q; expected png", cfg.Snapshot.Format)
	}

	p, err := cfg.CameraParams()
	if err != nil {
		t.Fatal(err)
	}
	if p.Width != 1024 || p.Height != 768 || p.FOV != 60 || !p.StrafeFollowsYaw {
		t.Errorf("params %+v", p)
	}
	if p.EyeOffset != (mgl64.Vec4{}) {
		t.Errorf("EyeOffset=%v; expected zero", p.EyeOffset)
	}

	b, err := cfg.Bindings()
	if err != nil {
		t.Fatal(err)
	}
	if b.Lookup("Space") != input.ResetZoom {
		t.Errorf("Space bound to %v; expected reset_zoom", b.Lookup("Space"))
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "viewer.yaml", `
model: /abs/pyramid.obj
camera:
  focal_distance: 2.5
  rotate_step: 15
style:
  line_color: "#ff0000"
snapshot:
  frames: 12
  supersample: 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{Frames: 4, Format: "tga"}, filepath.Dir(path))

	if cfg.Model != "/abs/pyramid.obj" {
		t.Errorf("Model=%q; expected /abs/pyramid.obj", cfg.Model)
	}
	if cfg.Snapshot.Frames != 4 {
		t.Errorf("Frames=%d; flag should override to 4", cfg.Snapshot.Frames)
	}
	if cfg.Snapshot.Supersample != 3 || cfg.Snapshot.Format != "tga" {
		t.Errorf("snapshot %+v", cfg.Snapshot)
	}
	if cfg.Steps().RotateDeg != 15 {
		t.Errorf("RotateDeg=%v; expected 15", cfg.Steps().RotateDeg)
	}

	p, err := cfg.CameraParams()
	if err != nil {
		t.Fatal(err)
	}
	if p.FocalDistance != 2.5 {
		t.Errorf("FocalDistance=%v; expected 2.5", p.FocalDistance)
	}

	style, err := cfg.RasterStyle()
	if err != nil {
		t.Fatal(err)
	}
	if style.Line.R != 255 || style.Line.G != 0 {
		t.Errorf("line color %v; expected red", style.Line)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load accepted a missing file")
	}
	if _, err := Load(writeFile(t, "bad.json", "{")); err == nil {
		t.Error("Load accepted broken JSON")
	}
	if _, err := Load(writeFile(t, "bad.yml", "camera: [")); err == nil {
		t.Error("Load accepted broken YAML")
	}
}

func TestInvalidSettings(t *testing.T) {
	var cfg Config
	cfg.Camera.Far = 0.01
	cfg.Keys = map[string]string{"W": "teleport"}
	cfg.Style.LineColor = "green"
	cfg.Resolve(Flags{}, "")

	if _, err := cfg.CameraParams(); err == nil {
		t.Error("CameraParams accepted far < near")
	}
	if _, err := cfg.Bindings(); err == nil {
		t.Error("Bindings accepted an unknown action")
	}
	if _, err := cfg.RasterStyle(); err == nil {
		t.Error("RasterStyle accepted a color name")
	}
}

func TestPitchFlag(t *testing.T) {
	path := writeFile(t, "viewer.yaml", "snapshot:\n  pitch: -20\n")

	zero := 0.0
	tests := []struct {
		name  string
		pitch *float64
		out   float64
	}{
		{"unset keeps file value", nil, -20},
		{"explicit zero overrides", &zero, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := FromFile(path, Flags{Pitch: test.pitch})
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Snapshot.Pitch != test.out {
				t.Errorf("Snapshot.Pitch=%v; expected %v", cfg.Snapshot.Pitch, test.out)
			}
		})
	}
}

func TestFromFile(t *testing.T) {
	cfg, err := FromFile("", Flags{Model: "cube.obj"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "cube.obj" || cfg.Window.Width != 800 {
		t.Errorf("FromFile(\"\") gave model %q, width %d", cfg.Model, cfg.Window.Width)
	}

	path := writeFile(t, "viewer.json", `{"model": "m.obj", "camera": {"fov": 45, "fit": true}}`)
	cfg, err = FromFile(path, Flags{})
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(filepath.Dir(path), "m.obj"); cfg.Model != want {
		t.Errorf("Model=%q; expected %q", cfg.Model, want)
	}
	if cfg.Camera.FOV != 45 || !cfg.Camera.Fit {
		t.Errorf("camera %+v; expected fov 45 with fit", cfg.Camera)
	}

	if _, err := FromFile(filepath.Join(t.TempDir(), "none.yaml"), Flags{}); err == nil {
		t.Error("FromFile accepted a missing file")
	}
}
