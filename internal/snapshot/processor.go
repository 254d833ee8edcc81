package snapshot

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"

	"wireframe-viewer/internal/camera"
	"wireframe-viewer/internal/postprocess"
	"wireframe-viewer/internal/raster"
	"wireframe-viewer/internal/scene"
)

// Config holds all shared settings for a snapshot run.
type Config struct {
	OutputDir   string
	Format      string
	Supersample int
	Workers     int
	Params      camera.Params
	Style       raster.Style
	Progress    bool // draw a progress bar on stdout
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int
	Yaw     float64
	Pitch   float64
	Path    string
	Success bool
	Error   string
	Stats   raster.Stats
}

// Run renders all frames using a worker pool. Each worker builds its own
// camera; tris is shared and only read. Frames not started before ctx is
// done are reported as failed.
func Run(ctx context.Context, cfg Config, tris []scene.Triangle, frames []Frame) []Result {
	results := make([]Result, len(frames))
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(int64(len(frames)), "rendering")
	} else {
		bar = progressbar.DefaultSilent(int64(len(frames)))
	}

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				if err := ctx.Err(); err != nil {
					results[idx] = failed(frames[idx], err.Error())
				} else {
					results[idx] = processFrame(cfg, tris, frames[idx])
				}
				bar.Add(1)
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	bar.Finish()

	return results
}

// RenderFrame draws tris from the pose in f at the configured size.
func RenderFrame(cfg Config, tris []scene.Triangle, f Frame) (*image.NRGBA, raster.Stats) {
	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}

	cam := camera.New(cfg.Params.Scaled(ss))
	cam.RotateHorizontal(f.Yaw)
	cam.RotateVertical(f.Pitch)

	fb, st := raster.Render(cam, tris, cfg.Style.Scaled(ss))
	img := fb.Image()

	// Post-processing: supersample downsample
	if ss > 1 {
		img = postprocess.Downsample(img, int(cfg.Params.Width), int(cfg.Params.Height))
	}
	return img, st
}

// FrameName is the file name of frame index in format.
func FrameName(index int, format string) string {
	return fmt.Sprintf("frame_%04d.%s", index, format)
}

func failed(f Frame, msg string) Result {
	return Result{Index: f.Index, Yaw: f.Yaw, Pitch: f.Pitch, Error: msg}
}

func processFrame(cfg Config, tris []scene.Triangle, f Frame) Result {
	if !ValidFormat(cfg.Format) {
		return failed(f, fmt.Sprintf("unknown format %q", cfg.Format))
	}

	img, st := RenderFrame(cfg, tris, f)

	outPath := filepath.Join(cfg.OutputDir, FrameName(f.Index, cfg.Format))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return failed(f, err.Error())
	}

	file, err := os.Create(outPath)
	if err != nil {
		return failed(f, err.Error())
	}
	defer file.Close()

	if err := Encode(file, img, cfg.Format); err != nil {
		return failed(f, err.Error())
	}

	return Result{
		Index:   f.Index,
		Yaw:     f.Yaw,
		Pitch:   f.Pitch,
		Path:    outPath,
		Success: true,
		Stats:   st,
	}
}
