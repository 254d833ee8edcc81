package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"wireframe-viewer/internal/camera"
	"wireframe-viewer/internal/config"
	"wireframe-viewer/internal/mathutil"
	"wireframe-viewer/internal/meshio"
	"wireframe-viewer/internal/snapshot"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .json or .yaml config file")
	model := flag.String("model", "", "Path to an .obj, .gltf or .glb model (default: built-in pyramid)")
	frames := flag.Int("frames", 0, "Number of frames around the model (default: 36)")
	pitch := flag.Float64("pitch", 0, "Camera pitch in degrees for every frame")
	format := flag.String("format", "", "Output format: webp, tga or png (default: webp)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	fit := flag.Bool("fit", false, "Place the camera so the whole model is in view")
	quiet := flag.Bool("quiet", false, "Do not draw a progress bar")

	flag.Parse()

	var pitchFlag *float64
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "pitch" {
			pitchFlag = pitch
		}
	})

	// Load config; CLI flags override config file
	cfg, err := config.FromFile(*configFile, config.Flags{
		Model:     *model,
		OutputDir: *outputDir,
		Format:    *format,
		Frames:    *frames,
		Workers:   *workers,
		Fit:       *fit,
		Pitch:     pitchFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if !snapshot.ValidFormat(cfg.Snapshot.Format) {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want one of %v)\n", cfg.Snapshot.Format, snapshot.Formats)
		os.Exit(1)
	}

	sc, err := meshio.ReadScene(cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}
	tris := sc.Triangles()

	params, err := cfg.CameraParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Camera.Fit {
		params = camera.Fit(params, mathutil.BoundsOf(tris))
	}
	style, err := cfg.RasterStyle()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	plan := snapshot.Plan(snapshot.Orbit{Frames: cfg.Snapshot.Frames, Pitch: cfg.Snapshot.Pitch})
	runID := snapshot.NewRunID()

	fmt.Printf("Wireframe snapshots → %s\n", cfg.Snapshot.Format)
	fmt.Printf("Triangles: %d, Frames: %d, Workers: %d\n", len(tris), len(plan), cfg.Snapshot.Workers)
	fmt.Printf("Output: %s\n", cfg.Snapshot.OutputDir)
	fmt.Printf("Run: %s\n", runID)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	results := snapshot.Run(ctx, snapshot.Config{
		OutputDir:   cfg.Snapshot.OutputDir,
		Format:      cfg.Snapshot.Format,
		Supersample: cfg.Snapshot.Supersample,
		Workers:     cfg.Snapshot.Workers,
		Params:      params,
		Style:       style,
		Progress:    !*quiet,
	}, tris, plan)

	elapsed := time.Since(start)
	fmt.Println()
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []snapshot.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(plan))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Index, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.Snapshot.OutputDir, "manifest.json")
	os.MkdirAll(cfg.Snapshot.OutputDir, 0755)
	if err := snapshot.WriteManifest(manifestPath, runID, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
