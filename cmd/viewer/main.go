package main

import (
	"flag"
	"fmt"
	"os"

	"wireframe-viewer/internal/camera"
	"wireframe-viewer/internal/config"
	"wireframe-viewer/internal/mathutil"
	"wireframe-viewer/internal/meshio"
	"wireframe-viewer/internal/viewer"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .json or .yaml config file")
	model := flag.String("model", "", "Path to an .obj, .gltf or .glb model (default: built-in pyramid)")
	fit := flag.Bool("fit", false, "Place the camera so the whole model is in view")
	noHUD := flag.Bool("nohud", false, "Hide the camera readout")

	flag.Parse()
	if *model == "" && flag.NArg() > 0 {
		*model = flag.Arg(0)
	}

	// Load config; CLI flags override config file
	cfg, err := config.FromFile(*configFile, config.Flags{Model: *model, Fit: *fit})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
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

	bindings, err := cfg.Bindings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	style, err := cfg.RasterStyle()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Model: %s (%d triangles)\n", modelName(cfg.Model), len(tris))
	for _, b := range bindings {
		fmt.Printf("  %-10s %s\n", b.Key, b.Action)
	}

	err = viewer.Run(viewer.Options{
		Title:    cfg.Window.Title,
		TPS:      cfg.Window.TPS,
		Bindings: bindings,
		Steps:    cfg.Steps(),
		Style:    style,
		HUD:      !*noHUD,
	}, tris, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func modelName(path string) string {
	if path == "" {
		return "pyramid"
	}
	return path
}
