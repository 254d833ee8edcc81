package main

import (
	"flag"
	"fmt"
	"os"

	"wireframe-viewer/internal/camera"
	"wireframe-viewer/internal/config"
	"wireframe-viewer/internal/mathutil"
	"wireframe-viewer/internal/meshio"
	"wireframe-viewer/internal/web"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .json or .yaml config file")
	model := flag.String("model", "", "Path to an .obj, .gltf or .glb model (default: built-in pyramid)")
	addr := flag.String("addr", "", "Listen address (default: :8000)")
	fit := flag.Bool("fit", false, "Place the camera so the whole model is in view")

	flag.Parse()

	// Load config; CLI flags override config file
	cfg, err := config.FromFile(*configFile, config.Flags{Model: *model, Addr: *addr, Fit: *fit})
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
	style, err := cfg.RasterStyle()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Triangles: %d, Viewport: %gx%g\n", len(tris), params.Width, params.Height)
	fmt.Println("Routes: /render.png /render.webp /render.tga /scene")

	if err := web.Serve(cfg.Serve.Addr, web.NewRouter(tris, params, style)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
