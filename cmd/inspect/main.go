package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/davecgh/go-spew/spew"

	"wireframe-viewer/internal/camera"
	"wireframe-viewer/internal/config"
	"wireframe-viewer/internal/mathutil"
	"wireframe-viewer/internal/meshio"
	"wireframe-viewer/internal/raster"
)

func main() {
	configFile := flag.String("config", "", "Path to a .json or .yaml config file")
	model := flag.String("model", "", "Path to an .obj, .gltf or .glb model (default: built-in pyramid)")
	yaw := flag.Float64("yaw", 0, "Camera yaw in degrees")
	pitch := flag.Float64("pitch", 0, "Camera pitch in degrees")
	fit := flag.Bool("fit", false, "Place the camera so the whole model is in view")
	limit := flag.Int("n", 12, "Number of triangles to list (0 = all)")
	flag.Parse()
	if *model == "" && flag.NArg() > 0 {
		*model = flag.Arg(0)
	}

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
	b := mathutil.BoundsOf(tris)

	fmt.Printf("Triangles: %d\n", len(tris))
	if !b.Empty() {
		size := b.Size()
		fmt.Printf("  BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n",
			b.Min[0], b.Max[0], b.Min[1], b.Max[1], b.Min[2], b.Max[2])
		fmt.Printf("  Size: %.3f x %.3f x %.3f, radius %.3f\n", size[0], size[1], size[2], b.Radius())
	}

	params, err := cfg.CameraParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Camera.Fit {
		params = camera.Fit(params, b)
	}
	cam := camera.New(params)
	cam.RotateHorizontal(*yaw)
	cam.RotateVertical(*pitch)

	fmt.Println("\nCamera:")
	spew.Dump(cam.State())

	n := len(tris)
	if *limit > 0 && *limit < n {
		n = *limit
	}
	fmt.Printf("\nProjections (first %d):\n", n)
	for i, tri := range tris[:n] {
		fmt.Printf("  Tri[%d]\n", i)
		for _, v := range tri.Vertices() {
			clip := cam.ClipSpace(v)
			pt, err := cam.Project(v)
			if err != nil {
				fmt.Printf("    (%.3f, %.3f, %.3f) clip z=%.4f  hidden\n", v.X, v.Y, v.Z, clip[2])
				continue
			}
			fmt.Printf("    (%.3f, %.3f, %.3f) clip z=%.4f  → (%d, %d)\n", v.X, v.Y, v.Z, clip[2], pt.X, pt.Y)
		}
	}

	st := raster.DrawScene(cam, tris, discard{})
	fmt.Println("\nFrame:")
	spew.Dump(st)
}

type discard struct{}

func (discard) DrawLine(a, b image.Point) {}
