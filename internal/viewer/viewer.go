// Package viewer shows a scene in a desktop window and drives the camera
// from the keyboard.
package viewer

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"wireframe-viewer/internal/camera"
	"wireframe-viewer/internal/input"
	"wireframe-viewer/internal/raster"
	"wireframe-viewer/internal/scene"
)

// Options configures the window and controls.
type Options struct {
	Title    string
	TPS      int
	Bindings input.Bindings
	Steps    input.Steps
	Style    raster.Style
	HUD      bool
}

// Run opens a window sized to the camera viewport and blocks until the
// window is closed or a quit key is pressed.
func Run(opts Options, tris []scene.Triangle, params camera.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	keys, err := resolveKeys(opts.Bindings)
	if err != nil {
		return err
	}

	g := &game{
		cam:   camera.New(params),
		tris:  tris,
		keys:  keys,
		steps: opts.Steps,
		style: opts.Style,
		hud:   opts.HUD,
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(params.Width), int(params.Height))
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	log.Printf("[viewer] %d triangles, %d key bindings", len(tris), len(keys))
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
