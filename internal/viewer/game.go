package viewer

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wireframe-viewer/internal/camera"
	"wireframe-viewer/internal/input"
	"wireframe-viewer/internal/raster"
	"wireframe-viewer/internal/scene"
)

type game struct {
	cam   *camera.Camera
	tris  []scene.Triangle
	keys  []keyAction
	steps input.Steps
	style raster.Style

	stats raster.Stats
	hud   bool
}

func (g *game) Update() error {
	zoom := g.cam.FocalDistance()
	for _, ka := range g.keys {
		if !ka.fired() {
			continue
		}
		if input.Apply(g.cam, ka.action, g.steps) {
			return ebiten.Termination
		}
	}
	if z := g.cam.FocalDistance(); z != zoom {
		log.Printf("[viewer] zoom %.3f", z)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.style.Background)
	sink := &screenSink{dst: screen, width: float32(g.style.LineWidth), style: g.style}
	g.stats = raster.DrawScene(g.cam, g.tris, sink)

	if g.hud {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\ntriangles %d  lines %d  hidden %d",
			g.cam.State(), g.stats.Triangles, g.stats.Lines, g.stats.HiddenVertices))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.cam.Viewport()
	return int(w), int(h)
}

// screenSink strokes wireframe segments onto an ebiten image.
type screenSink struct {
	dst   *ebiten.Image
	width float32
	style raster.Style
}

func (s *screenSink) DrawLine(a, b image.Point) {
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), s.width, s.style.Line, false)
}
