package raster

import (
	"image"

	"wireframe-viewer/internal/camera"
	"wireframe-viewer/internal/scene"
)

// LineSink receives the 2D segments of a wireframe frame.
type LineSink interface {
	DrawLine(a, b image.Point)
}

// Stats counts what happened while drawing one frame.
type Stats struct {
	Triangles      int
	Lines          int // segments handed to the sink
	SkippedLines   int // edges with at least one hidden endpoint
	HiddenVertices int
}

var triangleEdges = [3][2]int{{0, 1}, {1, 2}, {2, 0}}

// DrawScene projects every triangle with cam and sends each edge whose
// two endpoints are visible to sink. Hidden vertices only drop the
// edges that touch them.
func DrawScene(cam *camera.Camera, tris []scene.Triangle, sink LineSink) Stats {
	var st Stats
	for _, tri := range tris {
		st.Triangles++

		var pts [3]image.Point
		var visible [3]bool
		for i, v := range tri.Vertices() {
			pt, err := cam.Project(v)
			if err != nil {
				st.HiddenVertices++
				continue
			}
			pts[i] = pt
			visible[i] = true
		}

		for _, e := range triangleEdges {
			if !visible[e[0]] || !visible[e[1]] {
				st.SkippedLines++
				continue
			}
			sink.DrawLine(pts[e[0]], pts[e[1]])
			st.Lines++
		}
	}
	return st
}

// Render draws tris into a new framebuffer sized to the camera viewport.
// s.LineWidth is rounded to whole pixels.
func Render(cam *camera.Camera, tris []scene.Triangle, s Style) (*FrameBuffer, Stats) {
	w, h := cam.Viewport()
	fb := NewFrameBuffer(int(w), int(h))
	fb.Clear(s.Background)
	fb.Ink = s.Line
	fb.Pen = s.PenWidth()
	st := DrawScene(cam, tris, fb)
	return fb, st
}
