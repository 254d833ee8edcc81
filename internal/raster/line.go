package raster

import (
	"image"
	"math"
)

// Outcodes for Cohen–Sutherland clipping.
const (
	inside = 0
	left   = 1 << iota
	right
	bottom
	top
)

// DrawLine draws a Bresenham line from a to b in the ink color, stamping
// a Pen×Pen square at every step. The segment is clipped to the buffer
// (grown by the pen radius) first, so endpoints far off screen cost
// nothing extra.
func (fb *FrameBuffer) DrawLine(a, b image.Point) {
	lo, hi := fb.penSpan()
	x0, y0, x1, y1, ok := clipLine(
		float64(a.X), float64(a.Y), float64(b.X), float64(b.Y),
		float64(-hi), float64(-hi), float64(fb.Width-1-lo), float64(fb.Height-1-lo),
	)
	if !ok {
		return
	}
	bresenham(fb, int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
}

// penSpan returns the pen's square as offsets lo..hi around a pixel.
func (fb *FrameBuffer) penSpan() (lo, hi int) {
	w := fb.Pen
	if w < 1 {
		w = 1
	}
	lo = -(w - 1) / 2
	return lo, lo + w - 1
}

func (fb *FrameBuffer) stamp(x, y int) {
	lo, hi := fb.penSpan()
	if lo == hi {
		fb.SetPixel(x, y)
		return
	}
	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			fb.SetPixel(x+dx, y+dy)
		}
	}
}

func bresenham(fb *FrameBuffer, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		fb.stamp(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func outcode(x, y, xmin, ymin, xmax, ymax float64) int {
	code := inside
	if x < xmin {
		code |= left
	} else if x > xmax {
		code |= right
	}
	if y < ymin {
		code |= bottom
	} else if y > ymax {
		code |= top
	}
	return code
}

// clipLine clips the segment to the rectangle. ok is false when nothing
// of the segment lies inside.
func clipLine(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	if xmax < xmin || ymax < ymin {
		return 0, 0, 0, 0, false
	}
	c0 := outcode(x0, y0, xmin, ymin, xmax, ymax)
	c1 := outcode(x1, y1, xmin, ymin, xmax, ymax)
	for {
		switch {
		case c0|c1 == 0:
			return x0, y0, x1, y1, true
		case c0&c1 != 0:
			return 0, 0, 0, 0, false
		}

		out := c0
		if out == inside {
			out = c1
		}
		var x, y float64
		switch {
		case out&top != 0:
			x = x0 + (x1-x0)*(ymax-y0)/(y1-y0)
			y = ymax
		case out&bottom != 0:
			x = x0 + (x1-x0)*(ymin-y0)/(y1-y0)
			y = ymin
		case out&right != 0:
			y = y0 + (y1-y0)*(xmax-x0)/(x1-x0)
			x = xmax
		default:
			y = y0 + (y1-y0)*(xmin-x0)/(x1-x0)
			x = xmin
		}

		if out == c0 {
			x0, y0 = x, y
			c0 = outcode(x0, y0, xmin, ymin, xmax, ymax)
		} else {
			x1, y1 = x, y
			c1 = outcode(x1, y1, xmin, ymin, xmax, ymax)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
