package raster

import (
	"image"
	"image/color"
)

// FrameBuffer holds the rendering target as a flat RGBA slice.
// Lines drawn into it use the current Ink color and are Pen pixels wide.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
	Ink    color.NRGBA
	Pen    int // line width in pixels, values below 1 draw 1px
}

// NewFrameBuffer allocates a transparent buffer with white ink.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
		Ink:    color.NRGBA{255, 255, 255, 255},
		Pen:    1,
	}
}

// Clear fills every pixel with c.
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	for i := 0; i+3 < len(fb.Color); i += 4 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = c.A
	}
}

// SetPixel writes the ink color at (x, y). Out of range writes are dropped.
func (fb *FrameBuffer) SetPixel(x, y int) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i] = fb.Ink.R
	fb.Color[i+1] = fb.Ink.G
	fb.Color[i+2] = fb.Ink.B
	fb.Color[i+3] = fb.Ink.A
}

func (fb *FrameBuffer) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return color.NRGBA{}
	}
	i := (y*fb.Width + x) * 4
	return color.NRGBA{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// Image copies the buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
