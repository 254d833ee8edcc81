// Package postprocess turns supersampled wireframe frames into output-size
// images.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks a frame rendered at a multiple of the output size to
// w×h. Filtering runs on premultiplied pixels so that partly covered
// line pixels keep the line's hue over a transparent background.
// Frames already no larger than w×h are returned as is.
func Downsample(frame *image.NRGBA, w, h int) *image.NRGBA {
	if b := frame.Bounds(); b.Dx() <= w && b.Dy() <= h {
		return frame
	}

	// image.RGBA is premultiplied; draw converts in both directions.
	big := image.NewRGBA(frame.Bounds())
	draw.Draw(big, big.Bounds(), frame, frame.Bounds().Min, draw.Src)

	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(small, small.Bounds(), big, big.Bounds(), draw.Src, nil)

	out := image.NewNRGBA(small.Bounds())
	draw.Draw(out, out.Bounds(), small, image.Point{}, draw.Src)
	return out
}
