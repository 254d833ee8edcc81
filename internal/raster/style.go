package raster

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Style holds the colors of a wireframe frame.
type Style struct {
	Background color.NRGBA
	Line       color.NRGBA
	LineWidth  float64
}

// DefaultStyle is cyan lines on black.
func DefaultStyle() Style {
	return Style{
		Background: color.NRGBA{0, 0, 0, 255},
		Line:       color.NRGBA{0, 255, 255, 255},
		LineWidth:  1,
	}
}

// PenWidth is LineWidth rounded to whole pixels, at least 1.
func (s Style) PenWidth() int {
	w := int(math.Round(s.LineWidth))
	if w < 1 {
		return 1
	}
	return w
}

// Scaled returns a copy with the line width multiplied by f, for
// supersampled renders.
func (s Style) Scaled(f int) Style {
	s.LineWidth *= float64(f)
	return s
}

// ParseColor parses a "#rrggbb" hex string into an opaque color.
func ParseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "raster: color %q", hex)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, 255}, nil
}
