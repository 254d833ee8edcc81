package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"wireframe-viewer/internal/mathutil"
)

// Fit returns p with EyeOffset chosen so that b sits centred in front of
// the camera, far enough away for its bounding sphere to fill the
// vertical field of view with a small margin.
func Fit(p Params, b mathutil.Bounds) Params {
	if b.Empty() {
		return p
	}
	c := b.Center()
	r := b.Radius()
	dist := r/math.Tan(mgl64.DegToRad(p.FOV)/2)*1.1 + r

	p.EyeOffset = mgl64.Vec4{-c[0], -c[1], dist - c[2], 0}
	return p
}
