package camera

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NearLimit is the smallest clip-space z accepted as visible.
// This is a coarse near-plane stand-in, not a frustum test: points
// off to the sides still pass and land outside the viewport.
const NearLimit = 1.0

// PerspectiveDivide maps a homogeneous clip coordinate to 3D clip space.
func PerspectiveDivide(q mgl64.Vec4) mgl64.Vec3 {
	return mgl64.Vec3{q[0] / q[3], q[1] / q[3], q[2] / q[3]}
}

// Visible reports whether a clip-space point may be mapped to the screen.
// NaN depth is never visible.
func Visible(clip mgl64.Vec3) bool {
	return clip[2] >= NearLimit
}

// ViewportTransform maps a visible clip-space point to integer screen
// coordinates. Results are truncated toward zero and saturate at the
// int32 range. ok is false if the mapping is not finite.
func ViewportTransform(clip mgl64.Vec3, width, height, focal float64) (pt image.Point, ok bool) {
	x := clip[0]*width/(focal*clip[2]) + width/2
	y := clip[1]*height/(focal*clip[2]) + height/2
	if !finite(x) || !finite(y) {
		return image.Point{}, false
	}
	return image.Point{X: saturate(x), Y: saturate(y)}, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func saturate(v float64) int {
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}
