package camera

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"wireframe-viewer/internal/scene"
)

// MinFocalDistance is the lower clamp applied by Zoom. The focal distance
// divides the viewport transform, so it must stay positive.
const MinFocalDistance = 1e-3

// ErrNotVisible is returned by Project for vertices that fail the
// visibility test. Callers skip the vertex for the current frame.
var ErrNotVisible = errors.New("camera: vertex is not visible")

var (
	axisForward = mgl64.Vec4{0, 0, 1, 0}
	axisRight   = mgl64.Vec4{1, 0, 0, 0}
)

// Camera owns the view pose and the projection pipeline.
//
// Mutators change the pose in place; Project only reads it. A Camera is
// not safe for concurrent mutation, but concurrent Project calls on an
// unchanging Camera are fine.
type Camera struct {
	params Params

	width, height float64
	focalDistance float64
	eyeOffset     mgl64.Vec4

	yaw      float64 // degrees, accumulated
	yawRot   mgl64.Mat4
	pitch    float64 // degrees, accumulated
	pitchRot mgl64.Mat4

	// strafeBasis is refreshed by forward/backward moves only.
	strafeBasis mgl64.Mat4

	projection mgl64.Mat4
}

// New builds a camera with zero yaw and pitch. p is not validated here;
// see Params.Validate.
func New(p Params) *Camera {
	c := &Camera{
		params:        p,
		width:         p.Width,
		height:        p.Height,
		focalDistance: p.FocalDistance,
		eyeOffset:     p.EyeOffset,
		projection:    mgl64.Perspective(mgl64.DegToRad(p.FOV), p.Width/p.Height, p.Near, p.Far),
	}
	c.yawRot = yawMatrix(-c.yaw)
	c.pitchRot = pitchMatrix(c.pitch)
	c.strafeBasis = yawMatrix(c.yaw)
	return c
}

func yawMatrix(deg float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DY(mgl64.DegToRad(deg))
}

func pitchMatrix(deg float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(mgl64.DegToRad(deg))
}

// RotateHorizontal adds delta degrees of yaw. The view rotates by the
// negated yaw (inverse-camera convention).
func (c *Camera) RotateHorizontal(delta float64) {
	c.yaw += delta
	c.yawRot = yawMatrix(-c.yaw)
}

// RotateVertical adds delta degrees of pitch.
func (c *Camera) RotateVertical(delta float64) {
	c.pitch += delta
	c.pitchRot = pitchMatrix(c.pitch)
}

// TranslateForward moves one unit along the facing direction.
// It refreshes the translation basis from the current yaw.
func (c *Camera) TranslateForward() {
	c.strafeBasis = yawMatrix(c.yaw)
	c.eyeOffset = c.eyeOffset.Sub(c.strafeBasis.Mul4x1(axisForward))
}

// TranslateBackward is the inverse of TranslateForward.
func (c *Camera) TranslateBackward() {
	c.strafeBasis = yawMatrix(c.yaw)
	c.eyeOffset = c.eyeOffset.Add(c.strafeBasis.Mul4x1(axisForward))
}

// TranslateLeft strafes one unit. Unless Params.StrafeFollowsYaw is set,
// the direction comes from the yaw at the last forward/backward move.
func (c *Camera) TranslateLeft() {
	c.refreshStrafe()
	c.eyeOffset = c.eyeOffset.Sub(c.strafeBasis.Mul4x1(axisRight))
}

func (c *Camera) TranslateRight() {
	c.refreshStrafe()
	c.eyeOffset = c.eyeOffset.Add(c.strafeBasis.Mul4x1(axisRight))
}

func (c *Camera) refreshStrafe() {
	if c.params.StrafeFollowsYaw {
		c.strafeBasis = yawMatrix(c.yaw)
	}
}

// Zoom changes the focal distance by delta, clamped to MinFocalDistance.
func (c *Camera) Zoom(delta float64) {
	c.focalDistance += delta
	if !(c.focalDistance >= MinFocalDistance) {
		c.focalDistance = MinFocalDistance
	}
}

// ResetZoom sets the focal distance back to exactly 1.
func (c *Camera) ResetZoom() {
	c.focalDistance = 1
}

// ClipSpace runs v through the view and projection transforms and the
// perspective divide, without the visibility test.
func (c *Camera) ClipSpace(v scene.Vertex) mgl64.Vec3 {
	p := mgl64.Vec4{v.X, v.Y, v.Z, 1}

	rotated := c.yawRot.Mul4x1(p)
	eye := c.yawRot.Mul4x1(c.eyeOffset)
	view := c.pitchRot.Mul4x1(rotated.Add(eye))

	return PerspectiveDivide(c.projection.Mul4x1(view))
}

// Project maps v to integer screen coordinates. It returns ErrNotVisible
// when the clip-space depth is below NearLimit or the mapping is not finite.
func (c *Camera) Project(v scene.Vertex) (image.Point, error) {
	clip := c.ClipSpace(v)
	if !Visible(clip) {
		return image.Point{}, ErrNotVisible
	}
	pt, ok := ViewportTransform(clip, c.width, c.height, c.focalDistance)
	if !ok {
		return image.Point{}, ErrNotVisible
	}
	return pt, nil
}

func (c *Camera) Yaw() float64 { return c.yaw }
func (c *Camera) Pitch() float64 { return c.pitch }
func (c *Camera) FocalDistance() float64 { return c.focalDistance }
func (c *Camera) EyeOffset() mgl64.Vec4 { return c.eyeOffset }
func (c *Camera) Params() Params { return c.params }
func (c *Camera) Viewport() (w, h float64) { return c.width, c.height }
