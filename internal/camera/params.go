package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Params holds everything a Camera is built from. The perspective
// frustum is fixed for the lifetime of a Camera.
type Params struct {
	Width  float64 // viewport width in screen units
	Height float64 // viewport height in screen units

	FOV  float64 // vertical field of view, degrees
	Near float64
	Far  float64

	FocalDistance float64    // projection plane distance, doubles as zoom
	EyeOffset     mgl64.Vec4 // camera translation, homogeneous (w=0)

	// StrafeFollowsYaw recomputes the translation basis from the current
	// yaw on every left/right move. When false, strafing reuses the basis
	// from the last forward/backward move.
	StrafeFollowsYaw bool
}

// DefaultParams matches the stock viewer window.
func DefaultParams() Params {
	return Params{
		Width:         800,
		Height:        600,
		FOV:           80,
		Near:          0.1,
		Far:           100,
		FocalDistance: 1,
		EyeOffset:     mgl64.Vec4{0, 0, 5, 0},
	}
}

func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return errors.Errorf("camera: invalid viewport %gx%g", p.Width, p.Height)
	case p.FOV <= 0 || p.FOV >= 180:
		return errors.Errorf("camera: field of view %g out of range (0, 180)", p.FOV)
	case p.Near <= 0:
		return errors.Errorf("camera: near plane %g must be positive", p.Near)
	case p.Far <= p.Near:
		return errors.Errorf("camera: far plane %g must be beyond near plane %g", p.Far, p.Near)
	case p.FocalDistance <= 0:
		return errors.Errorf("camera: focal distance %g must be positive", p.FocalDistance)
	}
	return nil
}

// Scaled returns a copy with the viewport multiplied by s.
// Used for supersampled offscreen renders.
func (p Params) Scaled(s int) Params {
	p.Width *= float64(s)
	p.Height *= float64(s)
	return p
}
