package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"wireframe-viewer/internal/mathutil"
)

// State is a read-only snapshot of the camera pose, for display and dumps.
type State struct {
	Yaw           float64
	Pitch         float64
	FocalDistance float64
	EyeOffset     mgl64.Vec4
	Width, Height float64
}

func (c *Camera) State() State {
	return State{
		Yaw:           c.yaw,
		Pitch:         c.pitch,
		FocalDistance: c.focalDistance,
		EyeOffset:     c.eyeOffset,
		Width:         c.width,
		Height:        c.height,
	}
}

func (s State) String() string {
	return fmt.Sprintf("yaw %.1f° pitch %.1f° zoom %.3f eye (%.2f, %.2f, %.2f)",
		mathutil.WrapDegrees(s.Yaw), mathutil.WrapDegrees(s.Pitch), s.FocalDistance,
		s.EyeOffset[0], s.EyeOffset[1], s.EyeOffset[2])
}
