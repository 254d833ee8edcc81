package input

import (
	"strings"

	"github.com/pkg/errors"

	"wireframe-viewer/internal/camera"
)

// Action is a camera command produced by a key press.
type Action int

const (
	None Action = iota
	RotateLeft
	RotateRight
	RotateUp
	RotateDown
	MoveForward
	MoveBackward
	MoveLeft
	MoveRight
	ZoomIn
	ZoomOut
	ResetZoom
	Quit
)

var actionNames = map[Action]string{
	None:         "none",
	RotateLeft:   "rotate_left",
	RotateRight:  "rotate_right",
	RotateUp:     "rotate_up",
	RotateDown:   "rotate_down",
	MoveForward:  "move_forward",
	MoveBackward: "move_backward",
	MoveLeft:     "move_left",
	MoveRight:    "move_right",
	ZoomIn:       "zoom_in",
	ZoomOut:      "zoom_out",
	ResetZoom:    "reset_zoom",
	Quit:         "quit",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// ParseAction accepts the names printed by Action.String.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, s := range actionNames {
		if s == name {
			return a, nil
		}
	}
	return None, errors.Errorf("input: unknown action %q", name)
}

// Repeatable reports whether holding the key should repeat the action.
func (a Action) Repeatable() bool {
	switch a {
	case ResetZoom, Quit, None:
		return false
	}
	return true
}

// Steps sets how far one key press moves the camera.
type Steps struct {
	RotateDeg float64
	ZoomStep  float64
}

func DefaultSteps() Steps {
	return Steps{RotateDeg: 5, ZoomStep: 0.1}
}

// Apply performs a on cam. It returns true for Quit.
func Apply(cam *camera.Camera, a Action, s Steps) (quit bool) {
	switch a {
	case RotateLeft:
		cam.RotateHorizontal(-s.RotateDeg)
	case RotateRight:
		cam.RotateHorizontal(s.RotateDeg)
	case RotateUp:
		cam.RotateVertical(s.RotateDeg)
	case RotateDown:
		cam.RotateVertical(-s.RotateDeg)
	case MoveForward:
		cam.TranslateForward()
	case MoveBackward:
		cam.TranslateBackward()
	case MoveLeft:
		cam.TranslateLeft()
	case MoveRight:
		cam.TranslateRight()
	case ZoomIn:
		cam.Zoom(s.ZoomStep)
	case ZoomOut:
		cam.Zoom(-s.ZoomStep)
	case ResetZoom:
		cam.ResetZoom()
	case Quit:
		return true
	}
	return false
}
