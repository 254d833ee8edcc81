package mathutil

import "math"

// WrapDegrees maps an accumulated angle into (-180, 180].
func WrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}
