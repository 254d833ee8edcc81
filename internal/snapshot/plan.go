package snapshot

// Orbit describes a turntable sweep: Frames poses evenly spaced over a
// full turn of yaw, all at the same pitch.
type Orbit struct {
	Frames int
	Pitch  float64
}

// Frame is one camera pose of a sweep.
type Frame struct {
	Index int
	Yaw   float64
	Pitch float64
}

// Plan lays out the frames of o. It returns nil when o has no frames.
func Plan(o Orbit) []Frame {
	if o.Frames <= 0 {
		return nil
	}
	step := 360.0 / float64(o.Frames)
	frames := make([]Frame, o.Frames)
	for i := range frames {
		frames[i] = Frame{Index: i, Yaw: float64(i) * step, Pitch: o.Pitch}
	}
	return frames
}
