package scene

// Scene is an append-only, insertion-ordered list of triangles.
// It is populated once at load time and read every frame.
type Scene struct {
	triangles []Triangle
}

func New() *Scene {
	return &Scene{}
}

// FromTriangles builds a scene holding tris in order.
func FromTriangles(tris []Triangle) *Scene {
	s := &Scene{triangles: make([]Triangle, 0, len(tris))}
	for _, t := range tris {
		s.Add(t)
	}
	return s
}

func (s *Scene) Add(t Triangle) {
	s.triangles = append(s.triangles, t)
}

// Triangles returns a snapshot of the current triangles.
// Later calls to Add do not affect a returned slice.
func (s *Scene) Triangles() []Triangle {
	out := make([]Triangle, len(s.triangles))
	copy(out, s.triangles)
	return out
}

func (s *Scene) Len() int {
	return len(s.triangles)
}

// Pyramid returns the built-in demo mesh: a square pyramid with its apex
// at (0,1,0) and a 2×2 base on y=0, as six triangles.
func Pyramid() []Triangle {
	apex := V(0, 1, 0)
	b1 := V(-1, 0, -1)
	b2 := V(1, 0, -1)
	b3 := V(1, 0, 1)
	b4 := V(-1, 0, 1)

	return []Triangle{
		NewTriangle(apex, b1, b2),
		NewTriangle(apex, b2, b3),
		NewTriangle(apex, b3, b4),
		NewTriangle(apex, b4, b1),
		NewTriangle(b4, b3, b2),
		NewTriangle(b4, b2, b1),
	}
}
