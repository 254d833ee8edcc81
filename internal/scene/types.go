package scene

// Vertex is a point in world space. Value type, copied freely.
type Vertex struct {
	X, Y, Z float64
}

// V builds a Vertex. Coordinates are stored as given.
func V(x, y, z float64) Vertex {
	return Vertex{X: x, Y: y, Z: z}
}

// Triangle is one mesh face: three vertices in declaration order.
// Winding is kept but not interpreted (no back-face culling).
type Triangle struct {
	verts [3]Vertex
}

func NewTriangle(v1, v2, v3 Vertex) Triangle {
	return Triangle{verts: [3]Vertex{v1, v2, v3}}
}

// Vertices returns a copy of the three vertices.
func (t Triangle) Vertices() [3]Vertex {
	return t.verts
}
