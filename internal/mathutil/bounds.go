package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"wireframe-viewer/internal/scene"
)

// Bounds is an axis-aligned box. The zero value is not a valid box;
// use BoundsOf or check Empty.
type Bounds struct {
	Min, Max mgl64.Vec3
}

// BoundsOf returns the box enclosing every vertex of tris.
func BoundsOf(tris []scene.Triangle) Bounds {
	b := Bounds{
		Min: mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	for _, t := range tris {
		for _, v := range t.Vertices() {
			p := [3]float64{v.X, v.Y, v.Z}
			for k := 0; k < 3; k++ {
				if p[k] < b.Min[k] {
					b.Min[k] = p[k]
				}
				if p[k] > b.Max[k] {
					b.Max[k] = p[k]
				}
			}
		}
	}
	return b
}

func (b Bounds) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

func (b Bounds) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Bounds) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Radius is half the box diagonal, never below 0.001.
func (b Bounds) Radius() float64 {
	if b.Empty() {
		return 0.001
	}
	r := b.Size().Len() / 2
	if r < 0.001 {
		r = 0.001
	}
	return r
}
