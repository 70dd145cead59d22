package shapes

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vertex is a point in canvas space.
// Origin is top-left, X increases right, Y increases down.
type Vertex struct {
	X, Y float64
}

// Pt is a convenience function to create a Vertex.
func Pt(x, y float64) Vertex {
	return Vertex{X: x, Y: y}
}

// Add returns the sum of two vertices (vector addition).
func (p Vertex) Add(q Vertex) Vertex {
	return Vertex{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two vertices (vector subtraction).
func (p Vertex) Sub(q Vertex) Vertex {
	return Vertex{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the vertex scaled by a scalar.
func (p Vertex) Mul(s float64) Vertex {
	return Vertex{X: p.X * s, Y: p.Y * s}
}

// Length returns the distance of the vertex from the origin.
func (p Vertex) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two vertices.
func (p Vertex) Distance(q Vertex) float64 {
	return p.Sub(q).Length()
}

// Approx reports whether both coordinates of p and q differ by at most tol.
func (p Vertex) Approx(q Vertex, tol float64) bool {
	return scalar.EqualWithinAbs(p.X, q.X, tol) && scalar.EqualWithinAbs(p.Y, q.Y, tol)
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Vertex) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
