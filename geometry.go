package shapes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// degenerateExtent is the extent below which an axis counts as collapsed.
const degenerateExtent = 1e-12

// BoundingBox is an axis-aligned rectangle tightly enclosing a vertex list.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Vertex {
	return Vertex{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Translate returns the box shifted by delta.
func (b BoundingBox) Translate(delta Vertex) BoundingBox {
	return BoundingBox{
		MinX: b.MinX + delta.X,
		MinY: b.MinY + delta.Y,
		MaxX: b.MaxX + delta.X,
		MaxY: b.MaxY + delta.Y,
	}
}

// Contains reports whether p lies inside or on the edge of the box.
func (b BoundingBox) Contains(p Vertex) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// RegularPolygonVertices returns n vertices evenly spaced on the circle of
// the given radius around center. The first vertex is at angle 0 (directly
// right of center) and the angle step is 2π/n.
func RegularPolygonVertices(center Vertex, radius float64, n int) ([]Vertex, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: regular polygon needs at least 3 vertices, got %d", ErrInvalidArgument, n)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: radius must be positive and finite, got %v", ErrInvalidArgument, radius)
	}
	if !center.IsFinite() {
		return nil, fmt.Errorf("%w: center %v is not finite", ErrInvalidArgument, center)
	}

	step := 2.0 * math.Pi / float64(n)
	vertices := make([]Vertex, n)
	for i := range vertices {
		sin, cos := math.Sincos(step * float64(i))
		vertices[i] = Vertex{X: center.X + radius*cos, Y: center.Y + radius*sin}
	}
	return vertices, nil
}

// BoundsOf returns the bounding box of vertices.
func BoundsOf(vertices []Vertex) (BoundingBox, error) {
	if len(vertices) == 0 {
		return BoundingBox{}, fmt.Errorf("%w: bounding box of empty vertex list", ErrInvalidArgument)
	}

	b := BoundingBox{
		MinX: vertices[0].X, MinY: vertices[0].Y,
		MaxX: vertices[0].X, MaxY: vertices[0].Y,
	}
	for _, v := range vertices[1:] {
		b.MinX = math.Min(b.MinX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MaxY = math.Max(b.MaxY, v.Y)
	}
	return b, nil
}

// Translate returns a copy of vertices with every vertex shifted by delta.
func Translate(vertices []Vertex, delta Vertex) []Vertex {
	out := make([]Vertex, len(vertices))
	for i, v := range vertices {
		out[i] = v.Add(delta)
	}
	return out
}

// Scale returns a copy of vertices scaled about origin by sx and sy.
func Scale(vertices []Vertex, origin Vertex, sx, sy float64) []Vertex {
	out := make([]Vertex, len(vertices))
	for i, v := range vertices {
		out[i] = Vertex{
			X: origin.X + sx*(v.X-origin.X),
			Y: origin.Y + sy*(v.Y-origin.Y),
		}
	}
	return out
}

func isDegenerate(extent float64) bool {
	return scalar.EqualWithinAbs(extent, 0, degenerateExtent)
}

// fitBox scales and moves vertices so their bounding box is centered on
// center and measures width by height.
func fitBox(vertices []Vertex, center Vertex, width, height float64) ([]Vertex, error) {
	b, err := BoundsOf(vertices)
	if err != nil {
		return nil, err
	}
	if isDegenerate(b.Width()) || isDegenerate(b.Height()) {
		return nil, fmt.Errorf("%w: cannot fit a %vx%v box", ErrDegenerateShape, b.Width(), b.Height())
	}
	scaled := Scale(vertices, b.Center(), width/b.Width(), height/b.Height())
	return Translate(scaled, center.Sub(b.Center())), nil
}
