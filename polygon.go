package shapes

// Polygon is a shape built from an explicit vertex list.
type Polygon struct {
	Shape
}

// NewPolygon creates a polygon item on surface with the given vertices,
// in canvas coordinates.
//
// Example:
//
//	r := 50.0
//	square, err := shapes.NewPolygon(canvas,
//	    []shapes.Vertex{{-r, -r}, {r, -r}, {r, r}, {-r, r}},
//	    shapes.Fill("red"), shapes.Outline("yellow"))
func NewPolygon(surface Surface, vertices []Vertex, opts ...StyleOption) (*Polygon, error) {
	s, err := newShape(surface, vertices, opts)
	if err != nil {
		return nil, err
	}
	return &Polygon{Shape: *s}, nil
}

// NewPolygonAt creates a polygon whose vertices are given relative to a
// reference point, then centers its bounding box on position.
func NewPolygonAt(surface Surface, position Vertex, vertices []Vertex, opts ...StyleOption) (*Polygon, error) {
	p, err := NewPolygon(surface, vertices, opts...)
	if err != nil {
		return nil, err
	}
	if err := p.SetPosition(position); err != nil {
		// The item exists but never reached its requested position.
		_ = p.Delete()
		return nil, err
	}
	return p, nil
}

// RelativeVertices returns the vertices relative to the current position.
func (p *Polygon) RelativeVertices() ([]Vertex, error) {
	pos, err := p.Position()
	if err != nil {
		return nil, err
	}
	return Translate(p.vertices, pos.Mul(-1)), nil
}
