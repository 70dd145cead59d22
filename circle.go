package shapes

import "fmt"

// DefaultCircleVertices is the vertex count callers typically use for a
// circle approximation.
const DefaultCircleVertices = 100

// Circle is a regular polygon approximating a circle.
//
// Center and radius are not stored: they are recovered from the bounding
// box on read and regenerated into a fresh vertex list on write. The vertex
// count is fixed at construction.
type Circle struct {
	Shape
}

// NewCircle creates an n-vertex regular polygon of the given radius around
// center. The first vertex lies directly right of center.
func NewCircle(surface Surface, center Vertex, radius float64, n int, opts ...StyleOption) (*Circle, error) {
	vertices, err := RegularPolygonVertices(center, radius, n)
	if err != nil {
		return nil, err
	}
	s, err := newShape(surface, vertices, opts)
	if err != nil {
		return nil, err
	}
	return &Circle{Shape: *s}, nil
}

// N returns the number of vertices.
func (c *Circle) N() (int, error) {
	if err := c.alive(); err != nil {
		return 0, err
	}
	return len(c.vertices), nil
}

// Center is an alias for Position.
func (c *Circle) Center() (Vertex, error) {
	return c.Position()
}

// Radius returns the mean of the half-width and half-height of the
// bounding box. For an undistorted circle this is half the width; after
// SetDimensions stretched it into an ellipse it is the average of the two
// half-extents.
func (c *Circle) Radius() (float64, error) {
	w, h, err := c.Dimensions()
	if err != nil {
		return 0, err
	}
	return (w/2 + h/2) / 2, nil
}

// SetRadius regenerates the vertex list as a regular polygon of radius r
// around the current position, keeping the vertex count.
//
// Afterwards the bounding box is exactly 2r on each side and still centered
// on the previous position. When the vertex count is not a multiple of four
// the regular polygon does not reach its circumcircle on every axis, so it
// is stretched to fit that box.
func (c *Circle) SetRadius(r float64) error {
	center, err := c.Position()
	if err != nil {
		return err
	}
	vertices, err := RegularPolygonVertices(center, r, len(c.vertices))
	if err != nil {
		return fmt.Errorf("set radius: %w", err)
	}
	if len(vertices)%4 != 0 {
		if vertices, err = fitBox(vertices, center, 2*r, 2*r); err != nil {
			return fmt.Errorf("set radius: %w", err)
		}
	}
	return c.apply(vertices)
}
