package shapes

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Shape is a polygon item on a Surface, addressed through its vertex list.
//
// Position, dimensions and vertices are views of the same vertex list:
// every setter recomputes the list and pushes it to the item. The surface
// must be refreshed before the change is guaranteed to be visible.
//
// A Shape is Active from creation until Delete. After Delete every method
// returns ErrShapeDeleted.
type Shape struct {
	surface  Surface
	id       ItemID
	vertices []Vertex
	deleted  bool
}

// newShape registers a polygon item on surface.
func newShape(surface Surface, vertices []Vertex, opts []StyleOption) (*Shape, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrCanvasUnavailable)
	}
	if err := checkVertices(vertices); err != nil {
		return nil, err
	}
	style, err := resolveStyle(opts)
	if err != nil {
		return nil, err
	}

	v := slices.Clone(vertices)
	id, err := surface.CreatePolygon(slices.Clone(v), style)
	if err != nil {
		if !errors.Is(err, ErrCanvasUnavailable) {
			err = fmt.Errorf("%w: %w", ErrCanvasUnavailable, err)
		}
		return nil, fmt.Errorf("create polygon: %w", err)
	}

	Logger().Debug("shapes: item created", "item", id, "vertices", len(v))
	return &Shape{surface: surface, id: id, vertices: v}, nil
}

// ID returns the item handle assigned by the surface.
func (s *Shape) ID() ItemID {
	return s.id
}

// Deleted reports whether Delete has been called.
func (s *Shape) Deleted() bool {
	return s.deleted
}

// Vertices returns a copy of the vertex list in draw order.
func (s *Shape) Vertices() ([]Vertex, error) {
	if err := s.alive(); err != nil {
		return nil, err
	}
	return slices.Clone(s.vertices), nil
}

// SetVertices replaces the vertex list.
func (s *Shape) SetVertices(vertices []Vertex) error {
	if err := s.alive(); err != nil {
		return err
	}
	if err := checkVertices(vertices); err != nil {
		return err
	}
	return s.apply(slices.Clone(vertices))
}

// Bounds returns the bounding box of the vertex list.
func (s *Shape) Bounds() (BoundingBox, error) {
	if err := s.alive(); err != nil {
		return BoundingBox{}, err
	}
	return BoundsOf(s.vertices)
}

// Position returns the center of the bounding box.
func (s *Shape) Position() (Vertex, error) {
	b, err := s.Bounds()
	if err != nil {
		return Vertex{}, err
	}
	return b.Center(), nil
}

// SetPosition moves the shape so its bounding box is centered on p.
func (s *Shape) SetPosition(p Vertex) error {
	b, err := s.Bounds()
	if err != nil {
		return err
	}
	if !p.IsFinite() {
		return fmt.Errorf("%w: position %v is not finite", ErrInvalidArgument, p)
	}
	return s.apply(Translate(s.vertices, p.Sub(b.Center())))
}

// Dimensions returns the width and height of the bounding box.
func (s *Shape) Dimensions() (width, height float64, err error) {
	b, err := s.Bounds()
	if err != nil {
		return 0, 0, err
	}
	return b.Width(), b.Height(), nil
}

// Width returns the width of the bounding box.
func (s *Shape) Width() (float64, error) {
	w, _, err := s.Dimensions()
	return w, err
}

// Height returns the height of the bounding box.
func (s *Shape) Height() (float64, error) {
	_, h, err := s.Dimensions()
	return h, err
}

// SetDimensions rescales the shape about its current center so the
// bounding box measures width by height.
// Fails with ErrDegenerateShape if the shape has zero width or height.
func (s *Shape) SetDimensions(width, height float64) error {
	return s.rescale(&width, &height)
}

// SetWidth rescales the shape horizontally about its current center.
func (s *Shape) SetWidth(width float64) error {
	return s.rescale(&width, nil)
}

// SetHeight rescales the shape vertically about its current center.
func (s *Shape) SetHeight(height float64) error {
	return s.rescale(nil, &height)
}

// rescale scales each axis with a non-nil target; nil axes keep their extent.
func (s *Shape) rescale(width, height *float64) error {
	b, err := s.Bounds()
	if err != nil {
		return err
	}

	sx, err := scaleFactor("width", b.Width(), width)
	if err != nil {
		return err
	}
	sy, err := scaleFactor("height", b.Height(), height)
	if err != nil {
		return err
	}
	return s.apply(Scale(s.vertices, b.Center(), sx, sy))
}

func scaleFactor(axis string, current float64, target *float64) (float64, error) {
	if target == nil {
		return 1, nil
	}
	if *target < 0 || math.IsNaN(*target) || math.IsInf(*target, 0) {
		return 0, fmt.Errorf("%w: %s must be a non-negative finite number, got %v", ErrInvalidArgument, axis, *target)
	}
	if isDegenerate(current) {
		return 0, fmt.Errorf("%w: cannot rescale zero %s", ErrDegenerateShape, axis)
	}
	return *target / current, nil
}

// Style returns the value of a style attribute such as "fill" or "outline".
func (s *Shape) Style(key string) (string, error) {
	if err := s.alive(); err != nil {
		return "", err
	}
	k, err := ParseStyleKey(key)
	if err != nil {
		return "", err
	}
	return s.surface.ItemStyle(s.id, k)
}

// SetStyle sets a style attribute such as "fill" or "outline".
func (s *Shape) SetStyle(key, value string) error {
	if err := s.alive(); err != nil {
		return err
	}
	k, err := ParseStyleKey(key)
	if err != nil {
		return err
	}
	var probe Style
	if err := probe.Set(k, value); err != nil {
		return err
	}
	return s.surface.ConfigureItem(s.id, k, value)
}

// Delete removes the item from its surface.
// Deleting a shape whose canvas was already destroyed succeeds.
func (s *Shape) Delete() error {
	if err := s.alive(); err != nil {
		return err
	}
	if err := s.surface.DeleteItem(s.id); err != nil {
		if !errors.Is(err, ErrCanvasUnavailable) {
			return fmt.Errorf("delete item %d: %w", s.id, err)
		}
		Logger().Warn("shapes: item deleted after its canvas", "item", s.id, "error", err)
	}

	Logger().Debug("shapes: item deleted", "item", s.id)
	s.deleted = true
	s.vertices = nil
	return nil
}

// apply pushes vertices to the item and commits them only on success.
func (s *Shape) apply(vertices []Vertex) error {
	if err := s.surface.ReconfigureGeometry(s.id, slices.Clone(vertices)); err != nil {
		return fmt.Errorf("reconfigure item %d: %w", s.id, err)
	}
	s.vertices = vertices
	return nil
}

func (s *Shape) alive() error {
	if s == nil || s.deleted {
		return ErrShapeDeleted
	}
	return nil
}

func checkVertices(vertices []Vertex) error {
	if len(vertices) == 0 {
		return fmt.Errorf("%w: empty vertex list", ErrInvalidArgument)
	}
	for i, v := range vertices {
		if !v.IsFinite() {
			return fmt.Errorf("%w: vertex %d (%v) is not finite", ErrInvalidArgument, i, v)
		}
	}
	return nil
}
