package shapes

import (
	"fmt"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/shapes/internal/arena"
)

// Canvas is a drawing surface hosting polygon items.
//
// Canvas implements Surface. Items are kept in a handle table and drawn in
// creation order by Refresh. A destroyed canvas rejects every request with
// ErrCanvasUnavailable.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	width      int
	height     int
	background string

	items     *arena.Arena[*item]
	gui       *GUI
	guiHandle arena.Handle
	destroyed bool

	dc *gg.Context // Last rendered frame, nil until the first Refresh
}

// item is the canvas-side state of one polygon.
type item struct {
	vertices []Vertex
	style    Style
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a standalone canvas.
// Use GUI.NewCanvas to create one owned by a window.
func NewCanvas(opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		width:      o.width,
		height:     o.height,
		background: o.background,
		items:      arena.New[*item](),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Dimensions returns the canvas width and height in pixels.
func (c *Canvas) Dimensions() (width, height int) {
	return c.width, c.height
}

// SetDimensions resizes the canvas. The next Refresh renders at the new size.
func (c *Canvas) SetDimensions(width, height int) error {
	if err := c.available(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: canvas dimensions must be positive, got %dx%d", ErrInvalidArgument, width, height)
	}
	c.width, c.height = width, height
	return nil
}

// BackgroundColor returns the background color specification.
func (c *Canvas) BackgroundColor() string {
	return c.background
}

// SetBackgroundColor changes the background color.
func (c *Canvas) SetBackgroundColor(color string) error {
	if err := c.available(); err != nil {
		return err
	}
	if _, err := ParseColor(color); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	c.background = color
	return nil
}

// CreatePolygon registers a new polygon item drawn above every existing item.
func (c *Canvas) CreatePolygon(vertices []Vertex, style Style) (ItemID, error) {
	if err := c.available(); err != nil {
		return 0, err
	}
	if err := checkVertices(vertices); err != nil {
		return 0, err
	}
	if err := style.Validate(); err != nil {
		return 0, err
	}
	h := c.items.Insert(&item{vertices: slices.Clone(vertices), style: style})
	return ItemID(h.Uint64()), nil
}

// ConfigureItem sets one style attribute of an item.
func (c *Canvas) ConfigureItem(id ItemID, key StyleKey, value string) error {
	it, err := c.item(id)
	if err != nil {
		return err
	}
	return it.style.Set(key, value)
}

// ItemStyle reads one style attribute of an item.
func (c *Canvas) ItemStyle(id ItemID, key StyleKey) (string, error) {
	it, err := c.item(id)
	if err != nil {
		return "", err
	}
	return it.style.Get(key)
}

// ReconfigureGeometry replaces the vertex list of an item.
func (c *Canvas) ReconfigureGeometry(id ItemID, vertices []Vertex) error {
	it, err := c.item(id)
	if err != nil {
		return err
	}
	if err := checkVertices(vertices); err != nil {
		return err
	}
	it.vertices = slices.Clone(vertices)
	return nil
}

// DeleteItem removes an item.
func (c *Canvas) DeleteItem(id ItemID) error {
	if _, err := c.item(id); err != nil {
		return err
	}
	c.items.Remove(arena.FromUint64(uint64(id)))
	return nil
}

// Coords returns a copy of the vertex list of an item.
func (c *Canvas) Coords(id ItemID) ([]Vertex, error) {
	it, err := c.item(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(it.vertices), nil
}

// FindAll returns every item in draw order.
func (c *Canvas) FindAll() []ItemID {
	if c.destroyed {
		return nil
	}
	handles := c.items.All()
	ids := make([]ItemID, len(handles))
	for i, h := range handles {
		ids[i] = ItemID(h.Uint64())
	}
	return ids
}

// Destroyed reports whether Destroy has been called.
func (c *Canvas) Destroyed() bool {
	return c.destroyed
}

// Destroy removes every item and releases the rendered frame.
// Destroy is idempotent.
func (c *Canvas) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	n := c.items.Len()
	c.items.Clear()
	if c.dc != nil {
		_ = c.dc.Close()
		c.dc = nil
	}
	if c.gui != nil {
		c.gui.forget(c)
	}
	Logger().Debug("shapes: canvas destroyed", "items", n)
}

func (c *Canvas) available() error {
	if c.destroyed {
		return fmt.Errorf("%w: canvas destroyed", ErrCanvasUnavailable)
	}
	return nil
}

func (c *Canvas) item(id ItemID) (*item, error) {
	if err := c.available(); err != nil {
		return nil, err
	}
	it, ok := c.items.Get(arena.FromUint64(uint64(id)))
	if !ok {
		return nil, fmt.Errorf("%w: no item %d", ErrInvalidArgument, id)
	}
	return it, nil
}
