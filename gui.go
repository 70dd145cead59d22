package shapes

import (
	"errors"
	"fmt"

	"github.com/gogpu/shapes/internal/arena"
)

// GUI is a top-level window owning zero or more canvases.
//
// Destroying the GUI destroys every canvas it owns, which in turn
// invalidates every item on them.
type GUI struct {
	width     int
	height    int
	title     string
	canvases  *arena.Arena[*Canvas]
	destroyed bool
}

// NewGUI creates a window.
func NewGUI(opts ...GUIOption) *GUI {
	o := defaultGUIOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &GUI{
		width:    o.width,
		height:   o.height,
		title:    o.title,
		canvases: arena.New[*Canvas](),
	}
}

// Title returns the window title.
func (g *GUI) Title() string {
	return g.title
}

// Width returns the window width in pixels.
func (g *GUI) Width() int {
	return g.width
}

// Height returns the window height in pixels.
func (g *GUI) Height() int {
	return g.height
}

// Dimensions returns the window width and height in pixels.
func (g *GUI) Dimensions() (width, height int) {
	return g.width, g.height
}

// SetDimensions resizes the window.
func (g *GUI) SetDimensions(width, height int) error {
	if g.destroyed {
		return ErrGUIDestroyed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: window dimensions must be positive, got %dx%d", ErrInvalidArgument, width, height)
	}
	g.width, g.height = width, height
	return nil
}

// SetWidth resizes the window horizontally.
func (g *GUI) SetWidth(width int) error {
	return g.SetDimensions(width, g.height)
}

// SetHeight resizes the window vertically.
func (g *GUI) SetHeight(height int) error {
	return g.SetDimensions(g.width, height)
}

// NewCanvas creates a canvas owned by the window.
func (g *GUI) NewCanvas(opts ...CanvasOption) (*Canvas, error) {
	if g.destroyed {
		return nil, ErrGUIDestroyed
	}
	c := NewCanvas(opts...)
	c.gui = g
	c.guiHandle = g.canvases.Insert(c)
	return c, nil
}

// Canvases returns the live canvases in creation order.
func (g *GUI) Canvases() []*Canvas {
	handles := g.canvases.All()
	out := make([]*Canvas, 0, len(handles))
	for _, h := range handles {
		c, _ := g.canvases.Get(h)
		out = append(out, c)
	}
	return out
}

// Update refreshes every canvas, making pending changes visible.
// Every canvas is refreshed even if an earlier one fails.
func (g *GUI) Update() error {
	if g.destroyed {
		return ErrGUIDestroyed
	}
	var errs []error
	for _, c := range g.Canvases() {
		if err := c.Refresh(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Destroy destroys every canvas and closes the window.
// Destroy is idempotent.
func (g *GUI) Destroy() {
	if g.destroyed {
		return
	}
	for _, c := range g.Canvases() {
		c.Destroy()
	}
	g.destroyed = true
	Logger().Debug("shapes: gui destroyed", "title", g.title)
}

// Destroyed reports whether Destroy has been called.
func (g *GUI) Destroyed() bool {
	return g.destroyed
}

// forget drops a canvas destroyed on its own.
func (g *GUI) forget(c *Canvas) {
	g.canvases.Remove(c.guiHandle)
}
