package shapes

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// errNotRendered is returned by frame accessors before the first Refresh.
var errNotRendered = errors.New("shapes: canvas has not been refreshed")

// Refresh redraws the canvas: background first, then every item in
// creation order. Each item is filled, then outlined.
func (c *Canvas) Refresh() error {
	if err := c.available(); err != nil {
		return err
	}
	bg, err := ParseColor(c.background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	if c.dc == nil {
		c.dc = gg.NewContext(c.width, c.height)
	} else if err := c.dc.Resize(c.width, c.height); err != nil {
		return err
	}
	c.dc.ClearWithColor(gg.FromColor(bg))

	handles := c.items.All()
	for _, h := range handles {
		it, _ := c.items.Get(h)
		if err := drawItem(c.dc, it); err != nil {
			return fmt.Errorf("draw item %s: %w", h, err)
		}
	}

	Logger().Debug("shapes: canvas refreshed", "width", c.width, "height", c.height, "items", len(handles))
	return nil
}

// Image returns the frame produced by the last Refresh.
func (c *Canvas) Image() (image.Image, error) {
	if err := c.available(); err != nil {
		return nil, err
	}
	if c.dc == nil {
		return nil, errNotRendered
	}
	return c.dc.Image(), nil
}

// EncodePNG writes the last frame as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if _, err := c.Image(); err != nil {
		return err
	}
	return c.dc.EncodePNG(w)
}

// SavePNG writes the last frame as PNG to path.
func (c *Canvas) SavePNG(path string) error {
	if _, err := c.Image(); err != nil {
		return err
	}
	return c.dc.SavePNG(path)
}

func drawItem(dc *gg.Context, it *item) error {
	if len(it.vertices) < 2 {
		return nil
	}
	if it.style.Fill != "" {
		col, err := ParseColor(it.style.Fill)
		if err != nil {
			return err
		}
		tracePolygon(dc, it.vertices)
		dc.SetColor(col)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	if it.style.Outline != "" && it.style.Width > 0 {
		col, err := ParseColor(it.style.Outline)
		if err != nil {
			return err
		}
		tracePolygon(dc, it.vertices)
		dc.SetColor(col)
		dc.SetLineWidth(it.style.Width)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

func tracePolygon(dc *gg.Context, vertices []Vertex) {
	dc.ClearPath()
	dc.MoveTo(vertices[0].X, vertices[0].Y)
	for _, v := range vertices[1:] {
		dc.LineTo(v.X, v.Y)
	}
	dc.ClosePath()
}
