package shapes

import "strconv"

// StyleOption configures the style of a shape during creation.
//
// Example:
//
//	c, err := shapes.NewCircle(canvas, shapes.Pt(100, 100), 50, 1000,
//	    shapes.Fill("blue"), shapes.Outline("green"), shapes.LineWidth(2))
type StyleOption func(*Style) error

// Fill sets the interior color. An empty string leaves the interior unpainted.
func Fill(color string) StyleOption {
	return func(s *Style) error {
		return s.Set(StyleFill, color)
	}
}

// Outline sets the edge color. An empty string disables the outline.
func Outline(color string) StyleOption {
	return func(s *Style) error {
		return s.Set(StyleOutline, color)
	}
}

// LineWidth sets the outline width in pixels.
func LineWidth(width float64) StyleOption {
	return func(s *Style) error {
		if err := validWidth(width); err != nil {
			return err
		}
		s.Width = width
		return nil
	}
}

// WithStyle sets a style attribute by name, as Shape.SetStyle does.
// Unknown names fail with ErrUnknownStyleKey when the shape is created.
//
// Example:
//
//	p, err := shapes.NewPolygon(canvas, vertices, shapes.WithStyle("outline", "yellow"))
func WithStyle(key, value string) StyleOption {
	return func(s *Style) error {
		k, err := ParseStyleKey(key)
		if err != nil {
			return err
		}
		return s.Set(k, value)
	}
}

// resolveStyle applies opts over DefaultStyle.
func resolveStyle(opts []StyleOption) (Style, error) {
	s := DefaultStyle()
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return Style{}, err
		}
	}
	return s, nil
}

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	canvas := shapes.NewCanvas(shapes.WithDimensions(600, 600), shapes.WithBackground("black"))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	width      int
	height     int
	background string
}

// Tk canvases start at this size when none is requested.
const (
	defaultCanvasWidth  = 378
	defaultCanvasHeight = 264
)

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		width:      defaultCanvasWidth,
		height:     defaultCanvasHeight,
		background: "white",
	}
}

// WithDimensions sets the canvas size in pixels.
// Non-positive values keep the default for that axis.
func WithDimensions(width, height int) CanvasOption {
	return func(o *canvasOptions) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithBackground sets the canvas background color.
// Invalid colors are reported by the first Refresh.
func WithBackground(color string) CanvasOption {
	return func(o *canvasOptions) {
		o.background = color
	}
}

// GUIOption configures a GUI during creation.
type GUIOption func(*guiOptions)

// guiOptions holds optional configuration for GUI creation.
type guiOptions struct {
	width  int
	height int
	title  string
}

func defaultGUIOptions() guiOptions {
	return guiOptions{width: 200, height: 200, title: "shapes"}
}

// WithWindowSize sets the initial window size in pixels.
func WithWindowSize(width, height int) GUIOption {
	return func(o *guiOptions) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithTitle sets the window title.
func WithTitle(title string) GUIOption {
	return func(o *guiOptions) {
		o.title = title
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
