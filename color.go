package shapes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/image/colornames"
)

// ParseColor resolves a color specification.
//
// Named colors follow the SVG 1.1 keyword list; whitespace and case are
// ignored, so "Light Blue" resolves like "lightblue". Anything else is
// parsed as a CSS color: "#rgb", "#rrggbb", "#rrggbbaa", "rgb(...)",
// "hsl(...)" and similar.
func ParseColor(spec string) (color.Color, error) {
	name := strings.ToLower(strings.Join(strings.Fields(spec), ""))
	if name == "" {
		return nil, fmt.Errorf("%w: empty color", ErrInvalidArgument)
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	c, err := csscolorparser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: color %q: %v", ErrInvalidArgument, spec, err)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
