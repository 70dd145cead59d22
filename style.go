package shapes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StyleKey names a style attribute of a canvas item.
type StyleKey int

const (
	// StyleFill is the interior color. Empty means the interior is not painted.
	StyleFill StyleKey = iota
	// StyleOutline is the edge color. Empty means the edge is not stroked.
	StyleOutline
	// StyleWidth is the outline width in pixels.
	StyleWidth
)

var styleKeyNames = [...]string{
	StyleFill:    "fill",
	StyleOutline: "outline",
	StyleWidth:   "width",
}

// String returns the attribute name used by Shape.Style and Shape.SetStyle.
func (k StyleKey) String() string {
	if k < 0 || int(k) >= len(styleKeyNames) {
		return fmt.Sprintf("StyleKey(%d)", int(k))
	}
	return styleKeyNames[k]
}

// StyleKeys returns every recognized style key.
func StyleKeys() []StyleKey {
	return []StyleKey{StyleFill, StyleOutline, StyleWidth}
}

// ParseStyleKey maps an attribute name to its StyleKey.
func ParseStyleKey(name string) (StyleKey, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range styleKeyNames {
		if n == name {
			return StyleKey(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyleKey, name)
}

// Style is the typed configuration of a polygon item.
type Style struct {
	Fill    string
	Outline string
	Width   float64
}

// DefaultStyle returns the configuration of a freshly created polygon:
// black fill, no outline, one pixel outline width.
func DefaultStyle() Style {
	return Style{Fill: "black", Width: 1}
}

// Get returns the value of k formatted as a string.
func (s Style) Get(k StyleKey) (string, error) {
	switch k {
	case StyleFill:
		return s.Fill, nil
	case StyleOutline:
		return s.Outline, nil
	case StyleWidth:
		return formatFloat(s.Width), nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownStyleKey, k)
}

// Set validates value and stores it under k.
// s is left unchanged when an error is returned.
func (s *Style) Set(k StyleKey, value string) error {
	switch k {
	case StyleFill, StyleOutline:
		value = strings.TrimSpace(value)
		if value != "" {
			if _, err := ParseColor(value); err != nil {
				return fmt.Errorf("%v: %w", k, err)
			}
		}
		if k == StyleFill {
			s.Fill = value
		} else {
			s.Outline = value
		}
		return nil
	case StyleWidth:
		w, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%w: width %q: %v", ErrInvalidArgument, value, err)
		}
		if err := validWidth(w); err != nil {
			return err
		}
		s.Width = w
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnknownStyleKey, k)
}

// Validate checks every attribute of s.
func (s Style) Validate() error {
	for _, c := range []struct {
		key   StyleKey
		value string
	}{{StyleFill, s.Fill}, {StyleOutline, s.Outline}} {
		if c.value == "" {
			continue
		}
		if _, err := ParseColor(c.value); err != nil {
			return fmt.Errorf("%v: %w", c.key, err)
		}
	}
	return validWidth(s.Width)
}

func validWidth(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: width must be a non-negative finite number, got %v", ErrInvalidArgument, w)
	}
	return nil
}
