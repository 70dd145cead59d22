package shapes

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbaAt(t *testing.T, c *Canvas, x, y int) color.RGBA {
	t.Helper()
	img, err := c.Image()
	require.NoError(t, err)
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestCanvasItemLifecycle(t *testing.T) {
	c := NewCanvas(WithDimensions(600, 600))
	assert.Empty(t, c.FindAll())

	p, err := NewPolygon(c, triangle())
	require.NoError(t, err)
	assert.Equal(t, []ItemID{p.ID()}, c.FindAll())

	coords, err := c.Coords(p.ID())
	require.NoError(t, err)
	assert.Equal(t, triangle(), coords)

	require.NoError(t, p.SetPosition(Pt(200, 100)))
	coords, err = c.Coords(p.ID())
	require.NoError(t, err)
	assert.Equal(t, []Vertex{{100, 0}, {200, 200}, {300, 100}}, coords)

	require.NoError(t, p.Delete())
	assert.Empty(t, c.FindAll())
	_, err = c.Coords(p.ID())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCanvasDrawOrder(t *testing.T) {
	c := NewCanvas()
	a, err := NewPolygon(c, triangle())
	require.NoError(t, err)
	b, err := NewCircle(c, Pt(10, 10), 5, 12)
	require.NoError(t, err)
	require.NoError(t, a.Delete())
	d, err := NewPolygon(c, triangle())
	require.NoError(t, err)

	assert.Equal(t, []ItemID{b.ID(), d.ID()}, c.FindAll())
	assert.NotEqual(t, a.ID(), d.ID(), "a reused slot must get a fresh id")
}

func TestCanvasItemStyle(t *testing.T) {
	c := NewCanvas()
	p, err := NewPolygon(c, triangle(), Outline("yellow"))
	require.NoError(t, err)

	require.NoError(t, p.SetStyle("width", "3"))
	width, err := c.ItemStyle(p.ID(), StyleWidth)
	require.NoError(t, err)
	assert.Equal(t, "3", width)

	outline, err := p.Style("outline")
	require.NoError(t, err)
	assert.Equal(t, "yellow", outline)

	assert.ErrorIs(t, c.ConfigureItem(p.ID(), StyleFill, "blurple"), ErrInvalidArgument)
	assert.ErrorIs(t, c.ConfigureItem(ItemID(12345), StyleFill, "red"), ErrInvalidArgument)
}

func TestCanvasRejectsInvalidItems(t *testing.T) {
	c := NewCanvas()
	_, err := c.CreatePolygon(nil, DefaultStyle())
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = c.CreatePolygon(triangle(), Style{Fill: "blurple"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCanvasDimensionsAndBackground(t *testing.T) {
	c := NewCanvas(WithDimensions(800, 600))
	require.NoError(t, c.SetDimensions(600, 400))
	w, h := c.Dimensions()
	assert.Equal(t, 600, w)
	assert.Equal(t, 400, h)
	assert.ErrorIs(t, c.SetDimensions(0, 10), ErrInvalidArgument)

	require.NoError(t, c.SetBackgroundColor("green"))
	assert.Equal(t, "green", c.BackgroundColor())
	assert.ErrorIs(t, c.SetBackgroundColor("blurple"), ErrInvalidArgument)
	assert.Equal(t, "green", c.BackgroundColor())
}

func TestCanvasRefreshRendersItems(t *testing.T) {
	c := NewCanvas(WithDimensions(100, 100), WithBackground("black"))
	_, err := NewPolygon(c, []Vertex{{10, 10}, {50, 10}, {50, 50}, {10, 50}}, Fill("red"))
	require.NoError(t, err)
	_, err = NewCircle(c, Pt(75, 75), 15, DefaultCircleVertices, Fill("#0000ff"))
	require.NoError(t, err)

	_, err = c.Image()
	require.Error(t, err, "no frame before the first refresh")

	require.NoError(t, c.Refresh())

	inside := rgbaAt(t, c, 30, 30)
	assert.Greater(t, inside.R, uint8(230))
	assert.Less(t, inside.G, uint8(25))

	circle := rgbaAt(t, c, 75, 75)
	assert.Greater(t, circle.B, uint8(230))
	assert.Less(t, circle.R, uint8(25))

	bg := rgbaAt(t, c, 5, 95)
	assert.Less(t, bg.R, uint8(25))
	assert.Less(t, bg.G, uint8(25))
	assert.Less(t, bg.B, uint8(25))
}

func TestCanvasChangesVisibleAfterRefresh(t *testing.T) {
	c := NewCanvas(WithDimensions(100, 100), WithBackground("white"))
	p, err := NewPolygon(c, []Vertex{{10, 10}, {40, 10}, {40, 40}, {10, 40}}, Fill("black"))
	require.NoError(t, err)
	require.NoError(t, c.Refresh())
	assert.Less(t, rgbaAt(t, c, 25, 25).R, uint8(25))

	require.NoError(t, p.SetPosition(Pt(75, 75)))
	assert.Less(t, rgbaAt(t, c, 25, 25).R, uint8(25), "frame must not change before refresh")

	require.NoError(t, c.Refresh())
	assert.Greater(t, rgbaAt(t, c, 25, 25).R, uint8(230))
	assert.Less(t, rgbaAt(t, c, 75, 75).R, uint8(25))
}

func TestCanvasRefreshResizes(t *testing.T) {
	c := NewCanvas(WithDimensions(40, 30))
	require.NoError(t, c.Refresh())
	require.NoError(t, c.SetDimensions(60, 50))
	require.NoError(t, c.Refresh())

	img, err := c.Image()
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestCanvasEncodePNG(t *testing.T) {
	c := NewCanvas(WithDimensions(32, 16))
	var buf bytes.Buffer
	require.Error(t, c.EncodePNG(&buf))

	require.NoError(t, c.Refresh())
	require.NoError(t, c.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	require.NoError(t, c.SavePNG(filepath.Join(t.TempDir(), "frame.png")))
}

func TestCanvasDestroy(t *testing.T) {
	c := NewCanvas()
	p, err := NewCircle(c, Pt(50, 50), 10, 100)
	require.NoError(t, err)
	require.NoError(t, c.Refresh())

	c.Destroy()
	c.Destroy()
	assert.True(t, c.Destroyed())
	assert.Nil(t, c.FindAll())

	_, err = NewPolygon(c, triangle())
	assert.ErrorIs(t, err, ErrCanvasUnavailable)
	assert.ErrorIs(t, c.Refresh(), ErrCanvasUnavailable)
	assert.ErrorIs(t, c.SetDimensions(10, 10), ErrCanvasUnavailable)
	_, err = c.Image()
	assert.ErrorIs(t, err, ErrCanvasUnavailable)

	// Shapes outlive their canvas only as far as Delete.
	assert.ErrorIs(t, p.SetRadius(20), ErrCanvasUnavailable)
	require.NoError(t, p.Delete())
	assert.ErrorIs(t, p.SetRadius(20), ErrShapeDeleted)
}
