package shapes

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestRegularPolygonVertices(t *testing.T) {
	centers := []Vertex{{0, 0}, {100, 100}, {-3.5, 42}}
	for _, c := range centers {
		for _, n := range []int{3, 4, 7, 100, 1000} {
			for _, r := range []float64{0.5, 1, 50, 1e4} {
				t.Run(fmt.Sprintf("c=%v/n=%d/r=%v", c, n, r), func(t *testing.T) {
					v, err := RegularPolygonVertices(c, r, n)
					require.NoError(t, err)
					require.Len(t, v, n)
					for i, p := range v {
						assert.InDelta(t, r, p.Distance(c), r*tol, "vertex %d", i)
					}
				})
			}
		}
	}
}

func TestRegularPolygonVerticesStartAngle(t *testing.T) {
	v, err := RegularPolygonVertices(Pt(10, 20), 5, 4)
	require.NoError(t, err)

	want := []Vertex{{15, 20}, {10, 25}, {5, 20}, {10, 15}}
	for i := range want {
		assert.True(t, v[i].Approx(want[i], tol), "vertex %d = %v, want %v", i, v[i], want[i])
	}
}

func TestRegularPolygonVerticesInvalid(t *testing.T) {
	tests := []struct {
		name   string
		center Vertex
		radius float64
		n      int
	}{
		{"n=2", Pt(0, 0), 1, 2},
		{"n=0", Pt(0, 0), 1, 0},
		{"n negative", Pt(0, 0), 1, -5},
		{"zero radius", Pt(0, 0), 0, 10},
		{"negative radius", Pt(0, 0), -1, 10},
		{"NaN radius", Pt(0, 0), math.NaN(), 10},
		{"infinite radius", Pt(0, 0), math.Inf(1), 10},
		{"NaN center", Pt(math.NaN(), 0), 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RegularPolygonVertices(tt.center, tt.radius, tt.n)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestBoundsOf(t *testing.T) {
	b, err := BoundsOf([]Vertex{{100, 100}, {200, 300}, {300, 200}})
	require.NoError(t, err)
	assert.Equal(t, BoundingBox{MinX: 100, MinY: 100, MaxX: 300, MaxY: 300}, b)
	assert.Equal(t, 200.0, b.Width())
	assert.Equal(t, 200.0, b.Height())
	assert.Equal(t, Pt(200, 200), b.Center())
	assert.True(t, b.Contains(Pt(150, 299)))
	assert.False(t, b.Contains(Pt(99, 150)))
}

func TestBoundsOfSingleVertex(t *testing.T) {
	b, err := BoundsOf([]Vertex{{4, 5}})
	require.NoError(t, err)
	assert.Equal(t, BoundingBox{MinX: 4, MinY: 5, MaxX: 4, MaxY: 5}, b)
}

func TestBoundsOfEmpty(t *testing.T) {
	_, err := BoundsOf(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBoundsOfTranslationEquivariant(t *testing.T) {
	lists := [][]Vertex{
		{{0, 0}, {1, 0}, {0, 1}},
		{{-10, 4}, {3, -7}, {8, 8}, {2, 2}},
		{{1e6, -1e6}, {1e6 + 1, -1e6 + 3}, {1e6 - 2, -1e6}},
	}
	deltas := []Vertex{{0, 0}, {5, -3}, {-100.25, 0.5}}

	for i, v := range lists {
		for _, d := range deltas {
			t.Run(fmt.Sprintf("list%d/d=%v", i, d), func(t *testing.T) {
				b, err := BoundsOf(v)
				require.NoError(t, err)
				moved, err := BoundsOf(Translate(v, d))
				require.NoError(t, err)

				want := b.Translate(d)
				assert.InDelta(t, want.MinX, moved.MinX, 1e-6)
				assert.InDelta(t, want.MinY, moved.MinY, 1e-6)
				assert.InDelta(t, want.MaxX, moved.MaxX, 1e-6)
				assert.InDelta(t, want.MaxY, moved.MaxY, 1e-6)
			})
		}
	}
}

func TestTranslateDoesNotMutate(t *testing.T) {
	in := []Vertex{{1, 2}, {3, 4}}
	out := Translate(in, Pt(10, 20))

	assert.Equal(t, []Vertex{{1, 2}, {3, 4}}, in)
	assert.Equal(t, []Vertex{{11, 22}, {13, 24}}, out)
}

func TestScale(t *testing.T) {
	in := []Vertex{{300, 300}, {400, 500}, {500, 400}}
	out := Scale(in, Pt(400, 400), 0.5, 0.5)

	assert.Equal(t, []Vertex{{350, 350}, {400, 450}, {450, 400}}, out)
	assert.Equal(t, Pt(300, 300), in[0])
}

func TestFitBox(t *testing.T) {
	tri, err := RegularPolygonVertices(Pt(0, 0), 10, 3)
	require.NoError(t, err)

	out, err := fitBox(tri, Pt(50, 60), 20, 20)
	require.NoError(t, err)
	b, err := BoundsOf(out)
	require.NoError(t, err)
	assert.InDelta(t, 20, b.Width(), tol)
	assert.InDelta(t, 20, b.Height(), tol)
	assert.True(t, b.Center().Approx(Pt(50, 60), tol))

	_, err = fitBox([]Vertex{{0, 0}, {1, 0}}, Pt(0, 0), 1, 1)
	assert.ErrorIs(t, err, ErrDegenerateShape)
}
