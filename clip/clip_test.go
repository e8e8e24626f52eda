package clip

import (
	"math/rand"
	"testing"

	"github.com/osuushi/shapes/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, size float64) geom.Polygon {
	return geom.Polygon{{X: x, Y: y}, {X: x + size, Y: y}, {X: x + size, Y: y + size}, {X: x, Y: y + size}}
}

func assertWound(t *testing.T, polygons geom.Polygons) {
	t.Helper()
	for _, poly := range polygons {
		assert.GreaterOrEqual(t, len(poly), 3)
		assert.NotZero(t, poly.SignedArea())
	}
}

func TestBooleanOperations(t *testing.T) {
	a, b := square(0, 0, 1), square(0.5, 0.5, 1)

	cases := []struct {
		name     string
		result   geom.Polygons
		area     float64
		contours int
	}{
		{"union", Union(a, b), 1.75, 1},
		{"intersect", Intersect(a, b), 0.25, 1},
		{"difference", Difference(a, b), 0.75, 1},
		// The backend may return xor as two touching pieces or as the union
		// outline around a hole
		{"xor", Xor(a, b), 1.5, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.area, c.result.Area(), 1e-9)
			if c.contours > 0 {
				assert.Len(t, c.result, c.contours)
				assert.Empty(t, c.result.Holes())
			}
			assertWound(t, c.result)
		})
	}

	t.Run("inputs are untouched", func(t *testing.T) {
		assert.Equal(t, square(0, 0, 1), a)
		assert.Equal(t, square(0.5, 0.5, 1), b)
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.Empty(t, Intersect(square(0, 0, 1), square(5, 5, 1)))
		assert.InDelta(t, 2, Union(square(0, 0, 1), square(5, 5, 1)).Area(), 1e-9)
	})

	t.Run("clockwise input", func(t *testing.T) {
		result := Intersect(a.Reversed(), b)
		assert.InDelta(t, 0.25, result.Area(), 1e-9)
		assert.False(t, result[0].IsClockwise())
	})
}

func TestHoles(t *testing.T) {
	result := Difference(square(0, 0, 4), square(1, 1, 1))
	require.Len(t, result, 2)
	assert.InDelta(t, 15, result.Area(), 1e-9)

	solids, holes := result.Solids(), result.Holes()
	require.Len(t, solids, 1)
	require.Len(t, holes, 1)
	assert.InDelta(t, 16, solids[0].Area(), 1e-9)
	assert.InDelta(t, 1, holes[0].Area(), 1e-9)
	assert.True(t, holes[0].IsClockwise())

	assert.False(t, result.ContainsPoint(geom.Vector2{X: 1.5, Y: 1.5}))
	assert.True(t, result.ContainsPoint(geom.Vector2{X: 0.5, Y: 0.5}))
}

func TestOutline(t *testing.T) {
	assert.Nil(t, Outline(geom.Segment{End: geom.Vector2{X: 1}}))
	assert.Nil(t, Outline(geom.Circle{}))
	assert.Len(t, Outline(geom.Circle{Radius: 2}), CircleSegments)
	assert.Len(t, Outline(geom.Rect{Width: 1, Height: 1}), 4)
	assert.Len(t, Outline(geom.Triangle{B: geom.Vector2{X: 1}, C: geom.Vector2{Y: 1}}), 3)
}

func TestCut(t *testing.T) {
	source := square(0, 0, 10)
	circle := geom.Circle{Radius: 3}
	quarter := Outline(circle).Area() / 4

	// The circle's axis vertices lie on the square's edges, so the cut may
	// be rerun with the circle nudged off them
	remaining, cutouts := Cut(source, circle)
	require.Len(t, remaining, 1)
	require.Len(t, cutouts, 1)
	assert.InDelta(t, quarter, cutouts.Area(), 0.1)
	assert.InDelta(t, 100, remaining.Area()+cutouts.Area(), 1e-6)
	assert.Equal(t, square(0, 0, 10), source)

	t.Run("combine restores the source", func(t *testing.T) {
		union, overlap := Combine(remaining[0], cutouts[0])
		assert.InDelta(t, 100, union.Area(), 0.1)
		assert.InDelta(t, 0, overlap.Area(), 0.1)
		assert.InDelta(t, 100, union.Area()+overlap.Area(), 1e-6)
	})

	t.Run("segments cut nothing", func(t *testing.T) {
		remaining, cutouts := Cut(source, geom.Segment{End: geom.Vector2{X: 5, Y: 5}})
		assert.Equal(t, geom.Polygons{source}, remaining)
		assert.Empty(t, cutouts)
	})
}

func TestDegenerateCutters(t *testing.T) {
	source := square(0, 0, 10)
	cases := []struct {
		name   string
		cutter geom.Shape
	}{
		{"circle on a corner", geom.Circle{Radius: 3}},
		{"circle on an edge", geom.Circle{Center: geom.Vector2{X: 5}, Radius: 2}},
		{"circle on the far corner", geom.Circle{Center: geom.Vector2{X: 10, Y: 10}, Radius: 4}},
		{"rect sharing an edge", geom.Rect{X: 2, Y: 0, Width: 3, Height: 4}},
		{"rect sharing a corner", geom.Rect{X: 10, Y: 10, Width: 3, Height: 3}},
		{"triangle tip on an edge", geom.Triangle{
			A: geom.Vector2{X: 5, Y: 0}, B: geom.Vector2{X: 8, Y: -3}, C: geom.Vector2{X: 2, Y: -3},
		}},
		{"triangle tip inside", geom.Triangle{
			A: geom.Vector2{X: 5, Y: 5}, B: geom.Vector2{X: 8, Y: -3}, C: geom.Vector2{X: 2, Y: -3},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			remaining, cutouts := Cut(source, c.cutter)
			require.NotEmpty(t, remaining)
			assert.InDelta(t, 100, remaining.Area()+cutouts.Area(), 1e-6)
			assertWound(t, remaining)
			assertWound(t, cutouts)

			union, overlap := Combine(source, Outline(c.cutter))
			require.NotEmpty(t, union)
			assert.InDelta(t, 100+Outline(c.cutter).Area(), union.Area()+overlap.Area(), 1e-6)
			assert.InDelta(t, cutouts.Area(), overlap.Area(), 0.5)
		})
	}
}

func TestCutMany(t *testing.T) {
	remaining, cutouts := CutMany(square(0, 0, 10),
		geom.Rect{X: -1, Y: -1, Width: 3, Height: 3},
		geom.Rect{X: 8, Y: 8, Width: 5, Height: 5},
		geom.Rect{X: 0, Y: 0, Width: 1, Height: 1},
	)
	assert.InDelta(t, 92, remaining.Area(), 1e-9)
	assert.InDelta(t, 8, cutouts.Area(), 1e-9)
	assert.Len(t, cutouts, 2, "the last cut only covers area already removed")
}

func TestCutSimple(t *testing.T) {
	source := square(0, 0, 100)
	remaining, cutouts := CutSimple(rand.New(rand.NewSource(3)), source, geom.Vector2{X: 50, Y: 50}, 10, 20)
	assert.InDelta(t, 10000, remaining.Area()+cutouts.Area(), 1e-6)
	assert.Greater(t, cutouts.Area(), 0.0)
	assert.Len(t, remaining.Holes(), 1)
}

func TestFracture(t *testing.T) {
	t.Run("corner cut", func(t *testing.T) {
		info := Fracture(square(0, 0, 100), geom.Circle{Radius: 30}, 50)
		require.Len(t, info.NewShapes, 1)
		require.Len(t, info.Cutouts, 1)
		assert.InDelta(t, 10000, info.NewShapes.Area()+info.Cutouts.Area(), 1e-6)
		assert.InDelta(t, info.Cutouts.Area(), info.Pieces.Area(), 1e-6)
		for _, piece := range info.Pieces {
			assert.True(t, piece.IsCCW())
		}
	})

	t.Run("debris is dropped", func(t *testing.T) {
		source := geom.Rect{Width: 100, Height: 10}.ToPolygon()
		info := Fracture(source, geom.Rect{X: -1, Y: -1, Width: 100, Height: 12}, 50)
		assert.Empty(t, info.NewShapes)
		assert.InDelta(t, 990, info.Cutouts.Area(), 1e-9)
	})

	t.Run("holes follow their solid", func(t *testing.T) {
		info := Fracture(square(0, 0, 200), geom.Circle{Center: geom.Vector2{X: 100, Y: 100}, Radius: 60}, 50)
		assert.Len(t, info.NewShapes.Solids(), 1)
		assert.Len(t, info.NewShapes.Holes(), 1)
		assert.InDelta(t, 40000, info.NewShapes.Area()+info.Cutouts.Area(), 1e-6)
	})
}

func TestFractureHelper(t *testing.T) {
	helper := NewFractureHelper(rand.New(rand.NewSource(4)))
	assert.Equal(t, float64(DefaultMinArea), helper.MinArea)
	assert.Equal(t, DefaultKeepChance, helper.KeepChance)

	info := helper.Fracture(square(0, 0, 200), geom.Circle{Center: geom.Vector2{X: 100, Y: 100}, Radius: 60})
	assert.LessOrEqual(t, info.Pieces.Area(), info.Cutouts.Area()+1e-6)
	for _, piece := range info.Pieces {
		assert.GreaterOrEqual(t, piece.Area(), helper.MinArea)
		assert.False(t, piece.IsNarrow(helper.NarrowThreshold))
	}

	t.Run("keeps well shaped pieces", func(t *testing.T) {
		helper := NewFractureHelper(rand.New(rand.NewSource(5)))
		helper.KeepChance = 1
		piece := geom.Triangle{B: geom.Vector2{X: 40}, C: geom.Vector2{Y: 40}}
		assert.Equal(t, geom.Triangulation{piece}, helper.debris(geom.Triangulation{piece}))

		helper.KeepChance = 0
		assert.Empty(t, helper.debris(geom.Triangulation{piece}))
	})

	t.Run("splits large pieces", func(t *testing.T) {
		helper := NewFractureHelper(rand.New(rand.NewSource(6)))
		helper.KeepChance = 1
		big := geom.Triangle{B: geom.Vector2{X: 100}, C: geom.Vector2{Y: 100}}
		pieces := helper.debris(geom.Triangulation{big})
		assert.LessOrEqual(t, pieces.Area(), big.Area()+1e-6)
		for _, piece := range pieces {
			assert.GreaterOrEqual(t, piece.Area(), helper.MinArea)
			assert.LessOrEqual(t, piece.Area(), big.Area())
		}
		assert.NotContains(t, pieces, big)
	})
}
