package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, size float64) Polygon {
	return Polygon{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}}
}

func TestOverlap(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Shape
		expected bool
	}{
		{"circles apart", Circle{Vector2{0, 0}, 1}, Circle{Vector2{2.9, 0}, 2}, true},
		{"circles touching", Circle{Vector2{0, 0}, 1}, Circle{Vector2{3, 0}, 2}, false},
		{"point near circle", Circle{Vector2{0, 0}, 0}, Circle{Vector2{4, 0}, 1}, true},
		{"point far from circle", Circle{Vector2{10.5, 0}, 0}, Circle{Vector2{4, 0}, 1}, false},
		{"crossing segments", Segment{Vector2{0, 0}, Vector2{2, 2}}, Segment{Vector2{0, 2}, Vector2{2, 0}}, true},
		{"parallel segments", Segment{Vector2{0, 0}, Vector2{2, 0}}, Segment{Vector2{0, 1}, Vector2{2, 1}}, false},
		{"collinear overlapping", Segment{Vector2{0, 0}, Vector2{2, 0}}, Segment{Vector2{1, 0}, Vector2{3, 0}}, true},
		{"collinear disjoint", Segment{Vector2{0, 0}, Vector2{1, 0}}, Segment{Vector2{2, 0}, Vector2{3, 0}}, false},
		{"segment end touching", Segment{Vector2{0, 0}, Vector2{2, 0}}, Segment{Vector2{1, 0}, Vector2{1, 1}}, true},
		{"segment through rect", Segment{Vector2{-1, 0.5}, Vector2{3, 0.5}}, Rect{0, 0, 2, 2}, true},
		{"segment beside rect", Segment{Vector2{3, -1}, Vector2{5, 1}}, Rect{0, 0, 2, 2}, false},
		{"segment past rect corner", Segment{Vector2{1.5, 3}, Vector2{3, 1.5}}, Rect{0, 0, 2, 2}, false},
		{"circle on rect side", Circle{Vector2{3, 1}, 1.5}, Rect{0, 0, 2, 2}, true},
		{"circle off rect corner", Circle{Vector2{3, 3}, 1}, Rect{0, 0, 2, 2}, false},
		{"rects", Rect{0, 0, 2, 2}, Rect{1, 1, 2, 2}, true},
		{"polygon inside polygon", square(0, 0, 4), square(1, 1, 1), true},
		{"disjoint polygons", square(0, 0, 1), square(3, 0, 1), false},
		{"square in notch", LShape(), square(1.3, 1.3, 0.4), false},
		{"crossing polygons", LShape(), square(0.5, 0.5, 1), true},
		{"circle inside triangle", Triangle{Vector2{0, 0}, Vector2{10, 0}, Vector2{0, 10}}, Circle{Vector2{2, 2}, 0.5}, true},
		{"circle touching quad edge", NewRotatedQuad(Vector2{0, 0}, Vector2{2, 2}, 0), Circle{Vector2{1.5, 0}, 1}, true},
		{"polyline through rect", Polyline{{-1, -1}, {1, 1}, {3, -1}}, Rect{0, 0, 2, 2}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, Overlap(c.a, c.b))
			assert.Equal(t, c.expected, Overlap(c.b, c.a), "overlap is symmetric")
		})
	}
}

func TestOverlapLinesAndRays(t *testing.T) {
	ray := Ray{Vector2{0, 0}, Vector2{1, 0}}
	assert.True(t, OverlapCircleRay(Circle{Vector2{5, 1}, 2}, ray))
	assert.False(t, OverlapCircleRay(Circle{Vector2{-5, 0}, 2}, ray))
	assert.True(t, OverlapCircleRay(Circle{Vector2{0.5, 0}, 2}, ray), "origin inside")
	assert.True(t, OverlapCircleLine(Circle{Vector2{-5, 0}, 2}, Line{Vector2{}, Vector2{1, 0}}))

	assert.True(t, OverlapRayShape(ray, square(3, -1, 2)))
	assert.False(t, OverlapRayShape(ray, square(-3, -1, 2)))
	assert.True(t, OverlapLineShape(Line{Vector2{}, Vector2{1, 0}}, square(-3, -1, 2)))
	assert.True(t, OverlapSegmentLine(Segment{Vector2{0, -1}, Vector2{0, 1}}, Line{Vector2{5, 0}, Vector2{1, 0}}))
}

func TestContains(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Shape
		expected bool
	}{
		{"small circle", Circle{Vector2{0, 0}, 5}, Circle{Vector2{1, 0}, 2}, true},
		{"circle touching inside", Circle{Vector2{0, 0}, 5}, Circle{Vector2{3, 0}, 2}, false},
		{"equal circles", Circle{Vector2{0, 0}, 5}, Circle{Vector2{0, 0}, 5}, false},
		{"rect in circle", Circle{Vector2{0, 0}, 5}, Rect{-1, -1, 2, 2}, true},
		{"rect in rect", Rect{0, 0, 4, 4}, Rect{1, 1, 2, 2}, true},
		{"rect touching rect", Rect{0, 0, 4, 4}, Rect{0, 0, 2, 2}, false},
		{"circle in rect", Rect{0, 0, 4, 4}, Circle{Vector2{2, 2}, 1}, true},
		{"circle filling rect", Rect{0, 0, 4, 4}, Circle{Vector2{2, 2}, 2}, false},
		{"circle in triangle", Triangle{Vector2{0, 0}, Vector2{10, 0}, Vector2{0, 10}}, Circle{Vector2{2, 2}, 1}, true},
		{"circle poking out of triangle", Triangle{Vector2{0, 0}, Vector2{10, 0}, Vector2{0, 10}}, Circle{Vector2{2, 2}, 2.5}, false},
		{"square in concave polygon", LShape(), square(0.2, 0.2, 0.4), true},
		{"segment across notch", LShape(), Segment{Vector2{0.5, 1.8}, Vector2{1.8, 0.5}}, false},
		{"segment in arm", LShape(), Segment{Vector2{0.5, 0.5}, Vector2{0.5, 1.5}}, true},
		{"clockwise container", square(0, 0, 4).Reversed(), square(1, 1, 1), true},
		{"quad", NewRotatedQuad(Vector2{0, 0}, Vector2{4, 4}, 0.3), Circle{Vector2{0, 0}, 1}, true},
		{"segments hold nothing", Segment{Vector2{0, 0}, Vector2{4, 0}}, Segment{Vector2{1, 0}, Vector2{2, 0}}, false},
		{"polylines hold nothing", Polyline{{0, 0}, {4, 0}, {4, 4}}, Circle{Vector2{3, 1}, 0.1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, Contains(c.a, c.b))
		})
	}
}

func TestClosestPoint(t *testing.T) {
	assert.Equal(t, Vector2{1, 0}, ClosestPoint(Circle{Vector2{0, 0}, 1}, Circle{Vector2{5, 0}, 1}))
	assert.Equal(t, Vector2{2, 1}, ClosestPoint(Rect{0, 0, 2, 2}, Circle{Vector2{5, 1}, 1}))
	assert.Equal(t, Vector2{3, 1}, ClosestPoint(Circle{Vector2{1, 1}, 2}, Rect{6, 0, 2, 2}))

	p := ClosestPoint(square(0, 0, 1), square(3, 0, 1))
	assert.Equal(t, 1.0, p.X)

	onA, onB := ClosestPointsSegmentSegment(
		Segment{Vector2{0, 0}, Vector2{2, 2}},
		Segment{Vector2{0, 2}, Vector2{2, 0}},
	)
	assert.Equal(t, onA, onB)
	assert.InDelta(t, 1, onA.X, 1e-12)

	onA, onB = ClosestPointsSegmentSegment(
		Segment{Vector2{0, 0}, Vector2{2, 0}},
		Segment{Vector2{1, 1}, Vector2{1, 3}},
	)
	assert.Equal(t, Vector2{1, 0}, onA)
	assert.Equal(t, Vector2{1, 1}, onB)
}

func TestIntersect(t *testing.T) {
	t.Run("circles", func(t *testing.T) {
		points := Intersect(Circle{Vector2{0, 0}, 1}, Circle{Vector2{1, 0}, 1})
		require.Len(t, points, 2)
		for _, p := range points {
			assert.InDelta(t, 0.5, p.Point.X, 1e-12)
			assert.InDelta(t, -0.5, p.Normal.X, 1e-12)
		}
		assert.Nil(t, Intersect(Circle{Vector2{0, 0}, 5}, Circle{Vector2{1, 0}, 1}), "nested")
		assert.Nil(t, Intersect(Circle{Vector2{0, 0}, 1}, Circle{Vector2{5, 0}, 1}), "apart")
	})

	t.Run("segment through circle", func(t *testing.T) {
		points := Intersect(Segment{Vector2{-5, 0}, Vector2{5, 0}}, Circle{Vector2{0, 0}, 2})
		require.Len(t, points, 2)
		assert.Equal(t, CollisionPoint{Vector2{-2, 0}, Vector2{-1, 0}}, points[0])
		assert.Equal(t, CollisionPoint{Vector2{2, 0}, Vector2{1, 0}}, points[1])
	})

	t.Run("overlapping squares", func(t *testing.T) {
		for _, b := range []Polygon{square(0.5, 0.5, 1), square(0.5, 0.5, 1).Reversed()} {
			points := Intersect(UnitSquare(), b)
			require.Len(t, points, 2)
			for _, p := range points {
				switch {
				case p.Point.Equal(Vector2{1, 0.5}):
					assert.Equal(t, Vector2{0, -1}, p.Normal)
				case p.Point.Equal(Vector2{0.5, 1}):
					assert.Equal(t, Vector2{-1, 0}, p.Normal)
				default:
					t.Errorf("unexpected crossing %v", p.Point)
				}
			}
		}
	})

	t.Run("segment normals face the other shape", func(t *testing.T) {
		points := Intersect(Rect{0, 0, 4, 4}, Segment{Vector2{3, -1}, Vector2{3, 5}})
		require.Len(t, points, 2)
		for _, p := range points {
			assert.Equal(t, Vector2{-1, 0}, p.Normal)
		}
	})

	t.Run("contained shapes do not intersect", func(t *testing.T) {
		assert.Empty(t, Intersect(square(0, 0, 4), square(1, 1, 1)))
	})
}

func TestIntersectPointCircle(t *testing.T) {
	tm, ok := IntersectPointCircle(Vector2{0, 0}, Vector2{10, 0}, Vector2{5, 0}, 1)
	require.True(t, ok)
	assert.InDelta(t, 0.4, tm, 1e-12)

	_, ok = IntersectPointCircle(Vector2{0, 0}, Vector2{1, 0}, Vector2{5, 0}, 1)
	assert.False(t, ok, "does not reach")
	_, ok = IntersectPointCircle(Vector2{0, 0}, Vector2{}, Vector2{5, 0}, 1)
	assert.False(t, ok, "not moving")
	_, ok = IntersectPointCircle(Vector2{0, 0}, Vector2{0, 10}, Vector2{5, 0}, 1)
	assert.False(t, ok, "misses")
}

func TestRays(t *testing.T) {
	ray := Ray{Vector2{0, 0}, Vector2{1, 0}}

	hit, ok := IntersectRaySegment(ray, Segment{Vector2{3, -1}, Vector2{3, 1}})
	require.True(t, ok)
	assert.Equal(t, Vector2{3, 0}, hit.Point)
	assert.Equal(t, Vector2{-1, 0}, hit.Normal)

	_, ok = IntersectRaySegment(ray, Segment{Vector2{-3, -1}, Vector2{-3, 1}})
	assert.False(t, ok, "behind the origin")

	hit, ok = IntersectLineSegment(Line{Vector2{0, 0}, Vector2{1, 0}}, Segment{Vector2{-3, -1}, Vector2{-3, 1}})
	require.True(t, ok)
	assert.Equal(t, Vector2{-3, 0}, hit.Point)

	hit, ok = IntersectRayCircle(ray, Circle{Vector2{0, 0}, 2})
	require.True(t, ok)
	assert.Equal(t, Vector2{2, 0}, hit.Point, "leaves the circle")

	hit, ok = IntersectRayShape(Ray{Vector2{-5, 0.5}, Vector2{1, 0}}, UnitSquare())
	require.True(t, ok)
	assert.Equal(t, Vector2{0, 0.5}, hit.Point)
	assert.Equal(t, Vector2{-1, 0}, hit.Normal)

	_, ok = IntersectRayShape(Ray{Vector2{-5, 5}, Vector2{1, 0}}, UnitSquare())
	assert.False(t, ok)
}
