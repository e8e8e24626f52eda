package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	s := Segment{Vector2{0, 0}, Vector2{4, 0}}
	assert.Equal(t, 4.0, s.Length())
	assert.Equal(t, Vector2{2, 0}, s.Center())
	assert.Equal(t, Vector2{0, -1}, s.Normal())
	assert.Equal(t, Vector2{1, 0}, s.ClosestPoint(Vector2{1, 5}))
	assert.Equal(t, Vector2{4, 0}, s.ClosestPoint(Vector2{9, 5}))
	assert.Equal(t, Vector2{0, 0}, s.ClosestPoint(Vector2{-3, -3}))
	assert.Equal(t, 25.0, s.DistanceSquared(Vector2{2, 5}))
	assert.True(t, s.ContainsPoint(Vector2{3, 0}))
	assert.False(t, s.ContainsPoint(Vector2{3, 0.1}))
	assert.True(t, Segment{Vector2{1, 1}, Vector2{1, 1}}.IsPoint())

	segments := Segments{s, {Vector2{0, 2}, Vector2{4, 2}}}
	p, i := segments.ClosestPoint(Vector2{1, 1.5})
	assert.Equal(t, Vector2{1, 2}, p)
	assert.Equal(t, 1, i)
	_, i = Segments{}.ClosestPoint(Vector2{})
	assert.Equal(t, -1, i)
}

func TestCircle(t *testing.T) {
	c := Circle{Vector2{1, 1}, 2}
	assert.InDelta(t, 4*math.Pi, c.Area(), 1e-12)
	assert.True(t, c.ContainsPoint(Vector2{2, 2}))
	assert.False(t, c.ContainsPoint(Vector2{3, 1}), "boundary is outside")
	assert.Equal(t, Vector2{3, 1}, c.ClosestPoint(Vector2{10, 1}))
	assert.Equal(t, Rect{-1, -1, 4, 4}, c.BoundingBox())

	poly := c.ToPolygon(64)
	assert.Len(t, poly, 64)
	assert.InDelta(t, c.Area(), poly.Area(), 0.05)
	assert.False(t, poly.IsClockwise())

	// Quarter turns land exactly on the axes
	quarters := Circle{Radius: 3}.ToPolygon(32)
	assert.Equal(t, Vector2{3, 0}, quarters[0])
	assert.Equal(t, Vector2{0, 3}, quarters[8])
	assert.Equal(t, Vector2{-3, 0}, quarters[16])
	assert.Equal(t, Vector2{0, -3}, quarters[24])
}

func TestTriangle(t *testing.T) {
	tri := Triangle{Vector2{0, 0}, Vector2{4, 0}, Vector2{0, 3}}

	t.Run("area and winding", func(t *testing.T) {
		assert.Equal(t, 6.0, tri.Area())
		assert.True(t, tri.IsCCW())
		assert.Equal(t, -6.0, Triangle{tri.A, tri.C, tri.B}.SignedArea())
	})

	t.Run("circumcircle", func(t *testing.T) {
		circle, ok := tri.Circumcircle()
		require.True(t, ok)
		assert.InDelta(t, 2, circle.Center.X, 1e-12)
		assert.InDelta(t, 1.5, circle.Center.Y, 1e-12)
		assert.InDelta(t, 2.5, circle.Radius, 1e-12)

		_, ok = Triangle{Vector2{0, 0}, Vector2{1, 1}, Vector2{2, 2}}.Circumcircle()
		assert.False(t, ok)
	})

	t.Run("contains", func(t *testing.T) {
		assert.True(t, tri.ContainsPoint(Vector2{1, 1}))
		assert.True(t, tri.ContainsPoint(Vector2{2, 0}))
		assert.False(t, tri.ContainsPointStrict(Vector2{2, 0}))
		assert.False(t, tri.ContainsPoint(Vector2{3, 3}))
	})

	t.Run("narrow", func(t *testing.T) {
		assert.False(t, tri.IsNarrow(NarrowThreshold))
		sliver := Triangle{Vector2{0, 0}, Vector2{10, 0}, Vector2{5, 0.2}}
		assert.True(t, sliver.IsNarrow(NarrowThreshold))
	})

	t.Run("shared vertices", func(t *testing.T) {
		other := Triangle{Vector2{4, 0}, Vector2{5, 5}, Vector2{9, 9}}
		assert.True(t, tri.SharesVertex(other))
		assert.False(t, tri.SharesVertex(other.Move(Vector2{1, 0})))
		assert.True(t, tri.IsSimilar(Triangle{tri.C, tri.A, tri.B}))
	})

	t.Run("random points stay inside", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		for i := 0; i < 100; i++ {
			assert.True(t, tri.ContainsPoint(tri.RandomPointInside(rng)))
		}
	})

	t.Run("subdivision keeps area", func(t *testing.T) {
		rng := rand.New(rand.NewSource(6))
		big := Triangle{Vector2{0, 0}, Vector2{100, 0}, Vector2{0, 100}}
		pieces := big.TriangulateMinArea(250, rng)
		assert.Greater(t, len(pieces), 1)
		assert.InDelta(t, big.Area(), pieces.Area(), 1e-6)

		assert.Equal(t, Triangulation{tri}, tri.TriangulateMinArea(100, rng))
	})

	t.Run("fan", func(t *testing.T) {
		fan := tri.TriangulateAround(tri.Centroid())
		assert.Len(t, fan, 3)
		assert.InDelta(t, tri.Area(), fan.Area(), 1e-12)
	})

	t.Run("transforms", func(t *testing.T) {
		rotated := tri.Rotate(math.Pi / 3)
		assert.InDelta(t, tri.Area(), rotated.Area(), 1e-9)
		assert.InDelta(t, 24, tri.Scale(2).Area(), 1e-9)
	})
}

func TestRect(t *testing.T) {
	r := NewRect(Vector2{4, 3}, Vector2{0, 1})
	assert.Equal(t, Rect{0, 1, 4, 2}, r)
	assert.Equal(t, 8.0, r.Area())
	assert.Equal(t, Vector2{2, 2}, r.Center())
	assert.True(t, r.ContainsPoint(Vector2{0, 1}))
	assert.False(t, r.ContainsPoint(Vector2{5, 1}))

	bl, br, tr, tl := r.Corners()
	assert.Equal(t, []Vector2{{0, 1}, {4, 1}, {4, 3}, {0, 3}}, []Vector2{bl, br, tr, tl})
	assert.False(t, r.ToPolygon().IsClockwise())

	assert.True(t, r.Overlaps(Rect{3, 2, 5, 5}))
	assert.False(t, r.Overlaps(Rect{5, 2, 5, 5}))
	assert.Equal(t, Rect{0, 0, 4, 3}, r.Enlarge(Vector2{1, 0}))
	assert.Equal(t, Rect{-1, 0, 6, 4}, r.Pad(1))
	assert.Equal(t, Vector2{4, 2}, r.ClosestPoint(Vector2{7, 2}))
}

func TestQuad(t *testing.T) {
	q := NewRotatedQuad(Vector2{5, 5}, Vector2{2, 4}, math.Pi/4)
	assert.InDelta(t, 8, q.Area(), 1e-9)
	c := q.Centroid()
	assert.InDelta(t, 5, c.X, 1e-9)
	assert.InDelta(t, 5, c.Y, 1e-9)
	assert.True(t, q.ContainsPoint(Vector2{5, 5}))
	assert.False(t, q.ContainsPoint(Vector2{6.5, 3.5}))
	assert.InDelta(t, 8, q.Rotate(1).Area(), 1e-9)
}

func TestTriangulation(t *testing.T) {
	tris := Rect{0, 0, 2, 2}.Triangulate()
	assert.True(t, tris.ContainsPoint(Vector2{1, 0.5}))
	assert.False(t, tris.ContainsPoint(Vector2{3, 0.5}))

	_, i := tris.ClosestTriangle(Vector2{10, 10})
	assert.GreaterOrEqual(t, i, 0)
	_, i = Triangulation{}.ClosestTriangle(Vector2{})
	assert.Equal(t, -1, i)

	assert.Len(t, tris.ToPolygons(), 2)
	assert.Len(t, tris.Filter(func(Triangle) bool { return false }), 0)
}

func TestCollisionPoints(t *testing.T) {
	var none CollisionPoints
	_, ok := none.Closest(Vector2{})
	assert.False(t, ok)
	assert.False(t, none.Valid())

	points := CollisionPoints{
		{Vector2{5, 0}, Vector2{1, 0}},
		{Vector2{1, 0}, Vector2{0, 1}},
	}
	closest, ok := points.Closest(Vector2{})
	assert.True(t, ok)
	assert.Equal(t, Vector2{1, 0}, closest.Point)
	assert.Equal(t, Vector2{3, 0}, points.Average().Point)
	assert.Equal(t, Vector2{-1, 0}, points[0].Flip().Normal)
}
