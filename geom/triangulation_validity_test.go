package geom

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation of a simple polygon is valid. The rules
// are:
// 1. There are n-2 triangles.
// 2. Every triangle vertex is a vertex of the polygon.
// 3. Every triangle is counterclockwise with nonzero area.
// 4. The areas of the triangles sum to the area of the polygon.
func AssertValidTriangulation(t *testing.T, polygon Polygon, triangles Triangulation) {
	t.Helper()
	require.Len(t, triangles, len(polygon)-2, "triangle count")

	vertices := make(map[Vector2]struct{}, len(polygon))
	for _, v := range polygon {
		vertices[v] = struct{}{}
	}
	for _, tri := range triangles {
		for _, v := range tri.Vertices() {
			_, ok := vertices[v]
			require.True(t, ok, "triangle vertex %v is not a polygon vertex", v)
		}
		require.True(t, tri.IsCCW(), "clockwise or degenerate triangle: %s", tri)
	}

	require.InDelta(t, polygon.Area(), triangles.Area(), 1e-6*polygon.Area(), "sum of triangle areas must equal the polygon area")
}

// Every triangle must have an empty circumcircle: no input point lies strictly
// inside it, except the triangle's own vertices.
func AssertDelaunay(t *testing.T, points Points, triangles Triangulation) {
	t.Helper()
	for _, tri := range triangles {
		circle, ok := tri.Circumcircle()
		require.True(t, ok, "degenerate triangle %s", tri)
		for _, p := range points {
			if tri.HasVertex(p) {
				continue
			}
			d := circle.Center.Distance(p)
			require.False(t, d < circle.Radius-1e-7*circle.Radius, "point %v inside circumcircle of %s", p, tri)
		}
	}
}
