package geom

import (
	"math"

	"github.com/osuushi/shapes/internal/logging"
	"go.uber.org/zap"
)

// Bowyer-Watson incremental Delaunay triangulation.
//
// The construction is seeded with a supra-triangle enclosing every point. Each
// point in turn removes the triangles whose circumcircle strictly contains it
// and re-triangulates the hole they leave with triangles fanned from the
// point. Finally every triangle that still touches the supra-triangle is
// dropped. Exact duplicate points are skipped. Fewer than three distinct,
// non-collinear points give an empty result.
func TriangulateDelaunay(points Points) Triangulation {
	if len(points) < 3 {
		return nil
	}
	supra, ok := SupraTriangle(points, SupraTriangleMargin)
	if !ok {
		return nil
	}

	triangles := Triangulation{supra}
	seen := make(map[Vector2]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		triangles = insertDelaunayPoint(triangles, p)
	}

	return triangles.Filter(func(t Triangle) bool {
		return !t.SharesVertex(supra)
	})
}

// Unordered edge key, so that the two triangles sharing an edge agree on it.
type edgeKey struct {
	a, b Vector2
}

func newEdgeKey(a, b Vector2) edgeKey {
	if a.Below(b) {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

func insertDelaunayPoint(triangles Triangulation, p Vector2) Triangulation {
	kept := make(Triangulation, 0, len(triangles)+2)
	var boundary Segments
	counts := make(map[edgeKey]int)

	for _, t := range triangles {
		circle, ok := t.Circumcircle()
		if !ok {
			logging.L().Debug("degenerate triangle in delaunay construction", zap.Stringer("triangle", t))
			kept = append(kept, t)
			continue
		}
		if circle.Center.DistanceSquared(p) >= circle.Radius*circle.Radius {
			kept = append(kept, t)
			continue
		}
		for _, e := range t.Edges() {
			key := newEdgeKey(e.Start, e.End)
			if counts[key] == 0 {
				boundary = append(boundary, e)
			}
			counts[key]++
		}
	}

	// Edges shared by two bad triangles are interior to the hole. Bad
	// triangles are counterclockwise, so the remaining edges run
	// counterclockwise around the hole and each new triangle is too.
	for _, e := range boundary {
		if counts[newEdgeKey(e.Start, e.End)] == 1 {
			kept = append(kept, Triangle{e.Start, e.End, p})
		}
	}
	return kept
}

// A counterclockwise triangle comfortably enclosing every point. margin scales
// the triangle relative to the larger side of the bounding box. ok is false
// when the points all coincide.
func SupraTriangle(points Points, margin float64) (t Triangle, ok bool) {
	bounds := points.BoundingBox()
	dMax := math.Max(bounds.Width, bounds.Height) * margin
	if dMax <= 0 {
		return Triangle{}, false
	}
	center := bounds.Center()
	minY, maxY := bounds.Y, bounds.Y+bounds.Height
	a := Vector2{center.X, minY - dMax}
	b := Vector2{center.X + 1.25*dMax, maxY + dMax/4}
	c := Vector2{center.X - 1.25*dMax, maxY + dMax/4}
	return Triangle{a, b, c}, true
}

// Delaunay triangulation of the polygon's vertices, keeping the triangles
// whose centroid lies inside the polygon. Unlike ear clipping this favours
// well shaped triangles, but for concave polygons it may miss edges of the
// outline.
func (p Polygon) TriangulateDelaunay() Triangulation {
	return TriangulateDelaunay(Points(p)).Filter(func(t Triangle) bool {
		return p.ContainsPoint(t.Centroid())
	})
}
