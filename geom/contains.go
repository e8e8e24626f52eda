package geom

import "math"

// Contains reports whether b lies entirely inside a. Boundaries are strict, so
// a shape touching a's outline from the inside is not contained. Segments and
// polylines enclose no area and contain nothing.
func Contains(a, b Shape) bool {
	switch a := a.(type) {
	case Circle:
		if c, ok := b.(Circle); ok {
			return ContainsCircleCircle(a, c)
		}
		// Circles are convex, so the vertices are enough
		return allPoints(b.Vertices(), a.ContainsPoint)
	case Rect:
		switch b := b.(type) {
		case Rect:
			return ContainsRectRect(a, b)
		case Circle:
			return ContainsRectRect(a, b.BoundingBox())
		default:
			return allPoints(b.Vertices(), a.containsPointStrict)
		}
	case Triangle:
		return containsInConvex(a.ToPolygon(), b)
	case Quad:
		if poly := a.ToPolygon(); poly.IsConvex() {
			return containsInConvex(poly, b)
		}
		return containsInPolygon(a.ToPolygon(), b)
	case Polygon:
		if a.IsConvex() {
			return containsInConvex(a, b)
		}
		return containsInPolygon(a, b)
	}
	return false
}

// b must be strictly smaller, and its far side strictly inside a.
func ContainsCircleCircle(a, b Circle) bool {
	if b.Radius >= a.Radius {
		return false
	}
	return a.Center.Distance(b.Center)+b.Radius < a.Radius
}

func ContainsRectRect(a, b Rect) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	return aMin.X < bMin.X && aMin.Y < bMin.Y && aMax.X > bMax.X && aMax.Y > bMax.Y
}

func (r Rect) containsPointStrict(p Vector2) bool {
	return p.X > r.X && p.X < r.X+r.Width && p.Y > r.Y && p.Y < r.Y+r.Height
}

func allPoints(points Points, inside func(Vector2) bool) bool {
	if len(points) == 0 {
		return false
	}
	for _, p := range points {
		if !inside(p) {
			return false
		}
	}
	return true
}

// Strictly on the inner side of every edge of a convex polygon, in either
// winding.
func convexContainsPointStrict(poly Polygon, p Vector2) bool {
	sign := 1.0
	if poly.IsClockwise() {
		sign = -1
	}
	for _, e := range poly.Edges() {
		if sign*e.Direction().Cross(p.Sub(e.Start)) <= 0 {
			return false
		}
	}
	return true
}

func containsInConvex(poly Polygon, b Shape) bool {
	if c, ok := b.(Circle); ok {
		return convexContainsPointStrict(poly, c.Center) && outlineClearance(poly, c)
	}
	return allPoints(b.Vertices(), func(p Vector2) bool {
		return convexContainsPointStrict(poly, p)
	})
}

// Concave polygons need the edge test too: every vertex of b can be inside
// while an edge of b cuts across a notch.
func containsInPolygon(poly Polygon, b Shape) bool {
	inside := func(p Vector2) bool {
		return poly.ContainsPoint(p) && poly.Edges().distanceSquared(p) > Tolerance*Tolerance
	}
	if c, ok := b.(Circle); ok {
		return inside(c.Center) && outlineClearance(poly, c)
	}
	if !allPoints(b.Vertices(), inside) {
		return false
	}
	edges := poly.Edges()
	for _, eb := range b.Edges() {
		for _, ea := range edges {
			if OverlapSegmentSegment(ea, eb) {
				return false
			}
		}
	}
	return true
}

// The circle stays clear of every edge.
func outlineClearance(poly Polygon, c Circle) bool {
	return poly.Edges().distanceSquared(c.Center) > c.Radius*c.Radius
}

func (segments Segments) distanceSquared(p Vector2) float64 {
	best := math.Inf(1)
	for _, s := range segments {
		best = math.Min(best, s.DistanceSquared(p))
	}
	return best
}
