package geom

import "math"

// ClosestPoint returns the point on a's outline that is closest to b. When
// several points are equally close, the first one found wins.
func ClosestPoint(a, b Shape) Vector2 {
	if ac, ok := a.(Circle); ok {
		if bc, ok := b.(Circle); ok {
			return ClosestPointCircleCircle(ac, bc)
		}
		return ac.ClosestPoint(ClosestPointOnShape(b, ac.Center))
	}
	if bc, ok := b.(Circle); ok {
		return ClosestPointOnShape(a, bc.Center)
	}
	aEdges, bEdges := a.Edges(), b.Edges()
	if len(aEdges) == 0 || len(bEdges) == 0 {
		return ClosestPointOnShape(a, ClosestPointOnShape(b, a.Centroid()))
	}
	closest, _ := ClosestPointsOutlines(aEdges, bEdges)
	return closest
}

// Point on a's outline facing b's center.
func ClosestPointCircleCircle(a, b Circle) Vector2 {
	return a.ClosestPoint(b.Center)
}

// Closest point to p on the outline of s.
func ClosestPointOnShape(s Shape, p Vector2) Vector2 {
	if c, ok := s.(Circle); ok {
		return c.ClosestPoint(p)
	}
	edges := s.Edges()
	if len(edges) == 0 {
		closest, _ := s.Vertices().Closest(p)
		return closest
	}
	closest, _ := edges.ClosestPoint(p)
	return closest
}

// Closest pair of points between two segments. Crossing segments give the
// crossing point twice.
func ClosestPointsSegmentSegment(a, b Segment) (onA, onB Vector2) {
	if p, ok := IntersectSegmentSegment(a, b); ok {
		return p, p
	}
	best := math.Inf(1)
	try := func(pa, pb Vector2) {
		if d := pa.DistanceSquared(pb); d < best {
			best = d
			onA, onB = pa, pb
		}
	}
	try(a.ClosestPoint(b.Start), b.Start)
	try(a.ClosestPoint(b.End), b.End)
	try(a.Start, b.ClosestPoint(a.Start))
	try(a.End, b.ClosestPoint(a.End))
	return onA, onB
}

// Closest pair of points between two edge lists.
func ClosestPointsOutlines(a, b Segments) (onA, onB Vector2) {
	best := math.Inf(1)
	for _, ea := range a {
		for _, eb := range b {
			pa, pb := ClosestPointsSegmentSegment(ea, eb)
			if d := pa.DistanceSquared(pb); d < best {
				best = d
				onA, onB = pa, pb
			}
		}
	}
	return onA, onB
}
