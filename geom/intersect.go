package geom

import "math"

// Intersect returns the points where the outlines of a and b cross, each with
// the surface normal of b at that point. It returns nil when nothing crosses.
// A shape lying entirely inside another does not intersect it.
//
// Closed shapes report outward normals regardless of winding. Segments and
// polylines have no outside, so their normals are turned to face a.
func Intersect(a, b Shape) CollisionPoints {
	a, b = orientOutline(a), orientOutline(b)
	switch a := a.(type) {
	case Circle:
		switch b := b.(type) {
		case Circle:
			return IntersectCircleCircle(a, b)
		default:
			var result CollisionPoints
			for _, e := range b.Edges() {
				for _, p := range IntersectSegmentCirclePoints(e, a) {
					result = append(result, CollisionPoint{p, edgeNormal(e, b, a.Center)})
				}
			}
			return result
		}
	default:
		if bc, ok := b.(Circle); ok {
			var result CollisionPoints
			for _, e := range a.Edges() {
				result = append(result, IntersectSegmentCircle(e, bc)...)
			}
			return result
		}
		var result CollisionPoints
		reference := a.Centroid()
		for _, ea := range a.Edges() {
			for _, eb := range b.Edges() {
				if p, ok := IntersectSegmentSegment(ea, eb); ok {
					result = append(result, CollisionPoint{p, edgeNormal(eb, b, reference)})
				}
			}
		}
		return result
	}
}

// Make closed polygon outlines counterclockwise so edge normals face out.
func orientOutline(s Shape) Shape {
	switch s := s.(type) {
	case Polygon:
		if s.IsClockwise() {
			return s.Reversed()
		}
	case Triangle:
		if s.SignedArea() < 0 {
			return Triangle{s.A, s.C, s.B}
		}
	case Quad:
		if s.ToPolygon().IsClockwise() {
			return Quad{s.A, s.D, s.C, s.B}
		}
	}
	return s
}

func edgeNormal(e Segment, owner Shape, reference Vector2) Vector2 {
	switch owner.Kind() {
	case KindSegment, KindPolyline:
		return facing(e.Normal(), reference.Sub(e.Start))
	}
	return e.Normal()
}

// Crossing points of a segment with a circle's outline, normals pointing out
// of the circle.
func IntersectSegmentCircle(s Segment, c Circle) CollisionPoints {
	var result CollisionPoints
	for _, p := range IntersectSegmentCirclePoints(s, c) {
		result = append(result, CollisionPoint{p, p.Sub(c.Center).Normalize()})
	}
	return result
}

func IntersectSegmentCirclePoints(s Segment, c Circle) []Vector2 {
	var result []Vector2
	for _, t := range lineCircleParameters(s.Start, s.Direction(), c) {
		if t >= 0 && t <= 1 {
			result = append(result, s.Start.Add(s.Direction().Scale(t)))
		}
	}
	return result
}

// Crossing points of two circle outlines, normals pointing out of b.
// Concentric and nested circles do not intersect.
func IntersectCircleCircle(a, b Circle) CollisionPoints {
	delta := b.Center.Sub(a.Center)
	d := delta.Length()
	if d == 0 || d > a.Radius+b.Radius || d < math.Abs(a.Radius-b.Radius) {
		return nil
	}
	along := (a.Radius*a.Radius - b.Radius*b.Radius + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, a.Radius*a.Radius-along*along))
	mid := a.Center.Add(delta.Scale(along / d))
	offset := delta.Perpendicular().Scale(h / d)

	point := func(p Vector2) CollisionPoint {
		return CollisionPoint{p, p.Sub(b.Center).Normalize()}
	}
	if h == 0 {
		return CollisionPoints{point(mid)}
	}
	return CollisionPoints{point(mid.Add(offset)), point(mid.Sub(offset))}
}

// Time of impact of a point moving by vel against a circle, as the smallest t
// in [0, 1] with |p + t*vel - center| = radius. ok is false when the point
// does not reach the circle during the step.
func IntersectPointCircle(p, vel, center Vector2, radius float64) (t float64, ok bool) {
	w := p.Sub(center)
	qa := vel.LengthSquared()
	if qa == 0 {
		return 0, false
	}
	qb := -vel.Dot(w)
	qc := w.LengthSquared() - radius*radius
	qd := qb*qb - qa*qc
	if qd < 0 {
		return 0, false
	}
	t = (qb - math.Sqrt(qd)) / qa
	if t < 0 || t > 1 {
		return 0, false
	}
	return t, true
}
