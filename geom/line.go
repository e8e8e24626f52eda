package geom

import "math"

// An infinite line through Point along Direction. Direction need not be unit
// length but must not be zero.
type Line struct {
	Point     Vector2
	Direction Vector2
}

// A half line starting at Origin.
type Ray struct {
	Origin    Vector2
	Direction Vector2
}

func (l Line) Normal() Vector2 { return l.Direction.Normalize().PerpendicularRight() }
func (r Ray) Normal() Vector2  { return r.Direction.Normalize().PerpendicularRight() }

// Parameters along a and b at which the lines through two segments cross.
// ok is false for parallel lines.
func crossingParameters(aStart, aDir, bStart, bDir Vector2) (t, u float64, ok bool) {
	denom := aDir.Cross(bDir)
	if denom == 0 {
		return 0, 0, false
	}
	qp := bStart.Sub(aStart)
	return qp.Cross(bDir) / denom, qp.Cross(aDir) / denom, true
}

// Point where two segments cross. Parallel segments, including collinear
// overlapping ones, have no single crossing point and report false.
func IntersectSegmentSegment(a, b Segment) (Vector2, bool) {
	t, u, ok := crossingParameters(a.Start, a.Direction(), b.Start, b.Direction())
	if !ok || t < 0 || t > 1 || u < 0 || u > 1 {
		return Vector2{}, false
	}
	return a.Start.Add(a.Direction().Scale(t)), true
}

// Crossing with the segment, with the segment's normal turned to face the ray
// origin.
func IntersectRaySegment(ray Ray, s Segment) (CollisionPoint, bool) {
	t, u, ok := crossingParameters(ray.Origin, ray.Direction, s.Start, s.Direction())
	if !ok || t < 0 || u < 0 || u > 1 {
		return CollisionPoint{}, false
	}
	p := ray.Origin.Add(ray.Direction.Scale(t))
	return CollisionPoint{p, facing(s.Normal(), ray.Direction.Neg())}, true
}

func IntersectLineSegment(line Line, s Segment) (CollisionPoint, bool) {
	t, u, ok := crossingParameters(line.Point, line.Direction, s.Start, s.Direction())
	if !ok || u < 0 || u > 1 {
		return CollisionPoint{}, false
	}
	p := line.Point.Add(line.Direction.Scale(t))
	return CollisionPoint{p, facing(s.Normal(), line.Direction.Neg())}, true
}

// First crossing of the ray with the circle's outline. A ray starting inside
// the circle hits it on the way out.
func IntersectRayCircle(ray Ray, c Circle) (CollisionPoint, bool) {
	ts := lineCircleParameters(ray.Origin, ray.Direction, c)
	for _, t := range ts {
		if t >= 0 {
			p := ray.Origin.Add(ray.Direction.Scale(t))
			return CollisionPoint{p, p.Sub(c.Center).Normalize()}, true
		}
	}
	return CollisionPoint{}, false
}

// Closest hit of the ray against any edge of the shape, or against a circle.
func IntersectRayShape(ray Ray, shape Shape) (CollisionPoint, bool) {
	if c, ok := shape.(Circle); ok {
		return IntersectRayCircle(ray, c)
	}
	var hits CollisionPoints
	for _, e := range shape.Edges() {
		if hit, ok := IntersectRaySegment(ray, e); ok {
			hits = append(hits, hit)
		}
	}
	return hits.Closest(ray.Origin)
}

// Sorted parameters t where start + t*dir lies on the circle.
func lineCircleParameters(start, dir Vector2, c Circle) []float64 {
	a := dir.LengthSquared()
	if a == 0 {
		return nil
	}
	f := start.Sub(c.Center)
	b := 2 * f.Dot(dir)
	cc := f.LengthSquared() - c.Radius*c.Radius
	disc := b*b - 4*a*cc
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(disc)
	return []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
}

// Flip n so that it points the same way as towards.
func facing(n, towards Vector2) Vector2 {
	if n.Dot(towards) < 0 {
		return n.Neg()
	}
	return n
}
