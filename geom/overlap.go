package geom

import "math"

// Overlap reports whether two shapes share any point. It is symmetric.
//
// Zero radius circles and zero length segments are points, and a point only
// meaningfully overlaps a line when it has some size, so they are tested as
// circles of radius PointOverlapEpsilon.
func Overlap(a, b Shape) bool {
	a, b = pointEquivalent(a), pointEquivalent(b)
	switch a := a.(type) {
	case Circle:
		switch b := b.(type) {
		case Circle:
			return OverlapCircleCircle(a, b)
		case Segment:
			return OverlapCircleSegment(a, b)
		case Rect:
			return OverlapCircleRect(a, b)
		default:
			return overlapCircleOutline(a, b)
		}
	case Segment:
		switch b := b.(type) {
		case Circle:
			return OverlapCircleSegment(b, a)
		case Segment:
			return OverlapSegmentSegment(a, b)
		case Rect:
			return OverlapSegmentRect(a, b)
		default:
			return overlapOutlines(a, b)
		}
	case Rect:
		switch b := b.(type) {
		case Circle:
			return OverlapCircleRect(b, a)
		case Segment:
			return OverlapSegmentRect(b, a)
		case Rect:
			return a.Overlaps(b)
		default:
			return overlapOutlines(a, b)
		}
	default:
		if c, ok := b.(Circle); ok {
			return overlapCircleOutline(c, a)
		}
		return overlapOutlines(a, b)
	}
}

func pointEquivalent(s Shape) Shape {
	switch s := s.(type) {
	case Circle:
		if s.IsPoint() {
			return Circle{s.Center, PointOverlapEpsilon}
		}
	case Segment:
		if s.IsPoint() {
			return Circle{s.Start, PointOverlapEpsilon}
		}
	}
	return s
}

func OverlapCircleCircle(a, b Circle) bool {
	r := a.Radius + b.Radius
	return a.Center.DistanceSquared(b.Center) < r*r
}

func OverlapCirclePoint(c Circle, p Vector2) bool {
	return c.ContainsPoint(p)
}

func OverlapCircleSegment(c Circle, s Segment) bool {
	if c.ContainsPoint(s.Start) || c.ContainsPoint(s.End) {
		return true
	}
	return s.DistanceSquared(c.Center) < c.Radius*c.Radius
}

func OverlapCircleLine(c Circle, l Line) bool {
	d := c.Center.Sub(l.Point).Cross(l.Direction.Normalize())
	return math.Abs(d) < c.Radius
}

func OverlapCircleRay(c Circle, ray Ray) bool {
	if c.ContainsPoint(ray.Origin) {
		return true
	}
	along := c.Center.Sub(ray.Origin).Dot(ray.Direction)
	if along <= 0 {
		return false
	}
	closest := ray.Origin.Add(ray.Direction.Scale(along / ray.Direction.LengthSquared()))
	return closest.DistanceSquared(c.Center) < c.Radius*c.Radius
}

func OverlapCircleRect(c Circle, r Rect) bool {
	min, max := r.Min(), r.Max()
	closest := Vector2{Clamp(c.Center.X, min.X, max.X), Clamp(c.Center.Y, min.Y, max.Y)}
	return closest.DistanceSquared(c.Center) < c.Radius*c.Radius
}

// Two segments overlap unless one lies entirely on one side of the other's
// line. Parallel segments overlap only when they are collinear and their
// projections onto the shared axis overlap. No intersection point is
// computed.
func OverlapSegmentSegment(a, b Segment) bool {
	if a.IsPoint() {
		return OverlapCircleSegment(Circle{a.Start, PointOverlapEpsilon}, b)
	}
	if b.IsPoint() {
		return OverlapCircleSegment(Circle{b.Start, PointOverlapEpsilon}, a)
	}
	da, db := a.Direction(), b.Direction()
	if da.Cross(db) == 0 {
		if da.Cross(b.Start.Sub(a.Start)) != 0 {
			return false
		}
		aMin, aMax := 0.0, da.Dot(da)
		bMin, bMax := b.Start.Sub(a.Start).Dot(da), b.End.Sub(a.Start).Dot(da)
		if bMin > bMax {
			bMin, bMax = bMax, bMin
		}
		return aMin <= bMax && bMin <= aMax
	}
	if segmentOnOneSide(a.Start, da, b) || segmentOnOneSide(b.Start, db, a) {
		return false
	}
	return true
}

// Both ends of s strictly on the same side of the line through origin.
func segmentOnOneSide(origin, dir Vector2, s Segment) bool {
	d1 := dir.Cross(s.Start.Sub(origin))
	d2 := dir.Cross(s.End.Sub(origin))
	return d1*d2 > 0
}

func OverlapSegmentLine(s Segment, l Line) bool {
	return !segmentOnOneSide(l.Point, l.Direction, s)
}

func OverlapSegmentRay(s Segment, r Ray) bool {
	_, ok := IntersectRaySegment(r, s)
	return ok
}

// Separating axis test: the segment's normal, then the rect's axes.
func OverlapSegmentRect(s Segment, r Rect) bool {
	n := s.Direction().Perpendicular()
	corners := r.Vertices()
	positive, negative := false, false
	for _, c := range corners {
		d := n.Dot(c.Sub(s.Start))
		if d >= 0 {
			positive = true
		}
		if d <= 0 {
			negative = true
		}
	}
	if !(positive && negative) {
		return false
	}
	return s.BoundingBox().Overlaps(r)
}

func OverlapLineShape(l Line, shape Shape) bool {
	if c, ok := shape.(Circle); ok {
		return OverlapCircleLine(c, l)
	}
	for _, e := range shape.Edges() {
		if OverlapSegmentLine(e, l) {
			return true
		}
	}
	return false
}

func OverlapRayShape(r Ray, shape Shape) bool {
	if c, ok := shape.(Circle); ok {
		return OverlapCircleRay(c, r)
	}
	if shape.ContainsPoint(r.Origin) {
		return true
	}
	for _, e := range shape.Edges() {
		if OverlapSegmentRay(e, r) {
			return true
		}
	}
	return false
}

// A circle overlaps an edge shape when the shape contains the center or the
// circle touches an edge.
func overlapCircleOutline(c Circle, shape Shape) bool {
	if shape.ContainsPoint(c.Center) {
		return true
	}
	for _, e := range shape.Edges() {
		if OverlapCircleSegment(c, e) {
			return true
		}
	}
	return false
}

// Two edge shapes overlap when any edges overlap, or when one contains the
// other entirely, which shows as a vertex of one inside the other.
func overlapOutlines(a, b Shape) bool {
	if !a.BoundingBox().Overlaps(b.BoundingBox()) {
		return false
	}
	aEdges, bEdges := a.Edges(), b.Edges()
	for _, ea := range aEdges {
		for _, eb := range bEdges {
			if OverlapSegmentSegment(ea, eb) {
				return true
			}
		}
	}
	if bv := b.Vertices(); len(bv) > 0 && a.ContainsPoint(bv[0]) {
		return true
	}
	if av := a.Vertices(); len(av) > 0 && b.ContainsPoint(av[0]) {
		return true
	}
	return false
}
