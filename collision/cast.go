package collision

import "github.com/osuushi/shapes/geom"

// CastInfo describes the first contact of self against other during one time
// step. Only self receives a response: Normal and ReflectVector are meant for
// self, and other may be moving as well.
type CastInfo struct {
	// The shapes already overlap at the start of the step. No time of impact
	// is computed in that case.
	Overlapping bool
	Collided    bool
	// Fraction of the step, in [0, 1], at which the shapes first touch.
	Time float64
	// Where self's reference point is at the moment of contact: the center
	// for circles and points, otherwise the collider position.
	IntersectionPoint geom.Vector2
	// The contact point on other's surface.
	CollisionPoint geom.Vector2
	// Rest of self's relative motion for the step after bouncing off.
	ReflectVector geom.Vector2
	// Unit surface normal at the contact, facing against self's motion.
	Normal   geom.Vector2
	SelfVel  geom.Vector2
	OtherVel geom.Vector2
}

// CastIntersection sweeps self against other over dt seconds.
//
// Motion is relative: other is held still and self moves by
// (self.Vel - other.Vel) * dt. Circles and points are cast exactly against
// circles, points and the edges of every other shape. Edge shapes are cast
// against circles by swapping roles. Pairs of edge shapes only report
// overlap.
func CastIntersection(self, other *Collider, dt float64) CastInfo {
	if !interacts(self, other) {
		return CastInfo{}
	}
	if Overlap(self, other) {
		return CastInfo{Overlapping: true}
	}
	vel := self.Vel.Sub(other.Vel).Scale(dt)
	if vel.LengthSquared() <= 0 {
		return CastInfo{}
	}

	a, aRound := roundShape(self.WorldShape())
	b, bRound := roundShape(other.WorldShape())

	var hit contact
	var ok bool
	switch {
	case aRound && bRound:
		hit, ok = castCircleCircle(pointPadded(a.(geom.Circle)), vel, pointPadded(b.(geom.Circle)))
	case aRound:
		hit, ok = castCircleEdges(a.(geom.Circle), vel, b.Edges())
	case bRound:
		// Cast other against self in self's frame, then move the contact
		// back into other's frame
		hit, ok = castCircleEdges(b.(geom.Circle), vel.Neg(), a.Edges())
		if ok {
			shift := vel.Scale(hit.t)
			hit = contact{
				t:      hit.t,
				center: self.Pos.Add(shift),
				point:  hit.point.Add(shift),
				normal: hit.normal.Neg(),
			}
		}
	}
	if !ok {
		return CastInfo{}
	}
	return hit.info(vel, self, other)
}

// Circles, and points as zero radius circles. Anything else keeps its edges.
func roundShape(s geom.Shape) (geom.Shape, bool) {
	switch s := s.(type) {
	case geom.Circle:
		return s, true
	case geom.Segment:
		if s.IsPoint() {
			return geom.Circle{Center: s.Start}, true
		}
	}
	return s, false
}

type contact struct {
	t float64
	// Center of the moving circle at contact
	center geom.Vector2
	// Contact point on the obstacle
	point geom.Vector2
	// Obstacle normal at point, facing the moving circle
	normal geom.Vector2
}

func (h contact) info(vel geom.Vector2, self, other *Collider) CastInfo {
	n := h.normal
	if vel.Dot(n) > 0 {
		n = n.Neg()
	}
	return CastInfo{
		Collided:          true,
		Time:              h.t,
		IntersectionPoint: h.center,
		CollisionPoint:    h.point,
		ReflectVector:     vel.Reflect(n).Scale(1 - h.t),
		Normal:            n,
		SelfVel:           self.Vel,
		OtherVel:          other.Vel,
	}
}

// Points get the radius Overlap gives them.
func pointPadded(c geom.Circle) geom.Circle {
	if c.IsPoint() {
		c.Radius = geom.PointOverlapEpsilon
	}
	return c
}

// Circle moving by vel against a still circle. A zero combined radius falls
// back to the point overlap radius.
func castCircleCircle(c geom.Circle, vel geom.Vector2, other geom.Circle) (contact, bool) {
	r := c.Radius + other.Radius
	if r <= 0 {
		r = geom.PointOverlapEpsilon
	}
	t, ok := geom.IntersectPointCircle(c.Center, vel, other.Center, r)
	if !ok {
		return contact{}, false
	}
	center := c.Center.Add(vel.Scale(t))
	normal := center.Sub(other.Center).Normalize()
	return contact{t, center, other.Center.Add(normal.Scale(other.Radius)), normal}, true
}

// Earliest contact of a moving circle with any of the edges.
func castCircleEdges(c geom.Circle, vel geom.Vector2, edges geom.Segments) (best contact, found bool) {
	for _, e := range edges {
		if hit, ok := castCircleSegment(c, vel, e); ok && (!found || hit.t < best.t) {
			best, found = hit, true
		}
	}
	return best, found
}

// Circle moving by vel against a still segment. The circle's center is swept
// against the capsule around the segment: the side facing the circle pushed
// out by the radius, and a circle of the radius around each end. A point
// moving along the segment's own line hits its nearer end.
func castCircleSegment(c geom.Circle, vel geom.Vector2, s geom.Segment) (best contact, found bool) {
	if s.IsPoint() {
		return castCircleCircle(c, vel, geom.Circle{Center: s.Start})
	}
	consider := func(h contact) {
		if h.t >= 0 && h.t <= 1 && (!found || h.t < best.t) {
			best, found = h, true
		}
	}
	r := c.Radius
	speedSquared := vel.LengthSquared()

	side := s.Normal()
	if side.Dot(c.Center.Sub(s.Start)) < 0 {
		side = side.Neg()
	}
	if vel.Dot(side) < 0 {
		face := s.Move(side.Scale(r))
		path := geom.Segment{Start: c.Center, End: c.Center.Add(vel)}
		if p, ok := geom.IntersectSegmentSegment(path, face); ok {
			t := p.Sub(c.Center).Dot(vel) / speedSquared
			consider(contact{t, p, p.Sub(side.Scale(r)), side})
		}
	}

	for _, end := range [2]geom.Vector2{s.Start, s.End} {
		if r > 0 {
			if t, ok := geom.IntersectPointCircle(c.Center, vel, end, r); ok {
				center := c.Center.Add(vel.Scale(t))
				consider(contact{t, center, end, center.Sub(end).Normalize()})
			}
			continue
		}
		toEnd := end.Sub(c.Center)
		if vel.Cross(toEnd) == 0 && s.Direction().Cross(toEnd) == 0 {
			consider(contact{toEnd.Dot(vel) / speedSquared, end, end, vel.Normalize().Neg()})
		}
	}
	return best, found
}
