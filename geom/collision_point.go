package geom

import "math"

// A contact produced by an intersection query.
type CollisionPoint struct {
	Point  Vector2
	Normal Vector2
}

func (c CollisionPoint) Valid() bool { return !c.Normal.IsZero() }

// Flip the normal.
func (c CollisionPoint) Flip() CollisionPoint {
	return CollisionPoint{c.Point, c.Normal.Neg()}
}

// Intersection queries return nil when nothing intersects.
type CollisionPoints []CollisionPoint

func (points CollisionPoints) Valid() bool { return len(points) > 0 }

// Closest contact to p. ok is false for an empty list.
func (points CollisionPoints) Closest(p Vector2) (closest CollisionPoint, ok bool) {
	best := math.Inf(1)
	for _, c := range points {
		if d := c.Point.DistanceSquared(p); d < best {
			best = d
			closest = c
			ok = true
		}
	}
	return closest, ok
}

// Mean position and normal of all contacts.
func (points CollisionPoints) Average() CollisionPoint {
	if len(points) == 0 {
		return CollisionPoint{}
	}
	var point, normal Vector2
	for _, c := range points {
		point = point.Add(c.Point)
		normal = normal.Add(c.Normal)
	}
	n := float64(len(points))
	return CollisionPoint{point.Div(n), normal.Normalize()}
}
