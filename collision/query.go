package collision

import "github.com/osuushi/shapes/geom"

// Overlap reports whether the world shapes of two interacting colliders share
// any point.
func Overlap(a, b *Collider) bool {
	if !interacts(a, b) {
		return false
	}
	return geom.Overlap(a.WorldShape(), b.WorldShape())
}

// Contains reports whether b lies entirely inside a.
func Contains(a, b *Collider) bool {
	if !interacts(a, b) {
		return false
	}
	return geom.Contains(a.WorldShape(), b.WorldShape())
}

// ClosestPoint returns the point on a's outline closest to b. ok is false when
// the pair does not interact.
func ClosestPoint(a, b *Collider) (p geom.Vector2, ok bool) {
	if !interacts(a, b) {
		return geom.Vector2{}, false
	}
	return geom.ClosestPoint(a.WorldShape(), b.WorldShape()), true
}

// Intersect returns the contacts between the outlines of a and b, with normals
// of b.
func Intersect(a, b *Collider) geom.CollisionPoints {
	if !interacts(a, b) {
		return nil
	}
	return geom.Intersect(a.WorldShape(), b.WorldShape())
}
