package geom

import "math"

// Convex hull by Jarvis march (gift wrapping), in O(nh) for h hull vertices.
//
// The walk starts at the leftmost point, lowest on ties, and repeatedly picks
// the point with every other point to its left. Of several collinear
// candidates the farthest wins, so collinear points along the hull are not
// included. Points within Tolerance of each other count as one, and turns
// within rounding noise of zero count as collinear, so the hull stays convex
// for coordinates that only differ by floating point error. The result is
// counterclockwise. Fewer than three distinct points
// give an empty result; collinear input gives its two extremes.
func ConvexHull(points Points) Polygon {
	unique := points.dedupe()
	if len(unique) < 3 {
		return nil
	}

	start := 0
	for i, p := range unique {
		s := unique[start]
		if p.X < s.X || (p.X == s.X && p.Y < s.Y) {
			start = i
		}
	}

	var hull Polygon
	current := start
	for len(hull) <= len(unique) {
		hull = append(hull, unique[current])
		origin := unique[current]

		next := CircularIndex(current+1, len(unique))
		for i, candidate := range unique {
			if i == current || i == next {
				continue
			}
			a, b := unique[next].Sub(origin), candidate.Sub(origin)
			turn := a.Cross(b)
			noise := Tolerance * Tolerance * math.Sqrt(a.LengthSquared()*b.LengthSquared())
			switch {
			case turn < -noise:
				next = i
			case turn <= noise && a.Dot(b) > 0 && b.LengthSquared() > a.LengthSquared():
				next = i
			}
		}

		current = next
		if current == start {
			break
		}
	}
	return hull
}

// Points with every point within Tolerance of an earlier one dropped. Points
// are bucketed on a Tolerance grid, so only neighboring buckets are compared.
func (points Points) dedupe() Points {
	type cell struct{ x, y int64 }
	cellOf := func(p Vector2) cell {
		return cell{int64(math.Floor(p.X / Tolerance)), int64(math.Floor(p.Y / Tolerance))}
	}

	unique := make(Points, 0, len(points))
	buckets := make(map[cell][]int, len(points))
outer:
	for _, p := range points {
		c := cellOf(p)
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for _, j := range buckets[cell{c.x + dx, c.y + dy}] {
					if unique[j].Equal(p) {
						continue outer
					}
				}
			}
		}
		buckets[c] = append(buckets[c], len(unique))
		unique = append(unique, p)
	}
	return unique
}
