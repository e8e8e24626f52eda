package geom

import "math"

// An ordered point set. There is no uniqueness constraint.
type Points []Vector2

// Vertex mean.
func (points Points) Centroid() Vector2 {
	if len(points) == 0 {
		return Vector2{}
	}
	var sum Vector2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(points)))
}

func (points Points) BoundingBox() Rect {
	if len(points) == 0 {
		return Rect{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Vector2{math.Min(min.X, p.X), math.Min(min.Y, p.Y)}
		max = Vector2{math.Max(max.X, p.X), math.Max(max.Y, p.Y)}
	}
	return NewRect(min, max)
}

// Circle around the bounding box center that encloses every point. Not the
// minimal enclosing circle.
func (points Points) BoundingCircle() Circle {
	if len(points) == 0 {
		return Circle{}
	}
	center := points.BoundingBox().Center()
	var radiusSquared float64
	for _, p := range points {
		radiusSquared = math.Max(radiusSquared, center.DistanceSquared(p))
	}
	return Circle{center, math.Sqrt(radiusSquared)}
}

// Closest point and its index. Ties go to the first point. Returns -1 for an
// empty set.
func (points Points) Closest(p Vector2) (Vector2, int) {
	best := math.Inf(1)
	index := -1
	for i, q := range points {
		if d := q.DistanceSquared(p); d < best {
			best = d
			index = i
		}
	}
	if index < 0 {
		return Vector2{}, -1
	}
	return points[index], index
}

func (points Points) Copy() Points {
	return append(Points(nil), points...)
}

func (points Points) Move(offset Vector2) Points {
	result := make(Points, len(points))
	for i, p := range points {
		result[i] = p.Add(offset)
	}
	return result
}

func (points Points) Rotate(pivot Vector2, angle float64) Points {
	result := make(Points, len(points))
	for i, p := range points {
		result[i] = p.RotateAround(pivot, angle)
	}
	return result
}

func (points Points) Scale(origin Vector2, factor float64) Points {
	result := make(Points, len(points))
	for i, p := range points {
		result[i] = origin.Add(p.Sub(origin).Scale(factor))
	}
	return result
}

func (points Points) ConvexHull() Polygon {
	return ConvexHull(points)
}

func (points Points) TriangulateDelaunay() Triangulation {
	return TriangulateDelaunay(points)
}
