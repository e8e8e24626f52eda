package geom

import "math"

// An unordered list of triangles.
type Triangulation []Triangle

func (tris Triangulation) Area() float64 {
	var total float64
	for _, t := range tris {
		total += t.Area()
	}
	return total
}

func (tris Triangulation) ContainsPoint(p Vector2) bool {
	_, ok := tris.ContainingTriangle(p)
	return ok
}

// First triangle containing p.
func (tris Triangulation) ContainingTriangle(p Vector2) (Triangle, bool) {
	for _, t := range tris {
		if t.ContainsPoint(p) {
			return t, true
		}
	}
	return Triangle{}, false
}

// Triangle whose centroid is closest to p, and its index. -1 when empty.
func (tris Triangulation) ClosestTriangle(p Vector2) (Triangle, int) {
	best := math.Inf(1)
	index := -1
	for i, t := range tris {
		if d := t.Centroid().DistanceSquared(p); d < best {
			best = d
			index = i
		}
	}
	if index < 0 {
		return Triangle{}, -1
	}
	return tris[index], index
}

func (tris Triangulation) Filter(keep func(Triangle) bool) Triangulation {
	var result Triangulation
	for _, t := range tris {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}

func (tris Triangulation) ToPolygons() Polygons {
	result := make(Polygons, len(tris))
	for i, t := range tris {
		result[i] = t.ToPolygon()
	}
	return result
}

// A list of polygons. Counterclockwise members are solid and clockwise
// members are holes.
type Polygons []Polygon

// Sum of signed areas, so holes subtract from the total.
func (polygons Polygons) Area() float64 {
	var total float64
	for _, p := range polygons {
		total += p.SignedArea()
	}
	return total
}

// Even-odd rule over every outline, so points inside holes are outside.
func (polygons Polygons) ContainsPoint(q Vector2) bool {
	count := 0
	for _, p := range polygons {
		count += p.CrossingCount(q)
	}
	return count%2 == 1
}

func (polygons Polygons) Solids() Polygons {
	var result Polygons
	for _, p := range polygons {
		if p.SignedArea() > 0 {
			result = append(result, p)
		}
	}
	return result
}

func (polygons Polygons) Holes() Polygons {
	var result Polygons
	for _, p := range polygons {
		if p.SignedArea() < 0 {
			result = append(result, p)
		}
	}
	return result
}
