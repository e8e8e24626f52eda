package geom

import (
	"math"
	"math/rand"
)

// A closed polygon. Vertices should wind counterclockwise and the outline
// should not intersect itself; FixWindingOrder repairs clockwise input.
//
// Methods on Polygon that change vertex positions mutate the polygon in place.
// The Moved, Rotated and Scaled variants return modified copies instead.
type Polygon []Vector2

func (p Polygon) Kind() ShapeKind { return KindPolygon }

// Shoelace formula. Positive for counterclockwise winding.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	for i, a := range p {
		b := p[CircularIndex(i+1, len(p))]
		sum += a.Cross(b)
	}
	return sum / 2
}

func (p Polygon) Area() float64 { return math.Abs(p.SignedArea()) }

// Area weighted centroid. The per-edge factor keeps its sign, so concave
// polygons and clockwise holes come out right. Degenerate polygons fall back
// to the vertex mean.
func (p Polygon) Centroid() Vector2 {
	signedArea := p.SignedArea()
	if signedArea == 0 {
		return p.CentroidMean()
	}
	var sum Vector2
	for i, a := range p {
		b := p[CircularIndex(i+1, len(p))]
		sum = sum.Add(a.Add(b).Scale(a.Cross(b)))
	}
	return sum.Div(6 * signedArea)
}

func (p Polygon) CentroidMean() Vector2 { return Points(p).Centroid() }

func (p Polygon) Circumference() float64 { return p.Edges().Length() }

func (p Polygon) BoundingBox() Rect      { return Points(p).BoundingBox() }
func (p Polygon) BoundingCircle() Circle { return Points(p).BoundingCircle() }
func (p Polygon) Vertices() Points       { return Points(p) }

func (p Polygon) Edges() Segments {
	if len(p) < 2 {
		return nil
	}
	edges := make(Segments, len(p))
	for i, a := range p {
		edges[i] = Segment{a, p[CircularIndex(i+1, len(p))]}
	}
	return edges
}

func (p Polygon) Translated(offset Vector2) Shape { return p.Moved(offset) }

// Vertex access wraps, so -1 is the last vertex and len(p) is the first.
func (p Polygon) Vertex(i int) Vector2 {
	return p[CircularIndex(i, len(p))]
}

func (p Polygon) Copy() Polygon {
	return append(Polygon(nil), p...)
}

func (p Polygon) IsClockwise() bool { return p.SignedArea() < 0 }

// Every turn between consecutive edges goes the same way. Collinear vertices
// are ignored.
func (p Polygon) IsConvex() bool {
	if len(p) < 3 {
		return false
	}
	sign := 0
	for i := range p {
		a, b, c := p.Vertex(i-1), p[i], p.Vertex(i+1)
		s := Sign(b.Sub(a).Cross(c.Sub(b)))
		if s == 0 {
			continue
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return sign != 0
}

// Reverse vertex order in place.
func (p Polygon) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

func (p Polygon) Reversed() Polygon {
	r := p.Copy()
	r.Reverse()
	return r
}

// Make the polygon counterclockwise. Applying it twice is the same as once.
func (p Polygon) FixWindingOrder() {
	if p.IsClockwise() {
		p.Reverse()
	}
}

func (p Polygon) MakeClockwise() {
	if p.SignedArea() > 0 {
		p.Reverse()
	}
}

func (p Polygon) MakeCounterClockwise() { p.FixWindingOrder() }

// Number of edges crossed by a ray from q along +x. Each edge is treated as
// half open in y, so a ray through a vertex counts it once.
func (p Polygon) CrossingCount(q Vector2) int {
	crossingCount := 0
	for i, a := range p {
		b := p[CircularIndex(i+1, len(p))]
		if (a.Y > q.Y) == (b.Y > q.Y) {
			continue
		}
		x := a.X + (q.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if q.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

// Even-odd rule point in polygon test. Results for points exactly on an edge
// are not guaranteed either way.
func (p Polygon) ContainsPoint(q Vector2) bool {
	if len(p) < 3 {
		return false
	}
	return p.CrossingCount(q)%2 == 1
}

func (p Polygon) ContainsPoints(points ...Vector2) bool {
	for _, q := range points {
		if !p.ContainsPoint(q) {
			return false
		}
	}
	return true
}

// Closest point on the outline.
func (p Polygon) ClosestPoint(q Vector2) Vector2 {
	closest, _ := p.ClosestEdgePoint(q)
	return closest
}

// Closest point on the outline and the index of the edge it lies on. The edge
// with index i runs from vertex i to vertex i+1.
func (p Polygon) ClosestEdgePoint(q Vector2) (Vector2, int) {
	if len(p) == 1 {
		return p[0], 0
	}
	return p.Edges().ClosestPoint(q)
}

func (p Polygon) ClosestVertex(q Vector2) (Vector2, int) {
	return Points(p).Closest(q)
}

// Move the polygon so that its centroid is at newCenter.
func (p Polygon) Center(newCenter Vector2) {
	p.Move(newCenter.Sub(p.Centroid()))
}

func (p Polygon) Move(offset Vector2) {
	for i := range p {
		p[i] = p[i].Add(offset)
	}
}

// Rotate around the centroid.
func (p Polygon) Rotate(angle float64) {
	c := p.Centroid()
	for i := range p {
		p[i] = p[i].RotateAround(c, angle)
	}
}

// Scale relative to the centroid, independently on each axis.
func (p Polygon) Scale(factor Vector2) {
	c := p.Centroid()
	for i := range p {
		d := p[i].Sub(c)
		p[i] = c.Add(Vector2{d.X * factor.X, d.Y * factor.Y})
	}
}

func (p Polygon) ScaleUniform(factor float64) {
	p.Scale(Vector2{factor, factor})
}

func (p Polygon) Moved(offset Vector2) Polygon {
	r := p.Copy()
	r.Move(offset)
	return r
}

func (p Polygon) Rotated(angle float64) Polygon {
	r := p.Copy()
	r.Rotate(angle)
	return r
}

func (p Polygon) Scaled(factor float64) Polygon {
	r := p.Copy()
	r.ScaleUniform(factor)
	return r
}

// Drop vertices that lie on the line through their neighbours.
func (p *Polygon) RemoveColinearVertices() {
	poly := *p
	if len(poly) < 3 {
		return
	}
	result := make(Polygon, 0, len(poly))
	for i, cur := range poly {
		prev, next := poly.Vertex(i-1), poly.Vertex(i+1)
		if math.Abs(prev.Sub(cur).Cross(next.Sub(cur))) > Tolerance {
			result = append(result, cur)
		}
	}
	*p = result
}

// Default tolerance for RemoveDuplicates.
const DuplicateToleranceSquared = 0.001

// Drop vertices closer than sqrt(toleranceSquared) to their successor.
func (p *Polygon) RemoveDuplicates(toleranceSquared float64) {
	poly := *p
	if len(poly) < 3 {
		return
	}
	result := make(Polygon, 0, len(poly))
	for i, cur := range poly {
		if cur.DistanceSquared(poly.Vertex(i+1)) > toleranceSquared {
			result = append(result, cur)
		}
	}
	*p = result
}

// Remove vertices from the shortest edges until newCount remain. Fewer than 3
// clears the polygon.
func (p *Polygon) ReduceVertexCount(newCount int) {
	if newCount < 3 {
		*p = (*p)[:0]
		return
	}
	for len(*p) > newCount {
		poly := *p
		shortest := 0
		minD := math.Inf(1)
		for i, v := range poly {
			if d := v.DistanceSquared(poly.Vertex(i + 1)); d < minD {
				minD = d
				shortest = i
			}
		}
		*p = append(poly[:shortest], poly[shortest+1:]...)
	}
}

// Split the longest edges at their midpoints until newCount vertices exist.
func (p *Polygon) IncreaseVertexCount(newCount int) {
	if len(*p) < 2 {
		return
	}
	for len(*p) < newCount {
		poly := *p
		longest := 0
		maxD := -1.0
		for i, v := range poly {
			if d := v.DistanceSquared(poly.Vertex(i + 1)); d > maxD {
				maxD = d
				longest = i
			}
		}
		mid := poly[longest].Lerp(poly.Vertex(longest+1), 0.5)
		poly = append(poly, Vector2{})
		copy(poly[longest+2:], poly[longest+1:])
		poly[longest+1] = mid
		*p = poly
	}
}

// Pull every vertex towards its neighbours by amount. baseWeight pushes
// vertices away from the centroid to counter the shrinking this causes.
func (p Polygon) Smooth(amount, baseWeight float64) {
	if len(p) < 3 {
		return
	}
	centroid := p.Centroid()
	source := p.Copy()
	for i, cur := range source {
		prev, next := source.Vertex(i-1), source.Vertex(i+1)
		dir := prev.Sub(cur).Add(next.Sub(cur)).Add(cur.Sub(centroid).Scale(baseWeight))
		p[i] = cur.Add(dir.Scale(amount))
	}
}

// Uniformly distributed random point inside the polygon, picked through an
// area weighted triangle of its triangulation.
func (p Polygon) RandomPointInside(rng *rand.Rand) Vector2 {
	rng = orDefault(rng)
	triangles := p.Triangulate(rng)
	if len(triangles) == 0 {
		return p.CentroidMean()
	}
	return triangles.randomPointInside(rng, triangles.Area())
}

// RandomPointsInside is RandomPointInside n times over one triangulation.
func (p Polygon) RandomPointsInside(rng *rand.Rand, n int) Points {
	if n <= 0 {
		return nil
	}
	rng = orDefault(rng)
	triangles := p.Triangulate(rng)
	result := make(Points, n)
	if len(triangles) == 0 {
		for i := range result {
			result[i] = p.CentroidMean()
		}
		return result
	}
	area := triangles.Area()
	for i := range result {
		result[i] = triangles.randomPointInside(rng, area)
	}
	return result
}

func (triangles Triangulation) randomPointInside(rng *rand.Rand, area float64) Vector2 {
	target := rng.Float64() * area
	for _, t := range triangles {
		target -= t.Area()
		if target <= 0 {
			return t.RandomPointInside(rng)
		}
	}
	return triangles[len(triangles)-1].RandomPointInside(rng)
}

// A vertex picked uniformly. The zero vector for an empty polygon.
func (p Polygon) RandomVertex(rng *rand.Rand) Vector2 {
	if len(p) == 0 {
		return Vector2{}
	}
	return p[orDefault(rng).Intn(len(p))]
}

// An edge picked uniformly, regardless of its length.
func (p Polygon) RandomEdge(rng *rand.Rand) Segment {
	edges := p.Edges()
	if len(edges) == 0 {
		return Segment{}
	}
	return edges[orDefault(rng).Intn(len(edges))]
}

// A point on a uniformly picked edge.
func (p Polygon) RandomPointOnEdge(rng *rand.Rand) Vector2 {
	rng = orDefault(rng)
	return p.RandomEdge(rng).RandomPoint(rng)
}

// Project sweeps the polygon along v and returns the convex hull of the area
// it passes over. A zero v gives a copy.
func (p Polygon) Project(v Vector2) Polygon {
	if v.LengthSquared() <= 0 {
		return p.Copy()
	}
	points := append(Points(p.Copy()), Points(p.Moved(v))...)
	return ConvexHull(points)
}
