package geom

import "math"

type Circle struct {
	Center Vector2
	Radius float64
}

func NewCircle(center Vector2, radius float64) Circle {
	return Circle{center, radius}
}

func (c Circle) Kind() ShapeKind { return KindCircle }

func (c Circle) Area() float64          { return math.Pi * c.Radius * c.Radius }
func (c Circle) Circumference() float64 { return 2 * math.Pi * c.Radius }
func (c Circle) Centroid() Vector2      { return c.Center }

func (c Circle) IsPoint() bool { return c.Radius <= 0 }

func (c Circle) BoundingBox() Rect {
	r := Vector2{c.Radius, c.Radius}
	return NewRect(c.Center.Sub(r), c.Center.Add(r))
}

func (c Circle) BoundingCircle() Circle { return c }
func (c Circle) Edges() Segments        { return nil }
func (c Circle) Vertices() Points       { return Points{c.Center} }

func (c Circle) Translated(offset Vector2) Shape { return c.Move(offset) }

func (c Circle) Move(offset Vector2) Circle {
	return Circle{c.Center.Add(offset), c.Radius}
}

func (c Circle) ContainsPoint(p Vector2) bool {
	return c.Center.DistanceSquared(p) < c.Radius*c.Radius
}

// Closest point on the circle's boundary.
func (c Circle) ClosestPoint(p Vector2) Vector2 {
	dir := p.Sub(c.Center).Normalize()
	if dir.IsZero() {
		dir = Vector2{1, 0}
	}
	return c.Center.Add(dir.Scale(c.Radius))
}

// Approximate the circle with a regular counterclockwise polygon.
func (c Circle) ToPolygon(vertexCount int) Polygon {
	if vertexCount < 3 {
		vertexCount = 3
	}
	poly := make(Polygon, vertexCount)
	step := 2 * math.Pi / float64(vertexCount)
	for i := range poly {
		sin, cos := math.Sincos(step * float64(i))
		poly[i] = c.Center.Add(Vector2{snapUnit(cos), snapUnit(sin)}.Scale(c.Radius))
	}
	return poly
}

// Zero the rounding residue of sin and cos at multiples of a quarter turn, so
// those vertices land exactly on the circle's axes.
func snapUnit(x float64) float64 {
	if math.Abs(x) < Tolerance*Tolerance {
		return 0
	}
	return x
}
