package geom

import (
	"fmt"
	"math"
	"math/rand"
)

type Triangle struct {
	A, B, C Vector2
}

func NewTriangle(a, b, c Vector2) Triangle {
	return Triangle{a, b, c}
}

func (t Triangle) Kind() ShapeKind { return KindTriangle }

// Twice the signed area is the cross product of two edges. Positive for
// counterclockwise triangles.
func (t Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

func (t Triangle) Area() float64 { return math.Abs(t.SignedArea()) }

func (t Triangle) IsCCW() bool { return t.SignedArea() > 0 }

func (t Triangle) Centroid() Vector2 {
	return t.A.Add(t.B).Add(t.C).Div(3)
}

func (t Triangle) Vertices() Points { return Points{t.A, t.B, t.C} }

func (t Triangle) Edges() Segments {
	return Segments{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t Triangle) BoundingBox() Rect { return t.Vertices().BoundingBox() }

func (t Triangle) BoundingCircle() Circle { return t.Vertices().BoundingCircle() }

func (t Triangle) Translated(offset Vector2) Shape { return t.Move(offset) }

// Inclusive of the boundary. Works for either winding.
func (t Triangle) ContainsPoint(p Vector2) bool {
	d1 := t.B.Sub(t.A).Cross(p.Sub(t.A))
	d2 := t.C.Sub(t.B).Cross(p.Sub(t.B))
	d3 := t.A.Sub(t.C).Cross(p.Sub(t.C))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Like ContainsPoint, but points on the boundary are outside.
func (t Triangle) ContainsPointStrict(p Vector2) bool {
	d1 := t.B.Sub(t.A).Cross(p.Sub(t.A))
	d2 := t.C.Sub(t.B).Cross(p.Sub(t.B))
	d3 := t.A.Sub(t.C).Cross(p.Sub(t.C))
	return (d1 > 0 && d2 > 0 && d3 > 0) || (d1 < 0 && d2 < 0 && d3 < 0)
}

// The circle through all three vertices. ok is false for degenerate
// triangles, whose circumcircle is at infinity.
func (t Triangle) Circumcircle() (circle Circle, ok bool) {
	a, b, c := t.A, t.B, t.C
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		return Circle{}, false
	}
	aa, bb, cc := a.LengthSquared(), b.LengthSquared(), c.LengthSquared()
	center := Vector2{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}
	return Circle{center, center.Distance(a)}, true
}

// Vertices are compared exactly. Triangles built from the same points share
// them bit for bit.
func (t Triangle) SharesVertex(other Triangle) bool {
	for _, v := range [3]Vector2{t.A, t.B, t.C} {
		if v == other.A || v == other.B || v == other.C {
			return true
		}
	}
	return false
}

func (t Triangle) HasVertex(v Vector2) bool {
	return v == t.A || v == t.B || v == t.C
}

// Same three vertices, within tolerance, in any order.
func (t Triangle) IsSimilar(other Triangle) bool {
	matches := 0
	for _, v := range [3]Vector2{t.A, t.B, t.C} {
		if v.Equal(other.A) || v.Equal(other.B) || v.Equal(other.C) {
			matches++
		}
	}
	return matches == 3
}

// A triangle is narrow when, at any vertex, the sine of the angle between the
// two edges leaving it is below threshold. Slivers like this are unsuitable
// for physics or as visual debris.
func (t Triangle) IsNarrow(threshold float64) bool {
	corners := [3][3]Vector2{{t.A, t.B, t.C}, {t.B, t.C, t.A}, {t.C, t.A, t.B}}
	for _, corner := range corners {
		u := corner[1].Sub(corner[0]).Normalize()
		w := corner[2].Sub(corner[0]).Normalize()
		if math.Abs(u.Cross(w)) < threshold {
			return true
		}
	}
	return false
}

// Point at barycentric-like factors along AB and AC. Factor pairs outside the
// triangle are folded back in, so uniform f1, f2 give a uniform point.
func (t Triangle) GetPoint(f1, f2 float64) Vector2 {
	if f1+f2 > 1 {
		f1 = 1 - f1
		f2 = 1 - f2
	}
	return t.A.Add(t.B.Sub(t.A).Scale(f1)).Add(t.C.Sub(t.A).Scale(f2))
}

func (t Triangle) RandomPointInside(rng *rand.Rand) Vector2 {
	rng = orDefault(rng)
	return t.GetPoint(rng.Float64(), rng.Float64())
}

// Split the triangle with pointCount random interior points. Each point splits
// the piece containing it into three, so the pieces always cover t exactly.
func (t Triangle) Triangulate(pointCount int, rng *rand.Rand) Triangulation {
	if pointCount <= 0 {
		return Triangulation{t}
	}
	rng = orDefault(rng)
	pieces := Triangulation{t}
	for i := 0; i < pointCount; i++ {
		p := t.RandomPointInside(rng)
		for j, piece := range pieces {
			if !piece.ContainsPointStrict(p) {
				continue
			}
			fan := piece.TriangulateAround(p)
			pieces[j] = fan[0]
			pieces = append(pieces, fan[1], fan[2])
			break
		}
	}
	return pieces
}

// Split the triangle into pieces of roughly minArea.
func (t Triangle) TriangulateMinArea(minArea float64, rng *rand.Rand) Triangulation {
	if minArea <= 0 {
		return Triangulation{t}
	}
	pointCount := int(math.Floor((t.Area()/minArea - 1) * 0.5))
	return t.Triangulate(pointCount, rng)
}

// Fan of three triangles around p.
func (t Triangle) TriangulateAround(p Vector2) Triangulation {
	return Triangulation{{t.A, t.B, p}, {t.B, t.C, p}, {t.C, t.A, p}}
}

func (t Triangle) Move(offset Vector2) Triangle {
	return Triangle{t.A.Add(offset), t.B.Add(offset), t.C.Add(offset)}
}

// Rotate around the centroid.
func (t Triangle) Rotate(angle float64) Triangle {
	c := t.Centroid()
	return Triangle{t.A.RotateAround(c, angle), t.B.RotateAround(c, angle), t.C.RotateAround(c, angle)}
}

// Scale relative to the centroid.
func (t Triangle) Scale(factor float64) Triangle {
	c := t.Centroid()
	scale := func(v Vector2) Vector2 { return c.Add(v.Sub(c).Scale(factor)) }
	return Triangle{scale(t.A), scale(t.B), scale(t.C)}
}

func (t Triangle) ToPolygon() Polygon { return Polygon{t.A, t.B, t.C} }

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{%v, %v, %v}", t.A, t.B, t.C)
}
