package geom

import "math"

// Axis aligned rectangle. X and Y are the minimum corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Rect spanning two opposite corners, in either order.
func NewRect(a, b Vector2) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

func (r Rect) Kind() ShapeKind { return KindRect }

func (r Rect) Min() Vector2    { return Vector2{r.X, r.Y} }
func (r Rect) Max() Vector2    { return Vector2{r.X + r.Width, r.Y + r.Height} }
func (r Rect) Center() Vector2 { return Vector2{r.X + r.Width/2, r.Y + r.Height/2} }
func (r Rect) Size() Vector2   { return Vector2{r.Width, r.Height} }

// Corners in counterclockwise order starting at the minimum corner.
func (r Rect) Corners() (bottomLeft, bottomRight, topRight, topLeft Vector2) {
	min, max := r.Min(), r.Max()
	return min, Vector2{max.X, min.Y}, max, Vector2{min.X, max.Y}
}

func (r Rect) Area() float64     { return r.Width * r.Height }
func (r Rect) Centroid() Vector2 { return r.Center() }

func (r Rect) BoundingBox() Rect { return r }

func (r Rect) BoundingCircle() Circle {
	return Circle{r.Center(), r.Size().Length() / 2}
}

func (r Rect) Vertices() Points {
	a, b, c, d := r.Corners()
	return Points{a, b, c, d}
}

func (r Rect) Edges() Segments { return r.ToPolygon().Edges() }

func (r Rect) ToPolygon() Polygon { return Polygon(r.Vertices()) }

func (r Rect) Translated(offset Vector2) Shape { return r.Move(offset) }

func (r Rect) Move(offset Vector2) Rect {
	return Rect{r.X + offset.X, r.Y + offset.Y, r.Width, r.Height}
}

// Boundary inclusive.
func (r Rect) ContainsPoint(p Vector2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Boundary inclusive overlap of two rects.
func (r Rect) Overlaps(other Rect) bool {
	return r.X <= other.X+other.Width && other.X <= r.X+r.Width &&
		r.Y <= other.Y+other.Height && other.Y <= r.Y+r.Height
}

func (r Rect) Union(other Rect) Rect {
	return NewRect(
		Vector2{math.Min(r.X, other.X), math.Min(r.Y, other.Y)},
		Vector2{math.Max(r.X+r.Width, other.X+other.Width), math.Max(r.Y+r.Height, other.Y+other.Height)},
	)
}

// Grow the rect to include p.
func (r Rect) Enlarge(p Vector2) Rect {
	return r.Union(Rect{p.X, p.Y, 0, 0})
}

// Grow the rect by amount on every side.
func (r Rect) Pad(amount float64) Rect {
	return Rect{r.X - amount, r.Y - amount, r.Width + 2*amount, r.Height + 2*amount}
}

// Closest point on the outline.
func (r Rect) ClosestPoint(p Vector2) Vector2 {
	closest, _ := r.Edges().ClosestPoint(p)
	return closest
}

// Rects are convex, so the monotone sweep always succeeds.
func (r Rect) Triangulate() Triangulation {
	triangles, _ := r.ToPolygon().TriangulateMonotone()
	return triangles
}
