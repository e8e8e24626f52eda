package geom

// General four cornered shape, corners in order around the outline.
type Quad struct {
	A, B, C, D Vector2
}

func NewQuad(a, b, c, d Vector2) Quad {
	return Quad{a, b, c, d}
}

// Quad for a rect of the given size centered on center and rotated by angle.
func NewRotatedQuad(center, size Vector2, angle float64) Quad {
	h := size.Scale(0.5)
	corners := [4]Vector2{{-h.X, -h.Y}, {h.X, -h.Y}, {h.X, h.Y}, {-h.X, h.Y}}
	for i := range corners {
		corners[i] = corners[i].Rotate(angle).Add(center)
	}
	return Quad{corners[0], corners[1], corners[2], corners[3]}
}

func (q Quad) Kind() ShapeKind { return KindQuad }

func (q Quad) Vertices() Points   { return Points{q.A, q.B, q.C, q.D} }
func (q Quad) ToPolygon() Polygon { return Polygon{q.A, q.B, q.C, q.D} }

func (q Quad) Area() float64          { return q.ToPolygon().Area() }
func (q Quad) Centroid() Vector2      { return q.ToPolygon().Centroid() }
func (q Quad) Edges() Segments        { return q.ToPolygon().Edges() }
func (q Quad) BoundingBox() Rect      { return q.Vertices().BoundingBox() }
func (q Quad) BoundingCircle() Circle { return q.Vertices().BoundingCircle() }

func (q Quad) Center() Vector2 { return q.A.Add(q.B).Add(q.C).Add(q.D).Div(4) }

func (q Quad) Translated(offset Vector2) Shape { return q.Move(offset) }

func (q Quad) Move(offset Vector2) Quad {
	return Quad{q.A.Add(offset), q.B.Add(offset), q.C.Add(offset), q.D.Add(offset)}
}

// Rotate around the center.
func (q Quad) Rotate(angle float64) Quad {
	c := q.Center()
	return Quad{q.A.RotateAround(c, angle), q.B.RotateAround(c, angle), q.C.RotateAround(c, angle), q.D.RotateAround(c, angle)}
}

// Tested as the two triangles either side of the AC diagonal, which holds for
// convex quads and for quads whose reflex corner is A or C.
func (q Quad) ContainsPoint(p Vector2) bool {
	return Triangle{q.A, q.B, q.C}.ContainsPoint(p) || Triangle{q.A, q.C, q.D}.ContainsPoint(p)
}

func (q Quad) ClosestPoint(p Vector2) Vector2 {
	closest, _ := q.Edges().ClosestPoint(p)
	return closest
}
