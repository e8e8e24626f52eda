package geom

// An open chain of vertices. Unlike Polygon, the last vertex does not connect
// back to the first.
type Polyline []Vector2

func (p Polyline) Kind() ShapeKind { return KindPolyline }

func (p Polyline) Area() float64          { return 0 }
func (p Polyline) Centroid() Vector2      { return Points(p).Centroid() }
func (p Polyline) BoundingBox() Rect      { return Points(p).BoundingBox() }
func (p Polyline) BoundingCircle() Circle { return Points(p).BoundingCircle() }
func (p Polyline) Vertices() Points       { return Points(p) }

func (p Polyline) Edges() Segments {
	if len(p) < 2 {
		return nil
	}
	edges := make(Segments, len(p)-1)
	for i := range edges {
		edges[i] = Segment{p[i], p[i+1]}
	}
	return edges
}

func (p Polyline) Length() float64 { return p.Edges().Length() }

// A polyline encloses nothing.
func (p Polyline) ContainsPoint(Vector2) bool { return false }

func (p Polyline) ClosestPoint(q Vector2) Vector2 {
	if len(p) == 1 {
		return p[0]
	}
	closest, _ := p.Edges().ClosestPoint(q)
	return closest
}

func (p Polyline) Translated(offset Vector2) Shape {
	return Polyline(Points(p).Move(offset))
}
