package geom

// The closed set of shape kinds. The pairwise routines in this package switch
// over both kinds of a pair, so adding a kind means adding a case to each of
// them.
type ShapeKind int

const (
	KindCircle ShapeKind = iota
	KindSegment
	KindTriangle
	KindRect
	KindQuad
	KindPolygon
	KindPolyline
)

func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSegment:
		return "segment"
	case KindTriangle:
		return "triangle"
	case KindRect:
		return "rect"
	case KindQuad:
		return "quad"
	case KindPolygon:
		return "polygon"
	case KindPolyline:
		return "polyline"
	}
	return "unknown"
}

type Shape interface {
	Kind() ShapeKind
	Area() float64
	Centroid() Vector2
	BoundingBox() Rect
	BoundingCircle() Circle
	// Straight edges of the outline. Circles have none.
	Edges() Segments
	// The defining points of the shape: corners, vertices or endpoints. For a
	// circle this is only the center.
	Vertices() Points
	ContainsPoint(p Vector2) bool
	// A copy of the shape moved by offset.
	Translated(offset Vector2) Shape
}

var (
	_ Shape = Circle{}
	_ Shape = Segment{}
	_ Shape = Triangle{}
	_ Shape = Rect{}
	_ Shape = Quad{}
	_ Shape = Polygon{}
	_ Shape = Polyline{}
)
