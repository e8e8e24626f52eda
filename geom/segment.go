package geom

import (
	"math"
	"math/rand"
)

type Segment struct {
	Start, End Vector2
}

func NewSegment(start, end Vector2) Segment {
	return Segment{start, end}
}

func (s Segment) Kind() ShapeKind { return KindSegment }

func (s Segment) Direction() Vector2 { return s.End.Sub(s.Start) }

func (s Segment) Length() float64        { return s.Direction().Length() }
func (s Segment) LengthSquared() float64 { return s.Direction().LengthSquared() }

// Unit normal on the right hand side of the direction. For the edges of a
// counterclockwise polygon this points outward.
func (s Segment) Normal() Vector2 {
	return s.Direction().Normalize().PerpendicularRight()
}

func (s Segment) Center() Vector2 { return s.Start.Lerp(s.End, 0.5) }

func (s Segment) IsPoint() bool { return s.LengthSquared() <= Tolerance*Tolerance }

func (s Segment) Reverse() Segment { return Segment{s.End, s.Start} }

func (s Segment) Area() float64 { return 0 }

func (s Segment) Centroid() Vector2 { return s.Center() }

func (s Segment) BoundingBox() Rect {
	return NewRect(s.Start, s.End)
}

func (s Segment) BoundingCircle() Circle {
	return Circle{s.Center(), s.Length() / 2}
}

func (s Segment) Edges() Segments  { return Segments{s} }
func (s Segment) Vertices() Points { return Points{s.Start, s.End} }
func (s Segment) Translated(offset Vector2) Shape {
	return s.Move(offset)
}

func (s Segment) Move(offset Vector2) Segment {
	return Segment{s.Start.Add(offset), s.End.Add(offset)}
}

// A segment contains the points that lie on it, within tolerance.
func (s Segment) ContainsPoint(p Vector2) bool {
	return s.DistanceSquared(p) <= Tolerance*Tolerance
}

// Parameter of the projection of p onto the segment, clamped to [0, 1].
func (s Segment) ProjectParameter(p Vector2) float64 {
	d := s.Direction()
	l := d.LengthSquared()
	if l == 0 {
		return 0
	}
	return Clamp(p.Sub(s.Start).Dot(d)/l, 0, 1)
}

func (s Segment) ClosestPoint(p Vector2) Vector2 {
	return s.Start.Add(s.Direction().Scale(s.ProjectParameter(p)))
}

func (s Segment) DistanceSquared(p Vector2) float64 {
	return s.ClosestPoint(p).DistanceSquared(p)
}

type Segments []Segment

func (segments Segments) Length() float64 {
	var total float64
	for _, s := range segments {
		total += s.Length()
	}
	return total
}

// Closest point on any of the segments, and the index of that segment. Ties go
// to the first segment found. Returns -1 for an empty list.
func (segments Segments) ClosestPoint(p Vector2) (Vector2, int) {
	best := math.Inf(1)
	var closest Vector2
	index := -1
	for i, s := range segments {
		c := s.ClosestPoint(p)
		if d := c.DistanceSquared(p); d < best {
			best = d
			closest = c
			index = i
		}
	}
	return closest, index
}

// A uniformly distributed point on the segment.
func (s Segment) RandomPoint(rng *rand.Rand) Vector2 {
	return s.Start.Lerp(s.End, orDefault(rng).Float64())
}
