package geom

import (
	"math"
	"math/rand"
)

// Random star shaped polygon around center. Vertices are evenly spaced in
// angle, counterclockwise, at random distances between minLength and
// maxLength.
func GeneratePolygon(rng *rand.Rand, center Vector2, vertexCount int, minLength, maxLength float64) Polygon {
	if vertexCount < 3 {
		return nil
	}
	rng = orDefault(rng)
	poly := make(Polygon, vertexCount)
	step := 2 * math.Pi / float64(vertexCount)
	for i := range poly {
		length := randRange(rng, minLength, maxLength)
		poly[i] = center.Add(Vector2{length, 0}.Rotate(step * float64(i)))
	}
	return poly
}

// Random thin polygon around a segment, counterclockwise starting at the
// segment start. Offsets from the segment and spacing along it are factors of
// the segment length.
func GenerateAlongSegment(rng *rand.Rand, segment Segment, minOffset, maxOffset, minSection, maxSection float64) Polygon {
	length := segment.Length()
	if length == 0 || minSection <= 0 {
		return nil
	}
	rng = orDefault(rng)
	dir := segment.Direction().Normalize()
	right, left := dir.PerpendicularRight(), dir.Perpendicular()
	minSectionSquared := (minSection * length) * (minSection * length)

	poly := Polygon{segment.Start}
	cur := segment.Start
	for {
		cur = cur.Add(dir.Scale(randRange(rng, minSection, maxSection) * length))
		if cur.DistanceSquared(segment.End) < minSectionSquared || cur.Sub(segment.Start).Dot(dir) >= length {
			break
		}
		poly = append(poly, cur.Add(right.Scale(randRange(rng, minOffset, maxOffset)*length)))
	}
	cur = segment.End
	poly = append(poly, cur)
	for {
		cur = cur.Sub(dir.Scale(randRange(rng, minSection, maxSection) * length))
		if cur.DistanceSquared(segment.Start) < minSectionSquared || cur.Sub(segment.Start).Dot(dir) <= 0 {
			break
		}
		poly = append(poly, cur.Add(left.Scale(randRange(rng, minOffset, maxOffset)*length)))
	}
	return poly
}
