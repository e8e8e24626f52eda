// Package clip implements polygon boolean operations and fracturing on top of
// a Martinez-Rueda sweep.
//
// Results are geom.Polygons: counterclockwise members are solid and clockwise
// members are holes. Inputs are never modified. Operations that fail inside
// the backend, or whose results do not add up to their operands, panic with a
// *throw.GeometryError; the shapes package recovers these into errors.
package clip

import (
	"math/rand"

	"github.com/osuushi/shapes/geom"
)

// Vertex count used when a circle is clipped as a polygon.
const CircleSegments = 32

// Vertex count of the random shape used by CutSimple.
const CutSimpleVertices = 12

// Outline converts a shape to the polygon used for clipping. Circles become
// regular polygons of CircleSegments vertices. Segments and polylines enclose
// nothing and give nil.
func Outline(shape geom.Shape) geom.Polygon {
	switch s := shape.(type) {
	case geom.Polygon:
		return s
	case geom.Circle:
		if s.IsPoint() {
			return nil
		}
		return s.ToPolygon(CircleSegments)
	case geom.Rect:
		return s.ToPolygon()
	case geom.Triangle:
		return s.ToPolygon()
	case geom.Quad:
		return s.ToPolygon()
	}
	return nil
}

func Union(a, b geom.Polygon) geom.Polygons {
	union, _ := merge(geom.Polygons{a}, geom.Polygons{b})
	return union
}

func Intersect(a, b geom.Polygon) geom.Polygons {
	_, inside := split(geom.Polygons{a}, geom.Polygons{b})
	return inside
}

// Parts of a outside b.
func Difference(a, b geom.Polygon) geom.Polygons {
	outside, _ := split(geom.Polygons{a}, geom.Polygons{b})
	return outside
}

func Xor(a, b geom.Polygon) geom.Polygons {
	return xor(geom.Polygons{a}, geom.Polygons{b})
}

// Cut removes cutShape from polygon. remaining is what is left of polygon and
// cutouts is what was removed.
func Cut(polygon geom.Polygon, cutShape geom.Shape) (remaining, cutouts geom.Polygons) {
	return CutMany(polygon, cutShape)
}

// CutMany removes every cut shape in turn. Cutouts from later shapes only
// include what earlier cuts left behind.
func CutMany(polygon geom.Polygon, cutShapes ...geom.Shape) (remaining, cutouts geom.Polygons) {
	remaining = geom.Polygons{polygon}
	for _, shape := range cutShapes {
		outline := Outline(shape)
		if len(outline) < 3 || len(remaining) == 0 {
			continue
		}
		outside, inside := split(remaining, geom.Polygons{outline})
		cutouts = append(cutouts, inside...)
		remaining = outside
	}
	return remaining, cutouts
}

// Combine merges other into polygon. overlap is the region both covered.
func Combine(polygon, other geom.Polygon) (union, overlap geom.Polygons) {
	return merge(geom.Polygons{polygon}, geom.Polygons{other})
}

// CutSimple cuts polygon with a random star shaped polygon around center.
func CutSimple(rng *rand.Rand, polygon geom.Polygon, center geom.Vector2, minRadius, maxRadius float64) (remaining, cutouts geom.Polygons) {
	cutShape := geom.GeneratePolygon(rng, center, CutSimpleVertices, minRadius, maxRadius)
	return Cut(polygon, cutShape)
}
