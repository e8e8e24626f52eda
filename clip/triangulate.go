package clip

import (
	"math/rand"

	"github.com/osuushi/shapes/geom"
	"github.com/osuushi/shapes/internal/throw"
)

// Cuts allowed on the way to a hole free tiling. Every cut opens at least one
// hole, so running out means the backend is misbehaving.
const maxTileDepth = 64

// Triangulate tiles polygons, holes included, with triangles. Contours are read
// with the even-odd rule. Each hole is opened by cutting its polygon in two
// along a vertical line through the hole, and the hole free parts are ear
// clipped.
func Triangulate(polygons geom.Polygons, rng *rand.Rand) geom.Triangulation {
	return tile(fromBackend(toBackend(polygons)), rng, 0)
}

func tile(polygons geom.Polygons, rng *rand.Rand, depth int) geom.Triangulation {
	holes := polygons.Holes()
	if len(holes) == 0 {
		var result geom.Triangulation
		for _, solid := range polygons {
			result = append(result, solid.Triangulate(rng)...)
		}
		return result
	}
	if depth >= maxTileDepth {
		throw.Fatalf("%d holes left after %d cuts", len(holes), depth)
	}

	var points geom.Points
	for _, poly := range polygons {
		points = append(points, poly...)
	}
	box := points.BoundingBox()
	x := interiorPoint(holes[0]).X
	left := geom.Rect{X: box.X - 1, Y: box.Y - 1, Width: x - box.X + 1, Height: box.Height + 2}

	right, inside := split(polygons, geom.Polygons{left.ToPolygon()})
	return append(tile(inside, rng, depth+1), tile(right, rng, depth+1)...)
}
