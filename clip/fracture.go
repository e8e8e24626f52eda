package clip

import (
	"math/rand"

	"github.com/osuushi/shapes/geom"
	"github.com/osuushi/shapes/internal/logging"
	"go.uber.org/zap"
)

// Result of breaking a piece off a polygon.
type FractureInfo struct {
	// What is left of the source. Solids smaller than the minimum area are
	// debris and are dropped, along with their holes.
	NewShapes geom.Polygons
	// The regions removed from the source.
	Cutouts geom.Polygons
	// Triangles tiling the cutouts, leaving their holes open.
	Pieces geom.Triangulation
}

// Fracture cuts cutShape out of source and breaks the cutouts into triangles.
func Fracture(source geom.Polygon, cutShape geom.Shape, minArea float64) FractureInfo {
	return fracture(source, cutShape, minArea, nil)
}

func fracture(source geom.Polygon, cutShape geom.Shape, minArea float64, rng *rand.Rand) FractureInfo {
	remaining, cutouts := Cut(source, cutShape)
	info := FractureInfo{
		NewShapes: keepLargeSolids(remaining, minArea),
		Cutouts:   cutouts,
	}
	info.Pieces = Triangulate(cutouts, rng)
	return info
}

func keepLargeSolids(polygons geom.Polygons, minArea float64) geom.Polygons {
	var solids geom.Polygons
	for _, poly := range polygons.Solids() {
		if poly.Area() >= minArea {
			solids = append(solids, poly)
		}
	}
	result := solids
	for _, hole := range polygons.Holes() {
		probe := interiorPoint(hole)
		for _, solid := range solids {
			if solid.ContainsPoint(probe) {
				result = append(result, hole)
				break
			}
		}
	}
	return result
}

const (
	DefaultMinArea         = 250
	DefaultMaxArea         = 1500
	DefaultKeepChance      = 0.75
	DefaultNarrowThreshold = 0.1
)

// FractureHelper turns cutouts into debris sized for physics: large triangles
// are subdivided, slivers and crumbs are dropped, and a random share of the
// rest is discarded.
type FractureHelper struct {
	MinArea         float64
	MaxArea         float64
	KeepChance      float64
	NarrowThreshold float64
	Rand            *rand.Rand
}

func NewFractureHelper(rng *rand.Rand) *FractureHelper {
	return &FractureHelper{
		MinArea:         DefaultMinArea,
		MaxArea:         DefaultMaxArea,
		KeepChance:      DefaultKeepChance,
		NarrowThreshold: DefaultNarrowThreshold,
		Rand:            rng,
	}
}

func (h *FractureHelper) Fracture(source geom.Polygon, cutShape geom.Shape) FractureInfo {
	info := fracture(source, cutShape, h.MinArea, h.Rand)
	raw := len(info.Pieces)
	info.Pieces = h.debris(info.Pieces)
	logging.L().Debug("fractured polygon",
		zap.Int("newShapes", len(info.NewShapes)),
		zap.Int("cutouts", len(info.Cutouts)),
		zap.Int("rawPieces", raw),
		zap.Int("pieces", len(info.Pieces)),
	)
	return info
}

func (h *FractureHelper) debris(triangles geom.Triangulation) geom.Triangulation {
	var split geom.Triangulation
	for _, t := range triangles {
		if h.MaxArea > 0 && t.Area() > h.MaxArea {
			split = append(split, t.TriangulateMinArea(h.MinArea, h.Rand)...)
		} else {
			split = append(split, t)
		}
	}

	var pieces geom.Triangulation
	for _, t := range split {
		if t.IsNarrow(h.NarrowThreshold) || t.Area() < h.MinArea {
			continue
		}
		if h.random().Float64() >= h.KeepChance {
			continue
		}
		pieces = append(pieces, t)
	}
	return pieces
}

func (h *FractureHelper) random() *rand.Rand {
	if h.Rand == nil {
		h.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	return h.Rand
}
