// A 2D geometry and collision kernel for Go.
//
// The sub-packages hold the real work: geom has the primitives, triangulation
// and the pairwise overlap suite, clip the boolean operations and fracture,
// collision the colliders, casts and broad phase, and scene a YAML scene
// loader. This package re-exports the common types and wraps the entry points
// that can fail, so that invariant violations deep inside an algorithm come
// back as errors instead of panics.
package shapes

import (
	"math/rand"

	"github.com/osuushi/shapes/clip"
	"github.com/osuushi/shapes/collision"
	"github.com/osuushi/shapes/geom"
	"github.com/osuushi/shapes/internal/logging"
	"github.com/osuushi/shapes/internal/throw"
	"github.com/osuushi/shapes/scene"
	"go.uber.org/zap"
)

type Vector2 = geom.Vector2
type Shape = geom.Shape
type Points = geom.Points
type Circle = geom.Circle
type Segment = geom.Segment
type Triangle = geom.Triangle
type Rect = geom.Rect
type Quad = geom.Quad
type Polygon = geom.Polygon
type Polyline = geom.Polyline
type Polygons = geom.Polygons
type Triangulation = geom.Triangulation

type Collider = collision.Collider
type CastInfo = collision.CastInfo
type FractureInfo = clip.FractureInfo
type GeometryError = throw.GeometryError

// SetLogger installs the logger every package logs through. The default
// discards everything; nil restores that.
func SetLogger(l *zap.Logger) {
	logging.Set(l)
}

// Triangulate converts a simple polygon into triangles by ear clipping. The
// polygon may wind either way. Pass a seeded rng for reproducible output.
// Polygons with fewer than 3 vertices give no triangles.
func Triangulate(polygon Polygon, rng *rand.Rand) (Triangulation, error) {
	return polygon.Triangulate(rng), nil
}

// TriangulateHoles tiles a set of contours read with the even-odd rule, so the
// holes are left uncovered.
func TriangulateHoles(polygons Polygons, rng *rand.Rand) (result Triangulation, err error) {
	defer func() {
		if recoveredErr := throw.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return clip.Triangulate(polygons, rng), nil
}

// TriangulateMonotone triangulates a y-monotone polygon without randomness.
func TriangulateMonotone(polygon Polygon) (Triangulation, error) {
	return polygon.TriangulateMonotone()
}

// TriangulateDelaunay builds the Delaunay triangulation of a point set.
func TriangulateDelaunay(points Points) Triangulation {
	return geom.TriangulateDelaunay(points)
}

func ConvexHull(points Points) Polygon {
	return geom.ConvexHull(points)
}

// Cut removes cutShape from polygon. It returns what is left and what was cut
// out.
func Cut(polygon Polygon, cutShape Shape) (remaining, cutouts Polygons, err error) {
	defer func() {
		if recoveredErr := throw.HandlePanicRecover(recover()); recoveredErr != nil {
			remaining, cutouts = nil, nil
			err = recoveredErr
		}
	}()
	remaining, cutouts = clip.Cut(polygon, cutShape)
	return remaining, cutouts, nil
}

// Combine merges two polygons. It returns their union and their overlap.
func Combine(polygon, other Polygon) (union, overlap Polygons, err error) {
	defer func() {
		if recoveredErr := throw.HandlePanicRecover(recover()); recoveredErr != nil {
			union, overlap = nil, nil
			err = recoveredErr
		}
	}()
	union, overlap = clip.Combine(polygon, other)
	return union, overlap, nil
}

// Fracture cuts cutShape out of source and breaks the cutout into triangles.
// Remaining pieces smaller than minArea are dropped. The inputs are never
// modified.
func Fracture(source Polygon, cutShape Shape, minArea float64) (info FractureInfo, err error) {
	defer func() {
		if recoveredErr := throw.HandlePanicRecover(recover()); recoveredErr != nil {
			info = FractureInfo{}
			err = recoveredErr
		}
	}()
	return clip.Fracture(source, cutShape, minArea), nil
}

func NewCollider(shape Shape, pos Vector2) *Collider {
	return collision.NewCollider(shape, pos)
}

// Cast sweeps self against other over dt seconds.
func Cast(self, other *Collider, dt float64) CastInfo {
	return collision.CastIntersection(self, other, dt)
}

// LoadScene reads a YAML scene file.
func LoadScene(path string) (*scene.Scene, error) {
	return scene.LoadFile(path)
}
