package clip

import (
	"math"
	"math/rand"

	"github.com/ctessum/polyclip-go"
	"github.com/osuushi/shapes/geom"
	"github.com/osuushi/shapes/internal/logging"
	"github.com/osuushi/shapes/internal/throw"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Run one boolean operation through the polyclip backend. Both operands are
// read with the even-odd rule, so holes may wind either way.
func construct(op polyclip.Op, subject, clipping geom.Polygons) (result geom.Polygons) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(*throw.GeometryError); ok {
			panic(r)
		}
		logging.L().Debug("clipping backend panicked",
			zap.Int("op", int(op)),
			zap.Int("subjectContours", len(subject)),
			zap.Int("clippingContours", len(clipping)),
			zap.Any("panic", r),
		)
		throw.Wrap(errors.Errorf("%v", r), "clipping backend")
	}()

	return fromBackend(toBackend(subject).Construct(op, toBackend(clipping)))
}

func toBackend(polygons geom.Polygons) polyclip.Polygon {
	result := make(polyclip.Polygon, 0, len(polygons))
	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		contour := make(polyclip.Contour, len(poly))
		for i, v := range poly {
			contour[i] = polyclip.Point{X: v.X, Y: v.Y}
		}
		result = append(result, contour)
	}
	return result
}

// Convert backend contours, winding each by its nesting depth: contours
// inside an even number of others are solids and wind counterclockwise, the
// rest are holes and wind clockwise. Output contours never cross, so a larger
// contour holding a point inside a smaller one holds all of it.
func fromBackend(contours polyclip.Polygon) geom.Polygons {
	result := make(geom.Polygons, 0, len(contours))
	for _, contour := range contours {
		poly := make(geom.Polygon, len(contour))
		for i, p := range contour {
			poly[i] = geom.Vector2{X: p.X, Y: p.Y}
		}
		poly.RemoveDuplicates(0)
		if len(poly) < 3 || poly.Area() == 0 {
			continue
		}
		result = append(result, poly)
	}

	probes := make([]geom.Vector2, len(result))
	for i, poly := range result {
		probes[i] = interiorPoint(poly)
	}
	for i, poly := range result {
		depth := 0
		for j, other := range result {
			if i != j && other.Area() > poly.Area() && other.ContainsPoint(probes[i]) {
				depth++
			}
		}
		if depth%2 == 0 {
			poly.FixWindingOrder()
		} else {
			poly.MakeClockwise()
		}
	}
	return result
}

// A point strictly inside poly: the centroid of the largest ear. Ear clipping
// is seeded so the choice is stable between runs.
func interiorPoint(poly geom.Polygon) geom.Vector2 {
	triangles := poly.Triangulate(rand.New(rand.NewSource(1)))
	var best geom.Triangle
	bestArea := -1.0
	for _, t := range triangles {
		if a := t.Area(); a > bestArea {
			best, bestArea = t, a
		}
	}
	if bestArea <= 0 {
		return poly.CentroidMean()
	}
	return best.Centroid()
}

// Offsets tried, as fractions of the clipping extent, when the backend loses
// geometry. The sweep drops every contour when clipping vertices lie on or
// within rounding distance of subject edges, so the clipping operand is moved
// off the degenerate position and the operation rerun.
var clipNudges = []float64{0, 1e-7, 1e-5, 1e-4, 1e-3}

// split runs subject against clipping and returns the parts of subject
// outside and inside it. The two parts must add up to subject.
func split(subject, clipping geom.Polygons) (outside, inside geom.Polygons) {
	want := evenOddArea(subject)
	for attempt, nudge := range clipNudges {
		moved := nudged(clipping, nudge, attempt)
		outside = construct(polyclip.DIFFERENCE, subject, moved)
		inside = construct(polyclip.INTERSECTION, subject, moved)
		if conserved(want, outside.Area()+inside.Area()) {
			logRetry("split", attempt)
			return outside, inside
		}
	}
	throw.Fatalf("clipping lost area: subject %g, outside %g, inside %g", want, outside.Area(), inside.Area())
	return nil, nil
}

// merge returns the union and the intersection of a and b. Their areas must
// add up to the areas of a and b.
func merge(a, b geom.Polygons) (union, overlap geom.Polygons) {
	want := evenOddArea(a) + evenOddArea(b)
	for attempt, nudge := range clipNudges {
		moved := nudged(b, nudge, attempt)
		union = construct(polyclip.UNION, a, moved)
		overlap = construct(polyclip.INTERSECTION, a, moved)
		if conserved(want, union.Area()+overlap.Area()) {
			logRetry("merge", attempt)
			return union, overlap
		}
	}
	throw.Fatalf("clipping lost area: operands %g, union %g, overlap %g", want, union.Area(), overlap.Area())
	return nil, nil
}

// xor returns the parts covered by exactly one of a and b.
func xor(a, b geom.Polygons) geom.Polygons {
	want := evenOddArea(a) + evenOddArea(b)
	var result, overlap geom.Polygons
	for attempt, nudge := range clipNudges {
		moved := nudged(b, nudge, attempt)
		result = construct(polyclip.XOR, a, moved)
		overlap = construct(polyclip.INTERSECTION, a, moved)
		if conserved(want, result.Area()+2*overlap.Area()) {
			logRetry("xor", attempt)
			return result
		}
	}
	throw.Fatalf("clipping lost area: operands %g, xor %g, overlap %g", want, result.Area(), overlap.Area())
	return nil
}

func conserved(want, got float64) bool {
	return math.Abs(want-got) <= 1e-7*math.Max(1, want)
}

func logRetry(op string, attempt int) {
	if attempt > 0 {
		logging.L().Debug("clipping needed a nudge",
			zap.String("op", op),
			zap.Float64("nudge", clipNudges[attempt]),
		)
	}
}

// Area of polygons read with the even-odd rule, whatever their winding.
func evenOddArea(polygons geom.Polygons) float64 {
	return fromBackend(toBackend(polygons)).Area()
}

// Copy of polygons moved by nudge times their extent, in a direction that
// changes with the attempt and is never axis aligned.
func nudged(polygons geom.Polygons, nudge float64, attempt int) geom.Polygons {
	if nudge == 0 {
		return polygons
	}
	var points geom.Points
	for _, poly := range polygons {
		points = append(points, poly...)
	}
	box := points.BoundingBox()
	extent := math.Max(box.Width, box.Height)
	offset := geom.Vector2{X: nudge * extent}.Rotate(1 + float64(attempt))
	result := make(geom.Polygons, len(polygons))
	for i, poly := range polygons {
		result[i] = poly.Moved(offset)
	}
	return result
}
