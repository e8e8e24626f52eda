package geom

import (
	"math"

	"github.com/osuushi/shapes/internal/throw"
)

// Facilities for converting a Y-monotone polygon into triangles without any
// randomness. A Y monotone polygon is a simple polygon such that any
// horizontal line intersects at most two edges. Every convex polygon is
// monotone.
//
// The lexicographic Vector2.Below() method is used to simulate a slightly
// rotated coordinate system that eliminates horizontal segments. On the left
// chain a horizontal edge must sit above the inside of the polygon, while on
// the right chain it must sit below.
//
// The polygon may wind either way. Input that is not monotone is reported as
// an error rather than triangulated wrongly.
func (p Polygon) TriangulateMonotone() (triangles Triangulation, err error) {
	err = throw.Catch(func() {
		ccw := p.Copy()
		ccw.FixWindingOrder()
		triangles = triangulateMonotone(ccw)
		expected, actual := ccw.Area(), triangles.Area()
		if math.Abs(expected-actual) > Tolerance*math.Max(1, expected) {
			throw.Fatalf("polygon is not y-monotone: triangles cover %g of %g", actual, expected)
		}
	})
	if err != nil {
		return nil, err
	}
	return triangles, nil
}

func triangulateMonotone(polygon Polygon) Triangulation {
	if len(polygon) < 3 {
		throw.Fatalf("cannot triangulate degenerate polygon with vertex count: %d", len(polygon))
	}
	if len(polygon) == 3 {
		return Triangulation{{polygon[0], polygon[1], polygon[2]}}
	}

	triangles := make(Triangulation, 0, len(polygon)-2)

	// Find the top point
	var topIndex int
	for i, point := range polygon {
		if point.Above(polygon[topIndex]) {
			topIndex = i
		}
	}

	sorted := make([]Vector2, 0, len(polygon))
	sorted = append(sorted, polygon[topIndex])

	// Going forward from the top of a counterclockwise polygon walks down the
	// left chain.
	leftChain := map[Vector2]struct{}{}
	isLeft := func(v Vector2) bool {
		_, ok := leftChain[v]
		return ok
	}

	// Merge the chains from the top down, tracking the bottom point separately
	leftOffset, rightOffset := 1, 1
	var bottom Vector2
	for {
		leftPoint := polygon.Vertex(topIndex + leftOffset)
		rightPoint := polygon.Vertex(topIndex - rightOffset)

		// The chains meet at the bottom, which is handled at the very end
		if CircularIndex(topIndex+leftOffset, len(polygon)) == CircularIndex(topIndex-rightOffset, len(polygon)) {
			bottom = leftPoint
			break
		}

		if leftPoint.Above(rightPoint) {
			leftChain[leftPoint] = struct{}{}
			sorted = append(sorted, leftPoint)
			leftOffset++
		} else {
			sorted = append(sorted, rightPoint)
			rightOffset++
		}
	}

	stack := make(VectorStack, 0, len(sorted))
	stack.Push(sorted[0])
	stack.Push(sorted[1])
	for i := 2; i < len(sorted); i++ {
		p := sorted[i]
		left := isLeft(p)
		if left != isLeft(stack.Peek()) {
			// Switched chains. Monotonicity guarantees that every stacked point is
			// visible from p, so the whole stack becomes a fan.
			for !stack.Empty() {
				a := stack.Pop()
				if stack.Empty() {
					break
				}
				b := stack.Peek()
				if left {
					triangles = appendTriangle(triangles, Triangle{p, a, b})
				} else {
					triangles = appendTriangle(triangles, Triangle{a, p, b})
				}
			}
			stack.Push(sorted[i-1])
			stack.Push(p)
			continue
		}

		// Same chain. Pop the last point; it goes back if nothing can be cut.
		v := stack.Pop()
		for !stack.Empty() {
			top := stack.Peek()
			// p sees the top of the stack exactly when the triangle is
			// counterclockwise
			var candidate Triangle
			if left {
				candidate = Triangle{p, top, v}
			} else {
				candidate = Triangle{p, v, top}
			}
			if !candidate.IsCCW() {
				break
			}
			v = stack.Pop()
			triangles = append(triangles, candidate)
		}
		stack.Push(v)
		stack.Push(p)
	}

	// Fan the remaining stack around the bottom point. There are always at
	// least two points left.
	l := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		if isLeft(l) {
			triangles = appendTriangle(triangles, Triangle{bottom, p, l})
		} else {
			triangles = appendTriangle(triangles, Triangle{bottom, l, p})
		}
		l = p
	}
	return triangles
}

func appendTriangle(triangles Triangulation, t Triangle) Triangulation {
	if t.SignedArea() < 0 {
		throw.Fatalf("triangle is clockwise: %v", t)
	}
	return append(triangles, t)
}
