package geom

import (
	"math/rand"

	"github.com/osuushi/shapes/internal/logging"
	"go.uber.org/zap"
)

// Ear clipping triangulation.
//
// Candidate ears are drawn at random from the vertices not yet tested since
// the last clip, so the same polygon can triangulate differently from call to
// call. Pass a seeded rng for reproducible output; nil uses a shared source.
//
// The polygon may wind either way. Triangles are always counterclockwise. A
// simple polygon of n vertices gives n-2 triangles. Self intersecting input is
// not detected: when no ear can be found, the remainder is closed with a fan,
// which may cover the wrong area.
func (p Polygon) Triangulate(rng *rand.Rand) Triangulation {
	if len(p) < 3 {
		return nil
	}
	remaining := p.Copy()
	remaining.FixWindingOrder()
	if len(remaining) == 3 {
		return Triangulation{{remaining[0], remaining[1], remaining[2]}}
	}
	rng = orDefault(rng)

	triangles := make(Triangulation, 0, len(remaining)-2)
	candidates := candidatePool(len(remaining))
	for len(remaining) > 3 {
		if len(candidates) == 0 {
			logging.L().Debug("no ear found, closing remainder as a fan",
				zap.Int("remaining", len(remaining)),
				zap.Int("vertices", len(p)),
			)
			for i := 1; i+1 < len(remaining); i++ {
				triangles = append(triangles, Triangle{remaining[0], remaining[i], remaining[i+1]})
			}
			return triangles
		}

		// Draw a random untested candidate
		k := rng.Intn(len(candidates))
		i := candidates[k]
		candidates[k] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]

		ear, ok := remaining.earAt(i)
		if !ok {
			continue
		}
		triangles = append(triangles, ear)
		remaining = append(remaining[:i], remaining[i+1:]...)
		candidates = candidatePool(len(remaining))
	}
	return append(triangles, Triangle{remaining[0], remaining[1], remaining[2]})
}

func candidatePool(n int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	return pool
}

// The triangle cut off at vertex i, if vertex i is an ear of a counterclockwise
// polygon: the turn there is convex and no other vertex lies inside.
func (p Polygon) earAt(i int) (Triangle, bool) {
	prev, a, next := p.Vertex(i-1), p[i], p.Vertex(i+1)
	if a.Sub(prev).Cross(next.Sub(a)) <= 0 {
		return Triangle{}, false
	}
	ear := Triangle{prev, a, next}
	for _, v := range p {
		if ear.HasVertex(v) {
			continue
		}
		if ear.ContainsPoint(v) {
			return Triangle{}, false
		}
	}
	return ear, true
}
