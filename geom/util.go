package geom

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

const Tolerance = 1e-6

// Zero length segments and zero radius circles are treated as circles of this
// radius when testing overlap. A point overlapping a line is only meaningful
// when the point has some size.
const PointOverlapEpsilon = 5.0

// How much larger than the point set's bounds the Delaunay supra-triangle is.
const SupraTriangleMargin = 2.0

// Default threshold for Triangle.IsNarrow.
const NarrowThreshold = 0.2

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func Sign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

func Clamp(f, min, max float64) float64 {
	if f < min {
		return min
	}
	if f > max {
		return max
	}
	return f
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

type VectorStack []Vector2

func (s *VectorStack) Push(v Vector2) {
	*s = append(*s, v)
}

func (s *VectorStack) Pop() Vector2 {
	if len(*s) == 0 {
		return Vector2{}
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

func (s *VectorStack) Peek() Vector2 {
	if len(*s) == 0 {
		return Vector2{}
	}
	return (*s)[len(*s)-1]
}

func (s *VectorStack) Empty() bool {
	return len(*s) == 0
}

// Randomized helpers accept a nil *rand.Rand and fall back to this source.
// rand.Rand is not safe for concurrent use, hence the lock.
var (
	defaultRandMu sync.Mutex
	defaultRand   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

type lockedSource struct{}

func (lockedSource) Int63() int64 {
	defaultRandMu.Lock()
	defer defaultRandMu.Unlock()
	return defaultRand.Int63()
}

func (lockedSource) Seed(seed int64) {
	defaultRandMu.Lock()
	defer defaultRandMu.Unlock()
	defaultRand.Seed(seed)
}

var sharedRand = rand.New(lockedSource{})

func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return sharedRand
	}
	return rng
}

func randRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
