package collision

import (
	"encoding/binary"
	"math"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/osuushi/shapes/geom"
)

const (
	DefaultCellSize    = 64
	DefaultBucketCount = 1024
)

// SpatialHash is a broad phase over a uniform grid. Grid cells are hashed into
// a fixed table of buckets, so memory does not depend on how far the world
// extends. Colliders whose bounds share a bucket are candidate pairs.
// Colliders are tracked by pointer, so their IDs need not be set.
//
// It is safe for concurrent use.
type SpatialHash struct {
	cellSize float64

	mx      sync.RWMutex
	buckets [][]*entry
	entries map[*Collider]*entry
	nextSeq int
}

type entry struct {
	collider *Collider
	// Insertion order, used to report pairs deterministically
	seq     int
	buckets []int
}

// A pair of colliders, in insertion order.
type Pair struct {
	A, B *Collider
}

// The result of casting A against B.
type Collision struct {
	Pair
	Info CastInfo
}

// NewSpatialHash creates a hash with the given cell size and bucket count.
// Non-positive values select the defaults.
func NewSpatialHash(cellSize float64, bucketCount int) *SpatialHash {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}
	return &SpatialHash{
		cellSize: cellSize,
		buckets:  make([][]*entry, bucketCount),
		entries:  make(map[*Collider]*entry),
	}
}

func (h *SpatialHash) CellSize() float64 { return h.cellSize }

func (h *SpatialHash) Len() int {
	h.mx.RLock()
	defer h.mx.RUnlock()
	return len(h.entries)
}

// Insert adds c under its current bounds. Inserting a collider again moves it.
func (h *SpatialHash) Insert(c *Collider) {
	h.insert(c, c.Bounds())
}

// InsertSwept adds c under the bounds it covers while moving for dt seconds,
// so that Collisions sees pairs that only meet during the step.
func (h *SpatialHash) InsertSwept(c *Collider, dt float64) {
	bounds := c.Bounds()
	h.insert(c, bounds.Union(bounds.Move(c.Vel.Scale(dt))))
}

func (h *SpatialHash) insert(c *Collider, bounds geom.Rect) {
	h.mx.Lock()
	defer h.mx.Unlock()

	h.remove(c)
	e := &entry{collider: c, seq: h.nextSeq, buckets: h.bucketsFor(bounds)}
	h.nextSeq++
	for _, b := range e.buckets {
		h.buckets[b] = append(h.buckets[b], e)
	}
	h.entries[c] = e
}

// Remove drops c. It reports whether c was present.
func (h *SpatialHash) Remove(c *Collider) bool {
	h.mx.Lock()
	defer h.mx.Unlock()
	return h.remove(c)
}

func (h *SpatialHash) remove(c *Collider) bool {
	e, ok := h.entries[c]
	if !ok {
		return false
	}
	for _, b := range e.buckets {
		bucket := h.buckets[b]
		for i, other := range bucket {
			if other == e {
				h.buckets[b] = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
	}
	delete(h.entries, c)
	return true
}

func (h *SpatialHash) Clear() {
	h.mx.Lock()
	defer h.mx.Unlock()
	for i := range h.buckets {
		h.buckets[i] = nil
	}
	h.entries = make(map[*Collider]*entry)
	h.nextSeq = 0
}

// Query returns the colliders whose world bounds overlap r, in insertion
// order.
func (h *SpatialHash) Query(r geom.Rect) []*Collider {
	h.mx.RLock()
	defer h.mx.RUnlock()

	seen := make(map[*entry]struct{})
	var found []*entry
	for _, b := range h.bucketsFor(r) {
		for _, e := range h.buckets[b] {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			if e.collider.Bounds().Overlaps(r) {
				found = append(found, e)
			}
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].seq < found[j].seq })

	result := make([]*Collider, len(found))
	for i, e := range found {
		result[i] = e.collider
	}
	return result
}

// Candidates returns every pair of colliders sharing a bucket, once each.
func (h *SpatialHash) Candidates() []Pair {
	h.mx.RLock()
	defer h.mx.RUnlock()

	type key struct{ a, b int }
	seen := make(map[key]struct{})
	var pairs [][2]*entry
	for _, bucket := range h.buckets {
		for i, a := range bucket {
			for _, b := range bucket[i+1:] {
				first, second := a, b
				if second.seq < first.seq {
					first, second = second, first
				}
				k := key{first.seq, second.seq}
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				pairs = append(pairs, [2]*entry{first, second})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0].seq != pairs[j][0].seq {
			return pairs[i][0].seq < pairs[j][0].seq
		}
		return pairs[i][1].seq < pairs[j][1].seq
	})

	result := make([]Pair, len(pairs))
	for i, p := range pairs {
		result[i] = Pair{p[0].collider, p[1].collider}
	}
	return result
}

// Pairs returns the candidate pairs whose shapes overlap.
func (h *SpatialHash) Pairs() []Pair {
	var result []Pair
	for _, p := range h.Candidates() {
		if Overlap(p.A, p.B) {
			result = append(result, p)
		}
	}
	return result
}

// Collisions casts every candidate pair over dt and returns those that
// overlap or collide during the step.
func (h *SpatialHash) Collisions(dt float64) []Collision {
	var result []Collision
	for _, p := range h.Candidates() {
		info := CastIntersection(p.A, p.B, dt)
		if info.Overlapping || info.Collided {
			result = append(result, Collision{p, info})
		}
	}
	return result
}

// Buckets of every cell r touches, without repeats.
func (h *SpatialHash) bucketsFor(r geom.Rect) []int {
	minX, minY := h.cell(r.X), h.cell(r.Y)
	maxX, maxY := h.cell(r.X+r.Width), h.cell(r.Y+r.Height)

	// Past one cell per bucket every bucket is hit anyway
	if float64(maxX-minX+1)*float64(maxY-minY+1) >= float64(len(h.buckets)) {
		all := make([]int, len(h.buckets))
		for i := range all {
			all[i] = i
		}
		return all
	}

	seen := make(map[int]struct{})
	var result []int
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			b := h.bucket(x, y)
			if _, ok := seen[b]; ok {
				continue
			}
			seen[b] = struct{}{}
			result = append(result, b)
		}
	}
	return result
}

func (h *SpatialHash) cell(f float64) int64 {
	return int64(math.Floor(f / h.cellSize))
}

func (h *SpatialHash) bucket(x, y int64) int {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(x))
	binary.LittleEndian.PutUint64(key[8:], uint64(y))
	return int(xxhash.Sum64(key[:]) % uint64(len(h.buckets)))
}
