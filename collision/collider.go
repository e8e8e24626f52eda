// Package collision places shapes in a world and answers collision queries
// between them: static overlap, containment, closest points and contacts, and
// continuous casts over a time step.
package collision

import (
	"github.com/google/uuid"
	"github.com/osuushi/shapes/geom"
)

// A Collider is a shape at a position in the world. Shape is in local space,
// relative to Pos. Vel is in units per second.
//
// Layer is the set of layers the collider is on, and Mask the set of layers
// it collides with. A zero Mask collides with everything.
type Collider struct {
	ID      uuid.UUID
	Shape   geom.Shape
	Pos     geom.Vector2
	Vel     geom.Vector2
	Enabled bool
	Layer   uint32
	Mask    uint32
}

// NewCollider returns an enabled collider on layer 1 that collides with
// everything.
func NewCollider(shape geom.Shape, pos geom.Vector2) *Collider {
	return &Collider{
		ID:      uuid.New(),
		Shape:   shape,
		Pos:     pos,
		Enabled: true,
		Layer:   1,
	}
}

// The shape moved to the collider's position.
func (c *Collider) WorldShape() geom.Shape {
	return c.Shape.Translated(c.Pos)
}

func (c *Collider) Bounds() geom.Rect {
	return c.WorldShape().BoundingBox()
}

// Whether the layers and masks of both colliders let them collide.
func (c *Collider) Accepts(other *Collider) bool {
	return (c.Mask == 0 || c.Mask&other.Layer != 0) &&
		(other.Mask == 0 || other.Mask&c.Layer != 0)
}

// Whether a pair can interact at all. A collider never collides with itself.
func interacts(a, b *Collider) bool {
	if a == nil || b == nil || a == b || a.Shape == nil || b.Shape == nil {
		return false
	}
	if !a.Enabled || !b.Enabled {
		return false
	}
	return a.Accepts(b)
}
