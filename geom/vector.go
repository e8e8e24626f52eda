// Package geom is a 2D geometry kernel: primitive shapes, triangulation,
// convex hulls, and the pairwise overlap, containment, closest point and
// intersection routines used for collision detection.
//
// Coordinates use the usual mathematical orientation with y pointing up, so a
// polygon with positive signed area winds counterclockwise. Counterclockwise
// polygons are solid; clockwise polygons are treated as holes wherever that
// distinction matters.
package geom

import (
	"fmt"
	"math"
)

type Vector2 struct {
	X, Y float64
}

func V(x, y float64) Vector2 {
	return Vector2{x, y}
}

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Scale(f float64) Vector2 {
	return Vector2{v.X * f, v.Y * f}
}
func (v Vector2) Div(f float64) Vector2 { return Vector2{v.X / f, v.Y / f} }
func (v Vector2) Neg() Vector2          { return Vector2{-v.X, -v.Y} }
func (v Vector2) Dot(o Vector2) float64 { return v.X*o.X + v.Y*o.Y }

// The z component of the 3D cross product. Positive when o is
// counterclockwise from v.
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vector2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vector2) Length() float64        { return math.Sqrt(v.LengthSquared()) }

func (v Vector2) DistanceSquared(o Vector2) float64 { return v.Sub(o).LengthSquared() }
func (v Vector2) Distance(o Vector2) float64        { return v.Sub(o).Length() }

// Unit vector in the same direction. The zero vector stays zero.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return v.Div(l)
}

// Rotate counterclockwise by angle radians.
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

func (v Vector2) RotateAround(pivot Vector2, angle float64) Vector2 {
	return v.Sub(pivot).Rotate(angle).Add(pivot)
}

// Project v onto the direction of o.
func (v Vector2) Project(o Vector2) Vector2 {
	l := o.LengthSquared()
	if l == 0 {
		return Vector2{}
	}
	return o.Scale(v.Dot(o) / l)
}

// Left hand perpendicular, (-y, x).
func (v Vector2) Perpendicular() Vector2 { return Vector2{-v.Y, v.X} }

func (v Vector2) PerpendicularRight() Vector2 { return Vector2{v.Y, -v.X} }

// Reflect v on a surface with unit normal n: v - 2(v·n)n.
func (v Vector2) Reflect(n Vector2) Vector2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

func (v Vector2) Lerp(o Vector2, f float64) Vector2 {
	return v.Add(o.Sub(v).Scale(f))
}

// Angle of the vector from the positive x axis, in radians.
func (v Vector2) Angle() float64 { return math.Atan2(v.Y, v.X) }

func (v Vector2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vector2) Equal(o Vector2) bool {
	return Equal(v.X, o.X) && Equal(v.Y, o.Y)
}

// If two points have the same Y value, the one with the smaller X value is
// "lower". This simulates a slightly rotated coordinate system so that sweeps
// can assume Y values are never equal.
func (v Vector2) Below(o Vector2) bool {
	if Equal(v.Y, o.Y) {
		return v.X < o.X
	}
	return v.Y < o.Y
}

func (v Vector2) Above(o Vector2) bool {
	return !v.Below(o)
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
