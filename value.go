package tween

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Value is an animation endpoint. It is either a Scalar or a Vec.
type Value interface {
	point() gg.Point
	vector() bool
}

// Scalar is a one-dimensional value, used by Opacity.
type Scalar float64

func (s Scalar) point() gg.Point { return gg.Pt(float64(s), 0) }
func (Scalar) vector() bool      { return false }

// Vec is a two-dimensional value, used by Position and Size.
type Vec gg.Point

// V is a convenience function to create a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) point() gg.Point { return gg.Point(v) }
func (Vec) vector() bool      { return true }

// String returns the vector as "(x, y)".
func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// valueOf converts an internal point back to the public shape for kind.
func valueOf(k Kind, p gg.Point) Value {
	if k.vector() {
		return Vec(p)
	}
	return Scalar(p.X)
}
