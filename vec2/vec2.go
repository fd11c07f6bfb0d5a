// Package vec2 provides a small generic 2D integer vector used as the grid
// coordinate type throughout gridroute.
//
// Vec2 is a comparable value type, so it can be used directly as a map key
// or set member. All operations return new values; nothing mutates in place.
package vec2

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vec2 is an (X, Y) pair of signed integers.
type Vec2[T constraints.Signed] struct {
	X, Y T
}

// New returns the vector (x, y).
func New[T constraints.Signed](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Zero returns (0, 0).
func Zero[T constraints.Signed]() Vec2[T] {
	return Vec2[T]{}
}

// One returns (1, 1).
func One[T constraints.Signed]() Vec2[T] {
	return Vec2[T]{X: 1, Y: 1}
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied component-wise by k.
func (v Vec2[T]) Scale(k T) Vec2[T] {
	return Vec2[T]{X: v.X * k, Y: v.Y * k}
}

// Min returns the component-wise minimum of v and o.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: min(v.X, o.X), Y: min(v.Y, o.Y)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: max(v.X, o.X), Y: max(v.Y, o.Y)}
}

// InBounds reports whether v lies inside the inclusive box [lo, hi].
func (v Vec2[T]) InBounds(lo, hi Vec2[T]) bool {
	return v.X >= lo.X && v.Y >= lo.Y && v.X <= hi.X && v.Y <= hi.Y
}

// Manhattan returns |X| + |Y|.
func (v Vec2[T]) Manhattan() T {
	return abs(v.X) + abs(v.Y)
}

// ManhattanTo returns the Manhattan distance between v and o.
func (v Vec2[T]) ManhattanTo(o Vec2[T]) T {
	return v.Sub(o).Manhattan()
}

// String formats v as "(x,y)".
func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Dirs returns the four unit vectors in the order east, south, west, north
// (screen coordinates: +Y points down).
func Dirs[T constraints.Signed]() [4]Vec2[T] {
	return [4]Vec2[T]{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
