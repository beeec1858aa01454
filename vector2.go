// Package numerics provides a two-component float32 vector value type.
//
// Every operation is a pure function of its inputs. Degenerate numeric cases
// (zero length, negative square roots, division by zero) are not errors; they
// produce the IEEE-754 NaN or Inf values the arithmetic yields.
package numerics

import (
	"encoding/binary"
	"math"

	"cogentcore.org/core/math32"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/image/math/f32"
)

// Vector2 is a simple 2D vector with single-precision components.
type Vector2 struct {
	X, Y float32
}

// New returns the vector (x, y).
func New(x, y float32) Vector2 { return Vector2{x, y} }

// Splat returns a vector with both components set to s.
func Splat(s float32) Vector2 { return Vector2{s, s} }

func Zero() Vector2  { return Vector2{0, 0} }
func One() Vector2   { return Vector2{1, 1} }
func UnitX() Vector2 { return Vector2{1, 0} }
func UnitY() Vector2 { return Vector2{0, 1} }

// FromVec2 converts an x/image vector.
func FromVec2(v f32.Vec2) Vector2 { return Vector2{v[0], v[1]} }

func (a Vector2) Vec2() f32.Vec2 { return f32.Vec2{a.X, a.Y} }

func (a Vector2) Add(b Vector2) Vector2      { return Vector2{a.X + b.X, a.Y + b.Y} }
func (a Vector2) Subtract(b Vector2) Vector2 { return Vector2{a.X - b.X, a.Y - b.Y} }
func (a Vector2) Negate() Vector2            { return Vector2{-a.X, -a.Y} }
func (a Vector2) Multiply(b Vector2) Vector2 { return Vector2{a.X * b.X, a.Y * b.Y} }
func (a Vector2) Divide(b Vector2) Vector2   { return Vector2{a.X / b.X, a.Y / b.Y} }

func (a Vector2) MultiplyScalar(s float32) Vector2 { return Vector2{a.X * s, a.Y * s} }
func (a Vector2) DivideScalar(s float32) Vector2   { return Vector2{a.X / s, a.Y / s} }

// Scale is the scalar-first form of MultiplyScalar.
func Scale(s float32, v Vector2) Vector2 { return Vector2{s * v.X, s * v.Y} }

func (a Vector2) Dot(b Vector2) float32  { return a.X*b.X + a.Y*b.Y }
func (a Vector2) LengthSquared() float32 { return a.X*a.X + a.Y*a.Y }
func (a Vector2) Length() float32        { return math32.Sqrt(a.LengthSquared()) }

func (a Vector2) DistanceSquared(b Vector2) float32 { return a.Subtract(b).LengthSquared() }
func (a Vector2) Distance(b Vector2) float32        { return math32.Sqrt(a.DistanceSquared(b)) }

// Normalize divides by the length. A zero vector yields (NaN, NaN).
func (a Vector2) Normalize() Vector2 { return a.DivideScalar(a.Length()) }

func (a Vector2) Abs() Vector2 { return Vector2{math32.Abs(a.X), math32.Abs(a.Y)} }

func (a Vector2) SquareRoot() Vector2 { return Vector2{math32.Sqrt(a.X), math32.Sqrt(a.Y)} }

func (a Vector2) Min(b Vector2) Vector2 { return Vector2{math32.Min(a.X, b.X), math32.Min(a.Y, b.Y)} }
func (a Vector2) Max(b Vector2) Vector2 { return Vector2{math32.Max(a.X, b.X), math32.Max(a.Y, b.Y)} }

// Clamp restricts each component to [lo, hi]. The bounds are not
// validated; the lower bound is tested first.
func (a Vector2) Clamp(lo, hi Vector2) Vector2 {
	return Vector2{clamp(a.X, lo.X, hi.X), clamp(a.Y, lo.Y, hi.Y)}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates towards b by t. t is not clamped, so values outside
// [0, 1] extrapolate. t == 0 returns a and t == 1 returns b exactly. It is
// evaluated as a*(1-t) + b*t, which rounds differently from a + (b-a)*t, so
// a.Lerp(a, t) may be off from a in the last bit.
func (a Vector2) Lerp(b Vector2, t float32) Vector2 {
	return a.MultiplyScalar(1 - t).Add(b.MultiplyScalar(t))
}

// Reflect mirrors a off a surface with the given unit normal.
func (a Vector2) Reflect(normal Vector2) Vector2 {
	return a.Subtract(normal.MultiplyScalar(2 * a.Dot(normal)))
}

// Perp returns a rotated a quarter turn counter-clockwise.
func (a Vector2) Perp() Vector2 { return Vector2{-a.Y, a.X} }

// Equal compares field-wise with IEEE semantics, same as ==.
func (a Vector2) Equal(b Vector2) bool { return a.X == b.X && a.Y == b.Y }

// Hash returns a hash of the components. Equal vectors hash equally.
func (a Vector2) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:4], hashBits(a.X))
	binary.LittleEndian.PutUint32(buf[4:8], hashBits(a.Y))
	return xxhash.Sum64(buf[:])
}

// hashBits folds -0 onto +0 since they compare equal.
func hashBits(v float32) uint32 {
	if v == 0 {
		return 0
	}
	return math.Float32bits(v)
}
