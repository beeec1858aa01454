package numerics

import (
	"cogentcore.org/core/math32"
	"golang.org/x/image/math/f32"
)

// Transform applies the affine matrix m to the position a, including
// translation.
func (a Vector2) Transform(m f32.Aff3) Vector2 {
	return Vector2{
		m[0]*a.X + m[1]*a.Y + m[2],
		m[3]*a.X + m[4]*a.Y + m[5],
	}
}

// TransformNormal applies m to the direction a, ignoring translation.
func (a Vector2) TransformNormal(m f32.Aff3) Vector2 {
	return Vector2{
		m[0]*a.X + m[1]*a.Y,
		m[3]*a.X + m[4]*a.Y,
	}
}

// TransformMat4 treats a as (X, Y, 0, 1) and keeps the first two rows of
// the product.
func (a Vector2) TransformMat4(m f32.Mat4) Vector2 {
	return Vector2{
		m[0]*a.X + m[1]*a.Y + m[3],
		m[4]*a.X + m[5]*a.Y + m[7],
	}
}

func (a Vector2) TransformNormalMat4(m f32.Mat4) Vector2 {
	return Vector2{
		m[0]*a.X + m[1]*a.Y,
		m[4]*a.X + m[5]*a.Y,
	}
}

// TransformQuat rotates a, taken as (X, Y, 0), by q and drops Z. q is
// expected to be a unit quaternion.
func (a Vector2) TransformQuat(q math32.Quat) Vector2 {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z

	wz2 := q.W * z2
	xx2 := q.X * x2
	xy2 := q.X * y2
	yy2 := q.Y * y2
	zz2 := q.Z * z2

	return Vector2{
		a.X*(1-yy2-zz2) + a.Y*(xy2-wz2),
		a.X*(xy2+wz2) + a.Y*(1-xx2-zz2),
	}
}
