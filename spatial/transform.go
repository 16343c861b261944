package spatial

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a 4×4 homogeneous transform stored row-major: the upper-left
// 3×3 block is the rotation, the rightmost column the translation, and the
// bottom row is always (0, 0, 0, 1) for transforms produced by this package.
//
// Transform is a plain value type: it is copied by assignment, comparable
// with ==, and safe to share between goroutines.
//
// The zero value is the all-zero matrix, which is NOT a valid rigid
// transform; start from Identity (or any constructor) instead.
type Transform [4][4]float64

// Identity returns the identity transform (no rotation, no translation).
func Identity() Transform {
	return Transform{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate returns a pure translation by v.
func Translate(v r3.Vec) Transform {
	return Transform{
		{1, 0, 0, v.X},
		{0, 1, 0, v.Y},
		{0, 0, 1, v.Z},
		{0, 0, 0, 1},
	}
}

// RotX returns a rotation of theta radians about the X axis.
func RotX(theta float64) Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	return Transform{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotY returns a rotation of theta radians about the Y axis.
func RotY(theta float64) Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	return Transform{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotZ returns a rotation of theta radians about the Z axis.
func RotZ(theta float64) Transform {
	c, s := math.Cos(theta), math.Sin(theta)
	return Transform{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// AxisAngle returns a rotation of theta radians about the given axis,
// built via the Rodrigues formula. The axis is normalized internally;
// a zero axis yields the identity transform (callers that consider a zero
// axis an error must validate before constructing).
func AxisAngle(axis r3.Vec, theta float64) Transform {
	n := r3.Norm(axis)
	if n == 0 {
		return Identity()
	}
	u := r3.Scale(1/n, axis)
	c, s := math.Cos(theta), math.Sin(theta)
	k := 1 - c
	x, y, z := u.X, u.Y, u.Z
	return Transform{
		{c + x*x*k, x*y*k - z*s, x*z*k + y*s, 0},
		{y*x*k + z*s, c + y*y*k, y*z*k - x*s, 0},
		{z*x*k - y*s, z*y*k + x*s, c + z*z*k, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the composition t∘o: first apply o, then t.
// Chained as a.Mul(b).Mul(c), the rightmost transform acts first.
func (t Transform) Mul(o Transform) Transform {
	var r Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = t[i][0]*o[0][j] + t[i][1]*o[1][j] + t[i][2]*o[2][j] + t[i][3]*o[3][j]
		}
	}
	return r
}

// Apply maps the point p through the transform (rotation + translation).
func (t Transform) Apply(p r3.Vec) r3.Vec {
	return r3.Vec{
		X: t[0][0]*p.X + t[0][1]*p.Y + t[0][2]*p.Z + t[0][3],
		Y: t[1][0]*p.X + t[1][1]*p.Y + t[1][2]*p.Z + t[1][3],
		Z: t[2][0]*p.X + t[2][1]*p.Y + t[2][2]*p.Z + t[2][3],
	}
}

// Rotate maps the direction v through the rotation part only
// (translation is ignored). Used for joint axes and other free vectors.
func (t Transform) Rotate(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: t[0][0]*v.X + t[0][1]*v.Y + t[0][2]*v.Z,
		Y: t[1][0]*v.X + t[1][1]*v.Y + t[1][2]*v.Z,
		Z: t[2][0]*v.X + t[2][1]*v.Y + t[2][2]*v.Z,
	}
}

// Translation returns the transform's translation column, i.e. the world
// position of the frame's origin.
func (t Transform) Translation() r3.Vec {
	return r3.Vec{X: t[0][3], Y: t[1][3], Z: t[2][3]}
}

// IsFinite reports whether every entry of t is finite (no NaN, no ±Inf).
func (t Transform) IsFinite() bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.IsNaN(t[i][j]) || math.IsInf(t[i][j], 0) {
				return false
			}
		}
	}
	return true
}

// Equal reports whether t and o agree entrywise within tol.
func (t Transform) Equal(o Transform, tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(t[i][j]-o[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// Dense returns a freshly allocated 4×4 gonum matrix with the same entries,
// for callers feeding transforms into general linear-algebra routines.
func (t Transform) Dense() *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			d.Set(i, j, t[i][j])
		}
	}
	return d
}
