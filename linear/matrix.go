// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import "math"

// M4 is a row-major 4x4 matrix of float32.
type M4 [4][4]float32

// I4 is the identity matrix.
var I4 = M4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// MulV4 returns m . v, the row-major matrix-vector product.
func (m M4) MulV4(v V4) V4 {
	return V4{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// Mul returns m . n, such that (m.Mul(n)).MulV4(v) == m.MulV4(n.MulV4(v)).
func (m M4) Mul(n M4) (r M4) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[i][k] * n[k][j]
			}
			r[i][j] = s
		}
	}
	return
}

// Translation returns the affine matrix that translates by t.
func Translation(t V3) M4 {
	m := I4
	m[0][3], m[1][3], m[2][3] = t.X, t.Y, t.Z
	return m
}

// Scaling returns the affine matrix that scales each axis by the
// corresponding component of s.
func Scaling(s V3) M4 {
	m := I4
	m[0][0], m[1][1], m[2][2] = s.X, s.Y, s.Z
	return m
}

// RotationX returns the right-handed rotation matrix about the X axis.
func RotationX(theta float32) M4 {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	m := I4
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

// RotationY returns the right-handed rotation matrix about the Y axis.
func RotationY(theta float32) M4 {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	m := I4
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return m
}

// RotationZ returns the right-handed rotation matrix about the Z axis.
func RotationZ(theta float32) M4 {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	m := I4
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// Orthographic returns the projection matrix that maps a box of
// horizontal extent width and vertical extent width/aspect, centered on
// the view origin, to the [-1,1]^3 cube, negating Z (the viewer looks
// down -Z).
func Orthographic(width, aspect float32) M4 {
	m := I4
	m[0][0] = 2 / width
	m[1][1] = 2 * aspect / width
	m[2][2] = -1
	return m
}

// Perspective returns the standard OpenGL-style symmetric perspective
// projection matrix for the given full horizontal field of view (radians),
// aspect ratio, and near/far plane distances (both positive). NDC Z lies
// in [-1,1].
func Perspective(fovx, aspect, near, far float32) M4 {
	f := float32(1 / math.Tan(float64(fovx)/2))
	r := -(far + near) / (far - near)
	s := -(2 * near * far) / (far - near)
	return M4{
		{f, 0, 0, 0},
		{0, f * aspect, 0, 0},
		{0, 0, r, s},
		{0, 0, -1, 0},
	}
}
