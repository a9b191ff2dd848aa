package geom

import "flightsim/internal/fixed"

// Matrix3 is a 3x3 rotation matrix of Units, indexed [row][col].
//
// Matrices act on row vectors: Rotate computes v·M, so in A.Mul(B) the rotation
// A is applied first. Every constructor returns a rotation, and the only way to
// combine them is Mul, so a Matrix3 stays orthonormal up to table rounding and
// its Transpose is its inverse.
type Matrix3 [3][3]fixed.Unit

// Identity returns the identity matrix.
func Identity() Matrix3 {
	return Matrix3{
		{fixed.OneUnit, 0, 0},
		{0, fixed.OneUnit, 0},
		{0, 0, fixed.OneUnit},
	}
}

// RotateX returns a rotation about the X axis by a.
func RotateX(a fixed.Angle) Matrix3 {
	s, c := fixed.Sin(a), fixed.Cos(a)
	return Matrix3{
		{fixed.OneUnit, 0, 0},
		{0, c, s},
		{0, -s, c},
	}
}

// RotateY returns a rotation about the Y axis by a.
func RotateY(a fixed.Angle) Matrix3 {
	s, c := fixed.Sin(a), fixed.Cos(a)
	return Matrix3{
		{c, 0, -s},
		{0, fixed.OneUnit, 0},
		{s, 0, c},
	}
}

// RotateZ returns a rotation about the Z axis by a.
func RotateZ(a fixed.Angle) Matrix3 {
	s, c := fixed.Sin(a), fixed.Cos(a)
	return Matrix3{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, fixed.OneUnit},
	}
}

// Mul returns m·o. Each term is a fixed-point product and the sum is narrowed
// back to a Unit.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var out Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row][col] = fixed.Unit(
				int(fixed.Mul(m[row][0], o[0][col])) +
					int(fixed.Mul(m[row][1], o[1][col])) +
					int(fixed.Mul(m[row][2], o[2][col])))
		}
	}
	return out
}

// Transpose returns the transpose, which is the inverse of a rotation.
func (m Matrix3) Transpose() Matrix3 {
	var out Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row][col] = m[col][row]
		}
	}
	return out
}

// Rotate returns the row vector v transformed by m.
func (m Matrix3) Rotate(v Vec3U) Vec3U {
	var out [3]fixed.Unit
	for col := 0; col < 3; col++ {
		out[col] = fixed.Unit(
			int(fixed.Mul(v.X, m[0][col])) +
				int(fixed.Mul(v.Y, m[1][col])) +
				int(fixed.Mul(v.Z, m[2][col])))
	}
	return Vec3U{X: out[0], Y: out[1], Z: out[2]}
}

// Forward returns the unit forward vector (0, 0, 1) rotated by m.
func (m Matrix3) Forward() Vec3U {
	return Vec3U{X: m[2][0], Y: m[2][1], Z: m[2][2]}
}
