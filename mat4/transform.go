package mat4

import "github.com/ajroetker/go-mat4/f32"

// Transform rotates the upper-left 3x3 block of value by rotation without
// building a full rotation matrix per call: the quaternion is expanded
// once into nine rotation-basis scalars applied to all four rows. The
// fourth column passes through unchanged.
func Transform(value Matrix, rotation f32.Quaternion) Matrix {
	x2 := rotation.X + rotation.X
	y2 := rotation.Y + rotation.Y
	z2 := rotation.Z + rotation.Z

	wx2 := rotation.W * x2
	wy2 := rotation.W * y2
	wz2 := rotation.W * z2
	xx2 := rotation.X * x2
	xy2 := rotation.X * y2
	xz2 := rotation.X * z2
	yy2 := rotation.Y * y2
	yz2 := rotation.Y * z2
	zz2 := rotation.Z * z2

	q11 := 1 - yy2 - zz2
	q21 := xy2 - wz2
	q31 := xz2 + wy2

	q12 := xy2 + wz2
	q22 := 1 - xx2 - zz2
	q32 := yz2 - wx2

	q13 := xz2 - wy2
	q23 := yz2 + wx2
	q33 := 1 - xx2 - yy2

	return Matrix{
		M11: value.M11*q11 + value.M12*q21 + value.M13*q31,
		M12: value.M11*q12 + value.M12*q22 + value.M13*q32,
		M13: value.M11*q13 + value.M12*q23 + value.M13*q33,
		M14: value.M14,

		M21: value.M21*q11 + value.M22*q21 + value.M23*q31,
		M22: value.M21*q12 + value.M22*q22 + value.M23*q32,
		M23: value.M21*q13 + value.M22*q23 + value.M23*q33,
		M24: value.M24,

		M31: value.M31*q11 + value.M32*q21 + value.M33*q31,
		M32: value.M31*q12 + value.M32*q22 + value.M33*q32,
		M33: value.M31*q13 + value.M32*q23 + value.M33*q33,
		M34: value.M34,

		M41: value.M41*q11 + value.M42*q21 + value.M43*q31,
		M42: value.M41*q12 + value.M42*q22 + value.M43*q32,
		M43: value.M41*q13 + value.M42*q23 + value.M43*q33,
		M44: value.M44,
	}
}
