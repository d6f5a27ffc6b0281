package mat4

import (
	"math"

	"github.com/ajroetker/go-mat4/f32"
)

// CreateTranslation builds a translation matrix.
func CreateTranslation(position f32.Vector3) Matrix {
	m := Identity
	m.M41 = position.X
	m.M42 = position.Y
	m.M43 = position.Z
	return m
}

// CreateScale builds a non-uniform scaling matrix.
func CreateScale(xScale, yScale, zScale float32) Matrix {
	var m Matrix
	m.M11 = xScale
	m.M22 = yScale
	m.M33 = zScale
	m.M44 = 1
	return m
}

// CreateScaleUniform builds a uniform scaling matrix.
func CreateScaleUniform(scale float32) Matrix {
	return CreateScale(scale, scale, scale)
}

// CreateScaleCentered builds a scaling matrix with a center point: points
// at centerPoint are fixed by the transform.
func CreateScaleCentered(xScale, yScale, zScale float32, centerPoint f32.Vector3) Matrix {
	m := CreateScale(xScale, yScale, zScale)
	m.M41 = centerPoint.X * (1 - xScale)
	m.M42 = centerPoint.Y * (1 - yScale)
	m.M43 = centerPoint.Z * (1 - zScale)
	return m
}

// CreateScaleUniformCentered builds a uniform scaling matrix with a center
// point.
func CreateScaleUniformCentered(scale float32, centerPoint f32.Vector3) Matrix {
	return CreateScaleCentered(scale, scale, scale, centerPoint)
}

// CreateRotationX builds a matrix rotating radians around the X axis.
func CreateRotationX(radians float32) Matrix {
	s, c := sincos(radians)
	m := Identity
	m.M22 = c
	m.M23 = s
	m.M32 = -s
	m.M33 = c
	return m
}

// CreateRotationXCentered rotates around the X axis through centerPoint.
func CreateRotationXCentered(radians float32, centerPoint f32.Vector3) Matrix {
	s, c := sincos(radians)
	m := CreateRotationX(radians)
	m.M42 = centerPoint.Y*(1-c) + centerPoint.Z*s
	m.M43 = centerPoint.Z*(1-c) - centerPoint.Y*s
	return m
}

// CreateRotationY builds a matrix rotating radians around the Y axis.
func CreateRotationY(radians float32) Matrix {
	s, c := sincos(radians)
	m := Identity
	m.M11 = c
	m.M13 = -s
	m.M31 = s
	m.M33 = c
	return m
}

// CreateRotationYCentered rotates around the Y axis through centerPoint.
func CreateRotationYCentered(radians float32, centerPoint f32.Vector3) Matrix {
	s, c := sincos(radians)
	m := CreateRotationY(radians)
	m.M41 = centerPoint.X*(1-c) - centerPoint.Z*s
	m.M43 = centerPoint.Z*(1-c) + centerPoint.X*s
	return m
}

// CreateRotationZ builds a matrix rotating radians around the Z axis.
func CreateRotationZ(radians float32) Matrix {
	s, c := sincos(radians)
	m := Identity
	m.M11 = c
	m.M12 = s
	m.M21 = -s
	m.M22 = c
	return m
}

// CreateRotationZCentered rotates around the Z axis through centerPoint.
func CreateRotationZCentered(radians float32, centerPoint f32.Vector3) Matrix {
	s, c := sincos(radians)
	m := CreateRotationZ(radians)
	m.M41 = centerPoint.X*(1-c) + centerPoint.Y*s
	m.M42 = centerPoint.Y*(1-c) - centerPoint.X*s
	return m
}

// CreateFromAxisAngle builds a matrix rotating angle radians around an
// arbitrary unit axis.
func CreateFromAxisAngle(axis f32.Vector3, angle float32) Matrix {
	x, y, z := axis.X, axis.Y, axis.Z
	sa, ca := sincos(angle)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z

	var m Matrix
	m.M11 = xx + ca*(1-xx)
	m.M12 = xy - ca*xy + sa*z
	m.M13 = xz - ca*xz - sa*y
	m.M21 = xy - ca*xy - sa*z
	m.M22 = yy + ca*(1-yy)
	m.M23 = yz - ca*yz + sa*x
	m.M31 = xz - ca*xz + sa*y
	m.M32 = yz - ca*yz - sa*x
	m.M33 = zz + ca*(1-zz)
	m.M44 = 1
	return m
}

// CreateFromQuaternion builds a rotation matrix from a unit quaternion.
func CreateFromQuaternion(q f32.Quaternion) Matrix {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z

	xy := q.X * q.Y
	wz := q.Z * q.W
	xz := q.Z * q.X
	wy := q.Y * q.W
	yz := q.Y * q.Z
	wx := q.X * q.W

	var m Matrix
	m.M11 = 1 - 2*(yy+zz)
	m.M12 = 2 * (xy + wz)
	m.M13 = 2 * (xz - wy)
	m.M21 = 2 * (xy - wz)
	m.M22 = 1 - 2*(zz+xx)
	m.M23 = 2 * (yz + wx)
	m.M31 = 2 * (xz + wy)
	m.M32 = 2 * (yz - wx)
	m.M33 = 1 - 2*(yy+xx)
	m.M44 = 1
	return m
}

// CreateFromYawPitchRoll builds a rotation matrix from yaw (Y), pitch (X),
// and roll (Z) angles in radians.
func CreateFromYawPitchRoll(yaw, pitch, roll float32) Matrix {
	return CreateFromQuaternion(f32.QuaternionFromYawPitchRoll(yaw, pitch, roll))
}

func sincos(radians float32) (sin, cos float32) {
	s, c := math.Sincos(float64(radians))
	return float32(s), float32(c)
}
