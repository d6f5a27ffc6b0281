package mat4

import (
	"math"

	"github.com/ajroetker/go-mat4/f32"
)

// Projection factories panic on out-of-range parameters; these are caller
// bugs, not runtime conditions. The panic message names the parameter.
func argPanic(name string) {
	panic("mat4: " + name + " out of range")
}

// negFarRange computes the projection Z-range term far/(near-far).
// An infinite far plane degenerates to the limiting value -1 instead of
// producing an Inf/Inf divide.
func negFarRange(near, far float32) float32 {
	if math.IsInf(float64(far), 1) {
		return -1
	}
	return far / (near - far)
}

// CreatePerspectiveFieldOfView builds a right-handed perspective projection
// from a vertical field of view in radians and an aspect ratio.
// farPlaneDistance may be positive infinity.
func CreatePerspectiveFieldOfView(fieldOfView, aspectRatio, nearPlaneDistance, farPlaneDistance float32) Matrix {
	if fieldOfView <= 0 || fieldOfView >= math.Pi {
		argPanic("fieldOfView")
	}
	if nearPlaneDistance <= 0 {
		argPanic("nearPlaneDistance")
	}
	if farPlaneDistance <= 0 {
		argPanic("farPlaneDistance")
	}
	if nearPlaneDistance >= farPlaneDistance {
		argPanic("nearPlaneDistance")
	}

	yScale := 1 / float32(math.Tan(float64(fieldOfView)*0.5))
	xScale := yScale / aspectRatio
	zRange := negFarRange(nearPlaneDistance, farPlaneDistance)

	var m Matrix
	m.M11 = xScale
	m.M22 = yScale
	m.M33 = zRange
	m.M34 = -1
	m.M43 = nearPlaneDistance * zRange
	return m
}

// CreatePerspective builds a right-handed perspective projection from the
// width and height of the view volume at the near plane.
func CreatePerspective(width, height, nearPlaneDistance, farPlaneDistance float32) Matrix {
	if nearPlaneDistance <= 0 {
		argPanic("nearPlaneDistance")
	}
	if farPlaneDistance <= 0 {
		argPanic("farPlaneDistance")
	}
	if nearPlaneDistance >= farPlaneDistance {
		argPanic("nearPlaneDistance")
	}

	zRange := negFarRange(nearPlaneDistance, farPlaneDistance)

	var m Matrix
	m.M11 = 2 * nearPlaneDistance / width
	m.M22 = 2 * nearPlaneDistance / height
	m.M33 = zRange
	m.M34 = -1
	m.M43 = nearPlaneDistance * zRange
	return m
}

// CreatePerspectiveOffCenter builds a right-handed perspective projection
// from explicit near-plane bounds, allowing an off-center view volume.
func CreatePerspectiveOffCenter(left, right, bottom, top, nearPlaneDistance, farPlaneDistance float32) Matrix {
	if nearPlaneDistance <= 0 {
		argPanic("nearPlaneDistance")
	}
	if farPlaneDistance <= 0 {
		argPanic("farPlaneDistance")
	}
	if nearPlaneDistance >= farPlaneDistance {
		argPanic("nearPlaneDistance")
	}

	zRange := negFarRange(nearPlaneDistance, farPlaneDistance)

	var m Matrix
	m.M11 = 2 * nearPlaneDistance / (right - left)
	m.M22 = 2 * nearPlaneDistance / (top - bottom)
	m.M31 = (left + right) / (right - left)
	m.M32 = (top + bottom) / (top - bottom)
	m.M33 = zRange
	m.M34 = -1
	m.M43 = nearPlaneDistance * zRange
	return m
}

// CreateOrthographic builds a right-handed orthographic projection.
func CreateOrthographic(width, height, zNearPlane, zFarPlane float32) Matrix {
	var m Matrix
	m.M11 = 2 / width
	m.M22 = 2 / height
	m.M33 = 1 / (zNearPlane - zFarPlane)
	m.M43 = zNearPlane / (zNearPlane - zFarPlane)
	m.M44 = 1
	return m
}

// CreateOrthographicOffCenter builds a right-handed orthographic projection
// with an off-center view volume.
func CreateOrthographicOffCenter(left, right, bottom, top, zNearPlane, zFarPlane float32) Matrix {
	var m Matrix
	m.M11 = 2 / (right - left)
	m.M22 = 2 / (top - bottom)
	m.M33 = 1 / (zNearPlane - zFarPlane)
	m.M41 = (left + right) / (left - right)
	m.M42 = (top + bottom) / (bottom - top)
	m.M43 = zNearPlane / (zNearPlane - zFarPlane)
	m.M44 = 1
	return m
}

// CreateLookAt builds a right-handed view matrix looking from
// cameraPosition toward cameraTarget.
func CreateLookAt(cameraPosition, cameraTarget, cameraUpVector f32.Vector3) Matrix {
	zaxis := f32.Normalize(cameraPosition.Sub(cameraTarget))
	xaxis := f32.Normalize(f32.Cross(cameraUpVector, zaxis))
	yaxis := f32.Cross(zaxis, xaxis)

	return Matrix{
		M11: xaxis.X, M12: yaxis.X, M13: zaxis.X,
		M21: xaxis.Y, M22: yaxis.Y, M23: zaxis.Y,
		M31: xaxis.Z, M32: yaxis.Z, M33: zaxis.Z,
		M41: -f32.Dot(xaxis, cameraPosition),
		M42: -f32.Dot(yaxis, cameraPosition),
		M43: -f32.Dot(zaxis, cameraPosition),
		M44: 1,
	}
}

// CreateWorld builds a world matrix positioning an object at position,
// facing forward, with the given up vector.
func CreateWorld(position, forward, up f32.Vector3) Matrix {
	zaxis := f32.Normalize(forward.Negate())
	xaxis := f32.Normalize(f32.Cross(up, zaxis))
	yaxis := f32.Cross(zaxis, xaxis)

	return Matrix{
		M11: xaxis.X, M12: xaxis.Y, M13: xaxis.Z,
		M21: yaxis.X, M22: yaxis.Y, M23: yaxis.Z,
		M31: zaxis.X, M32: zaxis.Y, M33: zaxis.Z,
		M41: position.X, M42: position.Y, M43: position.Z,
		M44: 1,
	}
}
