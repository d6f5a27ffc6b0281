package mat4

import (
	"math"

	"github.com/ajroetker/go-mat4/f32"
)

// billboardEpsilon bounds the squared object-to-camera distance below which
// the facing direction is numerically unrecoverable.
const billboardEpsilon = 1e-4

// minBillboardAngle is the |cos| threshold treating two directions as
// parallel, about 0.1 degrees apart.
const minBillboardAngle = 1.0 - 0.1*(math.Pi/180.0)

// CreateBillboard builds a matrix that rotates an object at
// objectPosition to face the camera. When object and camera nearly
// coincide, the negated camera forward vector substitutes for the facing
// axis.
func CreateBillboard(objectPosition, cameraPosition, cameraUpVector, cameraForwardVector f32.Vector3) Matrix {
	zaxis := objectPosition.Sub(cameraPosition)
	norm := zaxis.LengthSquared()
	if norm < billboardEpsilon {
		zaxis = cameraForwardVector.Negate()
	} else {
		zaxis = zaxis.Scale(1 / sqrt32(norm))
	}
	xaxis := f32.Normalize(f32.Cross(cameraUpVector, zaxis))
	yaxis := f32.Cross(zaxis, xaxis)

	return axesAt(xaxis, yaxis, zaxis, objectPosition)
}

// CreateConstrainedBillboard builds a billboard constrained to rotate only
// around rotateAxis. When the rotation axis is nearly parallel to the
// facing direction the object's forward vector is used instead, and when
// that is also near-parallel, a fixed world axis chosen by the rotation
// axis's least-aligned component.
func CreateConstrainedBillboard(objectPosition, cameraPosition, rotateAxis, cameraForwardVector, objectForwardVector f32.Vector3) Matrix {
	faceDir := objectPosition.Sub(cameraPosition)
	norm := faceDir.LengthSquared()
	if norm < billboardEpsilon {
		faceDir = cameraForwardVector.Negate()
	} else {
		faceDir = faceDir.Scale(1 / sqrt32(norm))
	}

	yaxis := rotateAxis
	var xaxis, zaxis f32.Vector3

	dot := f32.Dot(rotateAxis, faceDir)
	if abs32(dot) > minBillboardAngle {
		zaxis = objectForwardVector
		dot = f32.Dot(rotateAxis, zaxis)
		if abs32(dot) > minBillboardAngle {
			if abs32(rotateAxis.Z) > minBillboardAngle {
				zaxis = f32.Vector3{X: 1}
			} else {
				zaxis = f32.Vector3{Z: -1}
			}
		}
		xaxis = f32.Normalize(f32.Cross(rotateAxis, zaxis))
		zaxis = f32.Normalize(f32.Cross(xaxis, rotateAxis))
	} else {
		xaxis = f32.Normalize(f32.Cross(rotateAxis, faceDir))
		zaxis = f32.Normalize(f32.Cross(xaxis, yaxis))
	}

	return axesAt(xaxis, yaxis, zaxis, objectPosition)
}

// CreateShadow builds a matrix flattening geometry onto plane as seen from
// lightDirection.
func CreateShadow(lightDirection f32.Vector3, plane f32.Plane) Matrix {
	p := f32.PlaneNormalize(plane)
	dot := p.Normal.X*lightDirection.X + p.Normal.Y*lightDirection.Y + p.Normal.Z*lightDirection.Z

	a, b, c, d := -p.Normal.X, -p.Normal.Y, -p.Normal.Z, -p.D

	var m Matrix
	m.M11 = a*lightDirection.X + dot
	m.M21 = b * lightDirection.X
	m.M31 = c * lightDirection.X
	m.M41 = d * lightDirection.X

	m.M12 = a * lightDirection.Y
	m.M22 = b*lightDirection.Y + dot
	m.M32 = c * lightDirection.Y
	m.M42 = d * lightDirection.Y

	m.M13 = a * lightDirection.Z
	m.M23 = b * lightDirection.Z
	m.M33 = c*lightDirection.Z + dot
	m.M43 = d * lightDirection.Z

	m.M44 = dot
	return m
}

// CreateReflection builds a matrix reflecting geometry across plane.
func CreateReflection(plane f32.Plane) Matrix {
	p := f32.PlaneNormalize(plane)

	a, b, c := p.Normal.X, p.Normal.Y, p.Normal.Z
	fa, fb, fc := -2*a, -2*b, -2*c

	return Matrix{
		M11: fa*a + 1, M12: fb * a, M13: fc * a,
		M21: fa * b, M22: fb*b + 1, M23: fc * b,
		M31: fa * c, M32: fb * c, M33: fc*c + 1,
		M41: fa * p.D, M42: fb * p.D, M43: fc * p.D,
		M44: 1,
	}
}

// axesAt assembles a matrix from three basis rows and a position row.
func axesAt(xaxis, yaxis, zaxis, position f32.Vector3) Matrix {
	return Matrix{
		M11: xaxis.X, M12: xaxis.Y, M13: xaxis.Z,
		M21: yaxis.X, M22: yaxis.Y, M23: yaxis.Z,
		M31: zaxis.X, M32: zaxis.Y, M33: zaxis.Z,
		M41: position.X, M42: position.Y, M43: position.Z,
		M44: 1,
	}
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
