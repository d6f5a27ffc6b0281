package mat4

import "github.com/ajroetker/go-mat4/f32"

// decomposeEpsilon bounds both the near-zero scale test and the allowed
// deviation of the orthonormalized basis determinant from 1.
const decomposeEpsilon = 1e-4

// Decompose extracts the scale, rotation, and translation components of a
// matrix assumed to be Scale x Rotation x Translation.
//
// Translation is read from row 4 and scale from the lengths of the three
// upper-left basis rows. Axes are processed largest scale first; an axis
// whose scale falls below a fixed epsilon has its direction regenerated
// from the canonical basis or cross products rather than normalized from
// noise. A left-handed basis is restored to right-handed by negating the
// largest axis.
//
// When the orthonormalized basis deviates too far from a true rotation the
// input was not a clean SRT matrix: ok is false and rotation is the
// identity, but scale and translation keep their computed values. Callers
// depend on that partial result.
func Decompose(m Matrix) (scale f32.Vector3, rotation f32.Quaternion, translation f32.Vector3, ok bool) {
	translation = f32.Vector3{X: m.M41, Y: m.M42, Z: m.M43}

	basis := [3]f32.Vector3{
		{X: m.M11, Y: m.M12, Z: m.M13},
		{X: m.M21, Y: m.M22, Z: m.M23},
		{X: m.M31, Y: m.M32, Z: m.M33},
	}
	scales := [3]float32{
		basis[0].Length(),
		basis[1].Length(),
		basis[2].Length(),
	}

	// a, b, c index the largest, middle, and smallest scale.
	a, b, c := rankScales(scales)

	canonical := [3]f32.Vector3{f32.UnitX, f32.UnitY, f32.UnitZ}

	if scales[a] < decomposeEpsilon {
		basis[a] = canonical[a]
	}
	basis[a] = f32.Normalize(basis[a])

	if scales[b] < decomposeEpsilon {
		cc := leastAlignedAxis(basis[a])
		basis[b] = f32.Cross(basis[a], canonical[cc])
	}
	basis[b] = f32.Normalize(basis[b])

	if scales[c] < decomposeEpsilon {
		basis[c] = f32.Cross(basis[a], basis[b])
	}
	basis[c] = f32.Normalize(basis[c])

	det := basisDeterminant(basis)

	// A negative determinant means a reflected basis. Flipping the
	// largest axis restores right-handedness before the quaternion
	// extraction.
	if det < 0 {
		scales[a] = -scales[a]
		basis[a] = basis[a].Negate()
		det = -det
	}

	scale = f32.Vector3{X: scales[0], Y: scales[1], Z: scales[2]}

	det -= 1
	det *= det
	if det > decomposeEpsilon {
		// Not a pure rotation: shear or projection in the input.
		rotation = f32.QuaternionIdentity
		return scale, rotation, translation, false
	}

	rotation = quaternionFromBasis(basis[0], basis[1], basis[2])
	return scale, rotation, translation, true
}

// rankScales returns the indices of the largest, middle, and smallest of
// the three scale magnitudes.
func rankScales(s [3]float32) (a, b, c int) {
	a, b, c = 0, 1, 2
	if s[a] < s[b] {
		a, b = b, a
	}
	if s[a] < s[c] {
		a, c = c, a
	}
	if s[b] < s[c] {
		b, c = c, b
	}
	return a, b, c
}

// leastAlignedAxis returns the index of the canonical axis v is least
// aligned with, ranked by absolute component magnitude.
func leastAlignedAxis(v f32.Vector3) int {
	ax, ay, az := abs32(v.X), abs32(v.Y), abs32(v.Z)
	if ax < ay {
		if ax < az {
			return 0
		}
		return 2
	}
	if ay < az {
		return 1
	}
	return 2
}

// basisDeterminant computes the determinant of the 3x3 matrix whose rows
// are x, y, z.
func basisDeterminant(b [3]f32.Vector3) float32 {
	return b[0].X*(b[1].Y*b[2].Z-b[1].Z*b[2].Y) -
		b[0].Y*(b[1].X*b[2].Z-b[1].Z*b[2].X) +
		b[0].Z*(b[1].X*b[2].Y-b[1].Y*b[2].X)
}

// quaternionFromBasis extracts a rotation quaternion from an orthonormal
// basis via the standard trace-based formula, branching on the largest
// diagonal term for numerical stability.
func quaternionFromBasis(rx, ry, rz f32.Vector3) f32.Quaternion {
	m11, m12, m13 := rx.X, rx.Y, rx.Z
	m21, m22, m23 := ry.X, ry.Y, ry.Z
	m31, m32, m33 := rz.X, rz.Y, rz.Z

	trace := m11 + m22 + m33

	var q f32.Quaternion
	switch {
	case trace > 0:
		s := sqrt32(trace + 1)
		q.W = s * 0.5
		s = 0.5 / s
		q.X = (m23 - m32) * s
		q.Y = (m31 - m13) * s
		q.Z = (m12 - m21) * s
	case m11 >= m22 && m11 >= m33:
		s := sqrt32(1 + m11 - m22 - m33)
		invS := 0.5 / s
		q.X = 0.5 * s
		q.Y = (m12 + m21) * invS
		q.Z = (m13 + m31) * invS
		q.W = (m23 - m32) * invS
	case m22 > m33:
		s := sqrt32(1 + m22 - m11 - m33)
		invS := 0.5 / s
		q.X = (m21 + m12) * invS
		q.Y = 0.5 * s
		q.Z = (m32 + m23) * invS
		q.W = (m31 - m13) * invS
	default:
		s := sqrt32(1 + m33 - m11 - m22)
		invS := 0.5 / s
		q.X = (m31 + m13) * invS
		q.Y = (m32 + m23) * invS
		q.Z = 0.5 * s
		q.W = (m12 - m21) * invS
	}
	return q
}
