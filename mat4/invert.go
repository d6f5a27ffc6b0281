package mat4

import "math"

// Determinant computes the determinant by cofactor expansion along the
// first row, sharing the six 2x2 sub-determinants across the four
// cofactors. Exact up to ordinary floating-point rounding.
func (v Matrix) Determinant() float32 {
	a, b, c, d := v.M11, v.M12, v.M13, v.M14
	e, f, g, h := v.M21, v.M22, v.M23, v.M24
	i, j, k, l := v.M31, v.M32, v.M33, v.M34
	m, n, o, p := v.M41, v.M42, v.M43, v.M44

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*m
	ioKm := i*o - k*m
	inJm := i*n - j*m

	return a*(f*kpLo-g*jpLn+h*joKn) -
		b*(e*kpLo-g*ipLm+h*ioKm) +
		c*(e*jpLn-f*ipLm+h*inJm) -
		d*(e*joKn-f*ioKm+g*inJm)
}

// Invert attempts to compute the multiplicative inverse of m.
//
// When the determinant's magnitude is below the smallest positive float32
// the matrix is treated as singular: the result is filled with NaN and ok
// is false. The threshold is absolute, not scaled to the matrix magnitude,
// so ill-conditioned but technically invertible matrices near the boundary
// may flip between success and failure as their overall scale changes.
func Invert(m Matrix) (inverse Matrix, ok bool) {
	return invertImpl(&m)
}

// nanMatrix is the deterministic failure value for Invert.
func nanMatrix() Matrix {
	nan := float32(math.NaN())
	return Matrix{
		nan, nan, nan, nan,
		nan, nan, nan, nan,
		nan, nan, nan, nan,
		nan, nan, nan, nan,
	}
}

// invertBase computes the inverse via the adjugate divided by the
// determinant. All sixteen cofactors are built from six reusable 2x2
// products per row pair: 53 additions, 104 multiplications, 1 division.
func invertBase(v *Matrix) (Matrix, bool) {
	a, b, c, d := v.M11, v.M12, v.M13, v.M14
	e, f, g, h := v.M21, v.M22, v.M23, v.M24
	i, j, k, l := v.M31, v.M32, v.M33, v.M34
	m, n, o, p := v.M41, v.M42, v.M43, v.M44

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*m
	ioKm := i*o - k*m
	inJm := i*n - j*m

	a11 := +(f*kpLo - g*jpLn + h*joKn)
	a12 := -(e*kpLo - g*ipLm + h*ioKm)
	a13 := +(e*jpLn - f*ipLm + h*inJm)
	a14 := -(e*joKn - f*ioKm + g*inJm)

	det := a*a11 + b*a12 + c*a13 + d*a14

	if abs32(det) < math.SmallestNonzeroFloat32 {
		return nanMatrix(), false
	}

	invDet := 1 / det

	var r Matrix
	r.M11 = a11 * invDet
	r.M21 = a12 * invDet
	r.M31 = a13 * invDet
	r.M41 = a14 * invDet

	r.M12 = -(b*kpLo - c*jpLn + d*joKn) * invDet
	r.M22 = +(a*kpLo - c*ipLm + d*ioKm) * invDet
	r.M32 = -(a*jpLn - b*ipLm + d*inJm) * invDet
	r.M42 = +(a*joKn - b*ioKm + c*inJm) * invDet

	gpHo := g*p - h*o
	fpHn := f*p - h*n
	foGn := f*o - g*n
	epHm := e*p - h*m
	eoGm := e*o - g*m
	enFm := e*n - f*m

	r.M13 = +(b*gpHo - c*fpHn + d*foGn) * invDet
	r.M23 = -(a*gpHo - c*epHm + d*eoGm) * invDet
	r.M33 = +(a*fpHn - b*epHm + d*enFm) * invDet
	r.M43 = -(a*foGn - b*eoGm + c*enFm) * invDet

	glHk := g*l - h*k
	flHj := f*l - h*j
	fkGj := f*k - g*j
	elHi := e*l - h*i
	ekGi := e*k - g*i
	ejFi := e*j - f*i

	r.M14 = -(b*glHk - c*flHj + d*fkGj) * invDet
	r.M24 = +(a*glHk - c*elHi + d*ekGi) * invDet
	r.M34 = -(a*flHj - b*elHi + d*ejFi) * invDet
	r.M44 = +(a*fkGj - b*ekGi + c*ejFi) * invDet

	return r, true
}
