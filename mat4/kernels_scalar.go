package mat4

// Portable scalar kernels. These are the reference implementations for
// every architecture and stay bound when no vector instruction set is
// available or HWY_NO_SIMD is set.

func addBase(a, b *Matrix) Matrix {
	return Matrix{
		a.M11 + b.M11, a.M12 + b.M12, a.M13 + b.M13, a.M14 + b.M14,
		a.M21 + b.M21, a.M22 + b.M22, a.M23 + b.M23, a.M24 + b.M24,
		a.M31 + b.M31, a.M32 + b.M32, a.M33 + b.M33, a.M34 + b.M34,
		a.M41 + b.M41, a.M42 + b.M42, a.M43 + b.M43, a.M44 + b.M44,
	}
}

func subBase(a, b *Matrix) Matrix {
	return Matrix{
		a.M11 - b.M11, a.M12 - b.M12, a.M13 - b.M13, a.M14 - b.M14,
		a.M21 - b.M21, a.M22 - b.M22, a.M23 - b.M23, a.M24 - b.M24,
		a.M31 - b.M31, a.M32 - b.M32, a.M33 - b.M33, a.M34 - b.M34,
		a.M41 - b.M41, a.M42 - b.M42, a.M43 - b.M43, a.M44 - b.M44,
	}
}

func negBase(m *Matrix) Matrix {
	return Matrix{
		-m.M11, -m.M12, -m.M13, -m.M14,
		-m.M21, -m.M22, -m.M23, -m.M24,
		-m.M31, -m.M32, -m.M33, -m.M34,
		-m.M41, -m.M42, -m.M43, -m.M44,
	}
}

func mulBase(a, b *Matrix) Matrix {
	return Matrix{
		M11: a.M11*b.M11 + a.M12*b.M21 + a.M13*b.M31 + a.M14*b.M41,
		M12: a.M11*b.M12 + a.M12*b.M22 + a.M13*b.M32 + a.M14*b.M42,
		M13: a.M11*b.M13 + a.M12*b.M23 + a.M13*b.M33 + a.M14*b.M43,
		M14: a.M11*b.M14 + a.M12*b.M24 + a.M13*b.M34 + a.M14*b.M44,

		M21: a.M21*b.M11 + a.M22*b.M21 + a.M23*b.M31 + a.M24*b.M41,
		M22: a.M21*b.M12 + a.M22*b.M22 + a.M23*b.M32 + a.M24*b.M42,
		M23: a.M21*b.M13 + a.M22*b.M23 + a.M23*b.M33 + a.M24*b.M43,
		M24: a.M21*b.M14 + a.M22*b.M24 + a.M23*b.M34 + a.M24*b.M44,

		M31: a.M31*b.M11 + a.M32*b.M21 + a.M33*b.M31 + a.M34*b.M41,
		M32: a.M31*b.M12 + a.M32*b.M22 + a.M33*b.M32 + a.M34*b.M42,
		M33: a.M31*b.M13 + a.M32*b.M23 + a.M33*b.M33 + a.M34*b.M43,
		M34: a.M31*b.M14 + a.M32*b.M24 + a.M33*b.M34 + a.M34*b.M44,

		M41: a.M41*b.M11 + a.M42*b.M21 + a.M43*b.M31 + a.M44*b.M41,
		M42: a.M41*b.M12 + a.M42*b.M22 + a.M43*b.M32 + a.M44*b.M42,
		M43: a.M41*b.M13 + a.M42*b.M23 + a.M43*b.M33 + a.M44*b.M43,
		M44: a.M41*b.M14 + a.M42*b.M24 + a.M43*b.M34 + a.M44*b.M44,
	}
}

func mulScalarBase(m *Matrix, s float32) Matrix {
	return Matrix{
		m.M11 * s, m.M12 * s, m.M13 * s, m.M14 * s,
		m.M21 * s, m.M22 * s, m.M23 * s, m.M24 * s,
		m.M31 * s, m.M32 * s, m.M33 * s, m.M34 * s,
		m.M41 * s, m.M42 * s, m.M43 * s, m.M44 * s,
	}
}

func transposeBase(m *Matrix) Matrix {
	return Matrix{
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	}
}

func lerpBase(a, b *Matrix, t float32) Matrix {
	return Matrix{
		a.M11 + (b.M11-a.M11)*t, a.M12 + (b.M12-a.M12)*t, a.M13 + (b.M13-a.M13)*t, a.M14 + (b.M14-a.M14)*t,
		a.M21 + (b.M21-a.M21)*t, a.M22 + (b.M22-a.M22)*t, a.M23 + (b.M23-a.M23)*t, a.M24 + (b.M24-a.M24)*t,
		a.M31 + (b.M31-a.M31)*t, a.M32 + (b.M32-a.M32)*t, a.M33 + (b.M33-a.M33)*t, a.M34 + (b.M34-a.M34)*t,
		a.M41 + (b.M41-a.M41)*t, a.M42 + (b.M42-a.M42)*t, a.M43 + (b.M43-a.M43)*t, a.M44 + (b.M44-a.M44)*t,
	}
}

// eqBase compares the diagonal first. Transform matrices that differ
// usually differ there, so most non-equal pairs reject after four
// comparisons. Cost-only: the result is identical to comparing all
// sixteen fields in order.
func eqBase(a, b *Matrix) bool {
	return a.M11 == b.M11 && a.M22 == b.M22 && a.M33 == b.M33 && a.M44 == b.M44 &&
		a.M12 == b.M12 && a.M13 == b.M13 && a.M14 == b.M14 &&
		a.M21 == b.M21 && a.M23 == b.M23 && a.M24 == b.M24 &&
		a.M31 == b.M31 && a.M32 == b.M32 && a.M34 == b.M34 &&
		a.M41 == b.M41 && a.M42 == b.M42 && a.M43 == b.M43
}
