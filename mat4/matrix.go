package mat4

import (
	"fmt"

	"github.com/ajroetker/go-mat4/f32"
)

// Matrix is a 4x4 single-precision matrix in row-major order.
// Field Mrc is row r, column c. Any sixteen floats form a valid Matrix;
// nothing is enforced by the type itself.
type Matrix struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// Identity is the multiplicative identity.
var Identity = Matrix{
	M11: 1,
	M22: 1,
	M33: 1,
	M44: 1,
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

// Translation returns the translation component (row 4).
func (m Matrix) Translation() f32.Vector3 {
	return f32.Vector3{X: m.M41, Y: m.M42, Z: m.M43}
}

// SetTranslation returns a copy of m with row 4 replaced by t (M44 kept).
func (m Matrix) SetTranslation(t f32.Vector3) Matrix {
	m.M41 = t.X
	m.M42 = t.Y
	m.M43 = t.Z
	return m
}

// FromMatrix3x2 widens a 2-D affine transform into a 4x4 matrix by
// zero-padding the Z row and column.
func FromMatrix3x2(v f32.Matrix3x2) Matrix {
	return Matrix{
		M11: v.M11, M12: v.M12,
		M21: v.M21, M22: v.M22,
		M33: 1,
		M41: v.M31, M42: v.M32, M44: 1,
	}
}

// String renders m field by field for logs and debugging. The layout is
// fixed but not a compatibility surface.
func (m Matrix) String() string {
	return fmt.Sprintf("{ {M11:%v M12:%v M13:%v M14:%v} {M21:%v M22:%v M23:%v M24:%v} {M31:%v M32:%v M33:%v M34:%v} {M41:%v M42:%v M43:%v M44:%v} }",
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44)
}

// rows disassembles m into four 4-float row chunks for the vector kernels.
func (m *Matrix) rows() [4][4]float32 {
	return [4][4]float32{
		{m.M11, m.M12, m.M13, m.M14},
		{m.M21, m.M22, m.M23, m.M24},
		{m.M31, m.M32, m.M33, m.M34},
		{m.M41, m.M42, m.M43, m.M44},
	}
}

// fromRows reassembles a Matrix from four row chunks.
func fromRows(r [4][4]float32) Matrix {
	return Matrix{
		M11: r[0][0], M12: r[0][1], M13: r[0][2], M14: r[0][3],
		M21: r[1][0], M22: r[1][1], M23: r[1][2], M24: r[1][3],
		M31: r[2][0], M32: r[2][1], M33: r[2][2], M34: r[2][3],
		M41: r[3][0], M42: r[3][1], M43: r[3][2], M44: r[3][3],
	}
}

// flat disassembles m into a single 16-float chunk, row-major.
func (m *Matrix) flat() [16]float32 {
	return [16]float32{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

// fromFlat reassembles a Matrix from a row-major 16-float chunk.
func fromFlat(f [16]float32) Matrix {
	return Matrix{
		M11: f[0], M12: f[1], M13: f[2], M14: f[3],
		M21: f[4], M22: f[5], M23: f[6], M24: f[7],
		M31: f[8], M32: f[9], M33: f[10], M34: f[11],
		M41: f[12], M42: f[13], M43: f[14], M44: f[15],
	}
}
