package mat4

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// Wide-vector kernels built on the highway vector API, one 4-float row per
// vector. Bound by the per-architecture init functions; never called when
// the scalar kernels are selected.

func addVec(a, b *Matrix) Matrix {
	ar, br := a.rows(), b.rows()
	var out [4][4]float32
	for i := range ar {
		va := hwy.Load(ar[i][:])
		vb := hwy.Load(br[i][:])
		hwy.Store(hwy.Add(va, vb), out[i][:])
	}
	return fromRows(out)
}

func subVec(a, b *Matrix) Matrix {
	ar, br := a.rows(), b.rows()
	var out [4][4]float32
	for i := range ar {
		va := hwy.Load(ar[i][:])
		vb := hwy.Load(br[i][:])
		hwy.Store(hwy.Sub(va, vb), out[i][:])
	}
	return fromRows(out)
}

func negVec(m *Matrix) Matrix {
	mr := m.rows()
	var out [4][4]float32
	for i := range mr {
		hwy.Store(hwy.Neg(hwy.Load(mr[i][:])), out[i][:])
	}
	return fromRows(out)
}

// mulVec broadcasts each left-hand row entry across a lane vector and
// accumulates the right-hand rows with FMA: out[i] = sum_k a[i][k]*b[k].
func mulVec(a, b *Matrix) Matrix {
	ar, br := a.rows(), b.rows()
	b0 := hwy.Load(br[0][:])
	b1 := hwy.Load(br[1][:])
	b2 := hwy.Load(br[2][:])
	b3 := hwy.Load(br[3][:])

	var out [4][4]float32
	for i := range ar {
		acc := hwy.Mul(hwy.Set(ar[i][0]), b0)
		acc = hwy.FMA(hwy.Set(ar[i][1]), b1, acc)
		acc = hwy.FMA(hwy.Set(ar[i][2]), b2, acc)
		acc = hwy.FMA(hwy.Set(ar[i][3]), b3, acc)
		hwy.Store(acc, out[i][:])
	}
	return fromRows(out)
}

func mulScalarVec(m *Matrix, s float32) Matrix {
	mr := m.rows()
	vs := hwy.Set(s)
	var out [4][4]float32
	for i := range mr {
		hwy.Store(hwy.Mul(hwy.Load(mr[i][:]), vs), out[i][:])
	}
	return fromRows(out)
}

// transposeVec permutes through the two-stage 2x2 block interleave used by
// the unpack/move sequences on 4-lane hardware. Still a pure permutation:
// identical result to transposeBase.
func transposeVec(m *Matrix) Matrix {
	r := m.rows()

	t0 := [4]float32{r[0][0], r[1][0], r[0][1], r[1][1]}
	t1 := [4]float32{r[2][0], r[3][0], r[2][1], r[3][1]}
	t2 := [4]float32{r[0][2], r[1][2], r[0][3], r[1][3]}
	t3 := [4]float32{r[2][2], r[3][2], r[2][3], r[3][3]}

	return fromRows([4][4]float32{
		{t0[0], t0[1], t1[0], t1[1]},
		{t0[2], t0[3], t1[2], t1[3]},
		{t2[0], t2[1], t3[0], t3[1]},
		{t2[2], t2[3], t3[2], t3[3]},
	})
}

func lerpVec(a, b *Matrix, t float32) Matrix {
	ar, br := a.rows(), b.rows()
	vt := hwy.Set(t)
	var out [4][4]float32
	for i := range ar {
		va := hwy.Load(ar[i][:])
		vb := hwy.Load(br[i][:])
		hwy.Store(hwy.FMA(hwy.Sub(vb, va), vt, va), out[i][:])
	}
	return fromRows(out)
}

// eqVec reduces a lane-equality mask: each matching lane contributes 1 and
// the matrices are equal iff all sixteen contribute. NaN lanes never
// match, preserving exact float32 equality semantics.
func eqVec(a, b *Matrix) bool {
	af, bf := a.flat(), b.flat()

	ones := hwy.Set[float32](1)
	zero := hwy.Zero[float32]()

	lanes := hwy.MaxLanes[float32]()
	if lanes > 16 {
		lanes = 16
	}

	var matched float32
	for i := 0; i < 16; i += lanes {
		va := hwy.Load(af[i : i+lanes])
		vb := hwy.Load(bf[i : i+lanes])
		mask := hwy.Equal(va, vb)
		matched += hwy.ReduceSum(hwy.IfThenElse(mask, ones, zero))
	}
	return matched == 16
}

// invertVec inverts via the block identity for a 4x4 matrix partitioned
// into 2x2 blocks [A B; C D]: the same mathematical result as the
// adjugate path modulo floating-point reassociation. Each block occupies
// four lanes in row-major order {m00, m01, m10, m11}; the mat2 helpers
// below are the lane arithmetic of the classic vectorized formulation.
func invertVec(v *Matrix) (Matrix, bool) {
	a := [4]float32{v.M11, v.M12, v.M21, v.M22}
	b := [4]float32{v.M13, v.M14, v.M23, v.M24}
	c := [4]float32{v.M31, v.M32, v.M41, v.M42}
	d := [4]float32{v.M33, v.M34, v.M43, v.M44}

	detA := a[0]*a[3] - a[1]*a[2]
	detB := b[0]*b[3] - b[1]*b[2]
	detC := c[0]*c[3] - c[1]*c[2]
	detD := d[0]*d[3] - d[1]*d[2]

	ab := mat2AdjMul(a, b) // A#B
	dc := mat2AdjMul(d, c) // D#C

	// det(M) = |A||D| + |B||C| - tr((A#B)(D#C))
	det := detA*detD + detB*detC -
		(ab[0]*dc[0] + ab[1]*dc[2] + ab[2]*dc[1] + ab[3]*dc[3])

	if abs32(det) < math.SmallestNonzeroFloat32 {
		return nanMatrix(), false
	}

	// X# = |D|A - B(D#C), W# = |A|D - C(A#B),
	// Y# = |B|C - D(A#B)#, Z# = |C|B - A(D#C)#.
	x := mat2Sub(mat2Scale(a, detD), mat2Mul(b, dc))
	w := mat2Sub(mat2Scale(d, detA), mat2Mul(c, ab))
	y := mat2Sub(mat2Scale(c, detB), mat2MulAdj(d, ab))
	z := mat2Sub(mat2Scale(b, detC), mat2MulAdj(a, dc))

	rd := 1 / det
	sign := [4]float32{rd, -rd, -rd, rd}
	for i := range sign {
		x[i] *= sign[i]
		y[i] *= sign[i]
		z[i] *= sign[i]
		w[i] *= sign[i]
	}

	// Final adjugate shuffle: each output block row picks lanes {3,1}
	// then {2,0} of its signed block.
	return Matrix{
		M11: x[3], M12: x[1], M13: y[3], M14: y[1],
		M21: x[2], M22: x[0], M23: y[2], M24: y[0],
		M31: z[3], M32: z[1], M33: w[3], M34: w[1],
		M41: z[2], M42: z[0], M43: w[2], M44: w[0],
	}, true
}

// mat2Mul computes the 2x2 product a*b.
func mat2Mul(a, b [4]float32) [4]float32 {
	return [4]float32{
		a[0]*b[0] + a[1]*b[2], a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2], a[2]*b[1] + a[3]*b[3],
	}
}

// mat2AdjMul computes adjugate(a)*b.
func mat2AdjMul(a, b [4]float32) [4]float32 {
	return [4]float32{
		a[3]*b[0] - a[1]*b[2], a[3]*b[1] - a[1]*b[3],
		a[0]*b[2] - a[2]*b[0], a[0]*b[3] - a[2]*b[1],
	}
}

// mat2MulAdj computes a*adjugate(b).
func mat2MulAdj(a, b [4]float32) [4]float32 {
	return [4]float32{
		a[0]*b[3] - a[1]*b[2], a[1]*b[0] - a[0]*b[1],
		a[2]*b[3] - a[3]*b[2], a[3]*b[0] - a[2]*b[1],
	}
}

func mat2Scale(a [4]float32, s float32) [4]float32 {
	return [4]float32{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

func mat2Sub(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}
