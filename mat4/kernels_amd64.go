//go:build amd64

package mat4

import "github.com/ajroetker/go-highway/hwy"

// x86 kernel binding. SSE2 is the amd64 baseline, so the 4-lane row
// kernels bind whenever SIMD is not disabled. On AVX2 and above the
// element-wise kernels additionally process two rows per 8-lane vector.
func init() {
	if hwy.CurrentLevel() < hwy.DispatchSSE2 {
		// HWY_NO_SIMD: scalar kernels stay bound.
		return
	}

	addImpl = addVec
	subImpl = subVec
	negImpl = negVec
	mulImpl = mulVec
	mulScalarImpl = mulScalarVec
	transposeImpl = transposeVec
	lerpImpl = lerpVec
	eqImpl = eqVec
	invertImpl = invertVec
	kernelName = "sse2"

	if hwy.CurrentLevel() >= hwy.DispatchAVX2 {
		addImpl = addWide
		subImpl = subWide
		negImpl = negWide
		mulScalarImpl = mulScalarWide
		lerpImpl = lerpWide
		kernelName = "avx2"
	}
}

// The wide kernels view the matrix as two 8-float chunks instead of four
// rows. Only the purely element-wise operations qualify; multiply and
// invert keep the 4-lane row structure.

func addWide(a, b *Matrix) Matrix {
	af, bf := a.flat(), b.flat()
	var out [16]float32
	for i := 0; i < 16; i += 8 {
		va := hwy.Load(af[i : i+8])
		vb := hwy.Load(bf[i : i+8])
		hwy.Store(hwy.Add(va, vb), out[i:i+8])
	}
	return fromFlat(out)
}

func subWide(a, b *Matrix) Matrix {
	af, bf := a.flat(), b.flat()
	var out [16]float32
	for i := 0; i < 16; i += 8 {
		va := hwy.Load(af[i : i+8])
		vb := hwy.Load(bf[i : i+8])
		hwy.Store(hwy.Sub(va, vb), out[i:i+8])
	}
	return fromFlat(out)
}

func negWide(m *Matrix) Matrix {
	mf := m.flat()
	var out [16]float32
	for i := 0; i < 16; i += 8 {
		hwy.Store(hwy.Neg(hwy.Load(mf[i:i+8])), out[i:i+8])
	}
	return fromFlat(out)
}

func mulScalarWide(m *Matrix, s float32) Matrix {
	mf := m.flat()
	vs := hwy.Set(s)
	var out [16]float32
	for i := 0; i < 16; i += 8 {
		hwy.Store(hwy.Mul(hwy.Load(mf[i:i+8]), vs), out[i:i+8])
	}
	return fromFlat(out)
}

func lerpWide(a, b *Matrix, t float32) Matrix {
	af, bf := a.flat(), b.flat()
	vt := hwy.Set(t)
	var out [16]float32
	for i := 0; i < 16; i += 8 {
		va := hwy.Load(af[i : i+8])
		vb := hwy.Load(bf[i : i+8])
		hwy.Store(hwy.FMA(hwy.Sub(vb, va), vt, va), out[i:i+8])
	}
	return fromFlat(out)
}
