package mat4

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-mat4/f32"
)

// The vector kernels are cross-checked against the scalar reference.
// Element-wise operations must match bit for bit; multiply and lerp are
// allowed FMA reassociation within a small tolerance.

func randMatrix(rng *rand.Rand) Matrix {
	var f [16]float32
	for i := range f {
		f[i] = rng.Float32()*20 - 10
	}
	return fromFlat(f)
}

// randIntMatrix returns a matrix of small integer-valued floats, for
// properties that demand exact arithmetic.
func randIntMatrix(rng *rand.Rand) Matrix {
	var f [16]float32
	for i := range f {
		f[i] = float32(rng.Intn(33) - 16)
	}
	return fromFlat(f)
}

func TestElementwiseKernelsMatchScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		a, b := randMatrix(rng), randMatrix(rng)
		s := rng.Float32()*4 - 2

		if got, want := addVec(&a, &b), addBase(&a, &b); got != want {
			t.Fatalf("addVec = %v, want %v", got, want)
		}
		if got, want := subVec(&a, &b), subBase(&a, &b); got != want {
			t.Fatalf("subVec = %v, want %v", got, want)
		}
		if got, want := negVec(&a), negBase(&a); got != want {
			t.Fatalf("negVec = %v, want %v", got, want)
		}
		if got, want := mulScalarVec(&a, s), mulScalarBase(&a, s); got != want {
			t.Fatalf("mulScalarVec = %v, want %v", got, want)
		}
		if got, want := transposeVec(&a), transposeBase(&a); got != want {
			t.Fatalf("transposeVec = %v, want %v", got, want)
		}
	}
}

func TestMultiplyKernelsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(43))

	for i := 0; i < 200; i++ {
		a, b := randMatrix(rng), randMatrix(rng)

		gotM, wantM := mulVec(&a, &b), mulBase(&a, &b)
		got, want := gotM.flat(), wantM.flat()
		for j := range want {
			diff := math.Abs(float64(got[j] - want[j]))
			scale := math.Max(1, math.Abs(float64(want[j])))
			if diff > 1e-4*scale {
				t.Fatalf("iteration %d component %d: vec=%v scalar=%v", i, j, got[j], want[j])
			}
		}
	}
}

func TestLerpKernelsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(44))

	for i := 0; i < 200; i++ {
		a, b := randMatrix(rng), randMatrix(rng)
		tt := rng.Float32()

		gotM, wantM := lerpVec(&a, &b, tt), lerpBase(&a, &b, tt)
		got, want := gotM.flat(), wantM.flat()
		for j := range want {
			diff := math.Abs(float64(got[j] - want[j]))
			scale := math.Max(1, math.Abs(float64(want[j])))
			if diff > 1e-5*scale {
				t.Fatalf("iteration %d component %d: vec=%v scalar=%v", i, j, got[j], want[j])
			}
		}
	}
}

func TestEqualityKernelsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(45))

	for i := 0; i < 200; i++ {
		a := randMatrix(rng)
		b := a
		if !eqVec(&a, &b) || !eqBase(&a, &b) {
			t.Fatal("copies compared unequal")
		}

		// Perturb one random component.
		bf := b.flat()
		j := rng.Intn(16)
		bf[j] = math.Nextafter32(bf[j], bf[j]+1)
		b = fromFlat(bf)

		if eqVec(&a, &b) {
			t.Fatalf("eqVec missed a one-ulp difference in component %d", j)
		}
		if eqBase(&a, &b) {
			t.Fatalf("eqBase missed a one-ulp difference in component %d", j)
		}
	}
}

func TestLerpBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(46))

	for i := 0; i < 100; i++ {
		a, b := randIntMatrix(rng), randIntMatrix(rng)

		for name, lerp := range map[string]func(*Matrix, *Matrix, float32) Matrix{
			"scalar": lerpBase,
			"vec":    lerpVec,
		} {
			if got := lerp(&a, &b, 0); got != a {
				t.Fatalf("%s: Lerp(a, b, 0) = %v, want a = %v", name, got, a)
			}
			if got := lerp(&a, &b, 1); got != b {
				t.Fatalf("%s: Lerp(a, b, 1) = %v, want b = %v", name, got, b)
			}
		}
	}
}

func TestLerpNoClamping(t *testing.T) {
	a := CreateScaleUniform(1)
	b := CreateScaleUniform(2)

	// t outside [0,1] extrapolates.
	got := Lerp(a, b, 2)
	if got.M11 != 3 {
		t.Errorf("Lerp(1, 2, t=2).M11 = %v, want 3", got.M11)
	}
}

func TestTransposeInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(47))

	for i := 0; i < 100; i++ {
		m := randMatrix(rng)
		for name, transpose := range map[string]func(*Matrix) Matrix{
			"scalar": transposeBase,
			"vec":    transposeVec,
		} {
			tm := transpose(&m)
			if got := transpose(&tm); got != m {
				t.Fatalf("%s: Transpose(Transpose(m)) != m", name)
			}
		}
	}
}

func TestNegateAddCancels(t *testing.T) {
	rng := rand.New(rand.NewSource(48))
	zero := Matrix{}

	for i := 0; i < 100; i++ {
		m := randMatrix(rng)
		if got := Add(m, Negate(m)); got != zero {
			t.Fatalf("m + (-m) = %v, want zero", got)
		}
	}
}

func TestSubtractSelfIsZero(t *testing.T) {
	m := CreateFromYawPitchRoll(1, 2, 3)
	if got := Subtract(m, m); got != (Matrix{}) {
		t.Errorf("m - m = %v, want zero", got)
	}
}

func TestTransformByQuaternion(t *testing.T) {
	// Rotating by q must match multiplying with the rotation matrix.
	q := f32.QuaternionFromAxisAngle(f32.Normalize(f32.Vector3{X: 1, Y: 0, Z: 1}), 0.9)
	m := Multiply(CreateScale(2, 2, 2), CreateTranslation(f32.Vector3{X: 1, Y: 2, Z: 3}))

	ref := CreateFromQuaternion(q)
	gotM := Transform(m, q)
	wantM := mulBase(&m, &ref)
	got := gotM.flat()
	want := wantM.flat()

	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-5 {
			t.Fatalf("component %d: Transform=%v, Multiply=%v", i, got[i], want[i])
		}
	}
}

func TestKernelNameMatchesDispatch(t *testing.T) {
	switch KernelName() {
	case "scalar", "sse2", "avx2", "neon":
	default:
		t.Errorf("unknown kernel family %q", KernelName())
	}
}

func BenchmarkMultiply(b *testing.B) {
	x := CreateFromYawPitchRoll(0.3, 0.5, 0.7)
	y := CreateTranslation(f32.Vector3{X: 1, Y: 2, Z: 3})
	for i := 0; i < b.N; i++ {
		_ = Multiply(x, y)
	}
}

func BenchmarkAdd(b *testing.B) {
	x := CreateFromYawPitchRoll(0.3, 0.5, 0.7)
	y := CreateScale(2, 3, 4)
	for i := 0; i < b.N; i++ {
		_ = Add(x, y)
	}
}

func BenchmarkLerp(b *testing.B) {
	x := CreateRotationX(0.2)
	y := CreateRotationX(1.7)
	for i := 0; i < b.N; i++ {
		_ = Lerp(x, y, 0.35)
	}
}

func BenchmarkDecompose(b *testing.B) {
	m := Multiply(
		Multiply(CreateScale(2, 3, 4), CreateRotationZ(1.1)),
		CreateTranslation(f32.Vector3{X: 5, Y: 6, Z: 7}),
	)
	for i := 0; i < b.N; i++ {
		_, _, _, _ = Decompose(m)
	}
}
