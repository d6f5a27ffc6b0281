//go:build amd64

package mat4

import (
	"math"
	"math/rand"
	"testing"
)

// The wide kernels reinterpret the matrix as two 8-float chunks. They
// must agree with the scalar reference exactly for add/sub/neg/scale and
// within FMA tolerance for lerp.

func TestWideKernelsMatchScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(49))

	for i := 0; i < 200; i++ {
		a, b := randMatrix(rng), randMatrix(rng)
		s := rng.Float32()*4 - 2

		if got, want := addWide(&a, &b), addBase(&a, &b); got != want {
			t.Fatalf("addWide = %v, want %v", got, want)
		}
		if got, want := subWide(&a, &b), subBase(&a, &b); got != want {
			t.Fatalf("subWide = %v, want %v", got, want)
		}
		if got, want := negWide(&a), negBase(&a); got != want {
			t.Fatalf("negWide = %v, want %v", got, want)
		}
		if got, want := mulScalarWide(&a, s), mulScalarBase(&a, s); got != want {
			t.Fatalf("mulScalarWide = %v, want %v", got, want)
		}
	}
}

func TestLerpWideAgrees(t *testing.T) {
	rng := rand.New(rand.NewSource(50))

	for i := 0; i < 200; i++ {
		a, b := randMatrix(rng), randMatrix(rng)
		tt := rng.Float32()

		gotM, wantM := lerpWide(&a, &b, tt), lerpBase(&a, &b, tt)
		got, want := gotM.flat(), wantM.flat()
		for j := range want {
			diff := math.Abs(float64(got[j] - want[j]))
			scale := math.Max(1, math.Abs(float64(want[j])))
			if diff > 1e-5*scale {
				t.Fatalf("iteration %d component %d: wide=%v scalar=%v", i, j, got[j], want[j])
			}
		}
	}
}

func TestLerpWideBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(51))

	for i := 0; i < 100; i++ {
		a, b := randIntMatrix(rng), randIntMatrix(rng)
		if got := lerpWide(&a, &b, 0); got != a {
			t.Fatalf("lerpWide(a, b, 0) = %v, want a = %v", got, a)
		}
		if got := lerpWide(&a, &b, 1); got != b {
			t.Fatalf("lerpWide(a, b, 1) = %v, want b = %v", got, b)
		}
	}
}
