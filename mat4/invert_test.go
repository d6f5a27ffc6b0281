package mat4

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-mat4/f32"
)

// invertKernels lists both invert paths so every test runs against each.
var invertKernels = map[string]func(*Matrix) (Matrix, bool){
	"adjugate": invertBase,
	"block":    invertVec,
}

func TestInvertIdentity(t *testing.T) {
	for name, invert := range invertKernels {
		inv, ok := invert(&Identity)
		if !ok {
			t.Errorf("%s: Invert(I) reported failure", name)
		}
		if !Equal(inv, Identity) {
			t.Errorf("%s: Invert(I) = %v, want identity", name, inv)
		}
	}
}

func TestInvertRoundTrip(t *testing.T) {
	m := Multiply(
		Multiply(
			CreateScale(2, 3, 4),
			CreateFromAxisAngle(f32.Normalize(f32.Vector3{X: 1, Y: 1, Z: 0}), 1.2),
		),
		CreateTranslation(f32.Vector3{X: 5, Y: -6, Z: 7}),
	)

	for name, invert := range invertKernels {
		inv, ok := invert(&m)
		if !ok {
			t.Fatalf("%s: invertible matrix reported singular", name)
		}

		for which, prod := range map[string]Matrix{
			"M*Inv": Multiply(m, inv),
			"Inv*M": Multiply(inv, m),
		} {
			d := maxAbsDiff(prod, Identity)
			if d > 1e-4 {
				t.Errorf("%s: %s deviates from identity by %g", name, which, d)
			}
		}
	}
}

func TestInvertSingular(t *testing.T) {
	// A zero row forces a zero determinant.
	singular := CreateScale(1, 1, 0)

	for name, invert := range invertKernels {
		inv, ok := invert(&singular)
		if ok {
			t.Errorf("%s: singular matrix reported invertible", name)
		}
		for i, v := range inv.flat() {
			if !math.IsNaN(float64(v)) {
				t.Errorf("%s: component %d = %v, want NaN", name, i, v)
			}
		}
	}
}

func TestInvertTranslation(t *testing.T) {
	m := CreateTranslation(f32.Vector3{X: 5, Y: 6, Z: 7})
	want := CreateTranslation(f32.Vector3{X: -5, Y: -6, Z: -7})

	for name, invert := range invertKernels {
		inv, ok := invert(&m)
		if !ok {
			t.Fatalf("%s: translation reported singular", name)
		}
		if !Equal(inv, want) {
			t.Errorf("%s: Invert(T(5,6,7)) = %v, want %v", name, inv, want)
		}
	}
}

// TestInvertKernelCrossCheck verifies the block path against the adjugate
// path on random well-conditioned transforms: same result modulo
// floating-point reassociation.
func TestInvertKernelCrossCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		m := randomSRT(rng)

		base, okBase := invertBase(&m)
		block, okBlock := invertVec(&m)

		if okBase != okBlock {
			t.Fatalf("iteration %d: success flags disagree (adjugate=%v block=%v)\nM = %v", i, okBase, okBlock, m)
		}
		if !okBase {
			continue
		}

		bf, kf := base.flat(), block.flat()
		for j := range bf {
			diff := math.Abs(float64(bf[j] - kf[j]))
			scale := math.Max(1, math.Abs(float64(bf[j])))
			if diff > 1e-4*scale {
				t.Fatalf("iteration %d component %d: adjugate=%v block=%v\nM = %v", i, j, bf[j], kf[j], m)
			}
		}
	}
}

func randomSRT(rng *rand.Rand) Matrix {
	scale := CreateScale(
		0.5+rng.Float32()*4,
		0.5+rng.Float32()*4,
		0.5+rng.Float32()*4,
	)
	rot := CreateFromYawPitchRoll(
		rng.Float32()*2*math.Pi,
		rng.Float32()*2*math.Pi,
		rng.Float32()*2*math.Pi,
	)
	trans := CreateTranslation(f32.Vector3{
		X: rng.Float32()*20 - 10,
		Y: rng.Float32()*20 - 10,
		Z: rng.Float32()*20 - 10,
	})
	return Multiply(Multiply(scale, rot), trans)
}

func maxAbsDiff(a, b Matrix) float64 {
	af, bf := a.flat(), b.flat()
	max := 0.0
	for i := range af {
		if d := math.Abs(float64(af[i] - bf[i])); d > max {
			max = d
		}
	}
	return max
}

func BenchmarkInvert(b *testing.B) {
	m := Multiply(CreateFromYawPitchRoll(0.3, 0.5, 0.7), CreateTranslation(f32.Vector3{X: 1, Y: 2, Z: 3}))
	for i := 0; i < b.N; i++ {
		_, _ = Invert(m)
	}
}
