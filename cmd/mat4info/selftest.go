package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ajroetker/go-mat4/f32"
	"github.com/ajroetker/go-mat4/mat4"
)

// runSelftest exercises the kernels the library selected at startup
// against invariants that hold on every path: identity multiplication,
// transpose involution, lerp endpoints, and inverse round-trips on
// well-conditioned random transforms.
func runSelftest(rounds int) error {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < rounds; i++ {
		m := randomTransform(rng)

		if got := mat4.Multiply(m, mat4.Identity); !mat4.Equal(got, m) {
			return fmt.Errorf("round %d: M*I != M\nM = %v\ngot %v", i, m, got)
		}
		if got := mat4.Transpose(mat4.Transpose(m)); !mat4.Equal(got, m) {
			return fmt.Errorf("round %d: transpose not an involution", i)
		}
		if got := mat4.Lerp(m, mat4.Identity, 0); !mat4.Equal(got, m) {
			return fmt.Errorf("round %d: Lerp(M, I, 0) != M", i)
		}

		inv, ok := mat4.Invert(m)
		if !ok {
			return fmt.Errorf("round %d: well-conditioned transform reported singular", i)
		}
		if d := maxDeviation(mat4.Multiply(m, inv), mat4.Identity); d > 1e-3 {
			return fmt.Errorf("round %d: M*Inv(M) deviates from I by %g", i, d)
		}
	}
	return nil
}

// randomTransform builds a well-conditioned scale*rotation*translation
// matrix with scales bounded away from zero.
func randomTransform(rng *rand.Rand) mat4.Matrix {
	scale := mat4.CreateScale(
		0.5+rng.Float32()*4,
		0.5+rng.Float32()*4,
		0.5+rng.Float32()*4,
	)
	rot := mat4.CreateFromYawPitchRoll(
		rng.Float32()*2*math.Pi,
		rng.Float32()*2*math.Pi,
		rng.Float32()*2*math.Pi,
	)
	trans := mat4.CreateTranslation(f32.Vector3{
		X: rng.Float32()*20 - 10,
		Y: rng.Float32()*20 - 10,
		Z: rng.Float32()*20 - 10,
	})
	return mat4.Multiply(mat4.Multiply(scale, rot), trans)
}

func maxDeviation(a, b mat4.Matrix) float64 {
	da := mat4.Subtract(a, b)
	max := float32(0)
	for _, v := range [16]float32{
		da.M11, da.M12, da.M13, da.M14,
		da.M21, da.M22, da.M23, da.M24,
		da.M31, da.M32, da.M33, da.M34,
		da.M41, da.M42, da.M43, da.M44,
	} {
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return float64(max)
}
