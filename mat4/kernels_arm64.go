//go:build arm64

package mat4

import "github.com/ajroetker/go-highway/hwy"

// NEON kernel binding. ARMv8 always has NEON, so the 4-lane row kernels
// bind unless SIMD is disabled via HWY_NO_SIMD. NEON is 128-bit: one
// matrix row per vector, no wide variants.
func init() {
	if hwy.CurrentLevel() < hwy.DispatchNEON {
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
	kernelName = "neon"
}
