// Copyright 2025 go-mat4 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mat4

// Kernel selection. Each bulk operation is backed by a function variable
// initialized to the portable scalar kernel. Per-architecture init
// functions (kernels_amd64.go, kernels_arm64.go) rebind the variables to
// the wide-vector kernels when hwy reports a usable instruction set.
// Selection happens exactly once at package init; no call path branches on
// CPU capabilities afterwards.
//
// The scalar kernels are the always-correct reference: the vector kernels
// are cross-checked against them in kernels_test.go.

var (
	addImpl       = addBase
	subImpl       = subBase
	negImpl       = negBase
	mulImpl       = mulBase
	mulScalarImpl = mulScalarBase
	transposeImpl = transposeBase
	lerpImpl      = lerpBase
	eqImpl        = eqBase
	invertImpl    = invertBase
)

// kernelName records which kernel family is bound, for diagnostics.
var kernelName = "scalar"

// KernelName reports the kernel family selected at init: "scalar",
// "sse2", "avx2", or "neon".
func KernelName() string {
	return kernelName
}

// Add returns a + b, component-wise.
func Add(a, b Matrix) Matrix {
	return addImpl(&a, &b)
}

// Subtract returns a - b, component-wise.
func Subtract(a, b Matrix) Matrix {
	return subImpl(&a, &b)
}

// Negate returns -m, component-wise.
func Negate(m Matrix) Matrix {
	return negImpl(&m)
}

// Multiply returns the matrix product a * b.
func Multiply(a, b Matrix) Matrix {
	return mulImpl(&a, &b)
}

// MultiplyScalar returns m with every component scaled by s.
func MultiplyScalar(m Matrix, s float32) Matrix {
	return mulScalarImpl(&m, s)
}

// Transpose returns m with rows and columns exchanged. A pure permutation:
// Transpose(Transpose(m)) == m exactly.
func Transpose(m Matrix) Matrix {
	return transposeImpl(&m)
}

// Lerp interpolates component-wise: a + (b-a)*t. t is not clamped.
func Lerp(a, b Matrix, t float32) Matrix {
	return lerpImpl(&a, &b, t)
}

// Equal compares all sixteen components exactly, with no tolerance.
// Matrices containing NaN compare unequal to everything including
// themselves, matching float32 equality.
func Equal(a, b Matrix) bool {
	return eqImpl(&a, &b)
}
