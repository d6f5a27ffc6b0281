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

// Package mat4 implements a single-precision 4x4 row-major transform
// matrix for 3-D affine and projective math.
//
// Matrix is a pure value type: every operation returns a new value, no
// operation mutates its input, and values are safe to use from multiple
// goroutines without coordination. Row 4 holds the translation in the
// common affine usage (row vectors, v' = v * M).
//
// Bulk operations (Multiply, Add, Subtract, Negate, Transpose, Lerp,
// Equal) and Invert each have a portable scalar kernel and wide-vector
// kernels built on the highway vector API. The kernel set is chosen once
// at package init from hwy.CurrentLevel(); no call branches on CPU
// capabilities per invocation. Setting HWY_NO_SIMD keeps the scalar
// kernels bound on every architecture.
//
// Caller errors (out-of-range projection parameters) panic with a message
// naming the offending parameter. Numeric failure (a singular matrix
// passed to Invert, a non-SRT matrix passed to Decompose) is reported
// through an ok flag, never a panic.
package mat4
