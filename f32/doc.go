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

// Package f32 provides the small single-precision value types consumed by
// the mat4 package: 3-component vectors, rotation quaternions, planes, and
// 2-D affine (3x2) matrices.
//
// All types are plain values. Operations return new values and never mutate
// their receivers, so they are safe to share across goroutines without
// coordination.
package f32
