//go:build !amd64 && !arm64

package mat4

// Other architectures keep the scalar kernels bound. Future bindings would
// follow the amd64/arm64 files:
// - wasm: SIMD128
// - riscv64: Vector extension
