package f32

// Matrix3x2 is a 2-D affine transform: a 3x2 row-major matrix where the
// third row carries the translation.
type Matrix3x2 struct {
	M11, M12 float32
	M21, M22 float32
	M31, M32 float32
}
