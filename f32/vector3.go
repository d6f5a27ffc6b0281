package f32

import "math"

// Vector3 is a 3-component single-precision vector.
type Vector3 struct {
	X, Y, Z float32
}

// Canonical basis vectors and the zero vector.
var (
	Zero  = Vector3{0, 0, 0}
	UnitX = Vector3{1, 0, 0}
	UnitY = Vector3{0, 1, 0}
	UnitZ = Vector3{0, 0, 1}
)

// Length returns the Euclidean length of v.
func (v Vector3) Length() float32 {
	return sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared Euclidean length of v.
// Cheaper than Length when only relative magnitude matters.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Normalize returns v / |v|. The zero vector normalizes to NaN components
// by ordinary floating-point propagation; callers guard degenerate inputs.
func Normalize(v Vector3) Vector3 {
	return v.Scale(1 / v.Length())
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of a and b.
func Cross(a, b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
