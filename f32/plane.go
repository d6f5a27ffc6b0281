package f32

import "math"

// Plane is the set of points p with Dot(Normal, p) + D == 0.
type Plane struct {
	Normal Vector3
	D      float32
}

// PlaneNormalize returns p scaled so its normal has unit length.
// A plane whose normal is already within one float32 ulp of unit length is
// returned unchanged.
func PlaneNormalize(p Plane) Plane {
	const epsilon = 1.1920929e-7 // float32 machine epsilon

	lenSq := p.Normal.LengthSquared()
	if abs32(lenSq-1) < epsilon {
		return p
	}
	inv := float32(1 / math.Sqrt(float64(lenSq)))
	return Plane{
		Normal: p.Normal.Scale(inv),
		D:      p.D * inv,
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
