package f32

import "math"

// Quaternion represents a rotation as the four components X, Y, Z, W.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionIdentity is the no-rotation quaternion.
var QuaternionIdentity = Quaternion{0, 0, 0, 1}

// QuaternionFromAxisAngle builds a quaternion rotating angle radians around
// axis. The axis is assumed to be unit length.
func QuaternionFromAxisAngle(axis Vector3, angle float32) Quaternion {
	half := float64(angle) * 0.5
	s := float32(math.Sin(half))
	c := float32(math.Cos(half))
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QuaternionFromYawPitchRoll builds a quaternion from yaw (around Y),
// pitch (around X), and roll (around Z), all in radians.
func QuaternionFromYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	sr, cr := sincosHalf(roll)
	sp, cp := sincosHalf(pitch)
	sy, cy := sincosHalf(yaw)

	return Quaternion{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// Dot4 returns the 4-component dot product of two quaternions.
// Used to compare rotations up to sign: |Dot4(a, b)| near 1 means a and b
// represent the same rotation.
func Dot4(a, b Quaternion) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func sincosHalf(angle float32) (sin, cos float32) {
	s, c := math.Sincos(float64(angle) * 0.5)
	return float32(s), float32(c)
}
