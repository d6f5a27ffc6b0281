package mat4

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-mat4/f32"
)

func TestIdentity(t *testing.T) {
	require.True(t, Identity.IsIdentity())
	require.False(t, CreateTranslation(f32.Vector3{X: 1}).IsIdentity())
	require.Equal(t, float32(1), Identity.Determinant())
}

func TestIdentityMultiplication(t *testing.T) {
	m := Multiply(
		CreateFromYawPitchRoll(0.3, -1.2, 2.5),
		CreateTranslation(f32.Vector3{X: 5, Y: -6, Z: 7}),
	)

	require.True(t, Equal(Multiply(m, Identity), m), "M * I != M")
	require.True(t, Equal(Multiply(Identity, m), m), "I * M != M")
}

func TestTranslationAccessors(t *testing.T) {
	v := f32.Vector3{X: 1, Y: 2, Z: 3}
	m := CreateTranslation(v)
	require.Equal(t, v, m.Translation())

	moved := m.SetTranslation(f32.Vector3{X: -4, Y: -5, Z: -6})
	require.Equal(t, f32.Vector3{X: -4, Y: -5, Z: -6}, moved.Translation())
	// Value semantics: the original is untouched.
	require.Equal(t, v, m.Translation())
	// Rows 1-3 survive.
	require.Equal(t, float32(1), moved.M11)
	require.Equal(t, float32(1), moved.M22)
	require.Equal(t, float32(1), moved.M33)
	require.Equal(t, float32(1), moved.M44)
}

func TestFromMatrix3x2(t *testing.T) {
	m := FromMatrix3x2(f32.Matrix3x2{M11: 1, M12: 2, M21: 3, M22: 4, M31: 5, M32: 6})

	require.Equal(t, float32(1), m.M11)
	require.Equal(t, float32(2), m.M12)
	require.Equal(t, float32(3), m.M21)
	require.Equal(t, float32(4), m.M22)
	require.Equal(t, float32(5), m.M41)
	require.Equal(t, float32(6), m.M42)
	// Z row and column are zero-padded with unit diagonal.
	require.Equal(t, float32(1), m.M33)
	require.Equal(t, float32(1), m.M44)
	require.Zero(t, m.M13)
	require.Zero(t, m.M31)
	require.Zero(t, m.M43)
}

func TestEqualityExact(t *testing.T) {
	a := Multiply(CreateRotationY(1.1), CreateTranslation(f32.Vector3{X: 2, Y: 3, Z: 4}))

	require.True(t, Equal(a, a), "equality must be reflexive")

	// Bumping any single field by one ulp breaks equality.
	af := a.flat()
	for i := range af {
		bumped := af
		bumped[i] = math.Nextafter32(af[i], af[i]+1)
		b := fromFlat(bumped)
		require.False(t, Equal(a, b), "field %d bumped by one ulp still compared equal", i)
		require.False(t, Equal(b, a), "equality must be symmetric")
	}
}

func TestEqualityNaN(t *testing.T) {
	m := nanMatrix()
	require.False(t, Equal(m, m), "NaN matrix must not equal itself")
}

func TestString(t *testing.T) {
	s := Identity.String()
	require.True(t, strings.HasPrefix(s, "{ {M11:"), "unexpected layout: %s", s)
	require.Contains(t, s, "M44:1")
}
