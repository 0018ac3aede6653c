package math3d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	require.Equal(t, V3(5, -3, 9), a.Add(b))
	require.Equal(t, V3(-3, 7, -3), a.Sub(b))
	require.Equal(t, V3(4, -10, 18), a.Mul(b))
	require.Equal(t, V3(2, 4, 6), a.Scale(2))
	require.Equal(t, V3(0.5, 1, 1.5), a.Div(2))
	require.Equal(t, V3(-1, -2, -3), a.Negate())
	require.Equal(t, V3(0.25, -0.4, 0.5), a.DivComp(b))
}

func TestVec3AddSubRoundTrip(t *testing.T) {
	a := V3(1.5, -2.25, 3.75)
	b := V3(0.5, 10, -7.5)

	got := a.Add(b).Sub(b)
	require.InDelta(t, a.X, got.X, 1e-12)
	require.InDelta(t, a.Y, got.Y, 1e-12)
	require.InDelta(t, a.Z, got.Z, 1e-12)

	require.Equal(t, a, a.Negate().Negate())
}

func TestVec3DotCross(t *testing.T) {
	require.Equal(t, 0.0, V3(1, 0, 0).Dot(V3(0, 1, 0)))
	require.Equal(t, 32.0, V3(1, 2, 3).Dot(V3(4, 5, 6)))

	// Dot is commutative.
	a := V3(1.2, -3.4, 5.6)
	b := V3(-7.8, 9.1, 0.2)
	require.Equal(t, a.Dot(b), b.Dot(a))

	// Right-handed cross product.
	require.Equal(t, V3(0, 0, 1), V3(1, 0, 0).Cross(V3(0, 1, 0)))

	// Antisymmetric.
	require.Equal(t, a.Cross(b), b.Cross(a).Negate())

	// Orthogonal to both inputs.
	c := a.Cross(b)
	require.InDelta(t, 0, c.Dot(a), 1e-12)
	require.InDelta(t, 0, c.Dot(b), 1e-12)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"axis", V3(5, 0, 0)},
		{"mixed", V3(1, 2, 3)},
		{"negative", V3(-0.3, 0.04, -12)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.v.Normalize()
			require.InDelta(t, 1.0, n.Len(), 1e-12)
			require.True(t, n.IsNormalized())
		})
	}

	t.Run("zero vector", func(t *testing.T) {
		require.Equal(t, Zero3(), Zero3().Normalize())
		require.Equal(t, Zero2(), Zero2().Normalize())
		require.Equal(t, Zero4(), Zero4().Normalize())
	})
}

func TestIsNormalized(t *testing.T) {
	require.True(t, UnitX3().IsNormalized())
	require.True(t, V4(0.5, 0.5, 0.5, 0.5).IsNormalized())
	require.False(t, V3(1, 1, 0).IsNormalized())
	require.False(t, Zero4().IsNormalized())
	require.False(t, V4(1, 1, 1, 1).IsNormalized())
}

func TestVec4AllComponentsCount(t *testing.T) {
	// Equality covers W.
	require.NotEqual(t, V4(1, 2, 3, 4), V4(1, 2, 3, 5))
	require.Equal(t, V4(1, 2, 3, 4), V4(1, 2, 3, 4))

	// Length includes W inside the square root.
	require.Equal(t, 2.0, V4(1, 1, 1, 1).Len())
	require.Equal(t, 2.0, Zero4().Distance(One4()))

	// Dot includes W.
	require.Equal(t, 70.0, V4(1, 2, 3, 4).Dot(V4(5, 6, 7, 8)))
}

func TestVec4Conversions(t *testing.T) {
	v := V3(1.25, -2.5, 3.75)

	p := V4FromV3(v, 1)
	require.Equal(t, 1.0, p.W)
	require.Equal(t, v, p.Vec3())

	d := V4FromV3(v, 0)
	require.Equal(t, 0.0, d.W)
	require.Equal(t, v, d.Vec3())

	require.Equal(t, V3(2, 4, 6), V4(4, 8, 12, 2).PerspectiveDivide())
	require.Equal(t, V3(4, 8, 12), V4(4, 8, 12, 0).PerspectiveDivide())
}

func TestVec2Basics(t *testing.T) {
	a := V2(3, 4)

	require.Equal(t, 5.0, a.Len())
	require.Equal(t, V2(0.6, 0.8), a.Normalize())
	require.Equal(t, V2(4, 6), a.Add(V2(1, 2)))
	require.Equal(t, 11.0, a.Dot(V2(1, 2)))
	require.Equal(t, 5.0, V2(0, 0).Distance(a))
	require.Equal(t, V2(3, 2), a.Min(V2(5, 2)))
	require.Equal(t, V2(5, 4), a.Max(V2(5, 2)))
}

func TestDistanceAndLerpExamples(t *testing.T) {
	require.Equal(t, V3(5, 0, 0), Lerp(Zero3(), V3(10, 0, 0), 0.5))
	require.Equal(t, 5.0, V3(1, 1, 0).Distance(V3(4, 5, 0)))
}

func TestReflect(t *testing.T) {
	v := V3(1, -1, 0)
	n := V3(0, 1, 0)
	require.Equal(t, V3(1, 1, 0), v.Reflect(n))
}

func TestRefract(t *testing.T) {
	n := V3(0, 1, 0)

	t.Run("straight through at eta 1", func(t *testing.T) {
		v := V3(0, -1, 0)
		require.Equal(t, v, v.Refract(n, 1))
	})

	t.Run("total internal reflection returns zero", func(t *testing.T) {
		v := V3(0.8, -0.6, 0).Normalize()
		// eta^2 * (1 - cos^2) = 4 * 0.64 > 1, past the critical angle.
		require.Equal(t, Zero3(), v.Refract(n, 2))
	})

	t.Run("bends toward normal entering denser medium", func(t *testing.T) {
		v := V3(0.6, -0.8, 0)
		r := v.Refract(n, 0.75)
		require.InDelta(t, 1.0, r.Len(), 1e-12)
		// The tangential component shrinks by eta.
		require.InDelta(t, 0.45, r.X, 1e-12)
		require.Less(t, r.Y, 0.0)
	})
}

func TestFromSlice(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v2, err := V2FromSlice([]float64{1, 2})
		require.NoError(t, err)
		require.Equal(t, V2(1, 2), v2)

		v3, err := V3FromSlice([]float64{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, V3(1, 2, 3), v3)

		v4, err := V4FromSlice([]float64{1, 2, 3, 4})
		require.NoError(t, err)
		require.Equal(t, V4(1, 2, 3, 4), v4)

		q, err := QFromSlice([]float64{0, 0, 0, 1})
		require.NoError(t, err)
		require.Equal(t, QIdentity(), q)
	})

	t.Run("nil slice", func(t *testing.T) {
		_, err := V3FromSlice(nil)
		require.ErrorIs(t, err, ErrNilSlice)
		require.NotErrorIs(t, err, ErrWrongLength)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := V3FromSlice([]float64{1, 2})
		require.ErrorIs(t, err, ErrWrongLength)
		require.NotErrorIs(t, err, ErrNilSlice)

		_, err = V4FromSlice([]float64{1, 2, 3, 4, 5})
		require.ErrorIs(t, err, ErrWrongLength)

		// Empty is mis-sized, not missing.
		_, err = V2FromSlice([]float64{})
		require.ErrorIs(t, err, ErrWrongLength)
	})
}

func TestConstants(t *testing.T) {
	require.Equal(t, V3(1, 1, 1), One3())
	require.Equal(t, V4(0, 0, 0, 1), UnitW4())
	require.Equal(t, Up(), UnitY3())
	require.Equal(t, Right(), UnitX3())
	require.Equal(t, 1.0, UnitX2().Len())
}

func TestString(t *testing.T) {
	require.Equal(t, "Vec2(1, 2)", V2(1, 2).String())
	require.Equal(t, "Vec3(1, 2.5, -3)", V3(1, 2.5, -3).String())
	require.Equal(t, "Vec4(0, 0, 0, 1)", UnitW4().String())
	require.Equal(t, "Quat(0, 0, 0, 1)", QIdentity().String())
}
