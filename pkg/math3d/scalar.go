package math3d

// UnitEpsilon bounds |LenSq - 1| in IsNormalized checks.
const UnitEpsilon = 1e-9

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	return ClampF(t, 0, 1)
}

// ClampF limits v to [lo, hi]. The upper bound is applied first, then the
// lower, matching the vector Clamp.
func ClampF(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// LerpF returns the scalar linear interpolation a + (b-a)*t, unclamped.
func LerpF(a, b, t float64) float64 {
	return a + (b-a)*t
}
