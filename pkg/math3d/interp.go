package math3d

// Vector is the operation set shared by Vec2, Vec3, and Vec4. The
// interpolation and clamping algorithms below are written once against it so
// the three arities cannot drift apart.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float64) V
	Min(V) V
	Max(V) V
}

// Lerp returns the linear interpolation a + (b-a)*t. The amount is not
// clamped; values outside [0, 1] extrapolate.
func Lerp[V Vector[V]](a, b V, t float64) V {
	return a.Add(b.Sub(a).Scale(t))
}

// SmoothStep interpolates between a and b with the amount clamped to [0, 1]
// and eased by t*t*(3 - 2t).
func SmoothStep[V Vector[V]](a, b V, t float64) V {
	t = Clamp01(t)
	return Lerp(a, b, t*t*(3-2*t))
}

// Hermite returns the cubic Hermite interpolation between p0 and p1 with
// tangents m0 and m1, evaluated at t.
func Hermite[V Vector[V]](p0, m0, p1, m1 V, t float64) V {
	t2 := t * t
	t3 := t2 * t
	r := p0.Scale(2*t3 - 3*t2 + 1)
	r = r.Add(m0.Scale(t3 - 2*t2 + t))
	r = r.Add(p1.Scale(-2*t3 + 3*t2))
	return r.Add(m1.Scale(t3 - t2))
}

// CatmullRom returns the Catmull-Rom spline through control points p0..p3,
// evaluated at t between p1 and p2. Each component is computed from its own
// control values.
func CatmullRom[V Vector[V]](p0, p1, p2, p3 V, t float64) V {
	t2 := t * t
	t3 := t2 * t
	r := p1.Scale(2)
	r = r.Add(p2.Sub(p0).Scale(t))
	r = r.Add(p0.Scale(2).Sub(p1.Scale(5)).Add(p2.Scale(4)).Sub(p3).Scale(t2))
	r = r.Add(p1.Scale(3).Sub(p0).Sub(p2.Scale(3)).Add(p3).Scale(t3))
	return r.Scale(0.5)
}

// Barycentric returns v1 + t1*(v2-v1) + t2*(v3-v1), the point with
// barycentric coordinates (t1, t2) over the triangle v1, v2, v3.
func Barycentric[V Vector[V]](v1, v2, v3 V, t1, t2 float64) V {
	return v1.Add(v2.Sub(v1).Scale(t1)).Add(v3.Sub(v1).Scale(t2))
}

// Clamp limits v per component to [lo, hi]. The upper bound is applied
// first, then the lower, so an inverted pair resolves to lo.
func Clamp[V Vector[V]](v, lo, hi V) V {
	return v.Min(hi).Max(lo)
}
