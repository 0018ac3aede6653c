package math3d

import (
	"fmt"
	"math"
)

// Vec4 represents a 4D vector (or homogeneous 3D point). The W component
// participates in every operation: equality, length, dot, interpolation.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vec4 from a Vec3 with the homogeneous W supplied
// explicitly: 1 for points, 0 for directions.
func V4FromV3(v Vec3, w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Zero4 returns the zero vector.
func Zero4() Vec4 {
	return Vec4{}
}

// One4 returns the all-ones vector.
func One4() Vec4 {
	return Vec4{1, 1, 1, 1}
}

// UnitX4 returns the unit vector along X.
func UnitX4() Vec4 {
	return Vec4{1, 0, 0, 0}
}

// UnitY4 returns the unit vector along Y.
func UnitY4() Vec4 {
	return Vec4{0, 1, 0, 0}
}

// UnitZ4 returns the unit vector along Z.
func UnitZ4() Vec4 {
	return Vec4{0, 0, 1, 0}
}

// UnitW4 returns the unit vector along W.
func UnitW4() Vec4 {
	return Vec4{0, 0, 0, 1}
}

// Vec3 returns the Vec3 portion, dropping W. The narrowing is lossy.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns the Vec3 after dividing by W.
func (v Vec4) PerspectiveDivide() Vec3 {
	if v.W == 0 {
		return Vec3{v.X, v.Y, v.Z}
	}
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}
}

// Add returns the vector sum a + b.
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference a - b.
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns the scalar product a * s.
func (a Vec4) Scale(s float64) Vec4 {
	return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Div returns the scalar division a / s.
// A zero divisor follows IEEE-754 rules and yields infinities or NaNs.
func (a Vec4) Div(s float64) Vec4 {
	return Vec4{a.X / s, a.Y / s, a.Z / s, a.W / s}
}

// Negate returns the negated vector.
func (a Vec4) Negate() Vec4 {
	return Vec4{-a.X, -a.Y, -a.Z, -a.W}
}

// Dot returns the dot product a · b over all four components.
func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the length, with W inside the sum like any other component.
func (a Vec4) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec4) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to the zero vector; callers that need to
// distinguish the degenerate case should test Len themselves.
func (a Vec4) Normalize() Vec4 {
	l := a.Len()
	if l == 0 {
		return Vec4{}
	}
	return Vec4{a.X / l, a.Y / l, a.Z / l, a.W / l}
}

// IsNormalized reports whether the vector has unit length within UnitEpsilon.
func (a Vec4) IsNormalized() bool {
	return math.Abs(a.LenSq()-1) <= UnitEpsilon
}

// Distance returns the distance between two points.
func (a Vec4) Distance(b Vec4) float64 {
	return a.Sub(b).Len()
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec4) Lerp(b Vec4, t float64) Vec4 {
	return Lerp(a, b, t)
}

// Min returns the component-wise minimum.
func (a Vec4) Min(b Vec4) Vec4 {
	return Vec4{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
		math.Min(a.W, b.W),
	}
}

// Max returns the component-wise maximum.
func (a Vec4) Max(b Vec4) Vec4 {
	return Vec4{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
		math.Max(a.W, b.W),
	}
}

// Abs returns the component-wise absolute value.
func (a Vec4) Abs() Vec4 {
	return Vec4{
		math.Abs(a.X),
		math.Abs(a.Y),
		math.Abs(a.Z),
		math.Abs(a.W),
	}
}

// String returns a debug representation. It is not a parseable format.
func (v Vec4) String() string {
	return fmt.Sprintf("Vec4(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
