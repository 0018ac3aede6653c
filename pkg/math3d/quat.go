package math3d

import (
	"fmt"
	"math"
)

// Quat represents a rotation as a quaternion with vector part X, Y, Z and
// scalar part W. Only unit quaternions represent rotations; the type does
// not enforce unit length, so normalize before using a quaternion built
// from raw components.
type Quat struct {
	X, Y, Z, W float64
}

// QIdentity returns the identity rotation.
func QIdentity() Quat {
	return Quat{W: 1}
}

// QFromAxisAngle builds the rotation of angle radians around axis. The axis
// is normalized internally; a zero axis yields the identity.
func QFromAxisAngle(axis Vec3, angle float64) Quat {
	axis = axis.Normalize()
	if axis == (Vec3{}) {
		return QIdentity()
	}
	s, c := math.Sincos(angle / 2)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QFromEuler builds a rotation from Euler angles in radians, applied
// yaw (Y), then pitch (X), then roll (Z), extrinsically.
func QFromEuler(pitch, yaw, roll float64) Quat {
	qy := QFromAxisAngle(UnitY3(), yaw)
	qx := QFromAxisAngle(UnitX3(), pitch)
	qz := QFromAxisAngle(UnitZ3(), roll)
	return qy.Mul(qx).Mul(qz)
}

// Mul returns the Hamilton product a * b, the composition that rotates by b
// first and then by a, matching matrix composition order.
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Conjugate returns the quaternion with the vector part negated. For unit
// quaternions this is the inverse rotation.
func (a Quat) Conjugate() Quat {
	return Quat{-a.X, -a.Y, -a.Z, a.W}
}

// Inverse returns the multiplicative inverse. The zero quaternion inverts
// to the zero quaternion; callers that need to distinguish the degenerate
// case should test Len themselves.
func (a Quat) Inverse() Quat {
	l := a.LenSq()
	if l == 0 {
		return Quat{}
	}
	c := a.Conjugate()
	return Quat{c.X / l, c.Y / l, c.Z / l, c.W / l}
}

// Dot returns the four-component dot product.
func (a Quat) Dot(b Quat) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the quaternion magnitude.
func (a Quat) Len() float64 {
	return math.Sqrt(a.LenSq())
}

// LenSq returns the squared magnitude.
func (a Quat) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W
}

// Normalize returns the unit quaternion in the same direction.
// The zero quaternion normalizes to the zero quaternion, not the identity,
// so the degenerate case stays visible to the caller.
func (a Quat) Normalize() Quat {
	l := a.Len()
	if l == 0 {
		return Quat{}
	}
	return Quat{a.X / l, a.Y / l, a.Z / l, a.W / l}
}

// IsNormalized reports whether the quaternion has unit length within
// UnitEpsilon.
func (a Quat) IsNormalized() bool {
	return math.Abs(a.LenSq()-1) <= UnitEpsilon
}

// Negate returns the quaternion with all components negated. It represents
// the same rotation as a.
func (a Quat) Negate() Quat {
	return Quat{-a.X, -a.Y, -a.Z, -a.W}
}

// Slerp returns the spherical linear interpolation from a to b at t, along
// the shortest arc. Both inputs are expected to be unit length. Nearly
// parallel inputs fall back to normalized linear interpolation.
func (a Quat) Slerp(b Quat, t float64) Quat {
	d := a.Dot(b)
	if d < 0 {
		b = b.Negate()
		d = -d
	}
	if d > 0.9995 {
		return Quat{
			LerpF(a.X, b.X, t),
			LerpF(a.Y, b.Y, t),
			LerpF(a.Z, b.Z, t),
			LerpF(a.W, b.W, t),
		}.Normalize()
	}
	theta := math.Acos(d)
	sin := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sin
	wb := math.Sin(t*theta) / sin
	return Quat{
		wa*a.X + wb*b.X,
		wa*a.Y + wb*b.Y,
		wa*a.Z + wb*b.Z,
		wa*a.W + wb*b.W,
	}
}

// Rotate applies the rotation to v. The quaternion is expected to be unit
// length.
func (q Quat) Rotate(v Vec3) Vec3 {
	// v' = v + 2w(u x v) + 2(u x (u x v)), u = vector part of q.
	u := Vec3{q.X, q.Y, q.Z}
	c := u.Cross(v)
	return v.Add(c.Scale(2 * q.W)).Add(u.Cross(c).Scale(2))
}

// RotateVec4 applies the rotation to the X, Y, Z components of v and passes
// the homogeneous W through unchanged.
func (q Quat) RotateVec4(v Vec4) Vec4 {
	r := q.Rotate(v.Vec3())
	return Vec4{r.X, r.Y, r.Z, v.W}
}

// Mat4 returns the rotation as a column-major matrix. The quaternion is
// expected to be unit length.
func (q Quat) Mat4() Mat4 {
	x2, y2, z2 := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return Mat4{
		1 - 2*(y2+z2), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(x2+z2), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(x2+y2), 0,
		0, 0, 0, 1,
	}
}

// String returns a debug representation. It is not a parseable format.
func (q Quat) String() string {
	return fmt.Sprintf("Quat(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}
