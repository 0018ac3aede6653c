// Package spring smooths scalar and vector quantities toward moving targets
// with damped harmonic springs. A damping ratio of 1 is critically damped
// (no overshoot); below 1 oscillates, above 1 is sluggish.
package spring

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/marcelochaves95/lib-physics/pkg/math3d"
)

// Scalar animates a single value toward a target.
type Scalar struct {
	spring   harmonica.Spring
	pos, vel float64
}

// NewScalar creates a scalar spring stepped fps times per second with the
// given angular frequency and damping ratio.
func NewScalar(fps int, frequency, damping float64) *Scalar {
	return &Scalar{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances the spring one frame toward target and returns the new
// position.
func (s *Scalar) Update(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// Value returns the current position without stepping.
func (s *Scalar) Value() float64 {
	return s.pos
}

// Snap moves the spring to pos immediately and kills its velocity.
func (s *Scalar) Snap(pos float64) {
	s.pos = pos
	s.vel = 0
}

// Done reports whether the spring has settled at target within eps.
func (s *Scalar) Done(target, eps float64) bool {
	return math.Abs(s.pos-target) <= eps && math.Abs(s.vel) <= eps
}

// Vector animates a Vec3 toward a target, springing each component
// independently with the same frequency and damping.
type Vector struct {
	spring   harmonica.Spring
	pos, vel math3d.Vec3
}

// NewVector creates a Vec3 spring stepped fps times per second with the
// given angular frequency and damping ratio.
func NewVector(fps int, frequency, damping float64) *Vector {
	return &Vector{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances the spring one frame toward target and returns the new
// position.
func (s *Vector) Update(target math3d.Vec3) math3d.Vec3 {
	s.pos.X, s.vel.X = s.spring.Update(s.pos.X, s.vel.X, target.X)
	s.pos.Y, s.vel.Y = s.spring.Update(s.pos.Y, s.vel.Y, target.Y)
	s.pos.Z, s.vel.Z = s.spring.Update(s.pos.Z, s.vel.Z, target.Z)
	return s.pos
}

// Value returns the current position without stepping.
func (s *Vector) Value() math3d.Vec3 {
	return s.pos
}

// Snap moves the spring to pos immediately and kills its velocity.
func (s *Vector) Snap(pos math3d.Vec3) {
	s.pos = pos
	s.vel = math3d.Zero3()
}

// Done reports whether the spring has settled at target within eps.
func (s *Vector) Done(target math3d.Vec3, eps float64) bool {
	return s.pos.Distance(target) <= eps && s.vel.Len() <= eps
}
