package math3d

import (
	"errors"
	"fmt"
)

// Errors returned by the slice-based constructors. Use errors.Is to tell a
// missing slice apart from a mis-sized one.
var (
	ErrNilSlice    = errors.New("math3d: nil component slice")
	ErrWrongLength = errors.New("math3d: wrong component count")
)

func checkComponents(s []float64, want int) error {
	if s == nil {
		return fmt.Errorf("%w (want %d components)", ErrNilSlice, want)
	}
	if len(s) != want {
		return fmt.Errorf("%w: want %d, got %d", ErrWrongLength, want, len(s))
	}
	return nil
}

// V2FromSlice builds a Vec2 from exactly two components.
func V2FromSlice(s []float64) (Vec2, error) {
	if err := checkComponents(s, 2); err != nil {
		return Vec2{}, err
	}
	return Vec2{s[0], s[1]}, nil
}

// V3FromSlice builds a Vec3 from exactly three components.
func V3FromSlice(s []float64) (Vec3, error) {
	if err := checkComponents(s, 3); err != nil {
		return Vec3{}, err
	}
	return Vec3{s[0], s[1], s[2]}, nil
}

// V4FromSlice builds a Vec4 from exactly four components, in X, Y, Z, W
// order.
func V4FromSlice(s []float64) (Vec4, error) {
	if err := checkComponents(s, 4); err != nil {
		return Vec4{}, err
	}
	return Vec4{s[0], s[1], s[2], s[3]}, nil
}

// QFromSlice builds a Quat from exactly four components, in X, Y, Z, W
// order (glTF rotation layout).
func QFromSlice(s []float64) (Quat, error) {
	if err := checkComponents(s, 4); err != nil {
		return Quat{}, err
	}
	return Quat{s[0], s[1], s[2], s[3]}, nil
}
