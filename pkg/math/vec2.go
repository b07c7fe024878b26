package math

import "math"

// Vec2 is a 2D vector. Profile samples use X for the axial station and
// Y for the radius.
type Vec2 struct {
	X, Y float64
}

// Revolve lifts the profile point onto the surface of revolution about
// the Z axis at the given angle (radians).
func (v Vec2) Revolve(angle float64) Vec3 {
	return Vec3{
		X: v.Y * math.Cos(angle),
		Y: v.Y * math.Sin(angle),
		Z: v.X,
	}
}
