// Copyright © 2024 Galvanized Logic Inc.

package vec

import "math"

// Vector2 is an immutable 2D point/direction. Equality, via == or as map
// keys, is Go's built-in IEEE-754 comparison of the two float64 fields, not
// a comparison of bit patterns: bit-identical non-NaN values compare equal,
// +0 and -0 also compare equal, and a NaN component never equals anything,
// itself included. Map hashing agrees with that equality, so Vector2 can be
// used directly as a hash map key without a custom Hash method.
type Vector2 struct {
	X float64
	Y float64
}

// Zero is the additive identity.
var Zero = Vector2{}

// New returns the vector (x, y).
func New(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// Add returns v + a.
func (v Vector2) Add(a Vector2) Vector2 { return Vector2{v.X + a.X, v.Y + a.Y} }

// Sub returns v - a.
func (v Vector2) Sub(a Vector2) Vector2 { return Vector2{v.X - a.X, v.Y - a.Y} }

// Neg returns -v.
func (v Vector2) Neg() Vector2 { return Vector2{-v.X, -v.Y} }

// Scale returns v * s.
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Div returns v / s.
func (v Vector2) Div(s float64) Vector2 { return Vector2{v.X / s, v.Y / s} }

// Dot returns the dot product of v and a.
func (v Vector2) Dot(a Vector2) float64 { return v.X*a.X + v.Y*a.Y }

// CrossLength returns the length of the vector that a 3D cross product of v
// and a (extended with z=0) would produce: v.X*a.Y - v.Y*a.X.
func (v Vector2) CrossLength(a Vector2) float64 { return v.X*a.Y - v.Y*a.X }

// Rotate90Left rotates v 90 degrees counter-clockwise: (-y, x).
func (v Vector2) Rotate90Left() Vector2 { return Vector2{-v.Y, v.X} }

// Rotate90Right rotates v 90 degrees clockwise: (y, -x).
func (v Vector2) Rotate90Right() Vector2 { return Vector2{v.Y, -v.X} }

// RotateRad rotates v by the given angle in radians.
func (v Vector2) RotateRad(radians float64) Vector2 {
	sin, cos := math.Sin(radians), math.Cos(radians)
	return Vector2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// LengthSquared returns the squared length of v. Use with math.Sqrt for the
// actual length.
func (v Vector2) LengthSquared() float64 { return v.Dot(v) }

// Length returns the length of v.
func (v Vector2) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// DistanceSquared returns the squared distance between v and a.
func (v Vector2) DistanceSquared(a Vector2) float64 { return a.Sub(v).LengthSquared() }

// Normalize returns the unit vector pointing in the same direction as v.
// Dividing by zero length is not guarded: callers only normalize vectors
// already known to be non-degenerate (resting lines, non-zero bones).
func (v Vector2) Normalize() Vector2 { return v.Div(v.Length()) }

// Angle returns the number of radians from (1, 0) to v.
func (v Vector2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// AngleBetween returns the number of radians between v and a.
func (v Vector2) AngleBetween(a Vector2) float64 {
	return math.Atan2(v.CrossLength(a), v.Dot(a))
}

// ProjectedLengthOnto returns the length of v projected onto a.
func (v Vector2) ProjectedLengthOnto(a Vector2) float64 { return v.Dot(a.Normalize()) }
