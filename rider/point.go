// Copyright © 2024 Galvanized Logic Inc.

// Package rider holds the fixed topology of a rag-doll rider: the ten
// semantic point ids, the points themselves, and the bones and joints that
// connect them into a body, a sled, or a body mounted on a sled.
//
// Package rider is provided as part of the bosh rag-doll physics engine.
package rider

import "github.com/gazed/bosh/math/vec"

// PointID names one of the ten points that make up a rider. The body points
// (PointID <= Butt) belong to the humanoid rag-doll; the sled points belong
// to the sled.
type PointID int

// The ten points a rider can be made of.
const (
	LeftFoot PointID = iota
	RightFoot
	LeftHand
	RightHand
	Shoulder
	Butt

	Peg
	Tail
	Nose
	Rope
)

// IsBody reports whether p belongs to the humanoid body, as opposed to the
// sled. Body ids are allocated before sled ids so this is a simple range
// check; see the const block above.
func (p PointID) IsBody() bool { return p >= LeftFoot && p <= Butt }

// String names the point, for logging and debugging.
func (p PointID) String() string {
	switch p {
	case LeftFoot:
		return "left_foot"
	case RightFoot:
		return "right_foot"
	case LeftHand:
		return "left_hand"
	case RightHand:
		return "right_hand"
	case Shoulder:
		return "shoulder"
	case Butt:
		return "butt"
	case Peg:
		return "peg"
	case Tail:
		return "tail"
	case Nose:
		return "nose"
	case Rope:
		return "rope"
	default:
		return "unknown"
	}
}

// PointByName returns the PointID for one of the ten names produced by
// String, and false if name isn't one of them. Used by external codecs that
// address points by name.
func PointByName(name string) (PointID, bool) {
	for _, p := range AllPointIDs {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

// AllPointIDs lists the ten point ids in construction order.
var AllPointIDs = []PointID{
	LeftFoot, RightFoot, LeftHand, RightHand, Shoulder, Butt,
	Peg, Tail, Nose, Rope,
}

// Point is a single physics particle: Verlet integration keeps no explicit
// velocity, only the current and previous location. Friction scales the
// tangential correction applied on collision (see the physics package).
type Point struct {
	Previous vec.Vector2
	Location vec.Vector2
	Friction float64
}

// Velocity returns the point's implicit velocity: Location - Previous.
func (p Point) Velocity() vec.Vector2 { return p.Location.Sub(p.Previous) }

// newRestPoint returns a point at rest (Previous == Location) with the
// given friction.
func newRestPoint(loc vec.Vector2, friction float64) Point {
	return Point{Previous: loc, Location: loc, Friction: friction}
}
