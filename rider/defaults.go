// Copyright © 2024 Galvanized Logic Inc.

package rider

import "github.com/gazed/bosh/math/vec"

// Default frame-0 positions and frictions for every point, fixed constants
// of the simulation (SPEC_FULL.md §6 "Rider defaults").
var defaultLocations = map[PointID]vec.Vector2{
	LeftFoot:  vec.New(10, 5),
	RightFoot: vec.New(10, 5),
	LeftHand:  vec.New(11.5, -5),
	RightHand: vec.New(11.5, -5),
	Shoulder:  vec.New(5, -5.5),
	Butt:      vec.New(5, 0),

	Peg:  vec.New(0, 0),
	Tail: vec.New(0, 5),
	Nose: vec.New(15, 5),
	Rope: vec.New(17.5, 0),
}

var defaultFrictions = map[PointID]float64{
	LeftFoot:  0.0,
	RightFoot: 0.0,
	LeftHand:  0.1,
	RightHand: 0.1,
	Shoulder:  0.8,
	Butt:      0.8,

	Peg:  0.8,
	Tail: 0.0,
	Nose: 0.0,
	Rope: 0.0,
}

// sled-mount and body-mount bond endurance, shared by both mount bone groups.
const mountEndurance = 0.057

// shoulder <-> foot repel factor.
const repelLengthFactor = 0.5

func defaultPoint(id PointID) Point {
	return newRestPoint(defaultLocations[id], defaultFrictions[id])
}

func bodyPoints() map[PointID]Point {
	points := make(map[PointID]Point, 6)
	for _, id := range []PointID{LeftFoot, RightFoot, LeftHand, RightHand, Shoulder, Butt} {
		points[id] = defaultPoint(id)
	}
	return points
}

func sledPoints() map[PointID]Point {
	points := make(map[PointID]Point, 4)
	for _, id := range []PointID{Peg, Tail, Nose, Rope} {
		points[id] = defaultPoint(id)
	}
	return points
}
