// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"math"

	"github.com/gazed/bosh/config"
	"github.com/gazed/bosh/rider"
)

// solveBonesOnce applies every bone in e, in construction order, exactly
// once. A Mount bone whose relative stretch exceeds its endurance sets
// broke but does not stop the pass: every other bone, including mount bones
// still within endurance, is still corrected this pass, matching
// apply_bones's full iteration before splitting. The caller splits e via
// rider.Entity.Split only after the whole pass has run.
func solveBonesOnce(e rider.Entity, cfg *config.Constants) (rider.Entity, bool) {
	broke := false
	for _, b := range e.Bones {
		switch b.Kind {
		case rider.Normal:
			solveNormalBone(e.Points, b)
		case rider.Repel:
			solveRepelBone(e.Points, b)
		case rider.Mount:
			if solveMountBone(e.Points, b) {
				broke = true
			}
		}
	}
	return e, broke
}

// solveNormalBone moves p1 and p2 symmetrically, each by half of the
// difference, so that their separation becomes RestingLength.
func solveNormalBone(points map[rider.PointID]rider.Point, b rider.Bone) {
	d := currentLength(points, b.P1, b.P2)
	if d == 0 {
		return
	}
	diff := (d - b.RestingLength) / d
	correct(points, b.P1, b.P2, diff)
}

// solveRepelBone pulls p1 and p2 apart when they are closer than
// RestingLength*LengthFactor, and does nothing otherwise: a Repel bone only
// enforces a minimum separation, never a maximum.
func solveRepelBone(points map[rider.PointID]rider.Point, b rider.Bone) {
	target := b.RestingLength * b.LengthFactor
	d := currentLength(points, b.P1, b.P2)
	if d == 0 || d >= target {
		return
	}
	diff := (d - target) / d
	correct(points, b.P1, b.P2, diff)
}

// solveMountBone behaves like solveNormalBone, except that once the
// relative stretch exceeds Endurance*RestingLength*0.5 it reports broke
// instead of applying any correction.
func solveMountBone(points map[rider.PointID]rider.Point, b rider.Bone) (broke bool) {
	d := currentLength(points, b.P1, b.P2)
	if d == 0 {
		return false
	}
	diff := (d - b.RestingLength) / d
	if math.Abs(diff) > b.Endurance*b.RestingLength*0.5 {
		return true
	}
	correct(points, b.P1, b.P2, diff)
	return false
}

// currentLength returns the live distance between the two points a bone
// connects.
func currentLength(points map[rider.PointID]rider.Point, p1, p2 rider.PointID) float64 {
	return math.Sqrt(points[p1].Location.DistanceSquared(points[p2].Location))
}

// correct moves p1 and p2 each by half of diff along the line between
// them, using the pre-correction separation for both halves so the result
// doesn't depend on which point is updated first.
func correct(points map[rider.PointID]rider.Point, id1, id2 rider.PointID, diff float64) {
	p1, p2 := points[id1], points[id2]
	delta := p1.Location.Sub(p2.Location)
	half := delta.Scale(diff / 2)
	p1.Location = p1.Location.Sub(half)
	p2.Location = p2.Location.Add(half)
	points[id1] = p1
	points[id2] = p2
}
