// Copyright © 2024 Galvanized Logic Inc.

package rider

import "math"

// BoneKind distinguishes the three constraint behaviours a Bone can apply.
// See the physics package's solveBonesOnce for how each kind is resolved.
type BoneKind int

const (
	// Normal is a symmetric distance constraint: both points move half the
	// correction needed to restore RestingLength.
	Normal BoneKind = iota

	// Repel is a one-way minimum-separation constraint: inactive once the
	// points are at least RestingLength*LengthFactor apart.
	Repel

	// Mount is a Normal constraint that can fail: once the relative
	// stretch exceeds Endurance*RestingLength*0.5 the bone breaks and the
	// body separates from the sled.
	Mount
)

// Bone is a distance constraint between two rider points. RestingLength is
// fixed at construction time from the default (frame-0) positions of a
// canonical body/sled and never changes afterward.
type Bone struct {
	P1, P2        PointID
	RestingLength float64
	Kind          BoneKind

	// LengthFactor applies only to Repel bones.
	LengthFactor float64

	// Endurance applies only to Mount bones.
	Endurance float64
}

func restingLength(points map[PointID]Point, p1, p2 PointID) float64 {
	return math.Sqrt(points[p1].Location.DistanceSquared(points[p2].Location))
}

func newNormalBone(points map[PointID]Point, p1, p2 PointID) Bone {
	return Bone{P1: p1, P2: p2, RestingLength: restingLength(points, p1, p2), Kind: Normal}
}

func newRepelBone(points map[PointID]Point, p1, p2 PointID, lengthFactor float64) Bone {
	return Bone{
		P1: p1, P2: p2,
		RestingLength: restingLength(points, p1, p2),
		Kind:          Repel,
		LengthFactor:  lengthFactor,
	}
}

func newMountBone(points map[PointID]Point, p1, p2 PointID, endurance float64) Bone {
	return Bone{
		P1: p1, P2: p2,
		RestingLength: restingLength(points, p1, p2),
		Kind:          Mount,
		Endurance:     endurance,
	}
}

// Joint is an angular safety break: two ordered point-id pairs whose edge
// vectors must keep a non-negative cross product. See the physics
// package's jointFailed.
type Joint struct {
	A1, A2 PointID
	B1, B2 PointID
}
