// Copyright © 2024 Galvanized Logic Inc.

// Package track holds the authored world: lines, the spatial grid that
// indexes them, and the lazily extended per-frame rider snapshot cache.
//
// Package track is provided as part of the bosh rag-doll physics engine.
package track

import (
	"math"

	"github.com/gazed/bosh/config"
	"github.com/gazed/bosh/math/vec"
)

// LineType distinguishes a plain collision line from one that accelerates
// riders along its length, or one that never collides at all.
type LineType int

const (
	// Normal lines collide but apply no extra velocity.
	Normal LineType = iota

	// Accelerate lines collide and push the rider along the line's
	// direction; Amount scales the push (see physics collision).
	Accelerate

	// Scenery lines are drawn but never collide.
	Scenery
)

// Endpoint is one end of a Line: a location plus whether that end's hitbox
// extends past the line's physical length.
type Endpoint struct {
	Location vec.Vector2
	Extended bool
}

// Line is a directed, possibly one-sided collision segment. Flipped selects
// which side of the segment (P1->P2) has collision: unflipped collides on
// the left side of travel, flipped on the right.
type Line struct {
	P1, P2  Endpoint
	Type    LineType
	Amount  uint64 // only meaningful when Type == Accelerate
	Flipped bool
}

// AsVector returns the line's direction and length as P2 - P1.
func (l Line) AsVector() vec.Vector2 {
	return l.P2.Location.Sub(l.P1.Location)
}

// Perpendicular returns the unit vector facing the line's collision side:
// rotate90Right of AsVector when not flipped, rotate90Left when flipped.
// (Verified against the worked "flat line gravity well" example: a point
// sitting below an unflipped line, falling further down, must be caught and
// pushed back up to the surface — which only comes out right when the
// unflipped perpendicular points toward -y here, i.e. rotate90Right.)
func (l Line) Perpendicular() vec.Vector2 {
	if l.Flipped {
		return l.AsVector().Rotate90Left().Normalize()
	}
	return l.AsVector().Rotate90Right().Normalize()
}

// LengthSquared returns the squared distance between the line's endpoints.
func (l Line) LengthSquared() float64 {
	return l.P1.Location.DistanceSquared(l.P2.Location)
}

// EndExtensions returns how far the line's hitbox extends past each
// endpoint, using cfg's extension ratio and clamp (config.Default if cfg is
// nil). An endpoint only extends when its Extended flag is set.
func (l Line) EndExtensions(cfg *config.Constants) (left, right float64) {
	cfg = config.Resolve(cfg)
	length := math.Sqrt(l.LengthSquared())
	clamped := vec.Clamp(length*cfg.ExtensionRatio, cfg.ExtensionMin, cfg.ExtensionMax)
	if l.P1.Extended {
		left = clamped
	}
	if l.P2.Extended {
		right = clamped
	}
	return left, right
}
