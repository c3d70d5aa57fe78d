// Copyright © 2024 Galvanized Logic Inc.

// Package physics is the deterministic, single-threaded rag-doll physics
// kernel: Verlet integration, fixed-iteration constraint relaxation, line
// gravity-well collision, and bone/joint breakage.
//
// physics.go exposes the per-frame API the rest of the engine needs.
// Physics was ported from original_source/src/physics (deanveloper/bosh-rs).
// The file layout keeps roughly the same split as the original, to help
// cross-reference the port:
//
//	physics              : original_source/src/physics
//	kernel.go            : advance_frame.rs, the per-rider per-frame driver
//	constraints.go       : bone.rs's constraint-solving half
//	collision.go         : line_physics.rs
//	joints.go            : the joint-failure half of entities.rs
//
// Package physics is provided as part of the bosh rag-doll physics engine.
package physics

import (
	"github.com/gazed/bosh/config"
	"github.com/gazed/bosh/rider"
	"github.com/gazed/bosh/track"
)

// Step advances every rider in riders by one frame: Verlet integration,
// six-iteration constraint relaxation with gravity-well collision, and a
// joint/mount-bone breakage check. A rider that breaks apart is replaced,
// in place, by its two resulting entities. Step's signature matches
// track.StepFunc, so a Track can use it directly as its per-frame stepper.
func Step(riders []rider.Entity, source track.LineSource, cfg *config.Constants) []rider.Entity {
	cfg = config.Resolve(cfg)
	out := make([]rider.Entity, 0, len(riders))
	for _, e := range riders {
		out = append(out, stepOneRider(e, source, cfg)...)
	}
	return out
}

// Simulate runs Step n times starting from riders and returns the final
// frame. Unlike track.Track.PositionsAt it does no memoization; it exists
// for callers (tests, one-shot tools) that want a final position without
// constructing a Track.
func Simulate(riders []rider.Entity, source track.LineSource, cfg *config.Constants, n int) []rider.Entity {
	cfg = config.Resolve(cfg)
	current := riders
	for i := 0; i < n; i++ {
		current = Step(current, source, cfg)
	}
	return current
}
