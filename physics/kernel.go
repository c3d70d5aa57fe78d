// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"github.com/gazed/bosh/config"
	"github.com/gazed/bosh/rider"
	"github.com/gazed/bosh/track"
)

// stepOneRider advances one rider by exactly one frame: integrate, then
// cfg.Iterations rounds of constraint relaxation plus gravity-well
// collision, then (for a still-mounted rider) a joint-failure check. The
// result holds one entity unless a mount bone or joint broke mid-frame, in
// which case it holds the two resulting entities (body, then sled).
func stepOneRider(e rider.Entity, source track.LineSource, cfg *config.Constants) []rider.Entity {
	e = e.Clone()
	integrate(&e, cfg)

	current := []rider.Entity{e}
	for iter := 0; iter < cfg.Iterations; iter++ {
		current = relaxOnce(current, cfg)
		for i := range current {
			applyGravityWells(&current[i], source, cfg)
		}
	}

	if len(current) == 1 && current[0].IsMounted() && jointFailed(current[0]) {
		body, sled := current[0].Split()
		current = []rider.Entity{body, sled}
	}
	return current
}

// relaxOnce runs one constraint-relaxation pass over every entity in
// current, splitting any entity whose mount bone breaks during the pass.
// Split halves never carry a Mount bone (see rider.Entity.Split), so once
// an entity splits, subsequent passes solve its two halves independently.
func relaxOnce(current []rider.Entity, cfg *config.Constants) []rider.Entity {
	next := make([]rider.Entity, 0, len(current)+1)
	for _, e := range current {
		e, broke := solveBonesOnce(e, cfg)
		if !broke {
			next = append(next, e)
			continue
		}
		body, sled := e.Split()
		next = append(next, body, sled)
	}
	return next
}

// integrate applies one frame of Verlet integration to every point in e:
// the implicit velocity (Location - Previous) carries forward, and
// cfg.Gravity is added on top.
func integrate(e *rider.Entity, cfg *config.Constants) {
	for id, p := range e.Points {
		velocity := p.Location.Sub(p.Previous)
		p.Previous = p.Location
		p.Location = p.Location.Add(velocity).Add(cfg.Gravity)
		e.Points[id] = p
	}
}
