// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"math"

	"github.com/gazed/bosh/config"
	"github.com/gazed/bosh/rider"
	"github.com/gazed/bosh/track"
)

// applyGravityWells tests every point of e against every non-Scenery line
// near it and applies the collision push for any that are penetrating.
// Multiple overlapping lines near the same point are applied in the order
// source.LinesNear returns them, each using the point's already-corrected
// position from the previous line in this same pass.
func applyGravityWells(e *rider.Entity, source track.LineSource, cfg *config.Constants) {
	for id, p := range e.Points {
		for _, line := range source.LinesNear(p.Location) {
			if line.Type == track.Scenery {
				continue
			}
			depth := source.DistanceBelowLine(line, p)
			if depth == 0 {
				continue
			}
			p = applyCollision(p, line, depth, cfg)
		}
		e.Points[id] = p
	}
}

// applyCollision pushes p back out to line's surface and applies the
// tangential friction and (for an Accelerate line) the line-direction
// push. depth is the penetration distance already computed by
// source.DistanceBelowLine.
func applyCollision(p rider.Point, line track.Line, depth float64, cfg *config.Constants) rider.Point {
	perp := line.Perpendicular()
	next := p.Location.Add(perp.Scale(depth))

	friction := perp.Rotate90Right().Scale(p.Friction * depth)
	if p.Previous.X >= next.X {
		friction.X = -friction.X
	}
	if p.Previous.Y < next.Y {
		friction.Y = -friction.Y
	}
	previous := p.Previous.Add(friction)

	if line.Type == track.Accelerate {
		lineLen := math.Sqrt(line.LengthSquared())
		if lineLen != 0 {
			dir := line.AsVector().Div(lineLen)
			sign := 1.0
			if line.Flipped {
				sign = -1.0
			}
			push := float64(line.Amount) * cfg.AcceleratorScale * sign
			previous = previous.Add(dir.Scale(push))
		}
	}

	p.Previous = previous
	p.Location = next
	return p
}
