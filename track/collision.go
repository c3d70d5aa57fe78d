// Copyright © 2024 Galvanized Logic Inc.

package track

import (
	"math"

	"github.com/gazed/bosh/config"
	"github.com/gazed/bosh/rider"
)

// distanceBelowLine is the pure query behind Track.DistanceBelowLine: how
// far point has penetrated below line's collision side, or 0 if the point
// is above the line, moving away from it, or outside the line's span
// (including its end-extensions). A Scenery line always gives 0.
func distanceBelowLine(cfg *config.Constants, line Line, point rider.Point) float64 {
	cfg = config.Resolve(cfg)
	if line.Type == Scenery {
		return 0
	}

	perp := line.Perpendicular()
	movingInto := perp.Dot(point.Location.Sub(point.Previous)) < 0
	if !movingInto {
		return 0
	}

	lineVec := line.AsVector()
	lineLen := math.Sqrt(lineVec.LengthSquared())
	if lineLen == 0 {
		return 0
	}
	lineDir := lineVec.Div(lineLen)
	fromStart := point.Location.Sub(line.P1.Location)

	extLeft, extRight := line.EndExtensions(cfg)
	t := fromStart.Dot(lineDir)
	if t < -extLeft || t > lineLen+extRight {
		return 0
	}

	depth := fromStart.Dot(perp.Neg())
	if depth > 0 && depth < cfg.GravityWellHeight {
		return depth
	}
	return 0
}
