// Copyright © 2024 Galvanized Logic Inc.

package codec

import (
	"github.com/gazed/bosh/rider"
	"github.com/gazed/bosh/track"
)

// TrackData is the codec-neutral shape every format decodes into and
// encodes from: a rider set plus a line set, exactly what track.New needs
// to build a live Track. Callers supply the physics.Step function and
// config.Constants themselves; codec has no physics dependency.
type TrackData struct {
	Riders []rider.Entity
	Lines  []track.Line
}
