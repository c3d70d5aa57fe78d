// Copyright © 2024 Galvanized Logic Inc.

package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/gazed/bosh/math/vec"
	"github.com/gazed/bosh/rider"
	"github.com/gazed/bosh/track"
)

// boshtfTrack is the native "BoshTF" JSON shape: riders carry an explicit
// kind tag (Bosh, Sled, or BoshSled) plus any points whose location
// overrides the tag's default pose, so a hand-edited or post-split rider
// round-trips exactly while still carrying its bones and joints.
type boshtfTrack struct {
	Entities []boshtfEntity `json:"entities"`
	Lines    []lrcomLine    `json:"lines"`
}

// boshtfEntityKind names which of the three canonical topologies a rider
// reconstructs as. There is no fourth, bones-less "Custom" kind: every
// rider the kernel ever produces, including a post-split body or sled, is
// one of these three shapes, so every entity that round-trips through this
// codec keeps the bones and joints its topology implies.
type boshtfEntityKind string

const (
	boshtfBosh     boshtfEntityKind = "Bosh"
	boshtfSled     boshtfEntityKind = "Sled"
	boshtfBoshSled boshtfEntityKind = "BoshSled"
)

type boshtfEntity struct {
	EntityType boshtfEntityKind     `json:"entityType,omitempty"`
	Points     map[string]lrcomVec2 `json:"points,omitempty"`
}

// DecodeBoshTF parses a native BoshTF track from r. An entity is
// reconstructed at its tag's canonical default pose (Bosh, Sled, or
// BoshSled), with any supplied points overriding the default location; an
// entity with no entityType is an error, matching the original decoder's
// "entity type not provided" failure.
func DecodeBoshTF(r io.Reader) (TrackData, error) {
	var doc boshtfTrack
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return TrackData{}, fmt.Errorf("codec: boshtf: decoding JSON: %w", err)
	}

	riders := make([]rider.Entity, len(doc.Entities))
	for i, be := range doc.Entities {
		e, err := boshtfEntityToRider(be)
		if err != nil {
			return TrackData{}, err
		}
		riders[i] = e
	}

	lines := make([]track.Line, len(doc.Lines))
	for i, ll := range doc.Lines {
		lines[i] = lrcomLineToLine(ll)
	}

	slog.Debug("codec: decoded boshtf track", "riders", len(riders), "lines", len(lines))
	return TrackData{Riders: riders, Lines: lines}, nil
}

// EncodeBoshTF writes data as a native BoshTF track to w. Each rider's tag
// is derived from which points it carries (see entityKindOf), so a
// post-split body-only or sled-only rider still tags and round-trips as
// Bosh or Sled, bones and all.
func EncodeBoshTF(w io.Writer, data TrackData) error {
	doc := boshtfTrack{Entities: make([]boshtfEntity, len(data.Riders))}
	for i, e := range data.Riders {
		doc.Entities[i] = riderToBoshTFEntity(e)
	}

	var nextID uint64
	doc.Lines = make([]lrcomLine, len(data.Lines))
	for i, l := range data.Lines {
		doc.Lines[i] = lineToLRComLine(l, nextID)
		nextID++
	}

	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("codec: boshtf: encoding JSON: %w", err)
	}
	return nil
}

func boshtfEntityToRider(be boshtfEntity) (rider.Entity, error) {
	var e rider.Entity
	switch be.EntityType {
	case boshtfBosh:
		e = rider.NewBody()
	case boshtfSled:
		e = rider.NewSled()
	case boshtfBoshSled:
		e = rider.NewBodySled()
	default:
		return rider.Entity{}, newError(MissingEntityKind, "boshtf: entity has no entityType", nil)
	}

	for name, v := range be.Points {
		id, ok := rider.PointByName(name)
		if !ok {
			return rider.Entity{}, newError(UnknownPointName, fmt.Sprintf("boshtf: point %q", name), nil)
		}
		p := e.Points[id]
		p.Location = vec.New(v.X, v.Y)
		e.Points[id] = p
	}
	return e, nil
}

// entityKindOf reports which canonical topology e's points belong to: a
// rider with both body and sled points is BoshSled, a body-only rider
// (including one just split off a BoshSled) is Bosh, and everything else
// is Sled. This mirrors the original encoder's is_bosh_sled/is_bosh/is_sled
// structural checks.
func entityKindOf(e rider.Entity) boshtfEntityKind {
	hasBody, hasSled := false, false
	for id := range e.Points {
		if id.IsBody() {
			hasBody = true
		} else {
			hasSled = true
		}
	}
	switch {
	case hasBody && hasSled:
		return boshtfBoshSled
	case hasBody:
		return boshtfBosh
	default:
		return boshtfSled
	}
}

func riderToBoshTFEntity(e rider.Entity) boshtfEntity {
	points := make(map[string]lrcomVec2, len(e.Points))
	for id, p := range e.Points {
		points[id.String()] = lrcomVec2{X: p.Location.X, Y: p.Location.Y}
	}
	return boshtfEntity{EntityType: entityKindOf(e), Points: points}
}
