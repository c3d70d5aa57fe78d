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

// lrcomTrack is the linerider.com-compatible canonical JSON shape.
type lrcomTrack struct {
	Label       string       `json:"label"`
	Creator     string       `json:"creator"`
	Description string       `json:"description"`
	Duration    uint64       `json:"duration"`
	Version     string       `json:"version"`
	Audio       any          `json:"audio"`
	StartPos    lrcomVec2    `json:"startPosition"`
	Riders      []lrcomRider `json:"riders"`
	Lines       []lrcomLine  `json:"lines"`
}

type lrcomVec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type lrcomRider struct {
	StartPos lrcomVec2 `json:"startPosition"`
	StartVel lrcomVec2 `json:"startVelocity"`
	Remount  bool      `json:"remountable"`
}

type lrcomLine struct {
	ID            uint64  `json:"id"`
	Type          int     `json:"type"`
	X1            float64 `json:"x1"`
	Y1            float64 `json:"y1"`
	X2            float64 `json:"x2"`
	Y2            float64 `json:"y2"`
	Flipped       bool    `json:"flipped"`
	LeftExtended  bool    `json:"leftExtended"`
	RightExtended bool    `json:"rightExtended"`
}

// DecodeLRCom parses a canonical linerider.com track from r. Every rider
// decodes to a mounted body+sled at its default layout, with every point's
// location translated by startPosition and, independently, startVelocity
// subtracted from every point's previous_location (previous_location is not
// itself translated by startPosition; the reference decoder treats the two
// adjustments as separate passes).
func DecodeLRCom(r io.Reader) (TrackData, error) {
	var doc lrcomTrack
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return TrackData{}, fmt.Errorf("codec: lrcom: decoding JSON: %w", err)
	}

	riders := make([]rider.Entity, len(doc.Riders))
	for i, lr := range doc.Riders {
		riders[i] = lrcomEntityToRider(lr)
	}

	lines := make([]track.Line, len(doc.Lines))
	for i, ll := range doc.Lines {
		lines[i] = lrcomLineToLine(ll)
	}

	slog.Debug("codec: decoded lrcom track", "riders", len(riders), "lines", len(lines))
	return TrackData{Riders: riders, Lines: lines}, nil
}

// EncodeLRCom writes data as a canonical linerider.com track to w. Every
// rider must have a peg point (a mounted body+sled or a sled-only rider);
// a rider without one fails with a MissingRiderPeg error.
func EncodeLRCom(w io.Writer, data TrackData) error {
	doc := lrcomTrack{
		Label:   "A Bosh Track",
		Version: "6.2",
	}

	doc.Riders = make([]lrcomRider, len(data.Riders))
	for i, e := range data.Riders {
		lr, err := riderToLRComEntity(e)
		if err != nil {
			return err
		}
		doc.Riders[i] = lr
	}
	if len(doc.Riders) > 0 {
		doc.StartPos = doc.Riders[0].StartPos
	}

	var nextID uint64
	doc.Lines = make([]lrcomLine, len(data.Lines))
	for i, l := range data.Lines {
		doc.Lines[i] = lineToLRComLine(l, nextID)
		nextID++
	}

	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("codec: lrcom: encoding JSON: %w", err)
	}
	return nil
}

func lrcomEntityToRider(lr lrcomRider) rider.Entity {
	e := rider.NewBodySled()
	startPos := vec.New(lr.StartPos.X, lr.StartPos.Y)
	startVel := vec.New(lr.StartVel.X, lr.StartVel.Y)
	for id, p := range e.Points {
		p.Location = p.Location.Add(startPos)
		p.Previous = p.Previous.Sub(startVel)
		e.Points[id] = p
	}
	return e
}

func riderToLRComEntity(e rider.Entity) (lrcomRider, error) {
	peg, ok := e.Points[rider.Peg]
	if !ok {
		return lrcomRider{}, newError(MissingRiderPeg, "lrcom: encoding rider without a peg point", nil)
	}
	vel := peg.Previous.Sub(peg.Location)
	return lrcomRider{
		StartPos: lrcomVec2{X: peg.Location.X, Y: peg.Location.Y},
		StartVel: lrcomVec2{X: vel.X, Y: vel.Y},
	}, nil
}

func lrcomLineToLine(ll lrcomLine) track.Line {
	l := track.Line{
		P1:      track.Endpoint{Location: vec.New(ll.X1, ll.Y1), Extended: ll.LeftExtended},
		P2:      track.Endpoint{Location: vec.New(ll.X2, ll.Y2), Extended: ll.RightExtended},
		Flipped: ll.Flipped,
	}
	switch ll.Type {
	case 0:
		l.Type = track.Normal
	case 1:
		l.Type = track.Accelerate
		l.Amount = 1
	case 2:
		l.Type = track.Scenery
	}
	return l
}

func lineToLRComLine(l track.Line, id uint64) lrcomLine {
	var t int
	switch l.Type {
	case track.Normal:
		t = 0
	case track.Accelerate:
		t = 1
	case track.Scenery:
		t = 2
	}
	return lrcomLine{
		ID:            id,
		Type:          t,
		X1:            l.P1.Location.X,
		Y1:            l.P1.Location.Y,
		X2:            l.P2.Location.X,
		Y2:            l.P2.Location.Y,
		Flipped:       l.Flipped,
		LeftExtended:  l.P1.Extended,
		RightExtended: l.P2.Extended,
	}
}
