// Copyright © 2024 Galvanized Logic Inc.

package codec

import (
	"bytes"
	"testing"

	"github.com/gazed/bosh/rider"
)

func TestDecodeBoshTFTaggedEntitiesUseDefaultPose(t *testing.T) {
	doc := `{
		"entities": [
			{"entityType": "Bosh"},
			{"entityType": "Sled"},
			{"entityType": "BoshSled"}
		],
		"lines": []
	}`
	data, err := DecodeBoshTF(bytes.NewBufferString(doc))
	if err != nil {
		t.Fatalf("DecodeBoshTF: %v", err)
	}
	if len(data.Riders) != 3 {
		t.Fatalf("expected 3 riders, got %d", len(data.Riders))
	}
	if _, ok := data.Riders[0].Points[rider.Shoulder]; !ok {
		t.Errorf("Bosh entity missing its body points")
	}
	if _, ok := data.Riders[1].Points[rider.Peg]; !ok {
		t.Errorf("Sled entity missing its peg point")
	}
	if _, ok := data.Riders[2].Points[rider.Shoulder]; !ok {
		t.Errorf("BoshSled entity missing its body points")
	}
	if _, ok := data.Riders[2].Points[rider.Peg]; !ok {
		t.Errorf("BoshSled entity missing its peg point")
	}
}

func TestDecodeBoshTFTaggedEntityPointsOverrideTheDefaultPose(t *testing.T) {
	doc := `{
		"entities": [{"entityType": "Sled", "points": {"peg": {"x": 5, "y": 6}}}],
		"lines": []
	}`
	data, err := DecodeBoshTF(bytes.NewBufferString(doc))
	if err != nil {
		t.Fatalf("DecodeBoshTF: %v", err)
	}
	peg := data.Riders[0].Points[rider.Peg]
	if peg.Location.X != 5 || peg.Location.Y != 6 {
		t.Errorf("peg location: got %v", peg.Location)
	}
	if len(data.Riders[0].Points) != 4 {
		t.Errorf("expected the Sled entity to keep its full 4-point topology, got %d", len(data.Riders[0].Points))
	}
	if len(data.Riders[0].Bones) == 0 {
		t.Errorf("expected the Sled entity to carry its bones, not just a bare point map")
	}
}

func TestDecodeBoshTFMissingEntityKind(t *testing.T) {
	doc := `{"entities": [{"points": {}}], "lines": []}`
	_, err := DecodeBoshTF(bytes.NewBufferString(doc))
	var ce *Error
	if !asError(err, &ce) || ce.Kind != MissingEntityKind {
		t.Errorf("expected a MissingEntityKind codec.Error, got %v", err)
	}
}

func TestDecodeBoshTFUnknownPointName(t *testing.T) {
	doc := `{"entities": [{"entityType": "Sled", "points": {"Elbow": {"x": 0, "y": 0}}}], "lines": []}`
	_, err := DecodeBoshTF(bytes.NewBufferString(doc))
	var ce *Error
	if !asError(err, &ce) || ce.Kind != UnknownPointName {
		t.Errorf("expected an UnknownPointName codec.Error, got %v", err)
	}
}

func TestEncodeThenDecodeBoshTFRoundTripsBonesAndAll(t *testing.T) {
	body, sled := rider.NewBodySled().Split()
	data := TrackData{Riders: []rider.Entity{body, sled}}

	var buf bytes.Buffer
	if err := EncodeBoshTF(&buf, data); err != nil {
		t.Fatalf("EncodeBoshTF: %v", err)
	}

	got, err := DecodeBoshTF(&buf)
	if err != nil {
		t.Fatalf("DecodeBoshTF: %v", err)
	}
	if len(got.Riders) != 2 {
		t.Fatalf("expected 2 riders round-tripped, got %d", len(got.Riders))
	}
	for i, want := range data.Riders {
		got := got.Riders[i]
		for id, p := range want.Points {
			if got.Points[id].Location != p.Location {
				t.Errorf("rider %d point %v location: got %v want %v", i, id, got.Points[id].Location, p.Location)
			}
		}
		if len(got.Bones) != len(want.Bones) {
			t.Errorf("rider %d: expected %d bones after round-trip, got %d", i, len(want.Bones), len(got.Bones))
		}
	}
}
