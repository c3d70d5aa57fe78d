// Copyright © 2024 Galvanized Logic Inc.

package rider

import (
	"testing"

	"github.com/gazed/bosh/math/vec"
)

func TestNewBodyTopology(t *testing.T) {
	body := NewBody()
	if len(body.Points) != 6 {
		t.Fatalf("expected 6 body points, got %d", len(body.Points))
	}
	if len(body.Bones) != 8 {
		t.Fatalf("expected 6 normal + 2 repel bones, got %d", len(body.Bones))
	}
	if len(body.Joints) != 0 {
		t.Fatalf("body-only entity should have no joints, got %d", len(body.Joints))
	}
	for _, b := range body.Bones[:6] {
		if b.Kind != Normal {
			t.Errorf("expected first 6 body bones to be Normal, got %v", b.Kind)
		}
	}
	for _, b := range body.Bones[6:] {
		if b.Kind != Repel {
			t.Errorf("expected last 2 body bones to be Repel, got %v", b.Kind)
		}
		if b.LengthFactor != repelLengthFactor {
			t.Errorf("expected repel length factor %v, got %v", repelLengthFactor, b.LengthFactor)
		}
	}
}

func TestNewSledTopology(t *testing.T) {
	sled := NewSled()
	if len(sled.Points) != 4 {
		t.Fatalf("expected 4 sled points, got %d", len(sled.Points))
	}
	if len(sled.Bones) != 6 {
		t.Fatalf("expected 6 normal sled bones, got %d", len(sled.Bones))
	}
	for _, b := range sled.Bones {
		if b.Kind != Normal {
			t.Errorf("expected sled bones to be Normal, got %v", b.Kind)
		}
	}
}

func TestNewBodySledTopology(t *testing.T) {
	bs := NewBodySled()
	if len(bs.Points) != 10 {
		t.Fatalf("expected 10 points, got %d", len(bs.Points))
	}
	if len(bs.Bones) != 8+6+8 {
		t.Fatalf("expected 22 bones, got %d", len(bs.Bones))
	}
	if len(bs.Joints) != 2 {
		t.Fatalf("expected 2 joints, got %d", len(bs.Joints))
	}

	mountCount := 0
	for _, b := range bs.Bones {
		if b.Kind == Mount {
			mountCount++
			if b.Endurance != mountEndurance {
				t.Errorf("expected mount endurance %v, got %v", mountEndurance, b.Endurance)
			}
		}
	}
	if mountCount != 8 {
		t.Errorf("expected 8 mount bones (3 sled-mount + 5 body-mount), got %d", mountCount)
	}

	if !bs.IsMounted() {
		t.Errorf("freshly built body+sled should report IsMounted")
	}
}

func TestSplitSeparatesBodyFromSled(t *testing.T) {
	bs := NewBodySled()
	body, sled := bs.Split()

	if len(body.Points) != 6 || len(sled.Points) != 4 {
		t.Fatalf("split point counts wrong: body=%d sled=%d", len(body.Points), len(sled.Points))
	}
	for _, b := range body.Bones {
		if b.Kind == Mount {
			t.Errorf("split body retained a mount bone")
		}
	}
	for _, b := range sled.Bones {
		if b.Kind == Mount {
			t.Errorf("split sled retained a mount bone")
		}
	}
	if len(body.Joints) != 0 || len(sled.Joints) != 0 {
		t.Errorf("split entities should carry no joints")
	}

	// Positions are preserved across the split.
	if body.Points[Shoulder].Location != bs.Points[Shoulder].Location {
		t.Errorf("split changed shoulder position")
	}
	if sled.Points[Peg].Location != bs.Points[Peg].Location {
		t.Errorf("split changed peg position")
	}
}

// Scenario: a bone connecting two points closer together than its resting
// length pushes them apart; farther apart pulls them together. This test
// only checks the static topology invariant that RestingLength is fixed at
// the default pose's distance — the dynamic contraction/expansion behavior
// lives in the physics package's constraint solver.
func TestBoneRestingLengthMatchesDefaultPose(t *testing.T) {
	body := NewBody()
	for _, b := range body.Bones {
		want := body.Points[b.P1].Location.DistanceSquared(body.Points[b.P2].Location)
		got := b.RestingLength * b.RestingLength
		if !vec.Aeq(got, want) {
			t.Errorf("bone %v-%v resting length %v does not match default pose distance %v", b.P1, b.P2, b.RestingLength, want)
		}
	}
}
