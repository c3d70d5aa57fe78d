// Copyright © 2024 Galvanized Logic Inc.

package track

import (
	"testing"

	"github.com/gazed/bosh/config"
	"github.com/gazed/bosh/math/vec"
)

func flatLine(x1, y1, x2, y2 float64) Line {
	return Line{
		P1: Endpoint{Location: vec.New(x1, y1)},
		P2: Endpoint{Location: vec.New(x2, y2)},
	}
}

func TestAsVectorAndLengthSquared(t *testing.T) {
	l := flatLine(0, 0, 3, 4)
	if got, want := l.AsVector(), vec.New(3, 4); got != want {
		t.Errorf("AsVector: got %v want %v", got, want)
	}
	if got, want := l.LengthSquared(), 25.0; got != want {
		t.Errorf("LengthSquared: got %v want %v", got, want)
	}
}

func TestPerpendicularFacesUpUnlessFlipped(t *testing.T) {
	l := flatLine(0, 0, 10, 0)
	if got, want := l.Perpendicular(), vec.New(0, -1); !vec.Aeq(got.X, want.X) || !vec.Aeq(got.Y, want.Y) {
		t.Errorf("Perpendicular: got %v want %v", got, want)
	}
	l.Flipped = true
	if got, want := l.Perpendicular(), vec.New(0, 1); !vec.Aeq(got.X, want.X) || !vec.Aeq(got.Y, want.Y) {
		t.Errorf("Perpendicular flipped: got %v want %v", got, want)
	}
}

func TestEndExtensionsOnlyOnFlaggedEnds(t *testing.T) {
	l := flatLine(0, 0, 40, 0)
	left, right := l.EndExtensions(config.Default)
	if left != 0 || right != 0 {
		t.Fatalf("expected no extensions by default, got (%v, %v)", left, right)
	}

	l.P1.Extended = true
	left, right = l.EndExtensions(config.Default)
	if right != 0 {
		t.Errorf("expected right extension 0, got %v", right)
	}
	want := vec.Clamp(40*config.Default.ExtensionRatio, config.Default.ExtensionMin, config.Default.ExtensionMax)
	if !vec.Aeq(left, want) {
		t.Errorf("expected left extension %v, got %v", want, left)
	}
}

func TestEndExtensionsClampedToTen(t *testing.T) {
	l := flatLine(0, 0, 1000, 0)
	l.P1.Extended, l.P2.Extended = true, true
	left, right := l.EndExtensions(config.Default)
	if left != 10 || right != 10 {
		t.Errorf("expected extensions clamped to 10, got (%v, %v)", left, right)
	}
}
