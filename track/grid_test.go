// Copyright © 2024 Galvanized Logic Inc.

package track

import (
	"testing"

	"github.com/gazed/bosh/math/vec"
)

func TestGridQueryFindsLinesNearPoint(t *testing.T) {
	g := newGrid(20)
	l1 := flatLine(0, 0, 15, 0)
	l2 := flatLine(100, 100, 115, 100)
	g.add(l1)
	g.add(l2)

	near := g.near(vec.New(5, 5), 1)
	if len(near) != 1 || near[0] != l1 {
		t.Fatalf("expected exactly l1 near (5,5), got %v", near)
	}

	near = g.near(vec.New(105, 105), 1)
	if len(near) != 1 || near[0] != l2 {
		t.Fatalf("expected exactly l2 near (105,105), got %v", near)
	}
}

func TestGridAddRemoveWithDuplicates(t *testing.T) {
	g := newGrid(20)
	l := flatLine(0, 0, 15, 0)
	other := flatLine(5, 5, 18, 5)

	g.add(l)
	g.add(l) // duplicate value, distinct store slot
	g.add(other)

	if got, want := len(g.allLines()), 3; got != want {
		t.Fatalf("expected %d lines after adding duplicates, got %d", want, got)
	}

	g.remove(l)
	if got, want := len(g.allLines()), 2; got != want {
		t.Fatalf("expected %d lines after removing one duplicate, got %d", want, got)
	}

	near := g.near(vec.New(5, 2), 1)
	foundL, foundOther := false, false
	for _, candidate := range near {
		if candidate == l {
			foundL = true
		}
		if candidate == other {
			foundOther = true
		}
	}
	if !foundL {
		t.Errorf("expected the remaining duplicate of l to still be queryable")
	}
	if !foundOther {
		t.Errorf("expected other to still be queryable after l's removal and swap")
	}

	g.remove(l)
	near = g.near(vec.New(5, 2), 1)
	for _, candidate := range near {
		if candidate == l {
			t.Errorf("expected l to be fully gone after removing both duplicates")
		}
	}
}

func TestGridRemoveNothingIsNoop(t *testing.T) {
	g := newGrid(20)
	l := flatLine(0, 0, 15, 0)
	if result := g.remove(l); result != removeNone {
		t.Errorf("expected removeNone for a line never added, got %v", result)
	}
}

func TestCellOfNegativeCoordinates(t *testing.T) {
	g := newGrid(20)
	cell := g.cellOf(vec.New(-1, -1))
	if cell.x != -1 || cell.y != -1 {
		t.Errorf("expected cell (-1,-1) for point (-1,-1), got %v", cell)
	}
	cell = g.cellOf(vec.New(-20, -20))
	if cell.x != -1 || cell.y != -1 {
		t.Errorf("expected cell (-1,-1) for point (-20,-20), got %v", cell)
	}
	cell = g.cellOf(vec.New(-21, 0))
	if cell.x != -2 {
		t.Errorf("expected cell x -2 for point x -21, got %v", cell.x)
	}
}

func TestLineTraversalCoversEveryCellAlongASlopedLine(t *testing.T) {
	g := newGrid(20)
	l := flatLine(0, 0, 59, 30)
	g.add(l)

	for _, pt := range []vec.Vector2{vec.New(5, 2), vec.New(25, 12), vec.New(45, 22)} {
		near := g.near(pt, 0)
		found := false
		for _, candidate := range near {
			if candidate == l {
				found = true
			}
		}
		if !found {
			t.Errorf("expected sloped line to be indexed in the cell containing %v", pt)
		}
	}
}

func TestVerticalLineTraversal(t *testing.T) {
	g := newGrid(20)
	l := flatLine(10, -25, 10, 45)
	g.add(l)

	for _, pt := range []vec.Vector2{vec.New(10, -10), vec.New(10, 5), vec.New(10, 25)} {
		near := g.near(pt, 0)
		found := false
		for _, candidate := range near {
			if candidate == l {
				found = true
			}
		}
		if !found {
			t.Errorf("expected vertical line to be indexed in the cell containing %v", pt)
		}
	}
}
