// Copyright © 2024 Galvanized Logic Inc.

package track

import (
	"math"

	"github.com/gazed/bosh/config"
	"github.com/gazed/bosh/math/vec"
)

// float64Epsilon is the machine epsilon for float64 (2^-52), matching the
// nudge the original line-traversal algorithm applies to avoid landing
// exactly on a cell boundary on downward-sloping lines.
const float64Epsilon = 2.220446049250313e-16

// cellIndex identifies one square cell of the grid.
type cellIndex struct{ x, y int64 }

// Grid is a uniform spatial index over Lines: a map from cell to the store
// indices of the lines passing through that cell, backed by a rawStore that
// tolerates duplicate line values.
type Grid struct {
	cellSize float64
	store    *rawStore
	cells    map[cellIndex][]int
}

// newGrid returns an empty grid with the given cell size.
func newGrid(cellSize float64) *Grid {
	return &Grid{cellSize: cellSize, store: newRawStore(), cells: make(map[cellIndex][]int)}
}

func (g *Grid) allLines() []Line { return g.store.allLines() }

// add inserts line into the store and records its index in every cell it
// traverses.
func (g *Grid) add(line Line) {
	idx := g.store.add(line)
	for _, cell := range g.cellsOverLine(line) {
		g.cells[cell] = append(g.cells[cell], idx)
	}
}

// remove deletes one occurrence of line, fixing up the grid's cell index
// lists and — if the store swap moved another line — rewriting that line's
// index wherever it appears.
func (g *Grid) remove(line Line) removeResult {
	result, idx, from := g.store.remove(line)
	switch result {
	case removeNone:
		return removeNone
	case removeNoSwap:
		g.dropIndex(line, idx)
	case removeWithSwap:
		g.dropIndex(line, idx)
		if moved, ok := g.store.lineAt(idx); ok {
			for _, cell := range g.cellsOverLine(moved) {
				occurrences := g.cells[cell]
				for i, occ := range occurrences {
					if occ == from {
						occurrences[i] = idx
					}
				}
			}
		}
	}
	return result
}

// dropIndex removes idx from every cell line traverses.
func (g *Grid) dropIndex(line Line, idx int) {
	for _, cell := range g.cellsOverLine(line) {
		occurrences := g.cells[cell]
		for i, occ := range occurrences {
			if occ == idx {
				occurrences = append(occurrences[:i], occurrences[i+1:]...)
				break
			}
		}
		if len(occurrences) == 0 {
			delete(g.cells, cell)
		} else {
			g.cells[cell] = occurrences
		}
	}
}

// near returns the (deduplicated) lines in the (2*radius+1)^2 cells centered
// on the cell containing loc.
func (g *Grid) near(loc vec.Vector2, radius int64) []Line {
	center := g.cellOf(loc)
	seen := make(map[int]bool)
	var result []Line
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			cell := cellIndex{center.x + dx, center.y + dy}
			for _, idx := range g.cells[cell] {
				if seen[idx] {
					continue
				}
				seen[idx] = true
				if line, ok := g.store.lineAt(idx); ok {
					result = append(result, line)
				}
			}
		}
	}
	return result
}

// cellOf returns the cell containing loc, using Euclidean (floored) division
// so negative coordinates map consistently.
func (g *Grid) cellOf(loc vec.Vector2) cellIndex {
	return cellIndex{
		x: floorDivEuclid(int64(math.Floor(loc.X)), int64(g.cellSize)),
		y: floorDivEuclid(int64(math.Floor(loc.Y)), int64(g.cellSize)),
	}
}

func floorDivEuclid(a, b int64) int64 {
	q := a / b
	r := a % b
	if r < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

// cellsOverLine enumerates the grid cells a line crosses by walking from its
// left-most endpoint rightward, stepping to the next vertical or horizontal
// cell border at each iteration (whichever is nearer along the line), and
// emitting the cell the walk is currently in before each step. A vertical
// line has an infinite slope; Go's float64 division gives +/-Inf there the
// same way Rust's does, so the general loop handles it without a special
// case (every step is a horizontal-border hit, walking cell by cell up or
// down the column).
func (g *Grid) cellsOverLine(line Line) []cellIndex {
	p1, p2 := line.P1.Location, line.P2.Location
	// Ties (a vertical line) keep p1 as "left": the swap below is strict,
	// so an equal X leaves the original assignment in place.
	left, right := p1, p2
	if right.X < left.X {
		left, right = right, left
	}

	slope := (right.Y - left.Y) / (right.X - left.X)
	maxDistance := math.Sqrt(line.LengthSquared())

	var cells []cellIndex
	current := left
	traveled := 0.0
	for traveled <= maxDistance {
		cells = append(cells, g.cellOf(current))

		xUntilVertBorder := g.cellSize - remFloor(current.X, g.cellSize)
		var yUntilHorizBorder float64
		if slope >= 0 {
			yUntilHorizBorder = g.cellSize - remFloor(current.Y, g.cellSize)
		} else {
			r := remFloor(current.Y, g.cellSize)
			if r != 0 {
				yUntilHorizBorder = r
			} else {
				yUntilHorizBorder = g.cellSize
			}
		}
		xUntilHorizBorder := yUntilHorizBorder / math.Abs(slope)

		prev := current
		switch {
		case xUntilVertBorder < xUntilHorizBorder:
			current.X += xUntilVertBorder
			current.Y += xUntilVertBorder * slope
		case xUntilHorizBorder < xUntilVertBorder:
			current.X += xUntilHorizBorder
			if slope >= 0 {
				current.Y += yUntilHorizBorder
			} else {
				current.Y -= yUntilHorizBorder
				current.Y -= float64Epsilon * math.Abs(current.Y)
			}
		default:
			current.X += xUntilVertBorder
			current.Y += yUntilHorizBorder
		}
		traveled += math.Sqrt(current.Sub(prev).LengthSquared())
	}
	return cells
}

// remFloor returns a mod b, folded into [0, b) even for negative a.
func remFloor(a, b float64) float64 {
	r := math.Mod(a, b)
	if r < 0 {
		r += b
	}
	return r
}

// newGridFromConfig builds a Grid sized per cfg (config.Default if cfg is nil)
// seeded with lines.
func newGridFromConfig(cfg *config.Constants, lines []Line) *Grid {
	cfg = config.Resolve(cfg)
	g := newGrid(cfg.CellSize)
	for _, line := range lines {
		g.add(line)
	}
	return g
}
