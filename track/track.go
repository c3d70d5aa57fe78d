// Copyright © 2024 Galvanized Logic Inc.

package track

import (
	"log/slog"
	"sync"

	"github.com/gazed/bosh/config"
	"github.com/gazed/bosh/math/vec"
	"github.com/gazed/bosh/rider"
)

// StepFunc advances every rider in riders by one frame, using source to
// query collision lines and cfg for the active physics constants. The
// physics package's Step function has this signature; Track is handed a
// StepFunc at construction instead of importing physics directly, which
// would otherwise create an import cycle (physics needs a LineSource to
// query the track it is stepping).
type StepFunc func(riders []rider.Entity, source LineSource, cfg *config.Constants) []rider.Entity

// LineSource is the read-only view of a Track that the physics package
// needs to step a frame: the lines near a point, and the gravity-well
// collision test for a point against one of them.
type LineSource interface {
	AllLines() []Line
	LinesNear(loc vec.Vector2) []Line
	DistanceBelowLine(line Line, point rider.Point) float64
}

// Track owns the authored lines (via a Grid) and the lazily extended
// sequence of rider-position snapshots derived from them. All mutation is
// serialized by mu; PositionsAt always returns a copy so concurrent readers
// of already-cached frames never race with the goroutine extending the
// cache.
type Track struct {
	mu sync.Mutex

	cfg  *config.Constants
	step StepFunc

	grid      *Grid
	snapshots [][]rider.Entity
}

// New constructs a Track seeded with snapshot 0 equal to initialRiders, and
// a Grid indexing initialLines. step is the per-frame advance function
// (physics.Step in production use); cfg selects the physics constants
// (config.Default if nil).
func New(step StepFunc, cfg *config.Constants, initialRiders []rider.Entity, initialLines []Line) *Track {
	cfg = config.Resolve(cfg)
	riders := make([]rider.Entity, len(initialRiders))
	copy(riders, initialRiders)
	return &Track{
		cfg:       cfg,
		step:      step,
		grid:      newGridFromConfig(cfg, initialLines),
		snapshots: [][]rider.Entity{riders},
	}
}

// AllLines returns every line on the track, Scenery included. Order is
// unspecified.
func (t *Track) AllLines() []Line {
	t.mu.Lock()
	defer t.mu.Unlock()
	lines := t.grid.allLines()
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// LinesNear returns the lines within one grid cell radius of loc. Order is
// unspecified.
func (t *Track) LinesNear(loc vec.Vector2) []Line {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.grid.near(loc, 1)
}

// AddLine adds line to the track and truncates the frame cache to length 1:
// snapshot 0 (the user-authored initial riders) is preserved, everything
// derived from the old line set is discarded.
func (t *Track) AddLine(line Line) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.grid.add(line)
	t.truncateCache()
}

// RemoveLine removes one occurrence of line from the track, if present, and
// truncates the frame cache. Removing a line that isn't on the track is a
// no-op, logged at Warn rather than treated as an error.
func (t *Track) RemoveLine(line Line) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.grid.remove(line) == removeNone {
		slog.Warn("track: RemoveLine had nothing to remove", "line", line)
		return
	}
	t.truncateCache()
}

// CreateRider appends entity to snapshot 0 and truncates the frame cache.
func (t *Track) CreateRider(entity rider.Entity) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.snapshots[0] = append(t.snapshots[0], entity)
	t.truncateCache()
}

// RemoveRider removes entity from snapshot 0, if present, and truncates the
// frame cache. Removing an entity that isn't present is a no-op, logged at
// Warn.
func (t *Track) RemoveRider(entity rider.Entity) {
	t.mu.Lock()
	defer t.mu.Unlock()
	initial := t.snapshots[0]
	for i, e := range initial {
		if entitiesEqual(e, entity) {
			t.snapshots[0] = append(initial[:i], initial[i+1:]...)
			t.truncateCache()
			return
		}
	}
	slog.Warn("track: RemoveRider had nothing to remove")
}

// truncateCache discards every snapshot after frame 0. Callers must hold mu.
func (t *Track) truncateCache() {
	t.snapshots = t.snapshots[:1]
}

// PositionsAt returns a copy of the rider snapshot at frame n, extending the
// cache by repeatedly stepping the physics kernel from the last cached
// frame until it reaches n. Calling PositionsAt twice with the same n
// returns identical results and leaves the externally observable state
// unchanged.
func (t *Track) PositionsAt(n int) []rider.Entity {
	t.mu.Lock()
	defer t.mu.Unlock()
	view := trackView{t}
	for len(t.snapshots) <= n {
		last := t.snapshots[len(t.snapshots)-1]
		next := t.step(last, view, t.cfg)
		t.snapshots = append(t.snapshots, next)
	}
	out := make([]rider.Entity, len(t.snapshots[n]))
	for i, e := range t.snapshots[n] {
		out[i] = e.Clone()
	}
	return out
}

// SnapPoint returns the closest endpoint, among lines within one cell of
// toSnap, that lies within maxDist; otherwise it returns toSnap unchanged.
func (t *Track) SnapPoint(maxDist float64, toSnap vec.Vector2) vec.Vector2 {
	maxDistSq := maxDist * maxDist
	best := toSnap
	bestDist := maxDistSq
	found := false
	for _, line := range t.LinesNear(toSnap) {
		for _, end := range [2]Endpoint{line.P1, line.P2} {
			d := end.Location.DistanceSquared(toSnap)
			if d < bestDist {
				bestDist = d
				best = end.Location
				found = true
			}
		}
	}
	if !found {
		return toSnap
	}
	return best
}

// DistanceBelowLine returns how far point has penetrated below line's
// collision side this frame, or 0 if the point isn't colliding with line at
// all. See the physics package's collision routine for how this value is
// used.
func (t *Track) DistanceBelowLine(line Line, point rider.Point) float64 {
	return distanceBelowLine(t.cfg, line, point)
}

// trackView is the LineSource handed to StepFunc while PositionsAt already
// holds t.mu: it reads the grid directly instead of going back through
// Track's locking methods, which would deadlock on the non-reentrant mutex.
type trackView struct{ t *Track }

func (v trackView) AllLines() []Line {
	lines := v.t.grid.allLines()
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

func (v trackView) LinesNear(loc vec.Vector2) []Line {
	return v.t.grid.near(loc, 1)
}

func (v trackView) DistanceBelowLine(line Line, point rider.Point) float64 {
	return distanceBelowLine(v.t.cfg, line, point)
}

func entitiesEqual(a, b rider.Entity) bool {
	if len(a.Points) != len(b.Points) || len(a.Bones) != len(b.Bones) || len(a.Joints) != len(b.Joints) {
		return false
	}
	for id, p := range a.Points {
		if b.Points[id] != p {
			return false
		}
	}
	for i, bone := range a.Bones {
		if b.Bones[i] != bone {
			return false
		}
	}
	for i, j := range a.Joints {
		if b.Joints[i] != j {
			return false
		}
	}
	return true
}
