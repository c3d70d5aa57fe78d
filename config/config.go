// Copyright © 2024 Galvanized Logic Inc.

// Package config holds the tunable constants of the physics core: gravity,
// iteration count, grid cell size, and the handful of other numbers the
// rest of the module treats as fixed. Most callers want config.Default;
// config.Load exists for hosts that want to run modified physics without
// touching the default, specification-compliant constant set.
//
// Package config is provided as part of the bosh rag-doll physics engine.
package config

import (
	"fmt"
	"io"

	"github.com/gazed/bosh/math/vec"
	"gopkg.in/yaml.v3"
)

// Constants is the full set of tunable physics constants. The physics and
// track packages read their numbers from here, except MountEndurance and
// RepelLengthFactor (see those fields).
type Constants struct {
	// Gravity is added to every point's location every frame.
	Gravity vec.Vector2 `yaml:"gravity"`

	// Iterations is the number of constraint-relaxation passes per frame.
	Iterations int `yaml:"iterations"`

	// CellSize is the edge length of a grid cell, in world units.
	CellSize float64 `yaml:"cellSize"`

	// GravityWellHeight is the maximum perpendicular penetration depth at
	// which a line still pulls a point in.
	GravityWellHeight float64 `yaml:"gravityWellHeight"`

	// ExtensionRatio scales a line's length to produce its default
	// end-extension length, before clamping.
	ExtensionRatio float64 `yaml:"extensionRatio"`

	// ExtensionMin and ExtensionMax clamp the computed end-extension length.
	ExtensionMin float64 `yaml:"extensionMin"`
	ExtensionMax float64 `yaml:"extensionMax"`

	// MountEndurance is the relative-stretch fraction a Mount bone tolerates
	// before breaking. No package reads this field: each Mount bone carries
	// its own Endurance, set by package rider's constructors from a fixed
	// constant, so changing it here has no effect on the simulation.
	MountEndurance float64 `yaml:"mountEndurance"`

	// RepelLengthFactor is the fraction of RestingLength at which a Repel
	// bone becomes inactive. As with MountEndurance, no package reads this
	// field: each Repel bone carries its own LengthFactor, set by package
	// rider's constructors from a fixed constant.
	RepelLengthFactor float64 `yaml:"repelLengthFactor"`

	// AcceleratorScale is the velocity change applied per unit of an
	// Accelerate line's amount.
	AcceleratorScale float64 `yaml:"acceleratorScale"`
}

// Default holds the specification's fixed constants. Physics operations
// that receive a nil *Constants use this.
var Default = &Constants{
	Gravity:           vec.New(0, 0.175),
	Iterations:        6,
	CellSize:          20,
	GravityWellHeight: 10,
	ExtensionRatio:    0.25,
	ExtensionMin:      0,
	ExtensionMax:      10,
	MountEndurance:    0.057,
	RepelLengthFactor: 0.5,
	AcceleratorScale:  0.1,
}

// orDefault returns c, or Default when c is nil. Every physics entry point
// that accepts a *Constants funnels through this so Default is the single
// place a nil configuration resolves to.
func orDefault(c *Constants) *Constants {
	if c == nil {
		return Default
	}
	return c
}

// Resolve is the exported form of orDefault, for callers outside this
// package (physics, track, tests) that need "nil means Default" semantics.
func Resolve(c *Constants) *Constants { return orDefault(c) }

// Load parses a YAML tuning manifest into a Constants value. Fields absent
// from the manifest keep Go's zero value, not Default's value — callers
// that want partial overrides should start from a copy of Default and
// unmarshal onto it.
func Load(r io.Reader) (*Constants, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: read manifest: %w", err)
	}
	cfg := &Constants{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: yaml: %w", err)
	}
	return cfg, nil
}
