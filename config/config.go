// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads and validates the JSON simulation file, mirroring
// the read-file/unmarshal/default/validate shape of the teacher's
// inp.ReadSim, but returning errors instead of panicking so the CLI can
// report a clean, non-zero exit code.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/waferr"
)

// GridSpec is the grid section of the simulation file.
type GridSpec struct {
	Size grid.Index3 `json:"size"`
	Dn   float64     `json:"dn"`
	Dt   float64     `json:"dt"`
}

// OutputSpec controls reporting cadence and what gets written to disk.
type OutputSpec struct {
	SnapUpdate    int  `json:"snap_update"`
	ScreenUpdate  int  `json:"screen_update"`
	SavePotential bool `json:"save_potential"`
	SaveWavefns   bool `json:"save_wavefns"`
}

// InitialConditionSpec seeds the ground-state search.
type InitialConditionSpec struct {
	Value float64 `json:"value"`
	Noise float64 `json:"noise"`
	Seed  int     `json:"seed"`
}

// PotentialSpec selects and parameterizes the potential supplier.
type PotentialSpec struct {
	Tag     string               `json:"tag"` // from-file | from-script | generated-kind-*
	Prms    dbf.Params           `json:"prms"`
	Command string               `json:"command"` // for tag == "from-script"
	Args    []string             `json:"args"`     // for tag == "from-script"
	Seed    InitialConditionSpec `json:"seed"`
	Sym     []string             `json:"symmetries"`
}

// Config is the JSON-decoded simulation file.
type Config struct {
	Grid      GridSpec      `json:"grid"`
	Mass      float64       `json:"mass"`
	Tolerance float64       `json:"tolerance"`
	MaxSteps  int           `json:"max_steps"`
	WaveNum   int           `json:"wavenum"`
	WaveMax   int           `json:"wavemax"`
	Output    OutputSpec    `json:"output"`
	Potential PotentialSpec `json:"potential"`

	// DirOut, like the teacher's Simulation.DirOut, is derived from the
	// config file's own path rather than decoded from JSON.
	DirOut string `json:"-"`
	Key    string `json:"-"`
}

// setDefault fills the cadence fields the teacher's Solver/LinSol sections
// default in ReadSim, matching spec.md §6's stated default update periods.
func (c *Config) setDefault() {
	if c.Output.SnapUpdate == 0 {
		c.Output.SnapUpdate = 50
	}
	if c.Output.ScreenUpdate == 0 {
		c.Output.ScreenUpdate = 10
	}
}

// Read loads and validates the simulation file at path.
func Read(path string) (*Config, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read simulation file %q: %v", waferr.IoFailure, path, err)
	}

	var c Config
	c.setDefault()
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("%w: cannot parse simulation file %q: %v", waferr.IoFailure, path, err)
	}

	dir := filepath.Dir(path)
	fnkey := io.FnKey(filepath.Base(path))
	c.Key = fnkey
	c.DirOut = filepath.Join(dir, "out-"+fnkey)

	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate enforces the positivity and range constraints of spec.md §6:
// 0 ≤ wavenum ≤ wavemax < 256, and strictly positive grid/mass/tolerance/
// step-count/update-period fields.
func Validate(c *Config) error {
	switch {
	case c.Grid.Size.X <= 0 || c.Grid.Size.Y <= 0 || c.Grid.Size.Z <= 0:
		return fmt.Errorf("%w: grid.size must be strictly positive, got %+v", waferr.IoFailure, c.Grid.Size)
	case c.Grid.Dn <= 0:
		return fmt.Errorf("%w: grid.dn must be strictly positive, got %v", waferr.IoFailure, c.Grid.Dn)
	case c.Grid.Dt <= 0:
		return fmt.Errorf("%w: grid.dt must be strictly positive, got %v", waferr.IoFailure, c.Grid.Dt)
	case c.Mass <= 0:
		return fmt.Errorf("%w: mass must be strictly positive, got %v", waferr.IoFailure, c.Mass)
	case c.Tolerance <= 0:
		return fmt.Errorf("%w: tolerance must be strictly positive, got %v", waferr.IoFailure, c.Tolerance)
	case c.MaxSteps <= 0:
		return fmt.Errorf("%w: max_steps must be strictly positive, got %v", waferr.IoFailure, c.MaxSteps)
	case c.Output.SnapUpdate <= 0:
		return fmt.Errorf("%w: output.snap_update must be strictly positive, got %v", waferr.IoFailure, c.Output.SnapUpdate)
	case c.Output.ScreenUpdate <= 0:
		return fmt.Errorf("%w: output.screen_update must be strictly positive, got %v", waferr.IoFailure, c.Output.ScreenUpdate)
	case c.WaveNum < 0:
		return fmt.Errorf("%w: wavenum must be non-negative, got %v", waferr.IoFailure, c.WaveNum)
	case c.WaveMax < c.WaveNum:
		return fmt.Errorf("%w: wavemax (%v) must be >= wavenum (%v)", waferr.IoFailure, c.WaveMax, c.WaveNum)
	case c.WaveMax >= 256:
		return fmt.Errorf("%w: wavemax must be < 256, got %v", waferr.IoFailure, c.WaveMax)
	case c.Potential.Tag == "from-script" && c.Potential.Command == "":
		return fmt.Errorf("%w: potential.command is required when potential.tag is \"from-script\"", waferr.IoFailure)
	}
	return nil
}

// ToGrid builds the grid.Grid descriptor this configuration describes.
func (c *Config) ToGrid() *grid.Grid {
	return grid.New(c.Grid.Size.X, c.Grid.Size.Y, c.Grid.Size.Z, c.Grid.Dn, c.Grid.Dt, c.Mass)
}
