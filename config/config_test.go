// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/fossabot/Wafer/waferr"
)

const minimalJSON = `{
	"grid": {"size": {"x": 9, "y": 9, "z": 9}, "dn": 1.0, "dt": 1e-4},
	"mass": 1.0,
	"tolerance": 1e-8,
	"max_steps": 1000,
	"wavenum": 0,
	"wavemax": 0,
	"potential": {"tag": "generated-kind-harmonic"}
}`

func writeSim(tst *testing.T, body string) string {
	dir := tst.TempDir()
	path := filepath.Join(dir, "cylinder.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		tst.Fatal(err)
	}
	return path
}

func TestReadAppliesDefaultsAndDerivesDirOut(tst *testing.T) {
	path := writeSim(tst, minimalJSON)
	c, err := Read(path)
	if err != nil {
		tst.Fatal(err)
	}
	if c.Output.SnapUpdate != 50 {
		tst.Fatalf("expected default snap_update=50, got %d", c.Output.SnapUpdate)
	}
	if c.Output.ScreenUpdate != 10 {
		tst.Fatalf("expected default screen_update=10, got %d", c.Output.ScreenUpdate)
	}
	chk.String(tst, c.Key, "cylinder")
	chk.String(tst, c.DirOut, filepath.Join(filepath.Dir(path), "out-cylinder"))
}

func TestReadRejectsMissingFile(tst *testing.T) {
	_, err := Read(filepath.Join(tst.TempDir(), "does-not-exist.json"))
	if !errors.Is(err, waferr.IoFailure) {
		tst.Fatalf("expected waferr.IoFailure, got %v", err)
	}
}

func TestReadRejectsMalformedJSON(tst *testing.T) {
	path := writeSim(tst, "{not json")
	_, err := Read(path)
	if !errors.Is(err, waferr.IoFailure) {
		tst.Fatalf("expected waferr.IoFailure, got %v", err)
	}
}

func decodedMinimal(tst *testing.T) Config {
	var c Config
	c.setDefault()
	if err := json.Unmarshal([]byte(minimalJSON), &c); err != nil {
		tst.Fatal(err)
	}
	return c
}

func TestValidateRejectsNonPositiveFields(tst *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"grid size", func(c *Config) { c.Grid.Size.X = 0 }},
		{"grid dn", func(c *Config) { c.Grid.Dn = 0 }},
		{"grid dt", func(c *Config) { c.Grid.Dt = -1 }},
		{"mass", func(c *Config) { c.Mass = 0 }},
		{"tolerance", func(c *Config) { c.Tolerance = 0 }},
		{"max_steps", func(c *Config) { c.MaxSteps = 0 }},
		{"snap_update", func(c *Config) { c.Output.SnapUpdate = 0 }},
		{"screen_update", func(c *Config) { c.Output.ScreenUpdate = 0 }},
		{"wavenum", func(c *Config) { c.WaveNum = -1 }},
		{"wavemax < wavenum", func(c *Config) { c.WaveNum = 2; c.WaveMax = 1 }},
		{"wavemax too large", func(c *Config) { c.WaveMax = 256 }},
	}

	for _, tt := range tests {
		c := decodedMinimal(tst)
		tt.mutate(&c)
		if err := Validate(&c); !errors.Is(err, waferr.IoFailure) {
			tst.Errorf("%s: expected waferr.IoFailure, got %v", tt.name, err)
		}
	}
}

func TestValidateAcceptsMinimalConfig(tst *testing.T) {
	c := decodedMinimal(tst)
	if err := Validate(&c); err != nil {
		tst.Fatalf("expected the minimal config to validate, got %v", err)
	}
}

func TestToGridUsesDecodedFields(tst *testing.T) {
	c := decodedMinimal(tst)
	g := c.ToGrid()
	if g.Nx != 9 || g.Ny != 9 || g.Nz != 9 {
		tst.Fatalf("expected a 9x9x9 grid, got %dx%dx%d", g.Nx, g.Ny, g.Nz)
	}
}
