// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"

	"github.com/fossabot/Wafer/grid"
)

func init() {
	Register("free", func() Model { return new(Free) })
	Register("harmonic", func() Model { return new(Harmonic) })
	Register("well", func() Model { return new(Well) })
	Register("coulomb-soft", func() Model { return new(CoulombSoft) })
}

// Free is the zero potential, V≡0 everywhere (scenario S1: free particle).
type Free struct{}

// Init implements Model; Free has no parameters.
func (o *Free) Init(prms dbf.Params) error { return nil }

// GetPrms implements Model; Free has no parameters.
func (o *Free) GetPrms(example bool) dbf.Params { return dbf.Params{} }

// Value implements Model.
func (o *Free) Value(idx grid.Index3, g *grid.Grid) (float64, error) { return 0, nil }

// Harmonic is the isotropic three-dimensional harmonic oscillator
//
//	V(x,y,z) = ½·k·r²
//
// with k=1 by default (scenarios S2/S3).
type Harmonic struct {
	K float64
}

// Init implements Model.
func (o *Harmonic) Init(prms dbf.Params) error {
	o.K = 1.0
	prms.Connect(&o.K, "k", "spring constant of the isotropic oscillator")
	return nil
}

// GetPrms implements Model.
func (o *Harmonic) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{&dbf.P{N: "k", V: 1.0}}
	}
	return dbf.Params{&dbf.P{N: "k", V: o.K}}
}

// Value implements Model.
func (o *Harmonic) Value(idx grid.Index3, g *grid.Grid) (float64, error) {
	r2 := grid.R2(idx, g)
	return 0.5 * o.K * r2, nil
}

// Well is a finite cubic square well of half-width R and depth -Depth
// inside, 0 outside.
type Well struct {
	Depth  float64
	Radius float64
}

// Init implements Model.
func (o *Well) Init(prms dbf.Params) error {
	o.Depth = 1.0
	o.Radius = 1.0
	prms.Connect(&o.Depth, "depth", "well depth")
	prms.Connect(&o.Radius, "radius", "well half-width")
	return nil
}

// GetPrms implements Model.
func (o *Well) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{&dbf.P{N: "depth", V: 1.0}, &dbf.P{N: "radius", V: 1.0}}
	}
	return dbf.Params{&dbf.P{N: "depth", V: o.Depth}, &dbf.P{N: "radius", V: o.Radius}}
}

// Value implements Model.
func (o *Well) Value(idx grid.Index3, g *grid.Grid) (float64, error) {
	cx, cy, cz := grid.Center(g)
	dx := (float64(idx.X) - cx) * g.Dn
	dy := (float64(idx.Y) - cy) * g.Dn
	dz := (float64(idx.Z) - cz) * g.Dn
	if math.Abs(dx) <= o.Radius && math.Abs(dy) <= o.Radius && math.Abs(dz) <= o.Radius {
		return -o.Depth, nil
	}
	return 0, nil
}

// CoulombSoft is a softened Coulomb potential
//
//	V(r) = -Z / sqrt(r² + a²)
//
// The softening length a avoids the on-axis r=0 singularity the spec
// treats as a non-finite value to be masked during the finite-minimum
// scan. VSub on this model reports only the unsoftened asymptotic tail
// -Z/r for r beyond the softening length, giving v_infinity a physically
// distinct meaning from the full potential (supplemental feature; see
// DESIGN.md).
type CoulombSoft struct {
	Z       float64
	Soften  float64
}

// Init implements Model.
func (o *CoulombSoft) Init(prms dbf.Params) error {
	o.Z = 1.0
	o.Soften = 0.5
	prms.Connect(&o.Z, "z", "effective nuclear charge")
	prms.Connect(&o.Soften, "soften", "softening length")
	return nil
}

// GetPrms implements Model.
func (o *CoulombSoft) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{&dbf.P{N: "z", V: 1.0}, &dbf.P{N: "soften", V: 0.5}}
	}
	return dbf.Params{&dbf.P{N: "z", V: o.Z}, &dbf.P{N: "soften", V: o.Soften}}
}

// Value implements Model.
func (o *CoulombSoft) Value(idx grid.Index3, g *grid.Grid) (float64, error) {
	r2 := grid.R2(idx, g)
	return -o.Z / math.Sqrt(r2+o.Soften*o.Soften), nil
}

// asymptoticTail returns the unsoftened long-range part of V, used by
// VSub for CoulombSoft only.
func (o *CoulombSoft) asymptoticTail(idx grid.Index3, g *grid.Grid) float64 {
	r2 := grid.R2(idx, g)
	r := math.Sqrt(r2)
	if r < o.Soften {
		r = o.Soften
	}
	return -o.Z / r
}
