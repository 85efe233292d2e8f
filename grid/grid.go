// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the padded three-dimensional array, the halo
// view that carves the physical interior out of it, and the Cartesian
// grid descriptor shared by every other package in this module.
package grid

// Halo is the number of ghost cells padding each face of a padded array;
// fixed by the seventh-order (7-point-per-axis) stencil.
const Halo = 3

// Grid describes a uniform Cartesian lattice: the interior extents,
// spacing, imaginary-time step and particle mass.
type Grid struct {
	Nx, Ny, Nz int     // interior extents
	Dn         float64 // grid spacing
	Dt         float64 // imaginary-time step
	Mass       float64 // particle mass
}

// New returns a new Grid descriptor.
func New(nx, ny, nz int, dn, dt, mass float64) *Grid {
	return &Grid{Nx: nx, Ny: ny, Nz: nz, Dn: dn, Dt: dt, Mass: mass}
}

// Denominator returns 360·dn²·m, the common divisor used by the stencil
// kernel to turn raw finite differences into the discrete Laplacian/2m.
func (g *Grid) Denominator() float64 {
	return 360.0 * g.Dn * g.Dn * g.Mass
}

// Index3 is the global interior index of a cell, (0,0,0) at the interior
// origin.
type Index3 struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Center returns the index-space coordinates of the grid center, in cell
// units (not scaled by Dn); R2 applies the Dn scaling.
func Center(g *Grid) (cx, cy, cz float64) {
	cx = float64(g.Nx-1) / 2.0
	cy = float64(g.Ny-1) / 2.0
	cz = float64(g.Nz-1) / 2.0
	return
}

// R2 returns the squared radial distance (in physical units, i.e. scaled
// by Dn) of interior cell idx from the grid center.
func R2(idx Index3, g *Grid) float64 {
	cx, cy, cz := Center(g)
	dx := (float64(idx.X) - cx) * g.Dn
	dy := (float64(idx.Y) - cy) * g.Dn
	dz := (float64(idx.Z) - cz) * g.Dn
	return dx*dx + dy*dy + dz*dz
}
