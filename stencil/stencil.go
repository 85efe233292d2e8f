// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stencil implements the seventh-order (7-point-per-axis) central
// difference Laplacian used by the evolution loop and the energy
// observable.
package stencil

import "github.com/fossabot/Wafer/grid"

// Coefficient set of the one-dimensional 7-point central difference,
// indexed by offset from the center: {2,-27,270,-1470,270,-27,2}. The
// central term (-1470 == -2*735) is accumulated once across all three
// axes, not once per axis; see At.
const (
	c3 = 2.0
	c2 = -27.0
	c1 = 270.0
	c0 = -1470.0 // accumulated once, summed across axes
)

// At computes the raw (undivided-by-denominator) finite difference
//
//	L(i,j,k) = Σ_axis [2·φ(±3) − 27·φ(±2) + 270·φ(±1)] − 1470·φ(0)
//
// at interior cell (i,j,k) of phi. The caller divides by g.Denominator()
// (360·dn²·m) to obtain the discrete Laplacian/2m. Coefficients are exact
// and must not be reassociated differently than shown here.
func At(phi *grid.Array3, i, j, k int) float64 {
	// storage-space center, offset by the halo
	si, sj, sk := i+grid.Halo, j+grid.Halo, k+grid.Halo

	center := phi.AtPadded(si, sj, sk)

	sum := c3*phi.AtPadded(si+3, sj, sk) + c2*phi.AtPadded(si+2, sj, sk) + c1*phi.AtPadded(si+1, sj, sk) +
		c1*phi.AtPadded(si-1, sj, sk) + c2*phi.AtPadded(si-2, sj, sk) + c3*phi.AtPadded(si-3, sj, sk)

	sum += c3*phi.AtPadded(si, sj+3, sk) + c2*phi.AtPadded(si, sj+2, sk) + c1*phi.AtPadded(si, sj+1, sk) +
		c1*phi.AtPadded(si, sj-1, sk) + c2*phi.AtPadded(si, sj-2, sk) + c3*phi.AtPadded(si, sj-3, sk)

	sum += c3*phi.AtPadded(si, sj, sk+3) + c2*phi.AtPadded(si, sj, sk+2) + c1*phi.AtPadded(si, sj, sk+1) +
		c1*phi.AtPadded(si, sj, sk-1) + c2*phi.AtPadded(si, sj, sk-2) + c3*phi.AtPadded(si, sj, sk-3)

	sum += c0 * center
	return sum
}
