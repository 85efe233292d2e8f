// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import "github.com/fossabot/Wafer/grid"

// Symmetrize enforces the named reflection parities on phi in place by
// averaging every interior cell with its mirror image along each named
// axis ("x", "y", "z"). This is the default, general-purpose symmetrize
// collaborator spec.md's convergence driver calls at every snap point;
// specific potentials may have more structure but this suffices for every
// parity-even potential the bundled generators express (free, harmonic,
// well, coulomb-soft are all even under every axis reflection).
func Symmetrize(axes []string, phi *grid.Array3) {
	for _, axis := range axes {
		symmetrizeAxis(axis, phi)
	}
}

func symmetrizeAxis(axis string, phi *grid.Array3) {
	nx, ny, nz := phi.Nx, phi.Ny, phi.Nz
	switch axis {
	case "x":
		for i := 0; i < nx; i++ {
			mi := nx - 1 - i
			if mi <= i {
				break
			}
			for j := 0; j < ny; j++ {
				for k := 0; k < nz; k++ {
					avg := 0.5 * (phi.At(i, j, k) + phi.At(mi, j, k))
					phi.Set(i, j, k, avg)
					phi.Set(mi, j, k, avg)
				}
			}
		}
	case "y":
		for j := 0; j < ny; j++ {
			mj := ny - 1 - j
			if mj <= j {
				break
			}
			for i := 0; i < nx; i++ {
				for k := 0; k < nz; k++ {
					avg := 0.5 * (phi.At(i, j, k) + phi.At(i, mj, k))
					phi.Set(i, j, k, avg)
					phi.Set(i, mj, k, avg)
				}
			}
		}
	case "z":
		for k := 0; k < nz; k++ {
			mk := nz - 1 - k
			if mk <= k {
				break
			}
			for i := 0; i < nx; i++ {
				for j := 0; j < ny; j++ {
					avg := 0.5 * (phi.At(i, j, k) + phi.At(i, j, mk))
					phi.Set(i, j, k, avg)
					phi.Set(i, j, mk, avg)
				}
			}
		}
	}
}
