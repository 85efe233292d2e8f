// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evolve implements the imaginary-time evolution loop: a forward-
// Euler update with the potential absorbed into the A,B preconditioner,
// followed by renormalization and Gram-Schmidt when searching an excited
// state.
package evolve

import (
	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/observe"
	"github.com/fossabot/Wafer/potential"
	"github.com/fossabot/Wafer/stencil"
	"github.com/fossabot/Wafer/wavefunc"
)

// Run performs batch update steps on phi in place.
//
// Each step:
//  1. computes, on the interior only,
//     φ'(i,j,k) = A(i,j,k)·φ(i,j,k) + B(i,j,k)·(dt/(360·dn²·m))·L(i,j,k)
//     into a scratch interior-sized array, to avoid read/write aliasing
//     during the parallel traversal;
//  2. copies the scratch back into φ's interior (the halo remains zero:
//     Dirichlet absorbing boundary);
//  3. if k (the state index) is greater than zero, renormalizes φ and
//     runs Gram-Schmidt against store.
func Run(phi *grid.Array3, pot *potential.Bundle, g *grid.Grid, k int, store wavefunc.Store, batch int) error {
	scratch := grid.NewArray3Like(g)
	dtOverDenom := g.Dt / g.Denominator()

	for step := 0; step < batch; step++ {
		grid.ForEachSlab(g.Nx, func(iStart, iEnd int) {
			for i := iStart; i < iEnd; i++ {
				for j := 0; j < g.Ny; j++ {
					for kk := 0; kk < g.Nz; kk++ {
						a := pot.A.At(i, j, kk)
						b := pot.B.At(i, j, kk)
						w := phi.At(i, j, kk)
						l := stencil.At(phi, i, j, kk)
						scratch.Set(i, j, kk, w*a+b*dtOverDenom*l)
					}
				}
			}
		})

		grid.ForEachSlab(g.Nx, func(iStart, iEnd int) {
			for i := iStart; i < iEnd; i++ {
				for j := 0; j < g.Ny; j++ {
					for kk := 0; kk < g.Nz; kk++ {
						phi.Set(i, j, kk, scratch.At(i, j, kk))
					}
				}
			}
		})

		if k > 0 {
			norm2 := observe.Norm2(phi)
			if err := wavefunc.Normalize(phi, norm2); err != nil {
				return err
			}
			wavefunc.Orthogonalize(phi, store)
		}
	}
	return nil
}
