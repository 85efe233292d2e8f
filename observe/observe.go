// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package observe computes the transient observables the driver
// recomputes and reports on every iteration: norm², ⟨V∞⟩, ⟨r²⟩, and total
// energy.
package observe

import (
	"fmt"

	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/potential"
	"github.com/fossabot/Wafer/stencil"
	"github.com/fossabot/Wafer/waferr"
)

// Observables holds the transient, recomputed-every-tick reductions over
// phi's interior.
type Observables struct {
	Energy    float64 // ⟨φ|H|φ⟩ over interior, not divided by norm2
	Norm2     float64 // Σ|φ|² over interior
	Vinfinity float64 // Σ φ²·V_sub(idx) over interior
	R2        float64 // Σ φ²·r²(idx) over interior
}

// NormEnergy is the reported eigenvalue estimate, energy/norm2.
func (o Observables) NormEnergy() float64 {
	return o.Energy / o.Norm2
}

// Norm2 returns Σ_interior φ².
func Norm2(phi *grid.Array3) float64 {
	return grid.ReduceSlabs(phi.Nx, func(iStart, iEnd int) float64 {
		sum := 0.0
		for i := iStart; i < iEnd; i++ {
			for j := 0; j < phi.Ny; j++ {
				for k := 0; k < phi.Nz; k++ {
					v := phi.At(i, j, k)
					sum += v * v
				}
			}
		}
		return sum
	})
}

// Vinfinity returns Σ_interior φ²·V_sub(idx), using vsub as the supplied
// per-index potential term. Fails with waferr.PotentialNonFinite if vsub
// errors at any cell.
func Vinfinity(phi *grid.Array3, g *grid.Grid, vsub potential.VSubFunc) (float64, error) {
	var firstErr error
	sum := grid.ReduceSlabs(phi.Nx, func(iStart, iEnd int) float64 {
		partial := 0.0
		for i := iStart; i < iEnd; i++ {
			for j := 0; j < phi.Ny; j++ {
				for k := 0; k < phi.Nz; k++ {
					val, err := vsub(grid.Index3{X: i, Y: j, Z: k}, g)
					if err != nil {
						if firstErr == nil {
							firstErr = err
						}
						continue
					}
					w := phi.At(i, j, k)
					partial += w * w * val
				}
			}
		}
		return partial
	})
	if firstErr != nil {
		return 0, fmt.Errorf("%w: %v", waferr.PotentialNonFinite, firstErr)
	}
	return sum, nil
}

// R2 returns Σ_interior φ²·r²(idx, g).
func R2(phi *grid.Array3, g *grid.Grid) float64 {
	return grid.ReduceSlabs(phi.Nx, func(iStart, iEnd int) float64 {
		sum := 0.0
		for i := iStart; i < iEnd; i++ {
			for j := 0; j < phi.Ny; j++ {
				for k := 0; k < phi.Nz; k++ {
					w := phi.At(i, j, k)
					sum += w * w * grid.R2(grid.Index3{X: i, Y: j, Z: k}, g)
				}
			}
		}
		return sum
	})
}

// Energy returns Σ_interior [V·φ² − φ·L(i,j,k)/(360·dn²·m)], the
// numerator of the energy estimate, where L is the stencil.At Laplacian.
func Energy(phi, v *grid.Array3, g *grid.Grid) float64 {
	denom := g.Denominator()
	return grid.ReduceSlabs(phi.Nx, func(iStart, iEnd int) float64 {
		sum := 0.0
		for i := iStart; i < iEnd; i++ {
			for j := 0; j < phi.Ny; j++ {
				for k := 0; k < phi.Nz; k++ {
					w := phi.At(i, j, k)
					vv := v.At(i, j, k)
					l := stencil.At(phi, i, j, k)
					sum += vv*w*w - w*l/denom
				}
			}
		}
		return sum
	})
}

// Compute computes all four reductions over phi's interior, relative to
// potentials bundle pot and vsub.
func Compute(phi *grid.Array3, g *grid.Grid, pot *potential.Bundle, vsub potential.VSubFunc) (Observables, error) {
	norm2 := Norm2(phi)
	energy := Energy(phi, pot.V, g)
	vinf, err := Vinfinity(phi, g, vsub)
	if err != nil {
		return Observables{}, err
	}
	r2 := R2(phi, g)
	return Observables{Energy: energy, Norm2: norm2, Vinfinity: vinf, R2: r2}, nil
}
