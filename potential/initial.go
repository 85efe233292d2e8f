// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"github.com/cpmech/gosl/rnd"

	"github.com/fossabot/Wafer/grid"
)

// InitialConditions builds a seed wavefunction (orchestrator.SeedFromConstant
// uses it for every state, ground and excited): a constant field over the
// interior (scenario S1), optionally
// perturbed with seeded noise to break exact ties between degenerate
// excited-state subspaces faster (Gram-Schmidt still resolves the
// subspace arbitrarily either way, per spec.md §9's note on degenerate
// eigenvalues — this only affects how quickly evolution separates them).
func InitialConditions(g *grid.Grid, value float64, noise float64, seed int) *grid.Array3 {
	phi := grid.NewArray3Like(g)
	if noise <= 0 {
		phi.Fill(value)
		return phi
	}
	rnd.Init(seed)
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				phi.Set(i, j, k, value+rnd.Float64(-noise, noise))
			}
		}
	}
	return phi
}
