// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wavefunc implements L² normalization and Gram-Schmidt
// orthogonalization against the store of previously converged states.
package wavefunc

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/waferr"
)

// Store is the ordered sequence of previously converged, L²-normalized,
// mutually orthogonal wavefunctions used as the Gram-Schmidt projection
// basis. Exclusively owned by the orchestrator; the evolution loop and
// driver receive it as a read-only collaborator.
type Store []*grid.Array3

// Normalize divides every entry of phi (including the halo) by √norm2.
// Precondition: norm2 > 0; otherwise signals waferr.DegenerateNorm.
func Normalize(phi *grid.Array3, norm2 float64) error {
	if norm2 <= 0 || math.IsNaN(norm2) || math.IsInf(norm2, 0) {
		return fmt.Errorf("%w: norm2=%v", waferr.DegenerateNorm, norm2)
	}
	norm := math.Sqrt(norm2)
	la.VecCopy(phi.Data(), 1.0/norm, phi.Data())
	return nil
}

// Orthogonalize runs classical Gram-Schmidt: for each prior state j in
// ascending order, computes the full-array overlap o = ⟨W[j], φ⟩
// (including the zero halo of well-formed states) and updates
// φ ← φ − o·W[j] pointwise. No re-orthogonalization pass: the store is
// already orthonormal, so a single pass suffices at this problem size.
func Orthogonalize(phi *grid.Array3, store Store) {
	for _, w := range store {
		overlap := la.VecDot(w.Data(), phi.Data())
		la.VecAdd2(phi.Data(), 1.0, phi.Data(), -overlap, w.Data())
	}
}
