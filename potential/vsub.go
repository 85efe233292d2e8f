// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"fmt"
	"math"

	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/waferr"
)

// VSubFunc is V_sub: the per-index potential term ⟨V∞⟩ accumulates. For
// most generated models this is simply the model's own Value; models
// with a distinct asymptotic tail (e.g. CoulombSoft) override it.
type VSubFunc func(idx grid.Index3, g *grid.Grid) (float64, error)

// VSubFor returns the V_sub function appropriate for model.
func VSubFor(model Model) VSubFunc {
	if soft, ok := model.(*CoulombSoft); ok {
		return func(idx grid.Index3, g *grid.Grid) (float64, error) {
			return soft.asymptoticTail(idx, g), nil
		}
	}
	return func(idx grid.Index3, g *grid.Grid) (float64, error) {
		v, err := model.Value(idx, g)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: V_sub at %+v is not finite", waferr.PotentialNonFinite, idx)
		}
		return v, nil
	}
}
