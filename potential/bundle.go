// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"fmt"
	"math"
	"strings"

	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/waferr"
)

// Bundle holds the potential V and the auxiliary arrays A, B derived from
// it, plus the energy offset ε, immutable once built.
//
//	A = (1 - dt·V/2) · B
//	B = 1 / (1 + dt·V/2)
//	ε = 2·|min{V(x) : V(x) finite}|
type Bundle struct {
	V, A, B *grid.Array3
	Eps     float64
}

// Supplier yields V on the padded grid, or an error if unavailable.
type Supplier func(g *grid.Grid) (*grid.Array3, error)

// Build is generate_or_load_V followed by the A/B/ε assembly: obtains V
// from supply, computes B and A pointwise, then scans for the minimum of
// finite entries (non-finite entries are skipped: they stand for masked
// singularities) to set ε.
func Build(g *grid.Grid, supply Supplier) (*Bundle, error) {
	v, err := supply(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", waferr.PotentialUnavailable, err)
	}

	a := grid.NewArray3Like(g)
	b := grid.NewArray3Like(g)
	dt := g.Dt

	grid.ForEachSlab(g.Nx, func(iStart, iEnd int) {
		for i := iStart; i < iEnd; i++ {
			for j := 0; j < g.Ny; j++ {
				for k := 0; k < g.Nz; k++ {
					vv := v.At(i, j, k)
					bv := 1.0 / (1.0 + dt*vv/2.0)
					av := (1.0 - dt*vv/2.0) * bv
					b.Set(i, j, k, bv)
					a.Set(i, j, k, av)
				}
			}
		}
	})

	minima := math.Inf(1)
	found := false
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				vv := v.At(i, j, k)
				if !math.IsInf(vv, 0) && !math.IsNaN(vv) {
					if vv < minima {
						minima = vv
					}
					found = true
				}
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: potential has no finite entry", waferr.PotentialNonFinite)
	}

	return &Bundle{V: v, A: a, B: b, Eps: 2.0 * math.Abs(minima)}, nil
}

// GeneratedSupplier returns a Supplier that samples model.Value at every
// interior cell. It does not call Init: model must already have its
// parameters bound.
func GeneratedSupplier(model Model) Supplier {
	return func(g *grid.Grid) (*grid.Array3, error) {
		v := grid.NewArray3Like(g)
		var modelErr error
		for i := 0; i < g.Nx; i++ {
			for j := 0; j < g.Ny; j++ {
				for k := 0; k < g.Nz; k++ {
					val, err := model.Value(grid.Index3{X: i, Y: j, Z: k}, g)
					if err != nil {
						modelErr = err
						continue
					}
					v.Set(i, j, k, val)
				}
			}
		}
		if modelErr != nil {
			return nil, modelErr
		}
		return v, nil
	}
}

// ParseTag splits a "generated-kind-<name>" configuration tag into its
// model name. Returns ok=false for "from-file"/"from-script" tags.
func ParseTag(tag string) (name string, ok bool) {
	const prefix = "generated-kind-"
	if !strings.HasPrefix(tag, prefix) {
		return "", false
	}
	return strings.TrimPrefix(tag, prefix), true
}
