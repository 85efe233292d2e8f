// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver implements the per-state convergence loop: symmetrize,
// check the energy delta against tolerance, emit measurements, advance.
package driver

import (
	"fmt"
	"math"

	"github.com/fossabot/Wafer/evolve"
	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/observe"
	"github.com/fossabot/Wafer/potential"
	"github.com/fossabot/Wafer/waferr"
	"github.com/fossabot/Wafer/wavefunc"
)

// Params bundles the fixed (non-evolving) configuration a state search
// needs, generalizing the teacher's practice of passing explicit
// parameter bundles by borrow rather than sharing mutable state.
type Params struct {
	Grid         *grid.Grid
	Pot          *potential.Bundle
	VSub         potential.VSubFunc
	Symmetrize   func(phi *grid.Array3)
	Tolerance    float64
	MaxSteps     int
	SnapUpdate   int
	ScreenUpdate int
}

// Sample is one emitted measurement record: {τ = step·dt, diff, observables}.
type Sample struct {
	Step  int
	Tau   float64
	Diff  float64
	Obs   observe.Observables
}

// Sink receives driver progress: the header at the start of a state
// search, each measurement, and the final summary. The core depends only
// on this interface; concrete console/CSV/plot sinks live in the output
// package.
type Sink interface {
	Header(k int)
	Measurement(s Sample)
	Summary(obs observe.Observables, k, nx int)
}

// Result is the outcome of a state search.
type Result struct {
	Phi       *grid.Array3
	Converged bool
	History   []Sample
}

// FindState drives wavefunction phi (already seeded) to convergence for
// state index k against store (the previously converged states, k of
// them). Loop invariant: between iterations, phi has a zero halo and (if
// k>0) is normalized and orthogonalized against store.
func FindState(phi *grid.Array3, k int, store wavefunc.Store, p Params, sink Sink) (Result, error) {
	sink.Header(k)

	step := 0
	lastEnergy := math.Inf(1)
	displayEnergy := math.Inf(1)
	converged := false
	var history []Sample

	for {
		obs, err := observe.Compute(phi, p.Grid, p.Pot, p.VSub)
		if err != nil {
			return Result{Phi: phi, Converged: false, History: history}, err
		}
		e := obs.NormEnergy()

		if k > 0 {
			if err := wavefunc.Normalize(phi, obs.Norm2); err != nil {
				return Result{Phi: phi, Converged: false, History: history}, err
			}
			wavefunc.Orthogonalize(phi, store)
		}

		if step%p.SnapUpdate == 0 {
			p.Symmetrize(phi)

			norm2 := observe.Norm2(phi)
			if err := wavefunc.Normalize(phi, norm2); err != nil {
				return Result{Phi: phi, Converged: false, History: history}, err
			}

			if math.Abs(e-lastEnergy) < p.Tolerance {
				sink.Summary(obs, k, p.Grid.Nx)
				converged = true
				break
			}
			displayEnergy = lastEnergy
			lastEnergy = e
		}

		tau := float64(step) * p.Grid.Dt
		diff := math.Abs(displayEnergy - e)
		sample := Sample{Step: step, Tau: tau, Diff: diff, Obs: obs}
		history = append(history, sample)
		sink.Measurement(sample)

		if step < p.MaxSteps {
			if err := evolve.Run(phi, p.Pot, p.Grid, k, store, p.ScreenUpdate); err != nil {
				return Result{Phi: phi, Converged: false, History: history}, err
			}
		}

		step += p.ScreenUpdate
		if step > p.MaxSteps {
			break
		}
	}

	if !converged {
		return Result{Phi: phi, Converged: false, History: history},
			fmt.Errorf("%w: state %d did not converge within %d steps", waferr.Exhausted, k, p.MaxSteps)
	}
	return Result{Phi: phi, Converged: true, History: history}, nil
}
