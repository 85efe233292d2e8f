// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orchestrator drives the outer, multi-state search: for each
// wanted state index it seeds a wavefunction, hands it to driver.FindState,
// and appends the converged result to the Gram-Schmidt store before moving
// on to the next state.
package orchestrator

import (
	"fmt"

	"github.com/fossabot/Wafer/driver"
	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/potential"
	"github.com/fossabot/Wafer/waferr"
	"github.com/fossabot/Wafer/wavefunc"
)

// Request describes one run of the outer loop: the inclusive state-index
// range [WaveNum, WaveMax], the seed parameters (Run does not read them;
// the caller builds the seed function from them, e.g. via
// SeedFromConstant, which seeds every state), and the per-state driver
// parameters (shared across all states in this run).
type Request struct {
	WaveNum, WaveMax int
	SeedValue        float64
	SeedNoise        float64
	SeedSeed         int
	Params           driver.Params
}

// Outcome is the full multi-state result: the sequence of converged
// wavefunctions (indexed from 0, regardless of WaveNum) and the per-state
// convergence histories in the same order, for reporting/plotting.
type Outcome struct {
	States     wavefunc.Store
	Histories  [][]driver.Sample
}

// Run searches states WaveNum..WaveMax in ascending order. State 0 (the
// ground state) is always sought first, even when WaveNum > 0, because
// every excited state's Gram-Schmidt projection depends on every state
// below it having already converged. States below WaveNum are discarded
// from the reported Outcome but remain in the orthogonalization store
// while later states are searched.
//
// Every state, including k>0, starts from seed(k); no state is seeded
// from the previously converged one.
//
// Run aborts the entire search, returning the error from driver.FindState
// wrapped with the state index (errors.Is still matches its kind), the
// moment any state fails to converge (waferr.Exhausted) or
// hits any other failure (waferr.PotentialNonFinite, waferr.DegenerateNorm,
// ...). There is no partial-credit outcome: a failed state invalidates
// every higher state that would have depended on it.
func Run(g *grid.Grid, seed func(k int) (*grid.Array3, error), req Request, sink driver.Sink) (Outcome, error) {
	if req.WaveNum < 0 || req.WaveMax < req.WaveNum {
		return Outcome{}, fmt.Errorf("%w: invalid wavenum/wavemax range [%d,%d]",
			waferr.Exhausted, req.WaveNum, req.WaveMax)
	}

	store := make(wavefunc.Store, 0, req.WaveMax+1)
	var outcome Outcome

	for k := 0; k <= req.WaveMax; k++ {
		phi, err := seed(k)
		if err != nil {
			return Outcome{}, err
		}

		result, err := driver.FindState(phi, k, store, req.Params, sink)
		if err != nil {
			return Outcome{}, fmt.Errorf("state %d: %w", k, err)
		}

		store = append(store, result.Phi)
		if k >= req.WaveNum {
			outcome.States = append(outcome.States, result.Phi)
			outcome.Histories = append(outcome.Histories, result.History)
		}
	}

	return outcome, nil
}

// SeedFromConstant returns a seed function that fills every requested
// state's initial guess from potential.InitialConditions with the same
// value/noise, varying only the RNG seed per state index so degenerate
// subspaces don't start in lock-step. This mirrors the teacher's
// preference for pure constructors over carrying mutable seed state
// across calls; successive Gram-Schmidt passes in driver.FindState are
// what actually separate the states.
func SeedFromConstant(g *grid.Grid, value, noise float64, rngSeed int) func(k int) (*grid.Array3, error) {
	return func(k int) (*grid.Array3, error) {
		return potential.InitialConditions(g, value, noise, rngSeed+k), nil
	}
}
