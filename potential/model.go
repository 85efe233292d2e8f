// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package potential assembles the potentials bundle (V, A, B, ε) the
// evolution loop and observables consume, and hosts the pluggable
// registry of on-grid potential generators selected by a
// "generated-kind-*" configuration tag.
package potential

import (
	"fmt"

	"github.com/cpmech/gosl/fun/dbf"

	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/waferr"
)

// Model generates a potential value on-grid. Implementations register
// themselves in the allocators factory from an init() function, mirroring
// the teacher's mdl/* model-plugin idiom (Init/GetPrms + package-level
// allocator map).
type Model interface {
	// Init binds named parameters (via prms.Connect) into the model.
	Init(prms dbf.Params) error

	// GetPrms returns this model's parameters; when example is true,
	// returns a representative example set instead of the bound values.
	GetPrms(example bool) dbf.Params

	// Value returns V at interior cell idx of grid g.
	Value(idx grid.Index3, g *grid.Grid) (float64, error)
}

// allocators holds all available generated-kind-* models.
var allocators = map[string]func() Model{}

// Register adds a model constructor to the factory. Called from init()
// by each model implementation file.
func Register(name string, alloc func() Model) {
	allocators[name] = alloc
}

// New allocates the named model. An unregistered name fails with
// waferr.PotentialUnavailable.
func New(name string) (Model, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, fmt.Errorf("%w: model %q is not available in the generated-kind registry", waferr.PotentialUnavailable, name)
	}
	return alloc(), nil
}
