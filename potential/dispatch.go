// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"fmt"

	"github.com/cpmech/gosl/fun/dbf"

	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/waferr"
)

// Spec is the tag-driven potential selection the CLI decodes from the
// simulation file's potential section: "from-file", "from-script", or a
// "generated-kind-<name>" dispatch into the Model registry.
type Spec struct {
	Tag        string
	Prms       dbf.Params
	Dir        string   // for "from-file"
	Command    string   // for "from-script"
	Args       []string // for "from-script"
}

// Resolve is generate_or_load_V: it dispatches on spec.Tag to build the
// A/B/V bundle and the matching V_sub sampler, failing with
// waferr.PotentialUnavailable for an unrecognized tag or supplier error.
func Resolve(g *grid.Grid, spec Spec) (*Bundle, VSubFunc, error) {
	switch {
	case spec.Tag == "from-file":
		bundle, err := Build(g, FromFile(spec.Dir))
		if err != nil {
			return nil, nil, err
		}
		return bundle, vSubFromBundle(bundle), nil

	case spec.Tag == "from-script":
		bundle, err := Build(g, FromScript(spec.Command, spec.Args...))
		if err != nil {
			return nil, nil, err
		}
		return bundle, vSubFromBundle(bundle), nil

	default:
		name, ok := ParseTag(spec.Tag)
		if !ok {
			return nil, nil, fmt.Errorf("%w: unrecognized potential tag %q", waferr.PotentialUnavailable, spec.Tag)
		}
		model, err := New(name)
		if err != nil {
			return nil, nil, err
		}
		if err := model.Init(spec.Prms); err != nil {
			return nil, nil, fmt.Errorf("%w: potential %q: %v", waferr.PotentialUnavailable, name, err)
		}
		bundle, err := Build(g, GeneratedSupplier(model))
		if err != nil {
			return nil, nil, err
		}
		return bundle, VSubFor(model), nil
	}
}

// vSubFromBundle builds a VSubFunc that samples the already-built V array
// directly, the only option available for file/script-supplied potentials
// which carry no separate asymptotic-tail formula.
func vSubFromBundle(bundle *Bundle) VSubFunc {
	return func(idx grid.Index3, g *grid.Grid) (float64, error) {
		return bundle.V.At(idx.X, idx.Y, idx.Z), nil
	}
}
