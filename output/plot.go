// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/fossabot/Wafer/driver"
)

// PlotConvergence saves an energy-vs-tau convergence plot for one state's
// search history under dir, named "convergence-{key}-state{k}.png". Not
// named directly by spec.md; a supplemental reporting aid in the teacher's
// plt idiom (inp.FuncsData.PlotAll). Best-effort: failures are logged, not
// propagated, matching spec.md §7's non-fatal treatment of output I/O.
func PlotConvergence(history []driver.Sample, dir, key string, k int) {
	if len(history) == 0 {
		return
	}
	tau := make([]float64, len(history))
	energy := make([]float64, len(history))
	for i, s := range history {
		tau[i] = s.Tau
		energy[i] = s.Obs.NormEnergy()
	}

	defer func() {
		if r := recover(); r != nil {
			io.PfRed("warning: could not plot convergence for state %d: %v\n", k, r)
		}
	}()

	plt.Reset(false, nil)
	plt.Plot(tau, energy, &plt.A{C: "b", Ls: "-", M: "."})
	plt.Gll("tau", "energy", nil)
	plt.SaveD(dir, io.Sf("convergence-%s-state%d.png", key, k))
}
