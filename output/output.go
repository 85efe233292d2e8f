// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package output implements the console reporting and on-disk artifact
// saving that the driver and orchestrator emit to, wrapping the teacher's
// colored-console idiom (github.com/cpmech/gosl/io) into the sink
// operations named by spec.md §6.
package output

import (
	"github.com/cpmech/gosl/io"

	"github.com/fossabot/Wafer/driver"
	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/observe"
	"github.com/fossabot/Wafer/wavecsv"
)

// Printer implements driver.Sink on top of gosl/io's colored console
// writers, the way the teacher's main.go and out package report progress.
type Printer struct {
	Verbose bool
}

// Header prints the banner for the start of state k's search.
func (p Printer) Header(k int) {
	io.Pf("\n")
	io.PfYel("state %d: searching\n", k)
	io.Pf("%8s %14s %14s %14s %14s %14s\n", "step", "tau", "diff", "energy", "norm2", "<r2>")
}

// Measurement prints one {tau, diff, observables} record. Under Verbose,
// every record is printed; otherwise Printer still prints every record it
// is handed, since the driver itself only calls Measurement once per
// screen_update — the filtering already happened upstream.
func (p Printer) Measurement(s driver.Sample) {
	io.Pf("%8d %14.6e %14.6e %14.6e %14.6e %14.6e\n",
		s.Step, s.Tau, s.Diff, s.Obs.NormEnergy(), s.Obs.Norm2, s.Obs.R2)
}

// Summary prints the converged-state banner: final energy, norm, grid size.
func (p Printer) Summary(obs observe.Observables, k, nx int) {
	io.PfGreen("state %d converged: energy=%.8e norm2=%.6e (nx=%d)\n", k, obs.NormEnergy(), obs.Norm2, nx)
}

// SavePotential writes pot to potential.csv under dir. Failures are logged
// critically but never abort the run: spec.md §7 treats output I/O
// failures as non-fatal.
func SavePotential(dir string, pot *grid.Array3) {
	path := wavecsv.PotentialPath(dir)
	if err := wavecsv.Save(path, pot); err != nil {
		io.PfRed("warning: could not save potential to %s: %v\n", path, err)
	}
}

// SaveWavefunction writes phi to wavefunction_{k}.csv (or the _partial
// variant when converged is false) under dir. Failures are logged, never
// fatal.
func SaveWavefunction(dir string, k int, phi *grid.Array3, converged bool) {
	path := wavecsv.WavefunctionSavePath(dir, k, converged)
	if err := wavecsv.Save(path, phi); err != nil {
		io.PfRed("warning: could not save wavefunction %d to %s: %v\n", k, path, err)
	}
}
