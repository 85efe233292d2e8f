// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/wavecsv"
)

// FromFile is the from-file Supplier: loads potential.csv from dir,
// resolution-checked against g.
func FromFile(dir string) Supplier {
	return func(g *grid.Grid) (*grid.Array3, error) {
		want := grid.Index3{X: g.Nx, Y: g.Ny, Z: g.Nz}
		return wavecsv.Load(wavecsv.PotentialPath(dir), want)
	}
}
