// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavecsv

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/waferr"
)

func TestSaveLoadRoundTrip(tst *testing.T) {
	dir := tst.TempDir()
	path := filepath.Join(dir, "wave.csv")

	a := grid.NewArray3(2, 3, 4)
	a.Set(1, 2, 3, 6.5)
	a.Set(0, 0, 0, -1.25)

	if err := Save(path, a); err != nil {
		tst.Fatal(err)
	}

	b, err := Load(path, grid.Index3{X: 2, Y: 3, Z: 4})
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "round-tripped cell", 1e-12, b.At(1, 2, 3), 6.5)
	chk.Scalar(tst, "round-tripped origin", 1e-12, b.At(0, 0, 0), -1.25)
}

func TestLoadRejectsResolutionMismatch(tst *testing.T) {
	dir := tst.TempDir()
	path := filepath.Join(dir, "wave.csv")

	a := grid.NewArray3(2, 2, 2)
	if err := Save(path, a); err != nil {
		tst.Fatal(err)
	}

	_, err := Load(path, grid.Index3{X: 3, Y: 3, Z: 3})
	if !errors.Is(err, waferr.ResolutionMismatch) {
		tst.Fatalf("expected waferr.ResolutionMismatch, got %v", err)
	}
}

func TestWavefunctionSavePathNaming(tst *testing.T) {
	converged := WavefunctionSavePath("/tmp/out", 2, true)
	chk.String(tst, converged, "/tmp/out/wavefunction_2.csv")

	partial := WavefunctionSavePath("/tmp/out", 2, false)
	chk.String(tst, partial, "/tmp/out/wavefunction_2_partial.csv")
}
