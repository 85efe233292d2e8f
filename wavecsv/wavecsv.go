// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wavecsv reads and writes padded arrays in the on-disk CSV
// format: each row "i,j,k,value", no header, interior-sized; halo is
// zero-padded on load.
package wavecsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/waferr"
)

// Load reads an interior-sized CSV array from path and zero-pads it into
// a halo'd grid.Array3. want is the grid the caller expects; if the
// inferred interior shape disagrees, Load returns waferr.ResolutionMismatch
// before doing anything else with the data.
func Load(path string, want grid.Index3) (*grid.Array3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", waferr.IoFailure, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 4

	type cell struct {
		i, j, k int
		v       float64
	}
	var cells []cell
	maxI, maxJ, maxK := -1, -1, -1

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: reading %s: %v", waferr.IoFailure, path, err)
		}
		i, err1 := strconv.Atoi(rec[0])
		j, err2 := strconv.Atoi(rec[1])
		k, err3 := strconv.Atoi(rec[2])
		v, err4 := strconv.ParseFloat(rec[3], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return nil, fmt.Errorf("%w: malformed row in %s: %v", waferr.IoFailure, path, rec)
		}
		if i > maxI {
			maxI = i
		}
		if j > maxJ {
			maxJ = j
		}
		if k > maxK {
			maxK = k
		}
		cells = append(cells, cell{i, j, k, v})
	}

	nx, ny, nz := maxI+1, maxJ+1, maxK+1
	if nx != want.X || ny != want.Y || nz != want.Z {
		return nil, fmt.Errorf("%w: file %s has interior (%d,%d,%d), grid wants (%d,%d,%d)",
			waferr.ResolutionMismatch, path, nx, ny, nz, want.X, want.Y, want.Z)
	}

	a := grid.NewArray3(nx, ny, nz)
	for _, c := range cells {
		a.Set(c.i, c.j, c.k, c.v)
	}
	return a, nil
}

// Save writes the interior of a to path in the same row format, creating
// parent directories as needed.
func Save(path string, a *grid.Array3) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o770); err != nil {
		return fmt.Errorf("%w: creating directory for %s: %v", waferr.IoFailure, path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", waferr.IoFailure, path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	for i := 0; i < a.Nx; i++ {
		for j := 0; j < a.Ny; j++ {
			for k := 0; k < a.Nz; k++ {
				row := []string{
					strconv.Itoa(i), strconv.Itoa(j), strconv.Itoa(k),
					strconv.FormatFloat(a.At(i, j, k), 'g', -1, 64),
				}
				if err := w.Write(row); err != nil {
					return fmt.Errorf("%w: writing %s: %v", waferr.IoFailure, path, err)
				}
			}
		}
	}
	w.Flush()
	return w.Error()
}

// WavefunctionPath returns the file to read for state k: prefer
// wavefunction_{k}.csv, fall back to wavefunction_{k}_partial.csv.
func WavefunctionPath(dir string, k int) string {
	full := filepath.Join(dir, fmt.Sprintf("wavefunction_%d.csv", k))
	if _, err := os.Stat(full); err == nil {
		return full
	}
	return filepath.Join(dir, fmt.Sprintf("wavefunction_%d_partial.csv", k))
}

// WavefunctionSavePath returns the output path for state k, flagging
// non-converged states with the _partial suffix.
func WavefunctionSavePath(dir string, k int, converged bool) string {
	if converged {
		return filepath.Join(dir, fmt.Sprintf("wavefunction_%d.csv", k))
	}
	return filepath.Join(dir, fmt.Sprintf("wavefunction_%d_partial.csv", k))
}

// PotentialPath returns the potential.csv path under dir.
func PotentialPath(dir string) string {
	return filepath.Join(dir, "potential.csv")
}
