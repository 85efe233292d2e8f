// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/la"
)

// Array3 is a halo-padded three-dimensional real array of shape
// (Nx+2·Halo) × (Ny+2·Halo) × (Nz+2·Halo). Interior cell (i,j,k), with
// i∈[0,Nx), j∈[0,Ny), k∈[0,Nz), maps to storage index (i+Halo, j+Halo,
// k+Halo). Storage is row-major (x slowest, z fastest) and backed by a
// flat la.Vector so whole-buffer reductions (norm, overlap) can use
// gosl/la directly, aliasing-free.
type Array3 struct {
	Nx, Ny, Nz int       // interior extents
	sx, sy, sz int       // padded (storage) extents
	data       la.Vector // flat storage, length sx*sy*sz
}

// NewArray3 allocates a zeroed padded array for the given interior extents.
func NewArray3(nx, ny, nz int) *Array3 {
	sx, sy, sz := nx+2*Halo, ny+2*Halo, nz+2*Halo
	return &Array3{
		Nx: nx, Ny: ny, Nz: nz,
		sx: sx, sy: sy, sz: sz,
		data: la.NewVector(sx * sy * sz),
	}
}

// NewArray3Like allocates a zeroed padded array with the same shape as g.
func NewArray3Like(g *Grid) *Array3 {
	return NewArray3(g.Nx, g.Ny, g.Nz)
}

// storageIndex converts a padded (storage-space) coordinate to the flat
// offset into data. No bounds checking: callers stay within [0,sN).
func (a *Array3) storageIndex(si, sj, sk int) int {
	return (si*a.sy+sj)*a.sz + sk
}

// At returns the value at interior coordinate (i,j,k).
func (a *Array3) At(i, j, k int) float64 {
	return a.data[a.storageIndex(i+Halo, j+Halo, k+Halo)]
}

// Set assigns the value at interior coordinate (i,j,k).
func (a *Array3) Set(i, j, k int, v float64) {
	a.data[a.storageIndex(i+Halo, j+Halo, k+Halo)] = v
}

// AtPadded returns the value at a raw storage-space coordinate, including
// halo cells; used internally by the stencil kernel.
func (a *Array3) AtPadded(si, sj, sk int) float64 {
	return a.data[a.storageIndex(si, sj, sk)]
}

// Data returns the flat backing storage (interior and halo), suitable for
// whole-buffer gosl/la operations (VecDot, VecAdd2, VecCopy).
func (a *Array3) Data() la.Vector {
	return a.data
}

// Clone deep-copies a, including the halo.
func (a *Array3) Clone() *Array3 {
	b := &Array3{Nx: a.Nx, Ny: a.Ny, Nz: a.Nz, sx: a.sx, sy: a.sy, sz: a.sz}
	b.data = la.NewVector(len(a.data))
	la.VecCopy(b.data, 1, a.data)
	return b
}

// Fill sets every interior cell to v; the halo is left untouched (Set
// only ever touches the interior, so a freshly allocated array already
// has a zero halo for well-formed use).
func (a *Array3) Fill(v float64) {
	for i := 0; i < a.Nx; i++ {
		for j := 0; j < a.Ny; j++ {
			for k := 0; k < a.Nz; k++ {
				a.Set(i, j, k, v)
			}
		}
	}
}
