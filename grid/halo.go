// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// View is a read-only alias of the interior of an Array3. It never
// copies: At delegates straight to the backing Array3, which already
// addresses cells in interior coordinates.
type View struct {
	a *Array3
}

// Work returns a read-only view of a's interior. Shape of the view
// equals (a.Nx, a.Ny, a.Nz).
func Work(a *Array3) View {
	return View{a: a}
}

// At returns the interior value at (i,j,k).
func (v View) At(i, j, k int) float64 { return v.a.At(i, j, k) }

// Shape returns the interior extents of the view.
func (v View) Shape() (nx, ny, nz int) { return v.a.Nx, v.a.Ny, v.a.Nz }

// WorkMut returns the writable interior of a. It is the same underlying
// array: Array3.Set already indexes in interior coordinates, so this is
// an aliasing view, not a copy.
func WorkMut(a *Array3) *Array3 { return a }
