// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package waferr defines the error taxonomy the core and its collaborators
// raise, as sentinel values wrapped with context and matched via errors.Is.
package waferr

import "errors"

// Sentinel error kinds. Compare with errors.Is, not ==, since these are
// always wrapped with contextual detail before being returned.
var (
	// PotentialUnavailable means the potential supplier could not yield V.
	PotentialUnavailable = errors.New("potential unavailable")

	// PotentialNonFinite means V has no finite minimum, or V_sub/the
	// potential model returned a non-finite value at a queried cell.
	PotentialNonFinite = errors.New("potential is not finite")

	// DegenerateNorm means norm2 is zero or non-finite: numerical blow-up
	// or a zero seed wavefunction.
	DegenerateNorm = errors.New("degenerate norm")

	// ResolutionMismatch means a loaded array's shape disagrees with the
	// requested grid.
	ResolutionMismatch = errors.New("resolution mismatch")

	// Exhausted means a state search ran past max_steps without meeting
	// the convergence tolerance.
	Exhausted = errors.New("exhausted without convergence")

	// IoFailure wraps an underlying read/write failure.
	IoFailure = errors.New("io failure")
)

// Fatal reports whether err should abort the whole run, per the
// propagation rule: supplier errors at assembly time and evolution-time
// errors (degenerate norm, non-finite observable, exhaustion) are fatal;
// IO errors on output are logged but do not abort computation.
func Fatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, IoFailure)
}
