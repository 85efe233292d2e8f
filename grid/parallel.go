// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"runtime"
	"sync"
)

// ForEachSlab splits the interior x-range [0,nx) into contiguous slabs,
// one per available processor, and runs fn(iStart, iEnd) on each slab in
// its own goroutine, waiting for all to finish before returning. The
// stencil apply and copy-back in evolve, the A/B assembly and the observe
// reductions use this (normalization and Gram-Schmidt instead operate on
// the whole buffer through gosl/la) instead of a per-cell
// job queue, because every cell costs the same amount of work — unlike a
// job-queue shape, a static slab split needs no channel or work-stealing.
func ForEachSlab(nx int, fn func(iStart, iEnd int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > nx {
		workers = nx
	}
	if workers < 1 {
		workers = 1
	}
	if workers == 1 {
		fn(0, nx)
		return
	}

	base := nx / workers
	rem := nx % workers

	var wg sync.WaitGroup
	wg.Add(workers)
	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		end := start + size
		go func(s, e int) {
			defer wg.Done()
			if e > s {
				fn(s, e)
			}
		}(start, end)
		start = end
	}
	wg.Wait()
}

// ReduceSlabs is ForEachSlab specialized for a sum reduction: each slab
// accumulates its own partial sum (via fn) and the partials are added
// together after every goroutine joins, so the final addition order
// depends only on the worker count, not on scheduling.
func ReduceSlabs(nx int, fn func(iStart, iEnd int) float64) float64 {
	workers := runtime.GOMAXPROCS(0)
	if workers > nx {
		workers = nx
	}
	if workers < 1 {
		workers = 1
	}
	if workers == 1 {
		return fn(0, nx)
	}

	base := nx / workers
	rem := nx % workers

	partials := make([]float64, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		end := start + size
		go func(widx, s, e int) {
			defer wg.Done()
			if e > s {
				partials[widx] = fn(s, e)
			}
		}(w, start, end)
		start = end
	}
	wg.Wait()

	total := 0.0
	for _, p := range partials {
		total += p
	}
	return total
}
