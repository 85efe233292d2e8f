// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/waferr"
)

// FromScript is the from-script Supplier: execs command (with args) and
// parses its stdout as the same "i,j,k,value" CSV rows wavecsv reads from
// disk, zero-padding the result into a halo'd array.
func FromScript(command string, args ...string) Supplier {
	return func(g *grid.Grid) (*grid.Array3, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		cmd := exec.CommandContext(ctx, command, args...)
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			return nil, fmt.Errorf("%w: script %q failed: %v (stderr: %s)",
				waferr.PotentialUnavailable, command, err, stderr.String())
		}

		a := grid.NewArray3Like(g)
		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			fields := strings.Split(line, ",")
			if len(fields) != 4 {
				return nil, fmt.Errorf("%w: script %q emitted malformed row %q",
					waferr.PotentialUnavailable, command, line)
			}
			i, err1 := strconv.Atoi(strings.TrimSpace(fields[0]))
			j, err2 := strconv.Atoi(strings.TrimSpace(fields[1]))
			k, err3 := strconv.Atoi(strings.TrimSpace(fields[2]))
			v, err4 := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
				return nil, fmt.Errorf("%w: script %q emitted malformed row %q",
					waferr.PotentialUnavailable, command, line)
			}
			if i < 0 || i >= g.Nx || j < 0 || j >= g.Ny || k < 0 || k >= g.Nz {
				continue
			}
			a.Set(i, j, k, v)
		}
		return a, nil
	}
}
