// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/fossabot/Wafer/grid"
)

// TestResolveFromScriptRunsCommandAndSamplesV exercises the "from-script"
// path end to end: Resolve execs the given command, parses its stdout as
// "i,j,k,value" rows, and the returned VSubFunc samples V directly (since
// a script-supplied potential has no separate asymptotic-tail formula).
func TestResolveFromScriptRunsCommandAndSamplesV(tst *testing.T) {
	g := grid.New(3, 3, 3, 1.0, 0.1, 1.0)

	bundle, vsub, err := Resolve(g, Spec{
		Tag:     "from-script",
		Command: "sh",
		Args:    []string{"-c", "echo 1,1,1,2.5"},
	})
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "V at the script-supplied cell", 1e-15, bundle.V.At(1, 1, 1), 2.5)

	v, err := vsub(grid.Index3{X: 1, Y: 1, Z: 1}, g)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "VSub at the script-supplied cell", 1e-15, v, 2.5)
}

// TestResolveFromScriptFailsOnMissingCommand checks that an empty command
// (as config.Validate now rejects before Resolve is ever called) still
// fails cleanly rather than hanging or panicking, since Resolve itself
// performs no command-name validation.
func TestResolveFromScriptFailsOnMissingCommand(tst *testing.T) {
	g := grid.New(2, 2, 2, 1.0, 0.1, 1.0)

	_, _, err := Resolve(g, Spec{Tag: "from-script", Command: ""})
	if err == nil {
		tst.Fatal("expected an error when no command is configured")
	}
}

// TestResolveUnrecognizedTagFails checks the default branch's error path.
func TestResolveUnrecognizedTagFails(tst *testing.T) {
	g := grid.New(2, 2, 2, 1.0, 0.1, 1.0)

	_, _, err := Resolve(g, Spec{Tag: "not-a-real-tag"})
	if err == nil {
		tst.Fatal("expected an error for an unrecognized tag")
	}
}
