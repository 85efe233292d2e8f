// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/urfave/cli/v2"

	"github.com/fossabot/Wafer/waferr"
)

func contextWithArgs(args ...string) *cli.Context {
	set := flag.NewFlagSet("wafer", flag.ContinueOnError)
	_ = set.Parse(args)
	return cli.NewContext(application(), set, nil)
}

func TestConfigPathAppendsJSONExtension(tst *testing.T) {
	c := contextWithArgs("cylinder")
	path, err := configPath(c)
	if err != nil {
		tst.Fatal(err)
	}
	chk.String(tst, path, "cylinder.json")
}

func TestConfigPathLeavesExplicitExtensionAlone(tst *testing.T) {
	c := contextWithArgs("cylinder.json")
	path, err := configPath(c)
	if err != nil {
		tst.Fatal(err)
	}
	chk.String(tst, path, "cylinder.json")
}

func TestConfigPathRejectsMissingArgument(tst *testing.T) {
	c := contextWithArgs()
	_, err := configPath(c)
	if !errors.Is(err, waferr.IoFailure) {
		tst.Fatalf("expected waferr.IoFailure, got %v", err)
	}
}
