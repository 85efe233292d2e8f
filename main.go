// Copyright 2016 The Wafer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/urfave/cli/v2"

	"github.com/fossabot/Wafer/config"
	"github.com/fossabot/Wafer/driver"
	"github.com/fossabot/Wafer/grid"
	"github.com/fossabot/Wafer/orchestrator"
	"github.com/fossabot/Wafer/output"
	"github.com/fossabot/Wafer/potential"
	"github.com/fossabot/Wafer/waferr"
)

func main() {
	if err := application().Run(os.Args); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func application() *cli.App {
	return &cli.App{
		Name:  "wafer",
		Usage: "Imaginary-time propagation eigensolver for bound quantum states.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "accepted but has no effect: every measurement is printed either way"},
			&cli.BoolFlag{Name: "erase-prev", Usage: "clear the output directory before running"},
			&cli.StringFlag{Name: "cpuprofile", Usage: "when set to any non-empty value, passes true to gosl's utl.DoProf hook; the value is not used as a file name"},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "run the eigensolver against a simulation file",
				ArgsUsage: "<config.json>",
				Action:    runCommand,
			},
			{
				Name:      "validate",
				Usage:     "load and validate a simulation file without running it",
				ArgsUsage: "<config.json>",
				Action:    validateCommand,
			},
		},
	}
}

func validateCommand(c *cli.Context) error {
	path, err := configPath(c)
	if err != nil {
		return err
	}
	if _, err := config.Read(path); err != nil {
		return err
	}
	io.PfGreen("%s: valid\n", path)
	return nil
}

func runCommand(c *cli.Context) error {
	path, err := configPath(c)
	if err != nil {
		return err
	}

	defer utl.DoProf(c.String("cpuprofile") != "")()

	defer func() {
		if r := recover(); r != nil {
			chk.Verbose = true
			io.PfRed("PANIC: %v\n", r)
		}
	}()

	cfg, err := config.Read(path)
	if err != nil {
		return err
	}

	if c.Bool("erase-prev") {
		io.RemoveAll(cfg.DirOut)
	}

	io.PfWhite("\nWafer -- imaginary-time propagation eigensolver\n\n")

	g := cfg.ToGrid()
	bundle, vsub, err := potential.Resolve(g, potential.Spec{
		Tag:     cfg.Potential.Tag,
		Prms:    cfg.Potential.Prms,
		Dir:     cfg.DirOut,
		Command: cfg.Potential.Command,
		Args:    cfg.Potential.Args,
	})
	if err != nil {
		return err
	}

	if cfg.Output.SavePotential {
		output.SavePotential(cfg.DirOut, bundle.V)
	}

	printer := output.Printer{Verbose: c.Bool("verbose")}
	req := orchestrator.Request{
		WaveNum:   cfg.WaveNum,
		WaveMax:   cfg.WaveMax,
		SeedValue: cfg.Potential.Seed.Value,
		SeedNoise: cfg.Potential.Seed.Noise,
		SeedSeed:  cfg.Potential.Seed.Seed,
		Params: driver.Params{
			Grid:         g,
			Pot:          bundle,
			VSub:         vsub,
			Symmetrize:   func(phi *grid.Array3) { potential.Symmetrize(cfg.Potential.Sym, phi) },
			Tolerance:    cfg.Tolerance,
			MaxSteps:     cfg.MaxSteps,
			SnapUpdate:   cfg.Output.SnapUpdate,
			ScreenUpdate: cfg.Output.ScreenUpdate,
		},
	}
	seed := orchestrator.SeedFromConstant(g, req.SeedValue, req.SeedNoise, req.SeedSeed)

	outcome, err := orchestrator.Run(g, seed, req, printer)
	if err != nil {
		if waferr.Fatal(err) {
			return err
		}
		io.PfRed("warning: %v\n", err)
	}

	for i, phi := range outcome.States {
		k := cfg.WaveNum + i
		if cfg.Output.SaveWavefns {
			output.SaveWavefunction(cfg.DirOut, k, phi, true)
		}
		output.PlotConvergence(outcome.Histories[i], cfg.DirOut, cfg.Key, k)
	}

	io.PfGreen("\ndone: %d state(s) converged\n", len(outcome.States))
	return nil
}

func configPath(c *cli.Context) (string, error) {
	if c.Args().Len() < 1 {
		return "", fmt.Errorf("%w: please provide a simulation file, e.g. wafer run cylinder.json", waferr.IoFailure)
	}
	path := c.Args().First()
	if io.FnExt(path) == "" {
		path += ".json"
	}
	return path, nil
}
