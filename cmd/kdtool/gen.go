// SPDX-License-Identifier: MIT
// Package: lvkd/cmd/kdtool
//
// gen.go — "gen" command: write a generated dataset to YAML.

package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvkd/dataset"

	"github.com/urfave/cli/v2"
)

var cmdGen = &cli.Command{
	Name:  "gen",
	Usage: "generate a dataset file",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "dims",
			Usage: "number of coordinates per point",
			Value: 2,
		},
		&cli.StringFlag{
			Name:  "layout",
			Usage: "point layout: uniform, grid or clustered",
			Value: "uniform",
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of points (uniform, clustered)",
			Value: 100,
		},
		&cli.IntFlag{
			Name:  "side",
			Usage: "lattice side length (grid)",
			Value: 10,
		},
		&cli.IntFlag{
			Name:  "centers",
			Usage: "number of clusters (clustered)",
			Value: 4,
		},
		&cli.Float64Flag{
			Name:  "spread",
			Usage: "cluster standard deviation (clustered)",
			Value: 2.5,
		},
		&cli.Float64Flag{
			Name:  "min",
			Usage: "lower coordinate bound (uniform)",
			Value: 0,
		},
		&cli.Float64Flag{
			Name:  "max",
			Usage: "upper coordinate bound (uniform)",
			Value: 100,
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed",
			Value:   1,
			EnvVars: []string{"KDTOOL_SEED"},
		},
		&cli.BoolFlag{
			Name:  "fake-labels",
			Usage: "label points with generated city names instead of p<index>",
		},
		&cli.StringFlag{
			Name:     "out",
			Aliases:  []string{"o"},
			Usage:    "output YAML file",
			Required: true,
		},
	},
	Action: runGen,
}

func runGen(cctx *cli.Context) error {
	var gen dataset.Generator
	switch layout := cctx.String("layout"); layout {
	case "uniform":
		gen = dataset.Uniform(cctx.Int("count"), cctx.Float64("min"), cctx.Float64("max"))
	case "grid":
		gen = dataset.Grid(cctx.Int("side"))
	case "clustered":
		gen = dataset.Clustered(cctx.Int("count"), cctx.Int("centers"), cctx.Float64("spread"))
	default:
		return fmt.Errorf("unknown layout %q", layout)
	}

	opts := []dataset.Option{dataset.WithSeed(cctx.Int64("seed"))}
	if cctx.Bool("fake-labels") {
		opts = append(opts, dataset.WithFakeLabels(cctx.Int64("seed")))
	}

	k := cctx.Int("dims")
	points, err := dataset.Generate(k, gen, opts...)
	if err != nil {
		return err
	}

	path := cctx.String("out")
	if err := dataset.WriteFile(path, k, points); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	slog.Info("dataset written", "path", path, "dims", k, "points", len(points), "layout", cctx.String("layout"))
	fmt.Fprintf(cctx.App.Writer, "wrote %d points to %s\n", len(points), path)
	return nil
}
