// SPDX-License-Identifier: MIT
// Package: lvkd/cmd/kdtool
//
// query.go — read-only query commands and "erase".

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvkd/dataset"
	"github.com/katalvlaran/lvkd/kdtree"

	"github.com/urfave/cli/v2"
)

var cmdStats = &cli.Command{
	Name:      "stats",
	Usage:     "print size, height and per-dimension extremes",
	ArgsUsage: `<file>`,
	Action: func(cctx *cli.Context) error {
		tr, err := loadTree(cctx.Args().First())
		if err != nil {
			return err
		}
		w := cctx.App.Writer
		fmt.Fprintf(w, "dims: %d\n", tr.Dims())
		fmt.Fprintf(w, "points: %d\n", tr.Len())
		fmt.Fprintf(w, "height: %d\n", tr.Height())
		if tr.Len() == 0 {
			return nil
		}
		for d := 0; d < tr.Dims(); d++ {
			lo, hi := tr.FindMin(d), tr.FindMax(d)
			fmt.Fprintf(w, "dim %d: min %g max %g\n", d, lo.Key()[d], hi.Key()[d])
		}
		return nil
	},
}

var cmdFind = &cli.Command{
	Name:      "find",
	Usage:     "look up an exact key",
	ArgsUsage: `<file> <coord>...`,
	Action: func(cctx *cli.Context) error {
		args := cctx.Args().Slice()
		if len(args) < 1 {
			return fmt.Errorf("missing dataset file")
		}
		tr, err := loadTree(args[0])
		if err != nil {
			return err
		}
		key, err := parseCoords(args[1:], tr.Dims())
		if err != nil {
			return err
		}
		it := tr.Find(key)
		if !it.Valid() {
			fmt.Fprintf(cctx.App.Writer, "%s not found\n", formatKey(key))
			return nil
		}
		fmt.Fprintln(cctx.App.Writer, formatEntry(it))
		return nil
	},
}

var cmdMin = &cli.Command{
	Name:      "min",
	Usage:     "entry with the smallest coordinate on a dimension",
	ArgsUsage: `<file> <dim>`,
	Action: func(cctx *cli.Context) error {
		return runExtreme(cctx, (*pointTree).FindMin)
	},
}

var cmdMax = &cli.Command{
	Name:      "max",
	Usage:     "entry with the largest coordinate on a dimension",
	ArgsUsage: `<file> <dim>`,
	Action: func(cctx *cli.Context) error {
		return runExtreme(cctx, (*pointTree).FindMax)
	},
}

func runExtreme(cctx *cli.Context, query func(*pointTree, int) cursor) error {
	args := cctx.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("expected <file> <dim>")
	}
	dim, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("dimension: %w", err)
	}
	tr, err := loadTree(args[0])
	if err != nil {
		return err
	}
	it := query(tr, dim)
	if !it.Valid() {
		fmt.Fprintln(cctx.App.Writer, "empty dataset")
		return nil
	}
	fmt.Fprintln(cctx.App.Writer, formatEntry(it))
	return nil
}

var cmdNearest = &cli.Command{
	Name:      "nearest",
	Usage:     "nearest stored point to a query point",
	ArgsUsage: `<file> <coord>...`,
	Action: func(cctx *cli.Context) error {
		args := cctx.Args().Slice()
		if len(args) < 1 {
			return fmt.Errorf("missing dataset file")
		}
		tr, err := loadTree(args[0])
		if err != nil {
			return err
		}
		query, err := parseCoords(args[1:], tr.Dims())
		if err != nil {
			return err
		}
		it, dist, err := kdtree.Nearest(tr, query)
		if err != nil {
			return err
		}
		if !it.Valid() {
			fmt.Fprintln(cctx.App.Writer, "empty dataset")
			return nil
		}
		fmt.Fprintf(cctx.App.Writer, "%s distance² %g\n", formatEntry(it), dist)
		return nil
	},
}

var cmdRange = &cli.Command{
	Name:      "range",
	Usage:     "list points inside an axis-aligned box",
	ArgsUsage: `<file>`,
	Flags: []cli.Flag{
		&cli.Float64SliceFlag{
			Name:     "lo",
			Usage:    "lower corner, comma separated",
			Required: true,
		},
		&cli.Float64SliceFlag{
			Name:     "hi",
			Usage:    "upper corner, comma separated",
			Required: true,
		},
	},
	Action: func(cctx *cli.Context) error {
		tr, err := loadTree(cctx.Args().First())
		if err != nil {
			return err
		}
		lo, hi := cctx.Float64Slice("lo"), cctx.Float64Slice("hi")
		if len(lo) != tr.Dims() || len(hi) != tr.Dims() {
			return fmt.Errorf("box corners need %d coordinates", tr.Dims())
		}
		n := 0
		for key, value := range tr.Range(lo, hi) {
			fmt.Fprintln(cctx.App.Writer, formatKey(key), value)
			n++
		}
		fmt.Fprintf(cctx.App.Writer, "%d matches\n", n)
		return nil
	},
}

var cmdErase = &cli.Command{
	Name:      "erase",
	Usage:     "remove a key and write the remaining points",
	ArgsUsage: `<file> <coord>...`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "output YAML file (defaults to overwriting the input)",
		},
	},
	Action: func(cctx *cli.Context) error {
		args := cctx.Args().Slice()
		if len(args) < 1 {
			return fmt.Errorf("missing dataset file")
		}
		tr, err := loadTree(args[0])
		if err != nil {
			return err
		}
		key, err := parseCoords(args[1:], tr.Dims())
		if err != nil {
			return err
		}
		if !tr.Erase(key) {
			fmt.Fprintf(cctx.App.Writer, "%s not found\n", formatKey(key))
			return nil
		}

		out := cctx.String("out")
		if out == "" {
			out = args[0]
		}
		if err := dataset.WriteFile(out, tr.Dims(), tr.Entries()); err != nil {
			return fmt.Errorf("writing dataset: %w", err)
		}
		fmt.Fprintf(cctx.App.Writer, "erased %s, %d points left\n", formatKey(key), tr.Len())
		return nil
	},
}
