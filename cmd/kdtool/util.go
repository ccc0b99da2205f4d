// SPDX-License-Identifier: MIT
// Package: lvkd/cmd/kdtool
//
// util.go — dataset loading and argument/format helpers shared by commands.

package main

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvkd/dataset"
	"github.com/katalvlaran/lvkd/kdtree"
)

type pointTree = kdtree.Tree[float64, string]

type cursor = kdtree.Iterator[float64, string]

// loadTree reads a dataset file and bulk-loads it.
func loadTree(path string) (*pointTree, error) {
	k, points, err := dataset.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	tr, err := kdtree.Build(k, points)
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	slog.Debug("dataset loaded", "path", path, "dims", k, "points", len(points), "distinct", tr.Len(), "height", tr.Height())
	return tr, nil
}

// parseCoords parses exactly k numeric, non-NaN arguments into a key.
func parseCoords(args []string, k int) ([]float64, error) {
	if len(args) != k {
		return nil, fmt.Errorf("expected %d coordinates, got %d", k, len(args))
	}
	key := make([]float64, k)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		if math.IsNaN(v) {
			return nil, fmt.Errorf("coordinate %d: NaN is not a valid coordinate", i)
		}
		key[i] = v
	}
	return key, nil
}

func formatKey(key []float64) string {
	parts := make([]string, len(key))
	for i, c := range key {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatEntry(it cursor) string {
	return formatKey(it.Key()) + " " + it.Value()
}
