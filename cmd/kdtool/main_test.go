// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kdtool runs the CLI in-process and returns what it wrote to stdout.
func kdtool(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(append([]string{"kdtool"}, args...), &out))
	return out.String()
}

// gridFile writes a 3x3 lattice (labels p0..p8, row-major) and returns its path.
func gridFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.yaml")
	out := kdtool(t, "gen", "--layout", "grid", "--side", "3", "--dims", "2", "--out", path)
	require.Contains(t, out, "wrote 9 points")
	return path
}

func TestKdtool_Stats(t *testing.T) {
	out := kdtool(t, "stats", gridFile(t))
	assert.Contains(t, out, "dims: 2")
	assert.Contains(t, out, "points: 9")
	assert.Contains(t, out, "dim 0: min 0 max 2")
	assert.Contains(t, out, "dim 1: min 0 max 2")
}

func TestKdtool_Queries(t *testing.T) {
	path := gridFile(t)

	assert.Equal(t, "(1, 2) p5\n", kdtool(t, "find", path, "1", "2"))
	assert.Equal(t, "(7, 7) not found\n", kdtool(t, "find", path, "7", "7"))
	assert.Equal(t, "(0, 0) p0\n", kdtool(t, "min", path, "0"))
	assert.Equal(t, "(2, 2) p8\n", kdtool(t, "max", path, "1"))
	assert.True(t, strings.HasPrefix(kdtool(t, "nearest", path, "2.2", "1.9"), "(2, 2) p8"))

	out := kdtool(t, "range", "--lo", "0,0", "--hi", "1,1", path)
	assert.Contains(t, out, "4 matches")
	assert.Contains(t, out, "(1, 1) p4")
	assert.NotContains(t, out, "p8")
}

func TestKdtool_Erase(t *testing.T) {
	path := gridFile(t)
	smaller := filepath.Join(t.TempDir(), "smaller.yaml")

	out := kdtool(t, "erase", "--out", smaller, path, "1", "1")
	assert.Equal(t, "erased (1, 1), 8 points left\n", out)
	assert.Contains(t, kdtool(t, "stats", smaller), "points: 8")
	assert.Contains(t, kdtool(t, "stats", path), "points: 9", "input is untouched when --out is given")
	assert.Equal(t, "(1, 1) not found\n", kdtool(t, "find", smaller, "1", "1"))
}

func TestKdtool_Print(t *testing.T) {
	out := kdtool(t, "print", gridFile(t))
	assert.Contains(t, out, "split=0")
	assert.Contains(t, out, "L (")
	assert.Contains(t, out, "R (")
	assert.Equal(t, 9, strings.Count(out, " p"), "every point is rendered once")
}

func TestKdtool_GenLayouts(t *testing.T) {
	dir := t.TempDir()
	for _, layout := range []string{"uniform", "clustered"} {
		path := filepath.Join(dir, layout+".yaml")
		out := kdtool(t, "gen", "--layout", layout, "--count", "50", "--dims", "3", "--seed", "5", "--fake-labels", "--out", path)
		assert.Contains(t, out, "wrote 50 points")
		assert.Contains(t, kdtool(t, "stats", path), "dims: 3")
	}
}

func TestKdtool_Errors(t *testing.T) {
	var out bytes.Buffer
	path := gridFile(t)

	assert.Error(t, run([]string{"kdtool", "gen", "--layout", "spiral", "--out", path}, &out))
	assert.Error(t, run([]string{"kdtool", "find", path, "1"}, &out), "wrong number of coordinates")
	assert.Error(t, run([]string{"kdtool", "min", path, "x"}, &out))
	assert.Error(t, run([]string{"kdtool", "find", path, "NaN", "1"}, &out), "NaN coordinate")
	assert.Error(t, run([]string{"kdtool", "nearest", path, "1", "nan"}, &out), "NaN coordinate")
	assert.Error(t, run([]string{"kdtool", "stats", filepath.Join(t.TempDir(), "missing.yaml")}, &out))
}
