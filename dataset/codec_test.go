// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkd/dataset"
)

func itoa(i int) string { return strconv.Itoa(i) }

func TestCodec_RoundTripFile(t *testing.T) {
	pts, err := dataset.Generate(3, dataset.Uniform(25, 0, 10), dataset.WithSeed(3))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "points.yaml")
	require.NoError(t, dataset.WriteFile(path, 3, pts))

	k, got, err := dataset.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, k)
	assert.Equal(t, pts, got)
}

func TestCodec_DocumentShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dataset.Encode(&buf, 2, []dataset.Point{
		{Key: []float64{3, 1}, Value: "x"},
	}))
	out := buf.String()
	assert.Contains(t, out, "dims: 2")
	assert.Contains(t, out, "key: [3, 1]")
	assert.Contains(t, out, "value: x")

	require.ErrorIs(t, dataset.Encode(&buf, 0, nil), dataset.ErrBadDimension)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"syntax":      "dims: [",
		"zero dims":   "dims: 0\npoints: []\n",
		"short key":   "dims: 2\npoints:\n  - key: [1]\n    value: a\n",
		"non-numeric": "dims: 1\npoints:\n  - key: [abc]\n",
		"nan":         "dims: 2\npoints:\n  - key: [1, .nan]\n    value: a\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := dataset.Decode(strings.NewReader(doc))
			require.ErrorIs(t, err, dataset.ErrDecode)
		})
	}
}

func TestDecode_NoPoints(t *testing.T) {
	k, pts, err := dataset.Decode(strings.NewReader("dims: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, k)
	assert.Empty(t, pts)
}

func TestReadFile_Missing(t *testing.T) {
	_, _, err := dataset.ReadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
