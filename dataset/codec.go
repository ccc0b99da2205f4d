// SPDX-License-Identifier: MIT
// Package: lvkd/dataset
//
// codec.go — YAML persistence for point batches.
//
// Document shape:
//
//	dims: 2
//	points:
//	  - key: [3, 1]
//	    value: x
//
// Decode validates dims ≥ 1, that every key has exactly dims coordinates and
// that no coordinate is NaN.

package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

type document struct {
	Dims   int        `yaml:"dims"`
	Points []docPoint `yaml:"points"`
}

type docPoint struct {
	Key   []float64 `yaml:"key,flow"`
	Value string    `yaml:"value"`
}

const yamlIndent = 2

// Encode writes k and points to w as a YAML document.
func Encode(w io.Writer, k int, points []Point) error {
	if k < 1 {
		return wrapf("Encode", fmt.Sprintf("k=%d", k), ErrBadDimension)
	}
	doc := document{Dims: k, Points: make([]docPoint, len(points))}
	for i, p := range points {
		doc.Points[i] = docPoint{Key: p.Key, Value: p.Value}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return enc.Close()
}

// Decode reads one YAML document from r and returns its dimension count and points.
//
// Errors:
//   - ErrDecode for YAML syntax errors, empty input, dims < 1, keys of the wrong
//     length or NaN coordinates.
func Decode(r io.Reader) (int, []Point, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil, fmt.Errorf("Decode: empty input: %w", ErrDecode)
		}
		return 0, nil, fmt.Errorf("Decode: %v: %w", err, ErrDecode)
	}
	if doc.Dims < 1 {
		return 0, nil, fmt.Errorf("Decode: dims=%d: %w", doc.Dims, ErrDecode)
	}

	points := make([]Point, len(doc.Points))
	for i, p := range doc.Points {
		if len(p.Key) != doc.Dims {
			return 0, nil, fmt.Errorf("Decode: point %d has %d coordinates, want %d: %w", i, len(p.Key), doc.Dims, ErrDecode)
		}
		for d, c := range p.Key {
			if math.IsNaN(c) {
				return 0, nil, fmt.Errorf("Decode: point %d coordinate %d is NaN: %w", i, d, ErrDecode)
			}
		}
		points[i] = Point{Key: p.Key, Value: p.Value}
	}
	return doc.Dims, points, nil
}

// ReadFile decodes the dataset stored at path.
func ReadFile(path string) (int, []Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile encodes points to path, creating or truncating it.
func WriteFile(path string, k int, points []Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, k, points)
}
