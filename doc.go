// Package lvkd is an in-memory toolkit for k-dimensional point data:
// a KD-tree with exact lookups, per-dimension extremes, deletion and
// bidirectional iteration, plus dataset generation and a command-line tool.
//
// 🚀 What is lvkd?
//
//	A pure-Go, generic library built around one data structure:
//		• kdtree/  — KD-tree: Insert, Find, FindMin/FindMax, Erase, iterators,
//		             balanced bulk Build, Range and Nearest queries, deep Clone
//		• dataset/ — deterministic point generators (uniform, grid, clustered)
//		             and a YAML codec for point batches
//		• cmd/kdtool — CLI to generate datasets, query them and print tree shape
//
// ✨ Why a KD-tree?
//
//   - Multi-key search: every level splits on the next coordinate (depth mod K)
//   - Pruned queries: FindMin/FindMax skip half the tree on matching levels
//   - Predictable: no hidden randomness, no global state, no goroutines
//
// Quick ASCII example (K = 2, root splits on x, its children on y):
//
//	          (5,5)            x
//	         /     \
//	    (2,7)       (8,1)      y
//	               /     \
//	          (9,0)       (6,3)
//
// Concurrency: trees are not safe for concurrent mutation; serialize access.
//
//	go get github.com/katalvlaran/lvkd
package lvkd
